package vehicle

// Vehicle is a customer-owned vehicle, table customer_vehicle_info.
type Vehicle struct {
	VehicleID  int64  `gorm:"column:vehicle_id;primaryKey" json:"vehicle_id"`
	CustomerID int64  `gorm:"column:customer_id;not null" json:"customer_id"`
	Year       int    `gorm:"column:vehicle_year" json:"vehicle_year"`
	Make       string `gorm:"column:vehicle_make" json:"vehicle_make"`
	Model      string `gorm:"column:vehicle_model" json:"vehicle_model"`
	Type       string `gorm:"column:vehicle_type" json:"vehicle_type,omitempty"`
	Mileage    int    `gorm:"column:vehicle_mileage" json:"vehicle_mileage,omitempty"`
	Tag        string `gorm:"column:vehicle_tag" json:"vehicle_tag,omitempty"`
	Serial     string `gorm:"column:vehicle_serial" json:"vehicle_serial,omitempty"`
	Color      string `gorm:"column:vehicle_color" json:"vehicle_color,omitempty"`
}

func (Vehicle) TableName() string {
	return "customer_vehicle_info"
}

type Repository interface {
	Create(v *Vehicle) error
	GetByID(id int64) (*Vehicle, error)
	ListByCustomer(customerID int64) ([]*Vehicle, error)
	Update(v *Vehicle) error
	CountByCustomer(customerID int64) (int64, error)
}
