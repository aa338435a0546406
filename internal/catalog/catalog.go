package catalog

// GarageService is a row of common_services, the catalog of work the shop
// offers (oil change, brake repair, and so on).
type GarageService struct {
	ServiceID   int64  `gorm:"column:service_id;primaryKey" json:"service_id"`
	Name        string `gorm:"column:service_name;not null" json:"service_name"`
	Description string `gorm:"column:service_description" json:"service_description,omitempty"`
}

func (GarageService) TableName() string {
	return "common_services"
}

type Repository interface {
	Create(s *GarageService) error
	GetByID(id int64) (*GarageService, error)
	List() ([]*GarageService, error)
	Update(s *GarageService) error
	ExistAll(ids []int64) (bool, error)
}
