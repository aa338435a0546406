package order

import "time"

// Order status values. Received is the fixed starting state; Completed is
// the fixed terminal state.
const (
	StatusReceived   = "Received"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Order is the header row owning references to the customer, vehicle and
// assigned employee. active_order stays true until completion.
type Order struct {
	OrderID    int64     `gorm:"column:order_id;primaryKey" json:"order_id"`
	EmployeeID int64     `gorm:"column:employee_id;not null" json:"employee_id"`
	CustomerID int64     `gorm:"column:customer_id;not null" json:"customer_id"`
	VehicleID  int64     `gorm:"column:vehicle_id;not null" json:"vehicle_id"`
	Hash       string    `gorm:"column:order_hash" json:"order_hash"`
	Active     bool      `gorm:"column:active_order;default:true" json:"active_order"`
	OrderDate  time.Time `gorm:"column:order_date" json:"order_date"`
}

func (Order) TableName() string { return "orders" }

// Info is the pricing/notes sub-record, one per order.
type Info struct {
	OrderID           int64      `gorm:"column:order_id;primaryKey" json:"order_id"`
	TotalPrice        float64    `gorm:"column:order_total_price" json:"order_total_price"`
	AdditionalRequest *string    `gorm:"column:additional_request" json:"additional_request,omitempty"`
	Notes             *string    `gorm:"column:notes" json:"notes,omitempty"`
	CompletionDate    *time.Time `gorm:"column:completion_date" json:"completion_date,omitempty"`
}

func (Info) TableName() string { return "order_info" }

// Status is the single status sub-record of an order.
type Status struct {
	OrderID int64  `gorm:"column:order_id;primaryKey" json:"order_id"`
	Status  string `gorm:"column:order_status" json:"order_status"`
}

func (Status) TableName() string { return "order_status" }

// ServiceLine is one requested catalog service on an order.
type ServiceLine struct {
	OrderServiceID int64 `gorm:"column:order_service_id;primaryKey" json:"order_service_id"`
	OrderID        int64 `gorm:"column:order_id;not null" json:"order_id"`
	ServiceID      int64 `gorm:"column:service_id;not null" json:"service_id"`
	Completed      bool  `gorm:"column:service_completed;default:false" json:"service_completed"`
}

func (ServiceLine) TableName() string { return "order_services" }

// Detail is the aggregate read view: header plus its sub-records.
type Detail struct {
	Order
	Info     Info           `json:"order_info"`
	Status   string         `json:"order_status"`
	Services []*ServiceLine `json:"order_services"`
}

// Summary is the list/dashboard row joining customer and vehicle labels.
type Summary struct {
	OrderID      int64     `json:"order_id"`
	OrderDate    time.Time `json:"order_date"`
	Active       bool      `json:"active_order"`
	TotalPrice   float64   `json:"order_total_price"`
	Status       string    `json:"order_status"`
	CustomerName string    `json:"customer_name"`
	VehicleInfo  string    `json:"vehicle_info"`
}

// Repository is the data access surface for orders. Create and Complete
// are multi-table transactions: all rows land or none do.
type Repository interface {
	Create(header *Order, info *Info, initialStatus string, serviceIDs []int64) (int64, error)
	Complete(orderID int64, finalPrice float64, notes *string, completedAt time.Time) error
	UpdateStatus(orderID int64, status string) error
	GetDetail(orderID int64) (*Detail, error)
	List(limit, offset int, activeOnly bool) ([]*Summary, error)
	ListByCustomer(customerID int64) ([]*Summary, error)
	ListRecent(limit int) ([]*Summary, error)
	ListByDateRange(start, end time.Time) ([]*Summary, error)
	CountByEmployee(employeeID int64) (int64, error)
}
