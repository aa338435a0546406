package customer

import "time"

// Customer is the merged view of customer_identifier and customer_info.
type Customer struct {
	CustomerID int64     `json:"customer_id"`
	Email      string    `json:"customer_email"`
	Phone      string    `json:"customer_phone_number,omitempty"`
	FirstName  string    `json:"customer_first_name"`
	LastName   string    `json:"customer_last_name"`
	Active     bool      `json:"active_customer_status"`
	AddedDate  time.Time `json:"customer_added_date"`
}

// Repository is the data access surface for customer records. Creation is
// owned by the auth service; this package reads and updates.
type Repository interface {
	GetByID(id int64) (*Customer, error)
	List(limit, offset int) ([]*Customer, error)
	Search(term string) ([]*Customer, error)
	Update(id int64, upd UpdateCustomerDTO) error
	Deactivate(id int64) error
	Count() (int64, error)
}
