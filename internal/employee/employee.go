package employee

import (
	"time"

	"github.com/HaniMe9/abe-garage-hani/internal/auth"
)

// Employee is the merged view of employee, employee_info and the current
// role assignment. The credential tables never surface here.
type Employee struct {
	EmployeeID int64         `json:"employee_id"`
	Email      string        `json:"employee_email"`
	Phone      string        `json:"employee_phone,omitempty"`
	FirstName  string        `json:"employee_first_name"`
	LastName   string        `json:"employee_last_name"`
	Active     bool          `json:"active_employee"`
	AddedDate  time.Time     `json:"employee_added_date"`
	RoleID     int64         `json:"company_role_id"`
	RoleName   auth.RoleName `json:"role_name"`
}

type Repository interface {
	GetByID(id int64) (*Employee, error)
	List(limit, offset int) ([]*Employee, error)
	Update(id int64, upd UpdateEmployeeDTO) error
	Deactivate(id int64) error
	CountActive() (int64, error)
}
