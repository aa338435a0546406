package employee

import "github.com/HaniMe9/abe-garage-hani/internal"

// UpdateEmployeeDTO carries partial updates; nil fields are untouched.
// Role reassignment rides in the same transaction as the profile update.
type UpdateEmployeeDTO struct {
	Phone     *string `json:"employee_phone,omitempty"`
	FirstName *string `json:"employee_first_name,omitempty"`
	LastName  *string `json:"employee_last_name,omitempty"`
	RoleID    *int64  `json:"company_role_id,omitempty"`
}

func (d UpdateEmployeeDTO) Validate() error {
	if d.Phone == nil && d.FirstName == nil && d.LastName == nil && d.RoleID == nil {
		return internal.NewValidationError("no fields to update", internal.ErrCodeValidationFailed)
	}
	return nil
}
