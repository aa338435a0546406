package customer

import "github.com/HaniMe9/abe-garage-hani/internal"

// UpdateCustomerDTO carries partial updates; nil fields are untouched.
type UpdateCustomerDTO struct {
	Email     *string `json:"customer_email,omitempty"`
	Phone     *string `json:"customer_phone_number,omitempty"`
	FirstName *string `json:"customer_first_name,omitempty"`
	LastName  *string `json:"customer_last_name,omitempty"`
}

func (d UpdateCustomerDTO) Validate() error {
	if d.Email == nil && d.Phone == nil && d.FirstName == nil && d.LastName == nil {
		return internal.NewValidationError("no fields to update", internal.ErrCodeValidationFailed)
	}
	if d.Email != nil && *d.Email == "" {
		return internal.NewValidationError("email cannot be empty", internal.ErrCodeValidationFailed)
	}
	return nil
}
