package auth

import (
	"fmt"
	"strings"

	"github.com/HaniMe9/abe-garage-hani/internal"
)

// RegisterCustomerDTO is the transport shape for customer registration.
type RegisterCustomerDTO struct {
	Email     string `json:"customer_email"`
	Password  string `json:"customer_password"`
	FirstName string `json:"customer_first_name"`
	LastName  string `json:"customer_last_name"`
	Phone     string `json:"customer_phone_number,omitempty"`
}

// RegisterEmployeeDTO is the transport shape for employee registration.
type RegisterEmployeeDTO struct {
	Email     string `json:"employee_email"`
	Password  string `json:"employee_password"`
	FirstName string `json:"employee_first_name"`
	LastName  string `json:"employee_last_name"`
	Phone     string `json:"employee_phone,omitempty"`
	RoleID    int64  `json:"company_role_id"`
}

// LoginDTO accepts both the customer and employee field spellings the
// front end sends, plus plain email/password.
type LoginDTO struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	CustomerEmail    string `json:"customer_email"`
	CustomerPassword string `json:"customer_password"`
	EmployeeEmail    string `json:"employee_email"`
	EmployeePassword string `json:"employee_password"`
}

// Credentials collapses the accepted field spellings into one pair.
func (d LoginDTO) Credentials() (email, password string) {
	email = firstNonEmpty(d.Email, d.CustomerEmail, d.EmployeeEmail)
	password = firstNonEmpty(d.Password, d.CustomerPassword, d.EmployeePassword)
	return strings.TrimSpace(email), password
}

func (d LoginDTO) Validate() error {
	email, password := d.Credentials()
	if email == "" || password == "" {
		return internal.NewValidationError("email and password are required", internal.ErrCodeMissingFields)
	}
	return nil
}

func (d RegisterCustomerDTO) Validate() error {
	missing := missingFields(map[string]string{
		"email":      d.Email,
		"password":   d.Password,
		"first name": d.FirstName,
		"last name":  d.LastName,
	})
	if len(missing) > 0 {
		return internal.NewValidationError(
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")),
			internal.ErrCodeMissingFields)
	}
	return nil
}

func (d RegisterEmployeeDTO) Validate() error {
	missing := missingFields(map[string]string{
		"email":      d.Email,
		"password":   d.Password,
		"first name": d.FirstName,
		"last name":  d.LastName,
	})
	if d.RoleID == 0 {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return internal.NewValidationError(
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")),
			internal.ErrCodeMissingFields)
	}
	return nil
}

func missingFields(fields map[string]string) []string {
	var missing []string
	// fixed iteration order for stable messages
	for _, name := range []string{"email", "password", "first name", "last name"} {
		if v, ok := fields[name]; ok && strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
