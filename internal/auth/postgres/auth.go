package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/HaniMe9/abe-garage-hani/internal"
	"github.com/HaniMe9/abe-garage-hani/internal/auth"
)

// Repository implements auth.Repository on top of the relational store.
// Multi-table registrations run inside a single transaction so a failure
// partway through leaves no partial principal behind.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CustomerEmailExists(email string) (bool, error) {
	var id int64
	row := r.db.Raw(`SELECT customer_id FROM customer_identifier WHERE customer_email = ?`, email).Row()
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Repository) EmployeeEmailExists(email string) (bool, error) {
	var id int64
	row := r.db.Raw(`SELECT employee_id FROM employee WHERE employee_email = ?`, email).Row()
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateCustomer inserts identity and profile atomically.
func (r *Repository) CreateCustomer(rec auth.CustomerRecord) (int64, error) {
	var customerID int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		row := tx.Raw(`
			INSERT INTO customer_identifier (customer_email, customer_phone_number, customer_hash, customer_password_hashed)
			VALUES (?, ?, ?, ?)
			RETURNING customer_id`,
			rec.Email, nullable(rec.Phone), rec.IdentityHash, rec.PasswordHash).Row()
		if err := row.Scan(&customerID); err != nil {
			return fmt.Errorf("insert customer_identifier: %w", err)
		}

		if err := tx.Exec(`
			INSERT INTO customer_info (customer_id, customer_first_name, customer_last_name, active_customer_status)
			VALUES (?, ?, ?, TRUE)`,
			customerID, rec.FirstName, rec.LastName).Error; err != nil {
			return fmt.Errorf("insert customer_info: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return customerID, nil
}

// CreateEmployee inserts identity, profile, credential and role assignment
// atomically.
func (r *Repository) CreateEmployee(rec auth.EmployeeRecord) (int64, error) {
	var employeeID int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		row := tx.Raw(`
			INSERT INTO employee (employee_email, active_employee)
			VALUES (?, TRUE)
			RETURNING employee_id`,
			rec.Email).Row()
		if err := row.Scan(&employeeID); err != nil {
			return fmt.Errorf("insert employee: %w", err)
		}

		if err := tx.Exec(`
			INSERT INTO employee_info (employee_id, employee_first_name, employee_last_name, employee_phone)
			VALUES (?, ?, ?, ?)`,
			employeeID, rec.FirstName, rec.LastName, nullable(rec.Phone)).Error; err != nil {
			return fmt.Errorf("insert employee_info: %w", err)
		}

		if err := tx.Exec(`
			INSERT INTO employee_pass (employee_id, employee_password_hashed)
			VALUES (?, ?)`,
			employeeID, rec.PasswordHash).Error; err != nil {
			return fmt.Errorf("insert employee_pass: %w", err)
		}

		if err := tx.Exec(`
			INSERT INTO employee_role (employee_id, company_role_id)
			VALUES (?, ?)`,
			employeeID, rec.RoleID).Error; err != nil {
			return fmt.Errorf("insert employee_role: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return employeeID, nil
}

// GetCustomerCredential joins identity and profile for authentication.
func (r *Repository) GetCustomerCredential(email string) (*auth.Credential, error) {
	row := r.db.Raw(`
		SELECT cid.customer_id, cid.customer_email, COALESCE(cid.customer_phone_number, ''),
		       ci.customer_first_name, ci.customer_last_name, ci.active_customer_status,
		       COALESCE(cid.customer_password_hashed, '')
		FROM customer_identifier cid
		INNER JOIN customer_info ci ON cid.customer_id = ci.customer_id
		WHERE cid.customer_email = ?`, email).Row()

	cred := &auth.Credential{Principal: auth.Principal{Kind: auth.KindCustomer}}
	err := row.Scan(
		&cred.Principal.ID, &cred.Principal.Email, &cred.Principal.Phone,
		&cred.Principal.FirstName, &cred.Principal.LastName, &cred.Principal.Active,
		&cred.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrAccountNotFound
		}
		return nil, err
	}
	return cred, nil
}

// GetEmployeeCredential joins identity, profile, credential and role for
// authentication. The credential and role joins are LEFT joins: a missing
// credential row must surface as an empty hash, not as "no such account".
func (r *Repository) GetEmployeeCredential(email string) (*auth.Credential, error) {
	row := r.db.Raw(`
		SELECT e.employee_id, e.employee_email, e.active_employee,
		       ei.employee_first_name, ei.employee_last_name, COALESCE(ei.employee_phone, ''),
		       COALESCE(ep.employee_password_hashed, ''),
		       COALESCE(er.company_role_id, 0), COALESCE(cr.company_role_name, '')
		FROM employee e
		INNER JOIN employee_info ei ON e.employee_id = ei.employee_id
		LEFT JOIN employee_pass ep ON e.employee_id = ep.employee_id
		LEFT JOIN employee_role er ON e.employee_id = er.employee_id
		LEFT JOIN company_roles cr ON er.company_role_id = cr.company_role_id
		WHERE e.employee_email = ?`, email).Row()

	cred := &auth.Credential{Principal: auth.Principal{Kind: auth.KindEmployee}}
	var roleName string
	err := row.Scan(
		&cred.Principal.ID, &cred.Principal.Email, &cred.Principal.Active,
		&cred.Principal.FirstName, &cred.Principal.LastName, &cred.Principal.Phone,
		&cred.PasswordHash,
		&cred.Principal.RoleID, &roleName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrAccountNotFound
		}
		return nil, err
	}
	cred.Principal.RoleName = auth.RoleName(roleName)
	return cred, nil
}

// LoadRoles reads the full company_roles table for the role registry.
func (r *Repository) LoadRoles() ([]auth.Role, error) {
	rows, err := r.db.Raw(`SELECT company_role_id, company_role_name, COALESCE(company_role_description, '') FROM company_roles ORDER BY company_role_id`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []auth.Role
	for rows.Next() {
		var role auth.Role
		var name string
		if err := rows.Scan(&role.ID, &name, &role.Description); err != nil {
			return nil, err
		}
		role.Name = auth.RoleName(name)
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
