package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/HaniMe9/abe-garage-hani/internal/auth"
	"github.com/HaniMe9/abe-garage-hani/internal/employee"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) employee.Repository {
	return &Repository{db: db}
}

const employeeSelect = `
	SELECT e.employee_id, e.employee_email, e.active_employee, e.employee_added_date,
	       ei.employee_first_name, ei.employee_last_name, COALESCE(ei.employee_phone, ''),
	       COALESCE(er.company_role_id, 0), COALESCE(cr.company_role_name, '')
	FROM employee e
	INNER JOIN employee_info ei ON e.employee_id = ei.employee_id
	LEFT JOIN employee_role er ON e.employee_id = er.employee_id
	LEFT JOIN company_roles cr ON er.company_role_id = cr.company_role_id`

func (r *Repository) GetByID(id int64) (*employee.Employee, error) {
	row := r.db.Raw(employeeSelect+` WHERE e.employee_id = ?`, id).Row()
	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee not found")
		}
		return nil, err
	}
	return e, nil
}

func (r *Repository) List(limit, offset int) ([]*employee.Employee, error) {
	rows, err := r.db.Raw(employeeSelect+`
		ORDER BY e.employee_added_date DESC
		LIMIT ? OFFSET ?`, limit, offset).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0)
	for rows.Next() {
		var e employee.Employee
		var roleName string
		if err := rows.Scan(&e.EmployeeID, &e.Email, &e.Active, &e.AddedDate,
			&e.FirstName, &e.LastName, &e.Phone, &e.RoleID, &roleName); err != nil {
			return nil, err
		}
		e.RoleName = auth.RoleName(roleName)
		employees = append(employees, &e)
	}
	return employees, rows.Err()
}

// Update writes profile changes and the role reassignment in one
// transaction.
func (r *Repository) Update(id int64, upd employee.UpdateEmployeeDTO) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var set []string
		var args []interface{}
		if upd.FirstName != nil {
			set = append(set, "employee_first_name = ?")
			args = append(args, *upd.FirstName)
		}
		if upd.LastName != nil {
			set = append(set, "employee_last_name = ?")
			args = append(args, *upd.LastName)
		}
		if upd.Phone != nil {
			set = append(set, "employee_phone = ?")
			args = append(args, *upd.Phone)
		}
		if len(set) > 0 {
			args = append(args, id)
			if err := tx.Exec(fmt.Sprintf(
				`UPDATE employee_info SET %s WHERE employee_id = ?`,
				strings.Join(set, ", ")), args...).Error; err != nil {
				return fmt.Errorf("update employee_info: %w", err)
			}
		}

		if upd.RoleID != nil {
			if err := tx.Exec(
				`UPDATE employee_role SET company_role_id = ? WHERE employee_id = ?`,
				*upd.RoleID, id).Error; err != nil {
				return fmt.Errorf("update employee_role: %w", err)
			}
		}

		return nil
	})
}

func (r *Repository) Deactivate(id int64) error {
	return r.db.Exec(`UPDATE employee SET active_employee = FALSE WHERE employee_id = ?`, id).Error
}

func (r *Repository) CountActive() (int64, error) {
	var count int64
	row := r.db.Raw(`SELECT COUNT(*) FROM employee WHERE active_employee = TRUE`).Row()
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanEmployee(row *sql.Row) (*employee.Employee, error) {
	var e employee.Employee
	var roleName string
	err := row.Scan(&e.EmployeeID, &e.Email, &e.Active, &e.AddedDate,
		&e.FirstName, &e.LastName, &e.Phone, &e.RoleID, &roleName)
	if err != nil {
		return nil, err
	}
	e.RoleName = auth.RoleName(roleName)
	return &e, nil
}
