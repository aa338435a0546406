package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/HaniMe9/abe-garage-hani/internal/customer"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) customer.Repository {
	return &Repository{db: db}
}

const customerSelect = `
	SELECT cid.customer_id, cid.customer_email, COALESCE(cid.customer_phone_number, ''),
	       ci.customer_first_name, ci.customer_last_name, ci.active_customer_status,
	       cid.customer_added_date
	FROM customer_identifier cid
	INNER JOIN customer_info ci ON cid.customer_id = ci.customer_id`

func (r *Repository) GetByID(id int64) (*customer.Customer, error) {
	row := r.db.Raw(customerSelect+` WHERE cid.customer_id = ?`, id).Row()
	return scanCustomer(row)
}

func (r *Repository) List(limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Raw(customerSelect+`
		ORDER BY cid.customer_added_date DESC
		LIMIT ? OFFSET ?`, limit, offset).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCustomers(rows)
}

func (r *Repository) Search(term string) ([]*customer.Customer, error) {
	pattern := "%" + term + "%"
	rows, err := r.db.Raw(customerSelect+`
		WHERE cid.customer_email LIKE ? OR cid.customer_phone_number LIKE ?
		   OR ci.customer_first_name LIKE ? OR ci.customer_last_name LIKE ?
		ORDER BY ci.customer_first_name, ci.customer_last_name`,
		pattern, pattern, pattern, pattern).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// Update writes identifier and profile changes inside one transaction so a
// partial update can never become visible.
func (r *Repository) Update(id int64, upd customer.UpdateCustomerDTO) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var idSet []string
		var idArgs []interface{}
		if upd.Email != nil {
			idSet = append(idSet, "customer_email = ?")
			idArgs = append(idArgs, *upd.Email)
		}
		if upd.Phone != nil {
			idSet = append(idSet, "customer_phone_number = ?")
			idArgs = append(idArgs, *upd.Phone)
		}
		if len(idSet) > 0 {
			idArgs = append(idArgs, id)
			if err := tx.Exec(fmt.Sprintf(
				`UPDATE customer_identifier SET %s WHERE customer_id = ?`,
				strings.Join(idSet, ", ")), idArgs...).Error; err != nil {
				return fmt.Errorf("update customer_identifier: %w", err)
			}
		}

		var infoSet []string
		var infoArgs []interface{}
		if upd.FirstName != nil {
			infoSet = append(infoSet, "customer_first_name = ?")
			infoArgs = append(infoArgs, *upd.FirstName)
		}
		if upd.LastName != nil {
			infoSet = append(infoSet, "customer_last_name = ?")
			infoArgs = append(infoArgs, *upd.LastName)
		}
		if len(infoSet) > 0 {
			infoArgs = append(infoArgs, id)
			if err := tx.Exec(fmt.Sprintf(
				`UPDATE customer_info SET %s WHERE customer_id = ?`,
				strings.Join(infoSet, ", ")), infoArgs...).Error; err != nil {
				return fmt.Errorf("update customer_info: %w", err)
			}
		}

		return nil
	})
}

func (r *Repository) Deactivate(id int64) error {
	return r.db.Exec(`UPDATE customer_info SET active_customer_status = FALSE WHERE customer_id = ?`, id).Error
}

func (r *Repository) Count() (int64, error) {
	var count int64
	row := r.db.Raw(`SELECT COUNT(*) FROM customer_identifier`).Row()
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanCustomer(row *sql.Row) (*customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(&c.CustomerID, &c.Email, &c.Phone, &c.FirstName, &c.LastName, &c.Active, &c.AddedDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("customer not found")
		}
		return nil, err
	}
	return &c, nil
}

func scanCustomers(rows *sql.Rows) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(&c.CustomerID, &c.Email, &c.Phone, &c.FirstName, &c.LastName, &c.Active, &c.AddedDate); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}
