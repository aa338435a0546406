package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/HaniMe9/abe-garage-hani/internal"
	"github.com/HaniMe9/abe-garage-hani/internal/order"
)

// Repository implements order.Repository. Create and Complete run inside
// gorm transactions; a failed sub-step rolls back every prior one.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) order.Repository {
	return &Repository{db: db}
}

// Create inserts the header, info, initial status and service lines as one
// unit of work.
func (r *Repository) Create(header *order.Order, info *order.Info, initialStatus string, serviceIDs []int64) (int64, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(header).Error; err != nil {
			return fmt.Errorf("insert order header: %w", err)
		}

		info.OrderID = header.OrderID
		if err := tx.Create(info).Error; err != nil {
			return fmt.Errorf("insert order info: %w", err)
		}

		status := &order.Status{OrderID: header.OrderID, Status: initialStatus}
		if err := tx.Create(status).Error; err != nil {
			return fmt.Errorf("insert order status: %w", err)
		}

		for _, serviceID := range serviceIDs {
			line := &order.ServiceLine{
				OrderID:   header.OrderID,
				ServiceID: serviceID,
				Completed: false,
			}
			if err := tx.Create(line).Error; err != nil {
				return fmt.Errorf("insert order service line: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return header.OrderID, nil
}

// Complete stamps the completion exactly once. The completion_date guard
// runs inside the transaction so two racing completions cannot both count.
func (r *Repository) Complete(orderID int64, finalPrice float64, notes *string, completedAt time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var completion sql.NullTime
		row := tx.Raw(`SELECT completion_date FROM order_info WHERE order_id = ?`, orderID).Row()
		if err := row.Scan(&completion); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal.ErrOrderNotFound
			}
			return fmt.Errorf("read order info: %w", err)
		}
		if completion.Valid {
			return internal.ErrOrderAlreadyCompleted
		}

		updates := map[string]interface{}{
			"order_total_price": finalPrice,
			"completion_date":   completedAt,
		}
		if notes != nil {
			updates["notes"] = *notes
		}
		if err := tx.Model(&order.Info{}).Where("order_id = ?", orderID).Updates(updates).Error; err != nil {
			return fmt.Errorf("update order info: %w", err)
		}

		if err := tx.Model(&order.Status{}).Where("order_id = ?", orderID).
			Update("order_status", order.StatusCompleted).Error; err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		if err := tx.Model(&order.Order{}).Where("order_id = ?", orderID).
			Update("active_order", false).Error; err != nil {
			return fmt.Errorf("deactivate order: %w", err)
		}

		if err := tx.Model(&order.ServiceLine{}).Where("order_id = ?", orderID).
			Update("service_completed", true).Error; err != nil {
			return fmt.Errorf("complete service lines: %w", err)
		}

		return nil
	})
}

func (r *Repository) UpdateStatus(orderID int64, status string) error {
	return r.db.Model(&order.Status{}).Where("order_id = ?", orderID).
		Update("order_status", status).Error
}

func (r *Repository) GetDetail(orderID int64) (*order.Detail, error) {
	var header order.Order
	if err := r.db.Where("order_id = ?", orderID).First(&header).Error; err != nil {
		return nil, err
	}

	detail := &order.Detail{Order: header}

	if err := r.db.Where("order_id = ?", orderID).First(&detail.Info).Error; err != nil {
		return nil, err
	}

	var status order.Status
	if err := r.db.Where("order_id = ?", orderID).First(&status).Error; err != nil {
		return nil, err
	}
	detail.Status = status.Status

	lines := make([]*order.ServiceLine, 0)
	if err := r.db.Where("order_id = ?", orderID).Order("order_service_id").Find(&lines).Error; err != nil {
		return nil, err
	}
	detail.Services = lines

	return detail, nil
}

const summarySelect = `
	SELECT o.order_id, o.order_date, o.active_order,
	       COALESCE(oi.order_total_price, 0),
	       COALESCE(os.order_status, ''),
	       COALESCE(ci.customer_first_name || ' ' || ci.customer_last_name, ''),
	       COALESCE(CAST(cv.vehicle_year AS TEXT) || ' ' || cv.vehicle_make || ' ' || cv.vehicle_model, '')
	FROM orders o
	LEFT JOIN order_info oi ON o.order_id = oi.order_id
	LEFT JOIN order_status os ON o.order_id = os.order_id
	LEFT JOIN customer_info ci ON o.customer_id = ci.customer_id
	LEFT JOIN customer_vehicle_info cv ON o.vehicle_id = cv.vehicle_id`

func (r *Repository) List(limit, offset int, activeOnly bool) ([]*order.Summary, error) {
	query := summarySelect
	args := []interface{}{}
	if activeOnly {
		query += ` WHERE o.active_order = TRUE`
	}
	query += ` ORDER BY o.order_date DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	return r.scanSummaries(query, args...)
}

func (r *Repository) ListByCustomer(customerID int64) ([]*order.Summary, error) {
	return r.scanSummaries(summarySelect+`
		WHERE o.customer_id = ?
		ORDER BY o.order_date DESC`, customerID)
}

func (r *Repository) ListRecent(limit int) ([]*order.Summary, error) {
	return r.scanSummaries(summarySelect+`
		ORDER BY o.order_date DESC LIMIT ?`, limit)
}

func (r *Repository) ListByDateRange(start, end time.Time) ([]*order.Summary, error) {
	return r.scanSummaries(summarySelect+`
		WHERE o.order_date >= ? AND o.order_date < ?
		ORDER BY o.order_date DESC`, start, end)
}

func (r *Repository) CountByEmployee(employeeID int64) (int64, error) {
	var count int64
	row := r.db.Raw(`SELECT COUNT(*) FROM orders WHERE employee_id = ?`, employeeID).Row()
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) scanSummaries(query string, args ...interface{}) ([]*order.Summary, error) {
	rows, err := r.db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]*order.Summary, 0)
	for rows.Next() {
		var s order.Summary
		if err := rows.Scan(&s.OrderID, &s.OrderDate, &s.Active,
			&s.TotalPrice, &s.Status, &s.CustomerName, &s.VehicleInfo); err != nil {
			return nil, err
		}
		summaries = append(summaries, &s)
	}
	return summaries, rows.Err()
}
