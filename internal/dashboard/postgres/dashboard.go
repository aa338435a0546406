package postgres

import (
	"gorm.io/gorm"

	"github.com/HaniMe9/abe-garage-hani/internal/dashboard"
)

// Repository answers dashboard aggregates with raw SQL over the order,
// customer and employee tables.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) dashboard.Repository {
	return &Repository{db: db}
}

func (r *Repository) Stats() (*dashboard.Stats, error) {
	stats := &dashboard.Stats{}

	row := r.db.Raw(`
		SELECT
			(SELECT COUNT(*) FROM customer_identifier),
			(SELECT COUNT(*) FROM employee WHERE active_employee = TRUE),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE active_order = TRUE),
			(SELECT COUNT(*) FROM order_info WHERE completion_date IS NOT NULL),
			(SELECT COALESCE(SUM(order_total_price), 0) FROM order_info WHERE completion_date IS NOT NULL)`).Row()
	if err := row.Scan(
		&stats.TotalCustomers,
		&stats.ActiveEmployees,
		&stats.TotalOrders,
		&stats.ActiveOrders,
		&stats.CompletedOrders,
		&stats.TotalRevenue,
	); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *Repository) TopServices(limit int) ([]*dashboard.ServicePopularity, error) {
	rows, err := r.db.Raw(`
		SELECT cs.service_id, cs.service_name, COUNT(os.order_service_id)
		FROM common_services cs
		INNER JOIN order_services os ON cs.service_id = os.service_id
		GROUP BY cs.service_id, cs.service_name
		ORDER BY COUNT(os.order_service_id) DESC, cs.service_id
		LIMIT ?`, limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	top := make([]*dashboard.ServicePopularity, 0, limit)
	for rows.Next() {
		var sp dashboard.ServicePopularity
		if err := rows.Scan(&sp.ServiceID, &sp.ServiceName, &sp.OrderCount); err != nil {
			return nil, err
		}
		top = append(top, &sp)
	}
	return top, rows.Err()
}
