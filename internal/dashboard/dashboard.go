package dashboard

import "github.com/HaniMe9/abe-garage-hani/internal/order"

// Stats is the shop-wide aggregate snapshot shown on the admin dashboard.
type Stats struct {
	TotalCustomers  int64   `json:"total_customers"`
	ActiveEmployees int64   `json:"active_employees"`
	TotalOrders     int64   `json:"total_orders"`
	ActiveOrders    int64   `json:"active_orders"`
	CompletedOrders int64   `json:"completed_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
}

// ServicePopularity ranks a catalog service by how often it was ordered.
type ServicePopularity struct {
	ServiceID   int64  `json:"service_id"`
	ServiceName string `json:"service_name"`
	OrderCount  int64  `json:"order_count"`
}

// Overview is the per-principal dashboard payload. RecentOrders depth
// depends on the caller's role tier.
type Overview struct {
	Stats        *Stats               `json:"stats"`
	RecentOrders []*order.Summary     `json:"recent_orders"`
	TopServices  []*ServicePopularity `json:"top_services"`
}

// EmployeeStats is the per-employee workload view.
type EmployeeStats struct {
	EmployeeID    int64 `json:"employee_id"`
	OrdersHandled int64 `json:"orders_handled"`
}

// CustomerStats is the per-customer activity view.
type CustomerStats struct {
	CustomerID   int64            `json:"customer_id"`
	VehicleCount int64            `json:"vehicle_count"`
	OrderCount   int64            `json:"order_count"`
	Orders       []*order.Summary `json:"orders"`
}

// Repository answers the aggregate queries the dashboard needs.
type Repository interface {
	Stats() (*Stats, error)
	TopServices(limit int) ([]*ServicePopularity, error)
}
