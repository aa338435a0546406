package dashboard

import (
	"log/slog"

	"github.com/HaniMe9/abe-garage-hani/internal/auth"
	"github.com/HaniMe9/abe-garage-hani/internal/order"
)

const (
	recentOrdersAdmin   = 10
	recentOrdersDefault = 5
	topServicesLimit    = 5
)

// OrderReader is the slice of the order repository the dashboard consumes.
type OrderReader interface {
	ListRecent(limit int) ([]*order.Summary, error)
	ListByCustomer(customerID int64) ([]*order.Summary, error)
	CountByEmployee(employeeID int64) (int64, error)
}

// VehicleCounter counts vehicles owned by a customer.
type VehicleCounter interface {
	CountByCustomer(customerID int64) (int64, error)
}

type Service struct {
	repo     Repository
	orders   OrderReader
	vehicles VehicleCounter
	logger   *slog.Logger
}

func NewService(repo Repository, orders OrderReader, vehicles VehicleCounter, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		orders:   orders,
		vehicles: vehicles,
		logger:   logger.With("component", "dashboard_service"),
	}
}

// Overview assembles the dashboard payload. Admin-tier employees see a
// deeper recent-orders feed than mechanics and receptionists.
func (s *Service) Overview(claims *auth.Claims) (*Overview, error) {
	stats, err := s.repo.Stats()
	if err != nil {
		s.logger.Error("failed to load dashboard stats", "error", err)
		return nil, err
	}

	limit := recentOrdersDefault
	if claims.IsAdminTier() {
		limit = recentOrdersAdmin
	}
	recent, err := s.orders.ListRecent(limit)
	if err != nil {
		s.logger.Error("failed to load recent orders", "error", err)
		return nil, err
	}

	top, err := s.repo.TopServices(topServicesLimit)
	if err != nil {
		s.logger.Error("failed to load service popularity", "error", err)
		return nil, err
	}

	return &Overview{Stats: stats, RecentOrders: recent, TopServices: top}, nil
}

// AdminStats returns the raw aggregate counters. Admin-tier only; the
// route gate enforces that.
func (s *Service) AdminStats() (*Stats, error) {
	return s.repo.Stats()
}

func (s *Service) EmployeeStats(employeeID int64) (*EmployeeStats, error) {
	handled, err := s.orders.CountByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return &EmployeeStats{EmployeeID: employeeID, OrdersHandled: handled}, nil
}

func (s *Service) CustomerStats(customerID int64) (*CustomerStats, error) {
	vehicles, err := s.vehicles.CountByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return &CustomerStats{
		CustomerID:   customerID,
		VehicleCount: vehicles,
		OrderCount:   int64(len(orders)),
		Orders:       orders,
	}, nil
}
