package order

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/HaniMe9/abe-garage-hani/internal"
	"github.com/HaniMe9/abe-garage-hani/internal/core/events"
)

// CatalogChecker verifies requested service ids against the catalog.
type CatalogChecker interface {
	ExistAll(ids []int64) (bool, error)
}

type Service struct {
	repo    Repository
	catalog CatalogChecker
	bus     *events.EventBus
	logger  *slog.Logger
}

func NewService(repo Repository, catalog CatalogChecker, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		bus:     bus,
		logger:  logger,
	}
}

// Create places a new order: header, info, initial status and one line per
// requested service, all inside one repository transaction.
func (s *Service) Create(ctx context.Context, dto CreateOrderDTO) (*Detail, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.catalog.ExistAll(dto.ServiceIDs)
	if err != nil {
		return nil, internal.NewInternalError("failed to verify services", err)
	}
	if !ok {
		return nil, internal.ErrServiceNotFound
	}

	header := &Order{
		EmployeeID: dto.EmployeeID,
		CustomerID: dto.CustomerID,
		VehicleID:  dto.VehicleID,
		Hash:       uuid.NewString(),
		Active:     true,
		OrderDate:  time.Now(),
	}
	info := &Info{
		TotalPrice:        dto.TotalPrice,
		AdditionalRequest: dto.AdditionalRequest,
	}

	orderID, err := s.repo.Create(header, info, StatusReceived, dto.ServiceIDs)
	if err != nil {
		s.logger.Error("order creation failed", "customer_id", dto.CustomerID, "error", err)
		return nil, internal.NewInternalError("failed to create order", err)
	}

	s.logger.Info("order created",
		"order_id", orderID,
		"customer_id", dto.CustomerID,
		"services", len(dto.ServiceIDs))

	s.publish(ctx, events.OrderCreated, orderID, dto.CustomerID, dto.EmployeeID, dto.TotalPrice)

	return s.GetDetail(orderID)
}

// Complete transitions an order to its terminal state: completion stamp,
// terminal status, inactive header and completed service lines, all in one
// transaction. Completing an already-completed order fails explicitly.
func (s *Service) Complete(ctx context.Context, orderID int64, dto CompleteOrderDTO) (*Detail, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	detail, err := s.repo.GetDetail(orderID)
	if err != nil {
		return nil, internal.ErrOrderNotFound
	}

	if err := s.repo.Complete(orderID, dto.FinalPrice, dto.Notes, time.Now()); err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			return nil, appErr
		}
		s.logger.Error("order completion failed", "order_id", orderID, "error", err)
		return nil, internal.NewInternalError("failed to complete order", err)
	}

	s.logger.Info("order completed", "order_id", orderID, "final_price", dto.FinalPrice)

	s.publish(ctx, events.OrderCompleted, orderID, detail.CustomerID, detail.EmployeeID, dto.FinalPrice)

	return s.GetDetail(orderID)
}

func (s *Service) UpdateStatus(orderID int64, dto UpdateStatusDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	detail, err := s.repo.GetDetail(orderID)
	if err != nil {
		return internal.ErrOrderNotFound
	}
	if !detail.Active {
		return internal.ErrOrderAlreadyCompleted
	}

	if err := s.repo.UpdateStatus(orderID, dto.Status); err != nil {
		s.logger.Error("order status update failed", "order_id", orderID, "error", err)
		return internal.NewInternalError("failed to update order status", err)
	}
	return nil
}

func (s *Service) GetDetail(orderID int64) (*Detail, error) {
	detail, err := s.repo.GetDetail(orderID)
	if err != nil {
		return nil, internal.ErrOrderNotFound
	}
	return detail, nil
}

func (s *Service) List(limit, offset int, activeOnly bool) ([]*Summary, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	summaries, err := s.repo.List(limit, offset, activeOnly)
	if err != nil {
		s.logger.Error("failed to list orders", "error", err)
		return nil, internal.NewInternalError("failed to list orders", err)
	}
	return summaries, nil
}

func (s *Service) ListByCustomer(customerID int64) ([]*Summary, error) {
	summaries, err := s.repo.ListByCustomer(customerID)
	if err != nil {
		s.logger.Error("failed to list customer orders", "customer_id", customerID, "error", err)
		return nil, internal.NewInternalError("failed to list orders", err)
	}
	return summaries, nil
}

func (s *Service) ListByDateRange(start, end time.Time) ([]*Summary, error) {
	summaries, err := s.repo.ListByDateRange(start, end)
	if err != nil {
		s.logger.Error("failed to list orders by date", "error", err)
		return nil, internal.NewInternalError("failed to list orders", err)
	}
	return summaries, nil
}

func (s *Service) publish(ctx context.Context, eventType string, orderID, customerID, employeeID int64, price float64) {
	if s.bus == nil {
		return
	}
	event := events.OrderEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Timestamp:  time.Now(),
		OrderID:    orderID,
		CustomerID: customerID,
		EmployeeID: employeeID,
		TotalPrice: price,
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		// notification only; the write already committed
		s.logger.Warn("order event delivery failed", "event_type", eventType, "order_id", orderID, "error", err)
	}
}
