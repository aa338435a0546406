package customer

import (
	"log/slog"

	"github.com/HaniMe9/abe-garage-hani/internal"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetByID(id int64) (*Customer, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrCustomerNotFound
	}
	return c, nil
}

func (s *Service) List(limit, offset int) ([]*Customer, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	customers, err := s.repo.List(limit, offset)
	if err != nil {
		s.logger.Error("failed to list customers", "error", err)
		return nil, internal.NewInternalError("failed to list customers", err)
	}
	return customers, nil
}

func (s *Service) Search(term string) ([]*Customer, error) {
	if term == "" {
		return []*Customer{}, nil
	}
	customers, err := s.repo.Search(term)
	if err != nil {
		s.logger.Error("customer search failed", "term", term, "error", err)
		return nil, internal.NewInternalError("customer search failed", err)
	}
	return customers, nil
}

// Update applies identifier and profile changes in one transaction.
func (s *Service) Update(id int64, dto UpdateCustomerDTO) (*Customer, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, internal.ErrCustomerNotFound
	}
	if err := s.repo.Update(id, dto); err != nil {
		s.logger.Error("customer update failed", "customer_id", id, "error", err)
		return nil, internal.NewInternalError("failed to update customer", err)
	}
	return s.repo.GetByID(id)
}

func (s *Service) Deactivate(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrCustomerNotFound
	}
	if err := s.repo.Deactivate(id); err != nil {
		s.logger.Error("customer deactivate failed", "customer_id", id, "error", err)
		return internal.NewInternalError("failed to deactivate customer", err)
	}
	s.logger.Info("customer deactivated", "customer_id", id)
	return nil
}
