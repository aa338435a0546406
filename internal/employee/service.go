package employee

import (
	"log/slog"

	"github.com/HaniMe9/abe-garage-hani/internal"
	"github.com/HaniMe9/abe-garage-hani/internal/auth"
)

type Service struct {
	repo   Repository
	roles  *auth.RoleRegistry
	logger *slog.Logger
}

func NewService(repo Repository, roles *auth.RoleRegistry, logger *slog.Logger) *Service {
	return &Service{repo: repo, roles: roles, logger: logger}
}

func (s *Service) GetByID(id int64) (*Employee, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return e, nil
}

func (s *Service) List(limit, offset int) ([]*Employee, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	employees, err := s.repo.List(limit, offset)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewInternalError("failed to list employees", err)
	}
	return employees, nil
}

func (s *Service) Update(id int64, dto UpdateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if dto.RoleID != nil {
		if _, ok := s.roles.ByID(*dto.RoleID); !ok {
			return nil, internal.ErrUnknownRole
		}
	}
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, internal.ErrEmployeeNotFound
	}
	if err := s.repo.Update(id, dto); err != nil {
		s.logger.Error("employee update failed", "employee_id", id, "error", err)
		return nil, internal.NewInternalError("failed to update employee", err)
	}
	return s.repo.GetByID(id)
}

func (s *Service) Deactivate(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrEmployeeNotFound
	}
	if err := s.repo.Deactivate(id); err != nil {
		s.logger.Error("employee deactivate failed", "employee_id", id, "error", err)
		return internal.NewInternalError("failed to deactivate employee", err)
	}
	s.logger.Info("employee deactivated", "employee_id", id)
	return nil
}
