package catalog

import (
	"log/slog"
	"strings"

	"github.com/HaniMe9/abe-garage-hani/internal"
)

type CreateServiceDTO struct {
	Name        string `json:"service_name"`
	Description string `json:"service_description"`
}

type UpdateServiceDTO struct {
	Name        *string `json:"service_name,omitempty"`
	Description *string `json:"service_description,omitempty"`
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(dto CreateServiceDTO) (*GarageService, error) {
	if strings.TrimSpace(dto.Name) == "" {
		return nil, internal.NewValidationError("service name is required", internal.ErrCodeMissingFields)
	}

	gs := &GarageService{
		Name:        dto.Name,
		Description: dto.Description,
	}
	if err := s.repo.Create(gs); err != nil {
		s.logger.Error("failed to create service", "name", dto.Name, "error", err)
		return nil, internal.NewInternalError("failed to create service", err)
	}

	s.logger.Info("catalog service created", "service_id", gs.ServiceID, "name", gs.Name)
	return gs, nil
}

func (s *Service) GetByID(id int64) (*GarageService, error) {
	gs, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrServiceNotFound
	}
	return gs, nil
}

func (s *Service) List() ([]*GarageService, error) {
	services, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list services", "error", err)
		return nil, internal.NewInternalError("failed to list services", err)
	}
	return services, nil
}

func (s *Service) Update(id int64, dto UpdateServiceDTO) (*GarageService, error) {
	gs, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrServiceNotFound
	}

	if dto.Name != nil {
		if strings.TrimSpace(*dto.Name) == "" {
			return nil, internal.NewValidationError("service name cannot be empty", internal.ErrCodeValidationFailed)
		}
		gs.Name = *dto.Name
	}
	if dto.Description != nil {
		gs.Description = *dto.Description
	}

	if err := s.repo.Update(gs); err != nil {
		s.logger.Error("failed to update service", "service_id", id, "error", err)
		return nil, internal.NewInternalError("failed to update service", err)
	}
	return gs, nil
}
