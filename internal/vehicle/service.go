package vehicle

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

func (s *Service) Create(dto CreateVehicleDTO) (*Vehicle, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	v := &Vehicle{
		CustomerID: dto.CustomerID,
		Year:       dto.Year,
		Make:       dto.Make,
		Model:      dto.Model,
		Type:       dto.Type,
		Mileage:    dto.Mileage,
		Tag:        dto.Tag,
		Serial:     dto.Serial,
		Color:      dto.Color,
	}
	if err := s.repo.Create(v); err != nil {
		s.logger.Error("failed to create vehicle", "customer_id", dto.CustomerID, "error", err)
		return nil, internal.NewInternalError("failed to create vehicle", err)
	}

	s.logger.Info("vehicle created", "vehicle_id", v.VehicleID, "customer_id", v.CustomerID)
	return v, nil
}

func (s *Service) GetByID(id int64) (*Vehicle, error) {
	v, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrVehicleNotFound
	}
	return v, nil
}

func (s *Service) ListByCustomer(customerID int64) ([]*Vehicle, error) {
	vehicles, err := s.repo.ListByCustomer(customerID)
	if err != nil {
		s.logger.Error("failed to list vehicles", "customer_id", customerID, "error", err)
		return nil, internal.NewInternalError("failed to list vehicles", err)
	}
	return vehicles, nil
}

func (s *Service) Update(id int64, dto UpdateVehicleDTO) (*Vehicle, error) {
	v, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrVehicleNotFound
	}

	if dto.Year != nil {
		v.Year = *dto.Year
	}
	if dto.Make != nil {
		v.Make = *dto.Make
	}
	if dto.Model != nil {
		v.Model = *dto.Model
	}
	if dto.Type != nil {
		v.Type = *dto.Type
	}
	if dto.Mileage != nil {
		v.Mileage = *dto.Mileage
	}
	if dto.Tag != nil {
		v.Tag = *dto.Tag
	}
	if dto.Serial != nil {
		v.Serial = *dto.Serial
	}
	if dto.Color != nil {
		v.Color = *dto.Color
	}

	if err := s.repo.Update(v); err != nil {
		s.logger.Error("failed to update vehicle", "vehicle_id", id, "error", err)
		return nil, internal.NewInternalError("failed to update vehicle", err)
	}
	return v, nil
}
