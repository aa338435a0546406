package postgres

import (
	"gorm.io/gorm"

	"github.com/HaniMe9/abe-garage-hani/internal/catalog"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) catalog.Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(s *catalog.GarageService) error {
	return r.db.Create(s).Error
}

func (r *Repository) GetByID(id int64) (*catalog.GarageService, error) {
	var s catalog.GarageService
	if err := r.db.Where("service_id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) List() ([]*catalog.GarageService, error) {
	services := make([]*catalog.GarageService, 0)
	err := r.db.Order("service_id").Find(&services).Error
	return services, err
}

func (r *Repository) Update(s *catalog.GarageService) error {
	return r.db.Save(s).Error
}

// ExistAll reports whether every id refers to a catalog service.
func (r *Repository) ExistAll(ids []int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int64
	err := r.db.Model(&catalog.GarageService{}).Where("service_id IN ?", ids).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == int64(len(ids)), nil
}
