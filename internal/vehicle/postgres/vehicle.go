package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/HaniMe9/abe-garage-hani/internal/vehicle"
)

// Repository implements vehicle.Repository using GORM model queries.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) vehicle.Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(v *vehicle.Vehicle) error {
	return r.db.Create(v).Error
}

func (r *Repository) GetByID(id int64) (*vehicle.Vehicle, error) {
	var v vehicle.Vehicle
	err := r.db.Where("vehicle_id = ?", id).First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *Repository) ListByCustomer(customerID int64) ([]*vehicle.Vehicle, error) {
	vehicles := make([]*vehicle.Vehicle, 0)
	err := r.db.Where("customer_id = ?", customerID).
		Order("vehicle_id").
		Find(&vehicles).Error
	return vehicles, err
}

func (r *Repository) Update(v *vehicle.Vehicle) error {
	return r.db.Save(v).Error
}

func (r *Repository) CountByCustomer(customerID int64) (int64, error) {
	var count int64
	err := r.db.Model(&vehicle.Vehicle{}).Where("customer_id = ?", customerID).Count(&count).Error
	return count, err
}
