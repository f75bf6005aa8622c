package repository

import (
	"errors"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ManufacturerRepository handles database operations for manufacturers
type ManufacturerRepository struct {
	db *gorm.DB
}

// NewManufacturerRepository creates a new manufacturer repository
func NewManufacturerRepository(db *gorm.DB) *ManufacturerRepository {
	return &ManufacturerRepository{db: db}
}

// Create creates a new manufacturer
func (r *ManufacturerRepository) Create(manufacturer *models.Manufacturer) error {
	return r.db.Create(manufacturer).Error
}

// GetByID retrieves a manufacturer by ID
func (r *ManufacturerRepository) GetByID(id uuid.UUID) (*models.Manufacturer, error) {
	var manufacturer models.Manufacturer
	err := r.db.First(&manufacturer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrManufacturerNotFound
		}
		return nil, err
	}
	return &manufacturer, nil
}

// GetByName retrieves a manufacturer by name
func (r *ManufacturerRepository) GetByName(name string) (*models.Manufacturer, error) {
	var manufacturer models.Manufacturer
	err := r.db.First(&manufacturer, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrManufacturerNotFound
		}
		return nil, err
	}
	return &manufacturer, nil
}

// GetAll retrieves all manufacturers
func (r *ManufacturerRepository) GetAll(limit, offset int) ([]models.Manufacturer, int64, error) {
	var manufacturers []models.Manufacturer
	var total int64

	if err := r.db.Model(&models.Manufacturer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&manufacturers).Error
	return manufacturers, total, err
}

// Update updates a manufacturer
func (r *ManufacturerRepository) Update(manufacturer *models.Manufacturer) error {
	return r.db.Save(manufacturer).Error
}

// Delete deletes a manufacturer
func (r *ManufacturerRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Manufacturer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrManufacturerNotFound
	}
	return nil
}
