package repository

import (
	"errors"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InstrumentRepository handles database operations for instruments
type InstrumentRepository struct {
	db *gorm.DB
}

// NewInstrumentRepository creates a new instrument repository
func NewInstrumentRepository(db *gorm.DB) *InstrumentRepository {
	return &InstrumentRepository{db: db}
}

// Create creates a new instrument
func (r *InstrumentRepository) Create(instrument *models.Instrument) error {
	return r.db.Create(instrument).Error
}

// GetByID retrieves an instrument by ID
func (r *InstrumentRepository) GetByID(id uuid.UUID) (*models.Instrument, error) {
	var instrument models.Instrument
	err := r.db.Preload("Manufacturer").First(&instrument, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInstrumentNotFound
		}
		return nil, err
	}
	return &instrument, nil
}

// GetByArticleNumber retrieves an instrument by manufacturer and article number
func (r *InstrumentRepository) GetByArticleNumber(manufacturerID uuid.UUID, articleNumber string) (*models.Instrument, error) {
	var instrument models.Instrument
	err := r.db.First(&instrument, "manufacturer_id = ? AND article_number = ?", manufacturerID, articleNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInstrumentNotFound
		}
		return nil, err
	}
	return &instrument, nil
}

// GetAll retrieves instruments, optionally filtered by manufacturer or a
// search term over article number and designation
func (r *InstrumentRepository) GetAll(manufacturerID *uuid.UUID, search string, limit, offset int) ([]models.Instrument, int64, error) {
	var instruments []models.Instrument
	var total int64

	query := r.db.Model(&models.Instrument{})
	if manufacturerID != nil {
		query = query.Where("manufacturer_id = ?", *manufacturerID)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("article_number ILIKE ? OR designation ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Manufacturer").Order("designation ASC").Limit(limit).Offset(offset).Find(&instruments).Error
	return instruments, total, err
}

// Update updates an instrument
func (r *InstrumentRepository) Update(instrument *models.Instrument) error {
	return r.db.Save(instrument).Error
}

// Delete deletes an instrument
func (r *InstrumentRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Instrument{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrInstrumentNotFound
	}
	return nil
}
