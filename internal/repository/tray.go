package repository

import (
	"errors"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrayRepository handles database operations for trays and their items.
// Every mutating operation bumps the tray version by exactly one inside the
// same transaction as the structural change; the version UPDATE also takes
// a row lock on the tray, which serializes concurrent item mutations.
type TrayRepository struct {
	db *gorm.DB
}

// NewTrayRepository creates a new tray repository
func NewTrayRepository(db *gorm.DB) *TrayRepository {
	return &TrayRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *TrayRepository) WithTx(tx *gorm.DB) TrayRepositoryInterface {
	return &TrayRepository{db: tx}
}

// Create creates a new tray together with its initial items
func (r *TrayRepository) Create(tray *models.Tray) error {
	return r.db.Create(tray).Error
}

// GetByID retrieves a tray by ID
func (r *TrayRepository) GetByID(id uuid.UUID) (*models.Tray, error) {
	var tray models.Tray
	err := r.db.First(&tray, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrayNotFound
		}
		return nil, err
	}
	return &tray, nil
}

// GetWithDetails retrieves a tray with department, creator, items and the
// most recent change requests
func (r *TrayRepository) GetWithDetails(id uuid.UUID) (*models.Tray, error) {
	var tray models.Tray
	err := r.db.
		Preload("Department").
		Preload("CreatedBy").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("tray_items.position ASC")
		}).
		Preload("Items.Instrument.Manufacturer").
		Preload("ChangeRequests", func(db *gorm.DB) *gorm.DB {
			return db.Order("change_requests.created_at DESC").Limit(10)
		}).
		Preload("ChangeRequests.RequestedBy").
		Preload("ChangeRequests.DecidedBy").
		First(&tray, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrayNotFound
		}
		return nil, err
	}
	return &tray, nil
}

// TrayFilter narrows GetAll results
type TrayFilter struct {
	Classification *models.TrayClassification
	Status         *models.TrayStatus
	DepartmentID   *uuid.UUID
	Search         string
}

// GetAll retrieves trays matching the filter
func (r *TrayRepository) GetAll(filter TrayFilter, limit, offset int) ([]models.Tray, int64, error) {
	var trays []models.Tray
	var total int64

	query := r.db.Model(&models.Tray{})
	if filter.Classification != nil {
		query = query.Where("classification = ?", *filter.Classification)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Department").
		Preload("Items.Instrument.Manufacturer").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&trays).Error
	return trays, total, err
}

// UpdateAttributes reassigns tray attributes and bumps the version in one
// statement. The updates map must not contain a version key.
func (r *TrayRepository) UpdateAttributes(id uuid.UUID, updates map[string]interface{}) error {
	updates["version"] = gorm.Expr("version + 1")
	res := r.db.Model(&models.Tray{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTrayNotFound
	}
	return nil
}

// AddItem adds an instrument to a tray and bumps the tray version.
// Fails with a conflict when the (tray, instrument) pair already exists.
func (r *TrayRepository) AddItem(item *models.TrayItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Locks the tray row and fails early when the tray is gone.
		if err := bumpVersion(tx, item.TrayID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.TrayItem{}).
			Where("tray_id = ? AND instrument_id = ?", item.TrayID, item.InstrumentID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrTrayItemExists
		}

		return tx.Create(item).Error
	})
}

// RemoveItem removes an instrument from a tray and bumps the tray version.
// Fails with not-found when the pair is absent.
func (r *TrayRepository) RemoveItem(trayID, instrumentID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := bumpVersion(tx, trayID); err != nil {
			return err
		}

		res := tx.Where("tray_id = ? AND instrument_id = ?", trayID, instrumentID).
			Delete(&models.TrayItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrTrayItemNotFound
		}
		return nil
	})
}

// UpdateItem applies partial field updates to a tray item and bumps the
// tray version. Fails with not-found when the pair is absent.
func (r *TrayRepository) UpdateItem(trayID, instrumentID uuid.UUID, updates map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := bumpVersion(tx, trayID); err != nil {
			return err
		}

		res := tx.Model(&models.TrayItem{}).
			Where("tray_id = ? AND instrument_id = ?", trayID, instrumentID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrTrayItemNotFound
		}
		return nil
	})
}

// GetItem retrieves one tray item by its composite key
func (r *TrayRepository) GetItem(trayID, instrumentID uuid.UUID) (*models.TrayItem, error) {
	var item models.TrayItem
	err := r.db.Preload("Instrument.Manufacturer").
		First(&item, "tray_id = ? AND instrument_id = ?", trayID, instrumentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrayItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// SetStatus flips the tray lifecycle status and bumps the version
func (r *TrayRepository) SetStatus(id uuid.UUID, status models.TrayStatus) error {
	res := r.db.Model(&models.Tray{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":  status,
		"version": gorm.Expr("version + 1"),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTrayNotFound
	}
	return nil
}

// Archive soft-deletes a tray by setting its status to archived. Items are
// kept and the version is not bumped; archiving is a pure status change.
func (r *TrayRepository) Archive(id uuid.UUID) error {
	res := r.db.Model(&models.Tray{}).Where("id = ?", id).
		Update("status", models.TrayStatusArchived)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTrayNotFound
	}
	return nil
}

// IncrementVersion bumps the tray version by one without any structural
// change. The change applier calls this once after dispatch, on top of the
// bump the underlying mutation already performed.
func (r *TrayRepository) IncrementVersion(id uuid.UUID) error {
	return bumpVersion(r.db, id)
}

// CountItemsByInstrument counts how many trays still reference an instrument
func (r *TrayRepository) CountItemsByInstrument(instrumentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TrayItem{}).Where("instrument_id = ?", instrumentID).Count(&count).Error
	return count, err
}

func bumpVersion(tx *gorm.DB, trayID uuid.UUID) error {
	res := tx.Model(&models.Tray{}).Where("id = ?", trayID).
		UpdateColumn("version", gorm.Expr("version + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTrayNotFound
	}
	return nil
}
