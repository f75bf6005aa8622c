package repository

import (
	"errors"
	"time"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChangeRequestRepository handles database operations for change requests
type ChangeRequestRepository struct {
	db *gorm.DB
}

// NewChangeRequestRepository creates a new change request repository
func NewChangeRequestRepository(db *gorm.DB) *ChangeRequestRepository {
	return &ChangeRequestRepository{db: db}
}

// Create persists a new pending change request
func (r *ChangeRequestRepository) Create(request *models.ChangeRequest) error {
	return r.db.Create(request).Error
}

// GetByID retrieves a change request with its tray and the involved users
func (r *ChangeRequestRepository) GetByID(id uuid.UUID) (*models.ChangeRequest, error) {
	var request models.ChangeRequest
	err := r.db.
		Preload("Tray.Department").
		Preload("RequestedBy").
		Preload("DecidedBy").
		First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChangeRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// ChangeRequestFilter narrows List results
type ChangeRequestFilter struct {
	Status *models.ChangeRequestStatus
	TrayID *uuid.UUID
}

// List retrieves change requests matching the filter, newest first
func (r *ChangeRequestRepository) List(filter ChangeRequestFilter) ([]models.ChangeRequest, error) {
	var requests []models.ChangeRequest

	query := r.db.Model(&models.ChangeRequest{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.TrayID != nil {
		query = query.Where("tray_id = ?", *filter.TrayID)
	}

	err := query.
		Preload("Tray.Department").
		Preload("RequestedBy").
		Preload("DecidedBy").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// PendingScope restricts ListPending to trays a decider is entitled to
// decide. This is a read-side convenience for inbox views, not a security
// boundary; authority is re-checked at decide time.
type PendingScope struct {
	Classification *models.TrayClassification
	DepartmentID   *uuid.UUID
}

// ListPending retrieves pending change requests, optionally scoped by tray
// classification and department
func (r *ChangeRequestRepository) ListPending(scope PendingScope) ([]models.ChangeRequest, error) {
	var requests []models.ChangeRequest

	query := r.db.Model(&models.ChangeRequest{}).
		Where("change_requests.status = ?", models.ChangeRequestStatusPending)

	if scope.Classification != nil || scope.DepartmentID != nil {
		query = query.Joins("JOIN trays ON trays.id = change_requests.tray_id")
		if scope.Classification != nil {
			query = query.Where("trays.classification = ?", *scope.Classification)
		}
		if scope.DepartmentID != nil {
			query = query.Where("trays.department_id = ?", *scope.DepartmentID)
		}
	}

	err := query.
		Preload("Tray.Department").
		Preload("RequestedBy").
		Order("change_requests.created_at DESC").
		Find(&requests).Error
	return requests, err
}

// Decision carries the write-once decision fields for a change request
type Decision struct {
	Status          models.ChangeRequestStatus
	DecidedByID     uuid.UUID
	Comment         *string
	RejectionReason string
}

// Decide finalizes a pending change request. The status flip is a
// compare-and-swap on status so that of two concurrent decisions exactly
// one succeeds; the loser gets a conflict. The apply callback runs inside
// the same transaction, so the record can never commit as approved unless
// the tray mutation succeeded. If apply fails, everything rolls back and
// the request stays pending.
func (r *ChangeRequestRepository) Decide(id uuid.UUID, decision Decision, apply func(tx *gorm.DB) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":        decision.Status,
			"decided_by_id": decision.DecidedByID,
			"decided_at":    time.Now(),
		}
		if decision.Comment != nil {
			updates["comment"] = *decision.Comment
		}
		if decision.RejectionReason != "" {
			updates["rejection_reason"] = decision.RejectionReason
		}

		res := tx.Model(&models.ChangeRequest{}).
			Where("id = ? AND status = ?", id, models.ChangeRequestStatusPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrChangeRequestAlreadyDecided
		}

		if apply != nil {
			return apply(tx)
		}
		return nil
	})
}
