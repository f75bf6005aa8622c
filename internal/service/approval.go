package service

import (
	"fmt"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"
	"instrument-tray-backend/internal/policy"
	"instrument-tray-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ApprovalService orchestrates decisions on change requests: it checks the
// decider's authority, applies approved changes to the tray store, and
// finalizes the ledger entry. A change request is decided at most once; a
// failed apply leaves it pending and surfaces the error to the decider.
type ApprovalService struct {
	changeRequestRepo repository.ChangeRequestRepositoryInterface
	trayRepo          repository.TrayRepositoryInterface
	policy            *policy.Policy
}

// NewApprovalService creates a new approval service
func NewApprovalService(
	changeRequestRepo repository.ChangeRequestRepositoryInterface,
	trayRepo repository.TrayRepositoryInterface,
	policy *policy.Policy,
) *ApprovalService {
	return &ApprovalService{
		changeRequestRepo: changeRequestRepo,
		trayRepo:          trayRepo,
		policy:            policy,
	}
}

// ApproveRequest carries the optional approval comment
type ApproveRequest struct {
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

// RejectRequest carries the mandatory rejection reason
type RejectRequest struct {
	Reason string `json:"rejection_reason" validate:"required,max=1000"`
}

// Approve approves a pending change request. The tray mutation and the
// status flip commit as one unit: the ledger performs a compare-and-swap
// on the pending status and runs the applier inside the same transaction,
// so concurrent deciders race safely and a failed mutation rolls the
// decision back.
func (s *ApprovalService) Approve(requestID uuid.UUID, decider policy.Principal, req *ApproveRequest) (*ChangeRequestResponse, error) {
	request, err := s.changeRequestRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != models.ChangeRequestStatusPending {
		return nil, apperrors.ErrChangeRequestAlreadyDecided
	}

	tray, err := s.trayRepo.GetByID(request.TrayID)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanDecide(decider, tray) {
		return nil, apperrors.ErrCannotDecide
	}

	var comment *string
	if req != nil {
		comment = req.Comment
	}

	err = s.changeRequestRepo.Decide(requestID, repository.Decision{
		Status:      models.ChangeRequestStatusApproved,
		DecidedByID: decider.ID,
		Comment:     comment,
	}, func(tx *gorm.DB) error {
		return s.apply(s.trayRepo.WithTx(tx), request)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"change_request_id": requestID,
		"tray_id":           request.TrayID,
		"type":              request.Type,
		"decided_by":        decider.ID,
	}).Info("Change request approved")

	decided, err := s.changeRequestRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	return toChangeRequestResponse(decided), nil
}

// Reject rejects a pending change request. A reason is mandatory; no tray
// mutation occurs.
func (s *ApprovalService) Reject(requestID uuid.UUID, decider policy.Principal, req *RejectRequest) (*ChangeRequestResponse, error) {
	if req == nil || req.Reason == "" {
		return nil, apperrors.ErrRejectionReasonEmpty
	}

	request, err := s.changeRequestRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != models.ChangeRequestStatusPending {
		return nil, apperrors.ErrChangeRequestAlreadyDecided
	}

	tray, err := s.trayRepo.GetByID(request.TrayID)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanDecide(decider, tray) {
		return nil, apperrors.ErrCannotDecide
	}

	err = s.changeRequestRepo.Decide(requestID, repository.Decision{
		Status:          models.ChangeRequestStatusRejected,
		DecidedByID:     decider.ID,
		RejectionReason: req.Reason,
	}, nil)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"change_request_id": requestID,
		"tray_id":           request.TrayID,
		"decided_by":        decider.ID,
	}).Info("Change request rejected")

	decided, err := s.changeRequestRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	return toChangeRequestResponse(decided), nil
}

// apply performs the tray mutation a change request describes against the
// given (transaction-bound) tray store.
//
// Note the version arithmetic: the underlying store operation bumps the
// tray version once, and the explicit IncrementVersion afterwards bumps it
// again. An applied change request therefore raises the version by two.
// Consumers rely on the counter moving this way, so the double increment
// is intentional.
func (s *ApprovalService) apply(store repository.TrayRepositoryInterface, request *models.ChangeRequest) error {
	payload, err := decodePayload(request.Type, request.NewData)
	if err != nil {
		return err
	}

	switch request.Type {
	case models.ChangeRequestTypeAddInstrument:
		p := payload.(*AddInstrumentPayload)
		quantity := p.Quantity
		if quantity == 0 {
			quantity = 1
		}
		item := &models.TrayItem{
			TrayID:       request.TrayID,
			InstrumentID: p.InstrumentID,
			Quantity:     quantity,
		}
		if p.Position != nil {
			item.Position = *p.Position
		}
		if p.Note != nil {
			item.Note = *p.Note
		}
		if err := store.AddItem(item); err != nil {
			return err
		}

	case models.ChangeRequestTypeRemoveInstrument:
		p := payload.(*RemoveInstrumentPayload)
		if err := store.RemoveItem(request.TrayID, p.InstrumentID); err != nil {
			return err
		}

	case models.ChangeRequestTypeModifyQuantity, models.ChangeRequestTypeModifyPosition:
		p := payload.(*ModifyItemPayload)
		updates := p.Updates()
		if len(updates) == 0 {
			return apperrors.NewValidationError("new_data", "no fields to update")
		}
		if err := store.UpdateItem(request.TrayID, p.InstrumentID, updates); err != nil {
			return err
		}

	case models.ChangeRequestTypeCreateTray:
		if err := store.SetStatus(request.TrayID, models.TrayStatusActive); err != nil {
			return err
		}

	case models.ChangeRequestTypeDeactivateTray:
		if err := store.SetStatus(request.TrayID, models.TrayStatusInactive); err != nil {
			return err
		}

	default:
		return apperrors.NewValidationError("type", fmt.Sprintf("unknown change request type %q", request.Type))
	}

	return store.IncrementVersion(request.TrayID)
}
