package service

import (
	"encoding/json"
	"fmt"
	"time"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"
	"instrument-tray-backend/internal/policy"
	"instrument-tray-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ChangeRequestService handles the change request ledger: proposing new
// requests and listing existing ones. Deciding requests is the
// ApprovalService's job.
type ChangeRequestService struct {
	changeRequestRepo repository.ChangeRequestRepositoryInterface
	trayRepo          repository.TrayRepositoryInterface
	validator         *validator.Validate
}

// NewChangeRequestService creates a new change request service
func NewChangeRequestService(
	changeRequestRepo repository.ChangeRequestRepositoryInterface,
	trayRepo repository.TrayRepositoryInterface,
	validator *validator.Validate,
) *ChangeRequestService {
	return &ChangeRequestService{
		changeRequestRepo: changeRequestRepo,
		trayRepo:          trayRepo,
		validator:         validator,
	}
}

// ProposeChangeRequest represents the request to propose a tray change
type ProposeChangeRequest struct {
	TrayID  uuid.UUID                `json:"tray_id" validate:"required"`
	Type    models.ChangeRequestType `json:"type" validate:"required"`
	OldData json.RawMessage          `json:"old_data,omitempty"`
	NewData json.RawMessage          `json:"new_data,omitempty"`
	Comment string                   `json:"comment,omitempty" validate:"max=1000"`
}

// UserSummary is the compact user representation embedded in responses
type UserSummary struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Role      models.Role `json:"role"`
}

// TraySummary is the compact tray representation embedded in responses
type TraySummary struct {
	ID             uuid.UUID                 `json:"id"`
	Name           string                    `json:"name"`
	Classification models.TrayClassification `json:"classification"`
	Status         models.TrayStatus         `json:"status"`
	Version        int                       `json:"version"`
	DepartmentID   *uuid.UUID                `json:"department_id,omitempty"`
	DepartmentName string                    `json:"department_name,omitempty"`
}

// ChangeRequestResponse represents a change request on the wire
type ChangeRequestResponse struct {
	ID              uuid.UUID                  `json:"id"`
	TrayID          uuid.UUID                  `json:"tray_id"`
	Type            models.ChangeRequestType   `json:"type"`
	OldData         json.RawMessage            `json:"old_data,omitempty"`
	NewData         json.RawMessage            `json:"new_data,omitempty"`
	Comment         string                     `json:"comment,omitempty"`
	Status          models.ChangeRequestStatus `json:"status"`
	RequestedByID   uuid.UUID                  `json:"requested_by_id"`
	RequestedAt     time.Time                  `json:"requested_at"`
	DecidedByID     *uuid.UUID                 `json:"decided_by_id,omitempty"`
	DecidedAt       *time.Time                 `json:"decided_at,omitempty"`
	RejectionReason string                     `json:"rejection_reason,omitempty"`
	Tray            *TraySummary               `json:"tray,omitempty"`
	RequestedBy     *UserSummary               `json:"requested_by,omitempty"`
	DecidedBy       *UserSummary               `json:"decided_by,omitempty"`
}

// Propose files a new pending change request for a tray. Any authenticated
// principal may propose; the payload is validated against the request type
// so that invalid proposals fail here, not at apply time.
func (s *ChangeRequestService) Propose(requester policy.Principal, req *ProposeChangeRequest) (*ChangeRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", fmt.Sprintf("unknown change request type %q", req.Type))
	}

	payload, err := decodePayload(req.Type, req.NewData)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		if err := s.validator.Struct(payload); err != nil {
			return nil, apperrors.NewValidationError("new_data", err.Error())
		}
	}

	// Fails with not-found when the tray does not exist
	if _, err := s.trayRepo.GetByID(req.TrayID); err != nil {
		return nil, err
	}

	request := &models.ChangeRequest{
		TrayID:        req.TrayID,
		Type:          req.Type,
		OldData:       req.OldData,
		NewData:       req.NewData,
		Comment:       req.Comment,
		Status:        models.ChangeRequestStatusPending,
		RequestedByID: requester.ID,
	}

	if err := s.changeRequestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create change request: %w", err)
	}

	created, err := s.changeRequestRepo.GetByID(request.ID)
	if err != nil {
		return nil, err
	}
	return toChangeRequestResponse(created), nil
}

// Get retrieves one change request with its tray and user references
func (s *ChangeRequestService) Get(id uuid.UUID) (*ChangeRequestResponse, error) {
	request, err := s.changeRequestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toChangeRequestResponse(request), nil
}

// List retrieves change requests, optionally filtered by status and tray
func (s *ChangeRequestService) List(status *models.ChangeRequestStatus, trayID *uuid.UUID) ([]ChangeRequestResponse, error) {
	requests, err := s.changeRequestRepo.List(repository.ChangeRequestFilter{
		Status: status,
		TrayID: trayID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list change requests: %w", err)
	}
	return toChangeRequestResponses(requests), nil
}

// ListPending retrieves the pending requests the principal would see in
// their decision inbox. A head physician only sees department-specific
// requests of their own department; everyone else sees all pending
// requests. The scoping is a display convenience, authority is re-checked
// when a decision is made.
func (s *ChangeRequestService) ListPending(principal policy.Principal) ([]ChangeRequestResponse, error) {
	scope := repository.PendingScope{}
	if principal.Role == models.RoleHeadPhysician {
		classification := models.TrayClassificationDepartmentSpecific
		scope.Classification = &classification
		scope.DepartmentID = principal.DepartmentID
	}

	requests, err := s.changeRequestRepo.ListPending(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending change requests: %w", err)
	}
	return toChangeRequestResponses(requests), nil
}

func toChangeRequestResponse(request *models.ChangeRequest) *ChangeRequestResponse {
	resp := &ChangeRequestResponse{
		ID:              request.ID,
		TrayID:          request.TrayID,
		Type:            request.Type,
		OldData:         request.OldData,
		NewData:         request.NewData,
		Comment:         request.Comment,
		Status:          request.Status,
		RequestedByID:   request.RequestedByID,
		RequestedAt:     request.CreatedAt,
		DecidedByID:     request.DecidedByID,
		DecidedAt:       request.DecidedAt,
		RejectionReason: request.RejectionReason,
	}
	if request.Tray != nil {
		resp.Tray = toTraySummary(request.Tray)
	}
	if request.RequestedBy != nil {
		resp.RequestedBy = toUserSummary(request.RequestedBy)
	}
	if request.DecidedBy != nil {
		resp.DecidedBy = toUserSummary(request.DecidedBy)
	}
	return resp
}

func toChangeRequestResponses(requests []models.ChangeRequest) []ChangeRequestResponse {
	responses := make([]ChangeRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *toChangeRequestResponse(&requests[i]))
	}
	return responses
}

func toTraySummary(tray *models.Tray) *TraySummary {
	summary := &TraySummary{
		ID:             tray.ID,
		Name:           tray.Name,
		Classification: tray.Classification,
		Status:         tray.Status,
		Version:        tray.Version,
		DepartmentID:   tray.DepartmentID,
	}
	if tray.Department != nil {
		summary.DepartmentName = tray.Department.Name
	}
	return summary
}

func toUserSummary(user *models.User) *UserSummary {
	return &UserSummary{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}
}
