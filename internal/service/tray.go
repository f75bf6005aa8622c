package service

import (
	"fmt"
	"time"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"
	"instrument-tray-backend/internal/policy"
	"instrument-tray-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TrayService handles the direct-edit path for trays: creation, attribute
// updates, archiving and item management outside the change-request
// workflow. Permission for these operations is enforced at the route level
// via the policy's direct-edit role set.
type TrayService struct {
	trayRepo       repository.TrayRepositoryInterface
	departmentRepo repository.DepartmentRepositoryInterface
	instrumentRepo repository.InstrumentRepositoryInterface
	validator      *validator.Validate
}

// NewTrayService creates a new tray service
func NewTrayService(
	trayRepo repository.TrayRepositoryInterface,
	departmentRepo repository.DepartmentRepositoryInterface,
	instrumentRepo repository.InstrumentRepositoryInterface,
	validator *validator.Validate,
) *TrayService {
	return &TrayService{
		trayRepo:       trayRepo,
		departmentRepo: departmentRepo,
		instrumentRepo: instrumentRepo,
		validator:      validator,
	}
}

// CreateTrayItemRequest is one initial item in a tray creation request
type CreateTrayItemRequest struct {
	InstrumentID uuid.UUID `json:"instrument_id" validate:"required"`
	Quantity     int       `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Position     string    `json:"position,omitempty" validate:"max=20"`
	Note         string    `json:"note,omitempty" validate:"max=500"`
}

// CreateTrayRequest represents the request to create a tray
type CreateTrayRequest struct {
	Name           string                    `json:"name" validate:"required,max=200"`
	Description    string                    `json:"description,omitempty" validate:"max=1000"`
	Classification models.TrayClassification `json:"classification" validate:"required"`
	DepartmentID   *uuid.UUID                `json:"department_id,omitempty"`
	Items          []CreateTrayItemRequest   `json:"items,omitempty" validate:"dive"`
}

// UpdateTrayRequest represents the request to update tray attributes
type UpdateTrayRequest struct {
	Name           *string                    `json:"name,omitempty" validate:"omitempty,max=200"`
	Description    *string                    `json:"description,omitempty" validate:"omitempty,max=1000"`
	Classification *models.TrayClassification `json:"classification,omitempty"`
	Status         *models.TrayStatus         `json:"status,omitempty"`
	DepartmentID   *uuid.UUID                 `json:"department_id,omitempty"`
}

// AddTrayItemRequest represents the request to add an instrument to a tray
type AddTrayItemRequest struct {
	InstrumentID uuid.UUID `json:"instrument_id" validate:"required"`
	Quantity     int       `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Position     string    `json:"position,omitempty" validate:"max=20"`
	Note         string    `json:"note,omitempty" validate:"max=500"`
}

// UpdateTrayItemRequest represents partial updates to a tray item
type UpdateTrayItemRequest struct {
	Quantity *int    `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Position *string `json:"position,omitempty" validate:"omitempty,max=20"`
	Note     *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// TrayItemResponse represents a tray item on the wire
type TrayItemResponse struct {
	TrayID         uuid.UUID `json:"tray_id"`
	InstrumentID   uuid.UUID `json:"instrument_id"`
	Quantity       int       `json:"quantity"`
	Position       string    `json:"position,omitempty"`
	Note           string    `json:"note,omitempty"`
	Designation    string    `json:"designation,omitempty"`
	ArticleNumber  string    `json:"article_number,omitempty"`
	Manufacturer   string    `json:"manufacturer,omitempty"`
}

// TrayResponse represents a tray on the wire
type TrayResponse struct {
	ID              uuid.UUID                 `json:"id"`
	Name            string                    `json:"name"`
	Description     string                    `json:"description,omitempty"`
	Classification  models.TrayClassification `json:"classification"`
	Status          models.TrayStatus         `json:"status"`
	Version         int                       `json:"version"`
	DepartmentID    *uuid.UUID                `json:"department_id,omitempty"`
	DepartmentName  string                    `json:"department_name,omitempty"`
	PackedImagePath string                    `json:"packed_image_path,omitempty"`
	CreatedByID     uuid.UUID                 `json:"created_by_id"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
	Items           []TrayItemResponse        `json:"items,omitempty"`
	ChangeRequests  []ChangeRequestResponse   `json:"change_requests,omitempty"`
}

// TrayListResponse represents a paginated list of trays
type TrayListResponse struct {
	Trays    []TrayResponse `json:"trays"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new tray in draft status. For cross-department trays a
// caller-supplied department is discarded; for department-specific trays
// the department is mandatory and must exist.
func (s *TrayService) Create(creator policy.Principal, req *CreateTrayRequest) (*TrayResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Classification.IsValid() {
		return nil, apperrors.NewValidationError("classification", fmt.Sprintf("unknown classification %q", req.Classification))
	}

	departmentID, err := s.resolveDepartment(req.Classification, req.DepartmentID)
	if err != nil {
		return nil, err
	}

	tray := &models.Tray{
		Name:           req.Name,
		Description:    req.Description,
		Classification: req.Classification,
		Status:         models.TrayStatusDraft,
		Version:        1,
		DepartmentID:   departmentID,
		CreatedByID:    creator.ID,
	}
	for _, item := range req.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		tray.Items = append(tray.Items, models.TrayItem{
			InstrumentID: item.InstrumentID,
			Quantity:     quantity,
			Position:     item.Position,
			Note:         item.Note,
		})
	}

	if err := s.trayRepo.Create(tray); err != nil {
		return nil, fmt.Errorf("failed to create tray: %w", err)
	}

	created, err := s.trayRepo.GetWithDetails(tray.ID)
	if err != nil {
		return nil, err
	}
	return toTrayResponse(created), nil
}

// GetByID retrieves a tray with items and recent change requests
func (s *TrayService) GetByID(id uuid.UUID) (*TrayResponse, error) {
	tray, err := s.trayRepo.GetWithDetails(id)
	if err != nil {
		return nil, err
	}
	return toTrayResponse(tray), nil
}

// GetAll retrieves trays matching the filter
func (s *TrayService) GetAll(filter repository.TrayFilter, page, pageSize int) (*TrayListResponse, error) {
	trays, total, err := s.trayRepo.GetAll(filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list trays: %w", err)
	}

	responses := make([]TrayResponse, 0, len(trays))
	for i := range trays {
		responses = append(responses, *toTrayResponse(&trays[i]))
	}
	return &TrayListResponse{
		Trays:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update reassigns tray attributes on the direct-edit path, bypassing the
// change-request workflow. The classification/department invariant is
// re-established on every update.
func (s *TrayService) Update(id uuid.UUID, req *UpdateTrayRequest) (*TrayResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tray, err := s.trayRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", *req.Status))
		}
		updates["status"] = *req.Status
	}

	classification := tray.Classification
	if req.Classification != nil {
		if !req.Classification.IsValid() {
			return nil, apperrors.NewValidationError("classification", fmt.Sprintf("unknown classification %q", *req.Classification))
		}
		classification = *req.Classification
		updates["classification"] = classification
	}

	if req.Classification != nil || req.DepartmentID != nil {
		requested := tray.DepartmentID
		if req.DepartmentID != nil {
			requested = req.DepartmentID
		}
		departmentID, err := s.resolveDepartment(classification, requested)
		if err != nil {
			return nil, err
		}
		updates["department_id"] = departmentID
	}

	if err := s.trayRepo.UpdateAttributes(id, updates); err != nil {
		return nil, err
	}

	updated, err := s.trayRepo.GetWithDetails(id)
	if err != nil {
		return nil, err
	}
	return toTrayResponse(updated), nil
}

// Archive soft-deletes a tray; items and history are retained
func (s *TrayService) Archive(id uuid.UUID) error {
	return s.trayRepo.Archive(id)
}

// AddItem adds an instrument to a tray on the direct-edit path
func (s *TrayService) AddItem(trayID uuid.UUID, req *AddTrayItemRequest) (*TrayItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.instrumentRepo.GetByID(req.InstrumentID); err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	item := &models.TrayItem{
		TrayID:       trayID,
		InstrumentID: req.InstrumentID,
		Quantity:     quantity,
		Position:     req.Position,
		Note:         req.Note,
	}
	if err := s.trayRepo.AddItem(item); err != nil {
		return nil, err
	}

	created, err := s.trayRepo.GetItem(trayID, req.InstrumentID)
	if err != nil {
		return nil, err
	}
	return toTrayItemResponse(created), nil
}

// RemoveItem removes an instrument from a tray on the direct-edit path
func (s *TrayService) RemoveItem(trayID, instrumentID uuid.UUID) error {
	return s.trayRepo.RemoveItem(trayID, instrumentID)
}

// UpdateItem applies partial updates to a tray item on the direct-edit path
func (s *TrayService) UpdateItem(trayID, instrumentID uuid.UUID, req *UpdateTrayItemRequest) (*TrayItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Note != nil {
		updates["note"] = *req.Note
	}
	if len(updates) == 0 {
		return nil, apperrors.NewValidationError("", "no fields to update")
	}

	if err := s.trayRepo.UpdateItem(trayID, instrumentID, updates); err != nil {
		return nil, err
	}

	updated, err := s.trayRepo.GetItem(trayID, instrumentID)
	if err != nil {
		return nil, err
	}
	return toTrayItemResponse(updated), nil
}

// resolveDepartment enforces the classification/department invariant:
// department-specific trays require an existing department, cross-department
// trays never carry one regardless of what the caller sent.
func (s *TrayService) resolveDepartment(classification models.TrayClassification, departmentID *uuid.UUID) (*uuid.UUID, error) {
	if classification != models.TrayClassificationDepartmentSpecific {
		return nil, nil
	}
	if departmentID == nil {
		return nil, apperrors.ErrDepartmentRequired
	}
	if _, err := s.departmentRepo.GetByID(*departmentID); err != nil {
		return nil, err
	}
	return departmentID, nil
}

func toTrayResponse(tray *models.Tray) *TrayResponse {
	resp := &TrayResponse{
		ID:              tray.ID,
		Name:            tray.Name,
		Description:     tray.Description,
		Classification:  tray.Classification,
		Status:          tray.Status,
		Version:         tray.Version,
		DepartmentID:    tray.DepartmentID,
		PackedImagePath: tray.PackedImagePath,
		CreatedByID:     tray.CreatedByID,
		CreatedAt:       tray.CreatedAt,
		UpdatedAt:       tray.UpdatedAt,
	}
	if tray.Department != nil {
		resp.DepartmentName = tray.Department.Name
	}
	for i := range tray.Items {
		resp.Items = append(resp.Items, *toTrayItemResponse(&tray.Items[i]))
	}
	if len(tray.ChangeRequests) > 0 {
		resp.ChangeRequests = toChangeRequestResponses(tray.ChangeRequests)
	}
	return resp
}

func toTrayItemResponse(item *models.TrayItem) *TrayItemResponse {
	resp := &TrayItemResponse{
		TrayID:       item.TrayID,
		InstrumentID: item.InstrumentID,
		Quantity:     item.Quantity,
		Position:     item.Position,
		Note:         item.Note,
	}
	if item.Instrument != nil {
		resp.Designation = item.Instrument.Designation
		resp.ArticleNumber = item.Instrument.ArticleNumber
		if item.Instrument.Manufacturer != nil {
			resp.Manufacturer = item.Instrument.Manufacturer.Name
		}
	}
	return resp
}
