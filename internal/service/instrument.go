package service

import (
	"fmt"
	"time"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"
	"instrument-tray-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InstrumentService handles business logic for the instrument catalog
type InstrumentService struct {
	instrumentRepo   repository.InstrumentRepositoryInterface
	manufacturerRepo repository.ManufacturerRepositoryInterface
	trayRepo         repository.TrayRepositoryInterface
	validator        *validator.Validate
}

// NewInstrumentService creates a new instrument service
func NewInstrumentService(
	instrumentRepo repository.InstrumentRepositoryInterface,
	manufacturerRepo repository.ManufacturerRepositoryInterface,
	trayRepo repository.TrayRepositoryInterface,
	validator *validator.Validate,
) *InstrumentService {
	return &InstrumentService{
		instrumentRepo:   instrumentRepo,
		manufacturerRepo: manufacturerRepo,
		trayRepo:         trayRepo,
		validator:        validator,
	}
}

// CreateInstrumentRequest represents the request to create an instrument
type CreateInstrumentRequest struct {
	ArticleNumber  string    `json:"article_number" validate:"required,max=50"`
	Designation    string    `json:"designation" validate:"required,max=200"`
	Description    string    `json:"description,omitempty" validate:"max=1000"`
	ManufacturerID uuid.UUID `json:"manufacturer_id" validate:"required"`
	ImagePath      string    `json:"image_path,omitempty" validate:"max=500"`
}

// UpdateInstrumentRequest represents the request to update an instrument
type UpdateInstrumentRequest struct {
	Designation *string `json:"designation,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	ImagePath   *string `json:"image_path,omitempty" validate:"omitempty,max=500"`
}

// InstrumentResponse represents an instrument on the wire
type InstrumentResponse struct {
	ID               uuid.UUID `json:"id"`
	ArticleNumber    string    `json:"article_number"`
	Designation      string    `json:"designation"`
	Description      string    `json:"description,omitempty"`
	ManufacturerID   uuid.UUID `json:"manufacturer_id"`
	ManufacturerName string    `json:"manufacturer_name,omitempty"`
	ImagePath        string    `json:"image_path,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// InstrumentListResponse represents a paginated list of instruments
type InstrumentListResponse struct {
	Instruments []InstrumentResponse `json:"instruments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new catalog instrument. Article numbers are unique per
// manufacturer, not globally.
func (s *InstrumentService) Create(req *CreateInstrumentRequest) (*InstrumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.manufacturerRepo.GetByID(req.ManufacturerID); err != nil {
		return nil, err
	}
	if existing, err := s.instrumentRepo.GetByArticleNumber(req.ManufacturerID, req.ArticleNumber); err == nil && existing != nil {
		return nil, apperrors.ErrInstrumentExists
	}

	instrument := &models.Instrument{
		ArticleNumber:  req.ArticleNumber,
		Designation:    req.Designation,
		Description:    req.Description,
		ManufacturerID: req.ManufacturerID,
		ImagePath:      req.ImagePath,
	}
	if err := s.instrumentRepo.Create(instrument); err != nil {
		return nil, fmt.Errorf("failed to create instrument: %w", err)
	}

	created, err := s.instrumentRepo.GetByID(instrument.ID)
	if err != nil {
		return nil, err
	}
	return toInstrumentResponse(created), nil
}

// GetByID retrieves an instrument by its id
func (s *InstrumentService) GetByID(id uuid.UUID) (*InstrumentResponse, error) {
	instrument, err := s.instrumentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toInstrumentResponse(instrument), nil
}

// GetAll retrieves instruments, optionally filtered by manufacturer and a
// search term matched against designation and article number
func (s *InstrumentService) GetAll(manufacturerID *uuid.UUID, search string, page, pageSize int) (*InstrumentListResponse, error) {
	instruments, total, err := s.instrumentRepo.GetAll(manufacturerID, search, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}

	responses := make([]InstrumentResponse, 0, len(instruments))
	for i := range instruments {
		responses = append(responses, *toInstrumentResponse(&instruments[i]))
	}
	return &InstrumentListResponse{
		Instruments: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update updates an instrument's descriptive attributes. Article number and
// manufacturer are immutable once created.
func (s *InstrumentService) Update(id uuid.UUID, req *UpdateInstrumentRequest) (*InstrumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	instrument, err := s.instrumentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Designation != nil {
		instrument.Designation = *req.Designation
	}
	if req.Description != nil {
		instrument.Description = *req.Description
	}
	if req.ImagePath != nil {
		instrument.ImagePath = *req.ImagePath
	}
	if err := s.instrumentRepo.Update(instrument); err != nil {
		return nil, fmt.Errorf("failed to update instrument: %w", err)
	}
	return toInstrumentResponse(instrument), nil
}

// Delete removes an instrument from the catalog. Instruments referenced by
// any tray item cannot be deleted.
func (s *InstrumentService) Delete(id uuid.UUID) error {
	if _, err := s.instrumentRepo.GetByID(id); err != nil {
		return err
	}

	count, err := s.trayRepo.CountItemsByInstrument(id)
	if err != nil {
		return fmt.Errorf("failed to check instrument usage: %w", err)
	}
	if count > 0 {
		return apperrors.ErrInstrumentInUse
	}
	return s.instrumentRepo.Delete(id)
}

func toInstrumentResponse(instrument *models.Instrument) *InstrumentResponse {
	resp := &InstrumentResponse{
		ID:             instrument.ID,
		ArticleNumber:  instrument.ArticleNumber,
		Designation:    instrument.Designation,
		Description:    instrument.Description,
		ManufacturerID: instrument.ManufacturerID,
		ImagePath:      instrument.ImagePath,
		CreatedAt:      instrument.CreatedAt,
		UpdatedAt:      instrument.UpdatedAt,
	}
	if instrument.Manufacturer != nil {
		resp.ManufacturerName = instrument.Manufacturer.Name
	}
	return resp
}
