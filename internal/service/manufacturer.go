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

// ManufacturerService handles business logic for instrument manufacturers
type ManufacturerService struct {
	manufacturerRepo repository.ManufacturerRepositoryInterface
	validator        *validator.Validate
}

// NewManufacturerService creates a new manufacturer service
func NewManufacturerService(manufacturerRepo repository.ManufacturerRepositoryInterface, validator *validator.Validate) *ManufacturerService {
	return &ManufacturerService{
		manufacturerRepo: manufacturerRepo,
		validator:        validator,
	}
}

// CreateManufacturerRequest represents the request to create a manufacturer
type CreateManufacturerRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Contact string `json:"contact,omitempty" validate:"max=200"`
	Address string `json:"address,omitempty" validate:"max=500"`
	Website string `json:"website,omitempty" validate:"omitempty,url,max=200"`
}

// UpdateManufacturerRequest represents the request to update a manufacturer
type UpdateManufacturerRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Contact *string `json:"contact,omitempty" validate:"omitempty,max=200"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Website *string `json:"website,omitempty" validate:"omitempty,url,max=200"`
}

// ManufacturerResponse represents a manufacturer on the wire
type ManufacturerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Address   string    `json:"address,omitempty"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ManufacturerListResponse represents a paginated list of manufacturers
type ManufacturerListResponse struct {
	Manufacturers []ManufacturerResponse `json:"manufacturers"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create creates a new manufacturer; names are unique
func (s *ManufacturerService) Create(req *CreateManufacturerRequest) (*ManufacturerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.manufacturerRepo.GetByName(req.Name); err == nil && existing != nil {
		return nil, apperrors.ErrManufacturerExists
	}

	manufacturer := &models.Manufacturer{
		Name:    req.Name,
		Contact: req.Contact,
		Address: req.Address,
		Website: req.Website,
	}
	if err := s.manufacturerRepo.Create(manufacturer); err != nil {
		return nil, fmt.Errorf("failed to create manufacturer: %w", err)
	}
	return toManufacturerResponse(manufacturer), nil
}

// GetByID retrieves a manufacturer by its id
func (s *ManufacturerService) GetByID(id uuid.UUID) (*ManufacturerResponse, error) {
	manufacturer, err := s.manufacturerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toManufacturerResponse(manufacturer), nil
}

// GetAll retrieves all manufacturers with pagination
func (s *ManufacturerService) GetAll(page, pageSize int) (*ManufacturerListResponse, error) {
	manufacturers, total, err := s.manufacturerRepo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list manufacturers: %w", err)
	}

	responses := make([]ManufacturerResponse, 0, len(manufacturers))
	for i := range manufacturers {
		responses = append(responses, *toManufacturerResponse(&manufacturers[i]))
	}
	return &ManufacturerListResponse{
		Manufacturers: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Update updates a manufacturer's attributes
func (s *ManufacturerService) Update(id uuid.UUID, req *UpdateManufacturerRequest) (*ManufacturerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	manufacturer, err := s.manufacturerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		manufacturer.Name = *req.Name
	}
	if req.Contact != nil {
		manufacturer.Contact = *req.Contact
	}
	if req.Address != nil {
		manufacturer.Address = *req.Address
	}
	if req.Website != nil {
		manufacturer.Website = *req.Website
	}
	if err := s.manufacturerRepo.Update(manufacturer); err != nil {
		return nil, fmt.Errorf("failed to update manufacturer: %w", err)
	}
	return toManufacturerResponse(manufacturer), nil
}

// Delete removes a manufacturer
func (s *ManufacturerService) Delete(id uuid.UUID) error {
	if _, err := s.manufacturerRepo.GetByID(id); err != nil {
		return err
	}
	return s.manufacturerRepo.Delete(id)
}

func toManufacturerResponse(manufacturer *models.Manufacturer) *ManufacturerResponse {
	return &ManufacturerResponse{
		ID:        manufacturer.ID,
		Name:      manufacturer.Name,
		Contact:   manufacturer.Contact,
		Address:   manufacturer.Address,
		Website:   manufacturer.Website,
		CreatedAt: manufacturer.CreatedAt,
		UpdatedAt: manufacturer.UpdatedAt,
	}
}
