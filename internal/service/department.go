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

// DepartmentService handles business logic for departments
type DepartmentService struct {
	departmentRepo repository.DepartmentRepositoryInterface
	validator      *validator.Validate
}

// NewDepartmentService creates a new department service
func NewDepartmentService(departmentRepo repository.DepartmentRepositoryInterface, validator *validator.Validate) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		validator:      validator,
	}
}

// CreateDepartmentRequest represents the request to create a department
type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Code        string `json:"code" validate:"required,max=10"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

// UpdateDepartmentRequest represents the request to update a department
type UpdateDepartmentRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// DepartmentResponse represents a department on the wire
type DepartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DepartmentListResponse represents a paginated list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new department; codes are unique
func (s *DepartmentService) Create(req *CreateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.departmentRepo.GetByCode(req.Code); err == nil && existing != nil {
		return nil, apperrors.ErrDepartmentExists
	}

	department := &models.Department{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	}
	if err := s.departmentRepo.Create(department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return toDepartmentResponse(department), nil
}

// GetByID retrieves a department by its id
func (s *DepartmentService) GetByID(id uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toDepartmentResponse(department), nil
}

// GetAll retrieves all departments with pagination
func (s *DepartmentService) GetAll(page, pageSize int) (*DepartmentListResponse, error) {
	departments, total, err := s.departmentRepo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]DepartmentResponse, 0, len(departments))
	for i := range departments {
		responses = append(responses, *toDepartmentResponse(&departments[i]))
	}
	return &DepartmentListResponse{
		Departments: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update updates a department's name and description
func (s *DepartmentService) Update(id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	department, err := s.departmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		department.Name = *req.Name
	}
	if req.Description != nil {
		department.Description = *req.Description
	}
	if err := s.departmentRepo.Update(department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	return toDepartmentResponse(department), nil
}

// Delete removes a department
func (s *DepartmentService) Delete(id uuid.UUID) error {
	if _, err := s.departmentRepo.GetByID(id); err != nil {
		return err
	}
	return s.departmentRepo.Delete(id)
}

func toDepartmentResponse(department *models.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Code:        department.Code,
		Description: department.Description,
		CreatedAt:   department.CreatedAt,
		UpdatedAt:   department.UpdatedAt,
	}
}
