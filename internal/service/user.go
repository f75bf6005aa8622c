package service

import (
	"fmt"
	"time"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"
	"instrument-tray-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic for user accounts
type UserService struct {
	userRepo       repository.UserRepositoryInterface
	departmentRepo repository.DepartmentRepositoryInterface
	validator      *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repository.UserRepositoryInterface,
	departmentRepo repository.DepartmentRepositoryInterface,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		validator:      validator,
	}
}

// CreateUserRequest represents the request to create a user account
type CreateUserRequest struct {
	Username     string      `json:"username" validate:"required,min=3,max=50"`
	Email        string      `json:"email" validate:"required,email,max=255"`
	Password     string      `json:"password" validate:"required,min=8,max=72"`
	FirstName    string      `json:"first_name" validate:"required,max=100"`
	LastName     string      `json:"last_name" validate:"required,max=100"`
	Role         models.Role `json:"role" validate:"required"`
	DepartmentID *uuid.UUID  `json:"department_id,omitempty"`
}

// UpdateUserRequest represents the request to update a user account
type UpdateUserRequest struct {
	Email        *string      `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password     *string      `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	FirstName    *string      `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName     *string      `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Role         *models.Role `json:"role,omitempty"`
	DepartmentID *uuid.UUID   `json:"department_id,omitempty"`
}

// UserResponse represents a user account on the wire
type UserResponse struct {
	ID             uuid.UUID   `json:"id"`
	Username       string      `json:"username"`
	Email          string      `json:"email"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	Role           models.Role `json:"role"`
	Active         bool        `json:"active"`
	DepartmentID   *uuid.UUID  `json:"department_id,omitempty"`
	DepartmentName string      `json:"department_name,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new user account with a bcrypt-hashed password
func (s *UserService) Create(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", req.Role))
	}

	if existing, err := s.userRepo.GetByUsernameOrEmail(req.Username, req.Email); err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(*req.DepartmentID); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		Active:       true,
		DepartmentID: req.DepartmentID,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toUserResponse(user), nil
}

// GetByID retrieves a user by id
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetAll retrieves all users with pagination
func (s *UserService) GetAll(page, pageSize int) (*UserListResponse, error) {
	users, total, err := s.userRepo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toUserResponse(&users[i]))
	}
	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a user account; a new password is re-hashed
func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", *req.Role))
		}
		user.Role = *req.Role
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(*req.DepartmentID); err != nil {
			return nil, err
		}
		user.DepartmentID = req.DepartmentID
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toUserResponse(user), nil
}

// Deactivate disables a user account. Accounts are never hard-deleted so
// that change request history keeps its author references.
func (s *UserService) Deactivate(id uuid.UUID) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		return err
	}
	return s.userRepo.Deactivate(id)
}

func toUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         user.Role,
		Active:       user.Active,
		DepartmentID: user.DepartmentID,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if user.Department != nil {
		resp.DepartmentName = user.Department.Name
	}
	return resp
}
