package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents an error when an operation collides with
// existing state (duplicate item key, already-decided request)
type ConflictError struct {
	Entity  string
	Context string
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
// (authenticated but insufficient authority)
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrDepartmentNotFound    = &NotFoundError{Entity: "department"}
	ErrManufacturerNotFound  = &NotFoundError{Entity: "manufacturer"}
	ErrInstrumentNotFound    = &NotFoundError{Entity: "instrument"}
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrTrayNotFound          = &NotFoundError{Entity: "tray"}
	ErrTrayItemNotFound      = &NotFoundError{Entity: "tray item"}
	ErrChangeRequestNotFound = &NotFoundError{Entity: "change request"}
)

// Conflict Errors
var (
	ErrDepartmentExists            = &ConflictError{Entity: "department", Context: "with this code already exists"}
	ErrManufacturerExists          = &ConflictError{Entity: "manufacturer", Context: "with this name already exists"}
	ErrInstrumentExists            = &ConflictError{Entity: "instrument", Context: "with this article number already exists for the manufacturer"}
	ErrUserExists                  = &ConflictError{Entity: "user", Context: "with this username or email already exists"}
	ErrTrayItemExists              = &ConflictError{Entity: "tray item", Context: "for this instrument already exists in the tray"}
	ErrChangeRequestAlreadyDecided = &ConflictError{Entity: "change request", Context: "has already been decided"}
)

// Business Logic Errors
var (
	ErrInstrumentInUse      = errors.New("instrument is still used in trays and cannot be deleted")
	ErrTrayArchived         = errors.New("tray is archived and can no longer be modified")
	ErrRejectionReasonEmpty = &ValidationError{Field: "rejection_reason", Message: "a reason is required to reject a change request"}
	ErrDepartmentRequired   = &ValidationError{Field: "department_id", Message: "a department is required for department-specific trays"}
)

// Authentication / Authorization Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrUserInactive       = &AuthenticationError{Message: "user account is deactivated"}
	ErrTokenRevoked       = &AuthenticationError{Message: "token has been revoked"}
	ErrNotAuthorized      = &AuthorizationError{Message: "insufficient permissions for this action"}
	ErrCannotDecide       = &AuthorizationError{Message: "no authority to decide change requests for this tray"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError for a custom entity
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
