package service

import (
	"bytes"

	"instrument-tray-backend/internal/database/models"
	"instrument-tray-backend/internal/policy"
	"instrument-tray-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TrayServiceInterface defines the interface for tray operations
type TrayServiceInterface interface {
	Create(creator policy.Principal, req *CreateTrayRequest) (*TrayResponse, error)
	GetByID(id uuid.UUID) (*TrayResponse, error)
	GetAll(filter repository.TrayFilter, page, pageSize int) (*TrayListResponse, error)
	Update(id uuid.UUID, req *UpdateTrayRequest) (*TrayResponse, error)
	Archive(id uuid.UUID) error
	AddItem(trayID uuid.UUID, req *AddTrayItemRequest) (*TrayItemResponse, error)
	RemoveItem(trayID, instrumentID uuid.UUID) error
	UpdateItem(trayID, instrumentID uuid.UUID, req *UpdateTrayItemRequest) (*TrayItemResponse, error)
}

// ChangeRequestServiceInterface defines the interface for change request proposal and listing
type ChangeRequestServiceInterface interface {
	Propose(requester policy.Principal, req *ProposeChangeRequest) (*ChangeRequestResponse, error)
	Get(id uuid.UUID) (*ChangeRequestResponse, error)
	List(status *models.ChangeRequestStatus, trayID *uuid.UUID) ([]ChangeRequestResponse, error)
	ListPending(principal policy.Principal) ([]ChangeRequestResponse, error)
}

// ApprovalServiceInterface defines the interface for change request decisions
type ApprovalServiceInterface interface {
	Approve(requestID uuid.UUID, decider policy.Principal, req *ApproveRequest) (*ChangeRequestResponse, error)
	Reject(requestID uuid.UUID, decider policy.Principal, req *RejectRequest) (*ChangeRequestResponse, error)
}

// DepartmentServiceInterface defines the interface for department operations
type DepartmentServiceInterface interface {
	Create(req *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetByID(id uuid.UUID) (*DepartmentResponse, error)
	GetAll(page, pageSize int) (*DepartmentListResponse, error)
	Update(id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
	Delete(id uuid.UUID) error
}

// ManufacturerServiceInterface defines the interface for manufacturer operations
type ManufacturerServiceInterface interface {
	Create(req *CreateManufacturerRequest) (*ManufacturerResponse, error)
	GetByID(id uuid.UUID) (*ManufacturerResponse, error)
	GetAll(page, pageSize int) (*ManufacturerListResponse, error)
	Update(id uuid.UUID, req *UpdateManufacturerRequest) (*ManufacturerResponse, error)
	Delete(id uuid.UUID) error
}

// InstrumentServiceInterface defines the interface for instrument catalog operations
type InstrumentServiceInterface interface {
	Create(req *CreateInstrumentRequest) (*InstrumentResponse, error)
	GetByID(id uuid.UUID) (*InstrumentResponse, error)
	GetAll(manufacturerID *uuid.UUID, search string, page, pageSize int) (*InstrumentListResponse, error)
	Update(id uuid.UUID, req *UpdateInstrumentRequest) (*InstrumentResponse, error)
	Delete(id uuid.UUID) error
}

// UserServiceInterface defines the interface for user account operations
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	GetAll(page, pageSize int) (*UserListResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Deactivate(id uuid.UUID) error
}

// ExportServiceInterface defines the interface for tray export
type ExportServiceInterface interface {
	ExportTray(trayID uuid.UUID) (*bytes.Buffer, string, error)
}
