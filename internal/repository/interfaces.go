package repository

import (
	"instrument-tray-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TrayRepositoryInterface defines the interface for tray store operations
type TrayRepositoryInterface interface {
	Create(tray *models.Tray) error
	GetByID(id uuid.UUID) (*models.Tray, error)
	GetWithDetails(id uuid.UUID) (*models.Tray, error)
	GetAll(filter TrayFilter, limit, offset int) ([]models.Tray, int64, error)
	UpdateAttributes(id uuid.UUID, updates map[string]interface{}) error
	AddItem(item *models.TrayItem) error
	RemoveItem(trayID, instrumentID uuid.UUID) error
	UpdateItem(trayID, instrumentID uuid.UUID, updates map[string]interface{}) error
	GetItem(trayID, instrumentID uuid.UUID) (*models.TrayItem, error)
	SetStatus(id uuid.UUID, status models.TrayStatus) error
	Archive(id uuid.UUID) error
	IncrementVersion(id uuid.UUID) error
	CountItemsByInstrument(instrumentID uuid.UUID) (int64, error)
	WithTx(tx *gorm.DB) TrayRepositoryInterface
}

// ChangeRequestRepositoryInterface defines the interface for the change request ledger
type ChangeRequestRepositoryInterface interface {
	Create(request *models.ChangeRequest) error
	GetByID(id uuid.UUID) (*models.ChangeRequest, error)
	List(filter ChangeRequestFilter) ([]models.ChangeRequest, error)
	ListPending(scope PendingScope) ([]models.ChangeRequest, error)
	Decide(id uuid.UUID, decision Decision, apply func(tx *gorm.DB) error) error
}

// DepartmentRepositoryInterface defines the interface for department repository operations
type DepartmentRepositoryInterface interface {
	Create(department *models.Department) error
	GetByID(id uuid.UUID) (*models.Department, error)
	GetByCode(code string) (*models.Department, error)
	GetAll(limit, offset int) ([]models.Department, int64, error)
	Update(department *models.Department) error
	Delete(id uuid.UUID) error
}

// ManufacturerRepositoryInterface defines the interface for manufacturer repository operations
type ManufacturerRepositoryInterface interface {
	Create(manufacturer *models.Manufacturer) error
	GetByID(id uuid.UUID) (*models.Manufacturer, error)
	GetByName(name string) (*models.Manufacturer, error)
	GetAll(limit, offset int) ([]models.Manufacturer, int64, error)
	Update(manufacturer *models.Manufacturer) error
	Delete(id uuid.UUID) error
}

// InstrumentRepositoryInterface defines the interface for instrument repository operations
type InstrumentRepositoryInterface interface {
	Create(instrument *models.Instrument) error
	GetByID(id uuid.UUID) (*models.Instrument, error)
	GetByArticleNumber(manufacturerID uuid.UUID, articleNumber string) (*models.Instrument, error)
	GetAll(manufacturerID *uuid.UUID, search string, limit, offset int) ([]models.Instrument, int64, error)
	Update(instrument *models.Instrument) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByUsernameOrEmail(username, email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Deactivate(id uuid.UUID) error
	CreateLoginLog(log *models.LoginLog) error
}
