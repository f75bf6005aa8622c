package testutils

import (
	"encoding/json"
	"time"

	"instrument-tray-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with default values
func (f *DepartmentFactory) Create() *models.Department {
	id := uuid.New()
	return &models.Department{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "General Surgery",
		Code:        "S" + id.String()[:6],
		Description: "A test department",
	}
}

// WithCode sets a custom code for the department
func (f *DepartmentFactory) WithCode(code string) *models.Department {
	dept := f.Create()
	dept.Code = code
	return dept
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values.
// The password for all factory users is "password123".
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "user" + id.String()[:8],
		Email:        "user" + id.String()[:8] + "@hospital.test",
		PasswordHash: string(hash),
		FirstName:    "Maria",
		LastName:     "Weber",
		Role:         models.RoleOpNurse,
		Active:       true,
	}
}

// WithRole creates a user with the given role
func (f *UserFactory) WithRole(role models.Role) *models.User {
	u := f.Create()
	u.Role = role
	return u
}

// WithDepartment creates a user attached to the given department
func (f *UserFactory) WithDepartment(role models.Role, departmentID uuid.UUID) *models.User {
	u := f.Create()
	u.Role = role
	u.DepartmentID = &departmentID
	return u
}

// ManufacturerFactory provides methods to create test Manufacturer data
type ManufacturerFactory struct{}

// NewManufacturerFactory creates a new ManufacturerFactory
func NewManufacturerFactory() *ManufacturerFactory {
	return &ManufacturerFactory{}
}

// Create creates a test Manufacturer with default values
func (f *ManufacturerFactory) Create() *models.Manufacturer {
	id := uuid.New()
	return &models.Manufacturer{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Surgitech " + id.String()[:8],
		Contact: "sales@surgitech.test",
		Address: "Industriestrasse 1, Tuttlingen",
		Website: "https://surgitech.test",
	}
}

// InstrumentFactory provides methods to create test Instrument data
type InstrumentFactory struct{}

// NewInstrumentFactory creates a new InstrumentFactory
func NewInstrumentFactory() *InstrumentFactory {
	return &InstrumentFactory{}
}

// Create creates a test Instrument for the given manufacturer
func (f *InstrumentFactory) Create(manufacturerID uuid.UUID) *models.Instrument {
	id := uuid.New()
	return &models.Instrument{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ArticleNumber:  "ART-" + id.String()[:8],
		Designation:    "Needle Holder 14cm",
		Description:    "A test instrument",
		ManufacturerID: manufacturerID,
	}
}

// TrayFactory provides methods to create test Tray data
type TrayFactory struct{}

// NewTrayFactory creates a new TrayFactory
func NewTrayFactory() *TrayFactory {
	return &TrayFactory{}
}

// Create creates a cross-department test Tray created by the given user
func (f *TrayFactory) Create(createdByID uuid.UUID) *models.Tray {
	id := uuid.New()
	return &models.Tray{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:           "Basic Set " + id.String()[:6],
		Description:    "A test tray",
		Classification: models.TrayClassificationCrossDepartment,
		Status:         models.TrayStatusActive,
		Version:        1,
		CreatedByID:    createdByID,
	}
}

// WithDepartment creates a department-specific tray
func (f *TrayFactory) WithDepartment(createdByID, departmentID uuid.UUID) *models.Tray {
	tray := f.Create(createdByID)
	tray.Classification = models.TrayClassificationDepartmentSpecific
	tray.DepartmentID = &departmentID
	return tray
}

// Item creates a TrayItem linking a tray and an instrument
func (f *TrayFactory) Item(trayID, instrumentID uuid.UUID, quantity int) *models.TrayItem {
	return &models.TrayItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TrayID:       trayID,
		InstrumentID: instrumentID,
		Quantity:     quantity,
		Position:     "A1",
	}
}

// ChangeRequestFactory provides methods to create test ChangeRequest data
type ChangeRequestFactory struct{}

// NewChangeRequestFactory creates a new ChangeRequestFactory
func NewChangeRequestFactory() *ChangeRequestFactory {
	return &ChangeRequestFactory{}
}

// Create creates a pending add_instrument change request
func (f *ChangeRequestFactory) Create(trayID, requestedByID uuid.UUID) *models.ChangeRequest {
	payload, _ := json.Marshal(map[string]interface{}{
		"instrument_id": uuid.New().String(),
		"quantity":      2,
	})
	return &models.ChangeRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TrayID:        trayID,
		Type:          models.ChangeRequestTypeAddInstrument,
		NewData:       payload,
		Comment:       "test change request",
		Status:        models.ChangeRequestStatusPending,
		RequestedByID: requestedByID,
	}
}

// WithPayload creates a pending change request of the given type and payload
func (f *ChangeRequestFactory) WithPayload(trayID, requestedByID uuid.UUID, crType models.ChangeRequestType, payload interface{}) *models.ChangeRequest {
	cr := f.Create(trayID, requestedByID)
	cr.Type = crType
	data, _ := json.Marshal(payload)
	cr.NewData = data
	return cr
}

// FactorySet provides access to all factories
type FactorySet struct {
	Department    *DepartmentFactory
	User          *UserFactory
	Manufacturer  *ManufacturerFactory
	Instrument    *InstrumentFactory
	Tray          *TrayFactory
	ChangeRequest *ChangeRequestFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Department:    NewDepartmentFactory(),
		User:          NewUserFactory(),
		Manufacturer:  NewManufacturerFactory(),
		Instrument:    NewInstrumentFactory(),
		Tray:          NewTrayFactory(),
		ChangeRequest: NewChangeRequestFactory(),
	}
}
