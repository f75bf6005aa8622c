package models

import (
	"github.com/google/uuid"
)

// Tray represents one physical/logical instrument set (German "Sieb").
// The version counter increases by exactly one for every committed mutation
// of the tray or its items; an applied change request adds one more explicit
// increment on top of the underlying mutation's bump.
//
// Invariant: DepartmentID is present if and only if the classification is
// department_specific.
type Tray struct {
	BaseModel
	Name            string             `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description     string             `json:"description" gorm:"size:1000" validate:"max=1000"`
	Classification  TrayClassification `json:"classification" gorm:"type:varchar(50);not null" validate:"required"`
	Status          TrayStatus         `json:"status" gorm:"type:varchar(50);not null;default:'draft'"`
	Version         int                `json:"version" gorm:"not null;default:1"`
	DepartmentID    *uuid.UUID         `json:"department_id,omitempty" gorm:"type:uuid;index"`
	PackedImagePath string             `json:"packed_image_path" gorm:"size:500"`
	CreatedByID     uuid.UUID          `json:"created_by_id" gorm:"type:uuid;not null;index"`

	// Relationships
	Department     *Department     `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	CreatedBy      *User           `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	Items          []TrayItem      `json:"items,omitempty" gorm:"foreignKey:TrayID;constraint:OnDelete:CASCADE"`
	ChangeRequests []ChangeRequest `json:"change_requests,omitempty" gorm:"foreignKey:TrayID"`
}

// TableName returns the table name for Tray
func (Tray) TableName() string {
	return "trays"
}

// TrayItem is one instrument entry within a tray. At most one item exists
// per (tray, instrument) pair.
type TrayItem struct {
	BaseModel
	TrayID       uuid.UUID `json:"tray_id" gorm:"type:uuid;uniqueIndex:idx_tray_items_tray_instrument;not null" validate:"required"`
	InstrumentID uuid.UUID `json:"instrument_id" gorm:"type:uuid;uniqueIndex:idx_tray_items_tray_instrument;not null" validate:"required"`
	Quantity     int       `json:"quantity" gorm:"not null;default:1" validate:"min=1"`
	Position     string    `json:"position" gorm:"size:20" validate:"max=20"`
	Note         string    `json:"note" gorm:"size:500" validate:"max=500"`

	// Relationships
	Tray       *Tray       `json:"tray,omitempty" gorm:"foreignKey:TrayID;constraint:OnDelete:CASCADE"`
	Instrument *Instrument `json:"instrument,omitempty" gorm:"foreignKey:InstrumentID"`
}

// TableName returns the table name for TrayItem
func (TrayItem) TableName() string {
	return "tray_items"
}
