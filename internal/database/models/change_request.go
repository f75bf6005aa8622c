package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ChangeRequest is a proposed, approvable/rejectable mutation to a tray.
//
// Status and decision fields are write-once: once a request leaves pending
// it is never revisited. A non-pending request always carries DecidedByID
// and DecidedAt; a rejected request always carries RejectionReason.
type ChangeRequest struct {
	BaseModel
	TrayID          uuid.UUID           `json:"tray_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type            ChangeRequestType   `json:"type" gorm:"type:varchar(50);not null" validate:"required"`
	OldData         json.RawMessage     `json:"old_data,omitempty" gorm:"type:jsonb"`
	NewData         json.RawMessage     `json:"new_data" gorm:"type:jsonb"`
	Comment         string              `json:"comment" gorm:"size:1000" validate:"max=1000"`
	Status          ChangeRequestStatus `json:"status" gorm:"type:varchar(50);not null;default:'pending';index"`
	RequestedByID   uuid.UUID           `json:"requested_by_id" gorm:"type:uuid;not null;index"`
	DecidedByID     *uuid.UUID          `json:"decided_by_id,omitempty" gorm:"type:uuid"`
	DecidedAt       *time.Time          `json:"decided_at,omitempty"`
	RejectionReason string              `json:"rejection_reason,omitempty" gorm:"size:1000"`

	// Relationships
	Tray        *Tray `json:"tray,omitempty" gorm:"foreignKey:TrayID"`
	RequestedBy *User `json:"requested_by,omitempty" gorm:"foreignKey:RequestedByID"`
	DecidedBy   *User `json:"decided_by,omitempty" gorm:"foreignKey:DecidedByID"`
}

// TableName returns the table name for ChangeRequest
func (ChangeRequest) TableName() string {
	return "change_requests"
}
