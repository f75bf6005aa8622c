package models

import (
	"github.com/google/uuid"
)

// Instrument represents one surgical instrument from a manufacturer catalog
type Instrument struct {
	BaseModel
	ArticleNumber  string    `json:"article_number" gorm:"uniqueIndex:idx_instruments_manufacturer_article;not null;size:50" validate:"required,max=50"`
	Designation    string    `json:"designation" gorm:"not null;size:200" validate:"required,max=200"`
	Description    string    `json:"description" gorm:"size:1000" validate:"max=1000"`
	ManufacturerID uuid.UUID `json:"manufacturer_id" gorm:"type:uuid;uniqueIndex:idx_instruments_manufacturer_article;not null;index" validate:"required"`
	ImagePath      string    `json:"image_path" gorm:"size:500"`

	// Relationships
	Manufacturer *Manufacturer `json:"manufacturer,omitempty" gorm:"foreignKey:ManufacturerID"`
	TrayItems    []TrayItem    `json:"tray_items,omitempty" gorm:"foreignKey:InstrumentID"`
}

// TableName returns the table name for Instrument
func (Instrument) TableName() string {
	return "instruments"
}
