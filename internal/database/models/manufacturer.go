package models

// Manufacturer represents an instrument manufacturer
type Manufacturer struct {
	BaseModel
	Name    string `json:"name" gorm:"uniqueIndex;not null;size:200" validate:"required,max=200"`
	Contact string `json:"contact" gorm:"size:200" validate:"max=200"`
	Address string `json:"address" gorm:"size:500" validate:"max=500"`
	Website string `json:"website" gorm:"size:200" validate:"omitempty,url,max=200"`

	// Relationships
	Instruments []Instrument `json:"instruments,omitempty" gorm:"foreignKey:ManufacturerID"`
}

// TableName returns the table name for Manufacturer
func (Manufacturer) TableName() string {
	return "manufacturers"
}
