package models

// Department represents a clinical department (e.g. surgery, orthopedics)
type Department struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Code        string `json:"code" gorm:"uniqueIndex;not null;size:10" validate:"required,max=10"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`

	// Relationships
	Users []User `json:"users,omitempty" gorm:"foreignKey:DepartmentID"`
	Trays []Tray `json:"trays,omitempty" gorm:"foreignKey:DepartmentID"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
