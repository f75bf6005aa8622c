package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a hospital staff member who can log in
type User struct {
	BaseModel
	Username     string     `json:"username" gorm:"uniqueIndex;not null;size:50" validate:"required,min=3,max=50"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string     `json:"-" gorm:"not null;size:100"`
	FirstName    string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Role         Role       `json:"role" gorm:"type:varchar(50);not null" validate:"required"`
	Active       bool       `json:"active" gorm:"not null;default:true"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// LoginLog records a login attempt, successful or not
type LoginLog struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`
	Username  string     `json:"username" gorm:"size:50"`
	IPAddress string     `json:"ip_address" gorm:"size:45"`
	Success   bool       `json:"success" gorm:"not null"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName returns the table name for LoginLog
func (LoginLog) TableName() string {
	return "login_logs"
}
