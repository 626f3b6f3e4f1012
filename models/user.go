package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	FullName      string         `gorm:"not null" json:"full_name"`
	Email         *string        `gorm:"unique" json:"email"`
	SchoolID      *string        `gorm:"unique;column:school_id" json:"school_id"`
	PasswordHash  *string        `json:"-"` // Don't expose password hash in JSON
	Role          UserRole       `gorm:"not null;default:'user'" json:"role"`
	GoogleID      *string        `gorm:"unique" json:"-"`
	Provider      string         `gorm:"default:'email'" json:"provider"`
	Avatar        string         `json:"avatar"`
	ReportedItems []Item         `json:"reported_items,omitempty" gorm:"foreignKey:UserID"`
	Claims        []Claim        `json:"claims,omitempty" gorm:"foreignKey:UserID"`
}
