package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification is a one-shot per-user message. Rows are deleted when the
// recipient next fetches their mailbox, so each message is read at most once.
type Notification struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Message   string         `gorm:"not null;type:text" json:"message"`
}
