package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultCategoryName is assigned to reports submitted without a category.
const DefaultCategoryName = "Uncategorized"

type Category struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Name      string         `gorm:"not null;index" json:"name"`
	Items     []Item         `json:"items,omitempty" gorm:"foreignKey:CategoryID"`
}
