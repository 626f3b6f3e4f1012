package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/campus-finds/api-go/models"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CreateReportInput struct {
	UserID          uint
	Type            models.ItemType
	Title           string
	Description     string
	Location        string
	CategoryID      *uint
	DateLostOrFound *time.Time
	PhotoURLs       []string
}

// CreateReport files a new lost or found report. New reports always start
// Pending with an explicitly resolved category.
func CreateReport(db *gorm.DB, input CreateReportInput) (*models.Item, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("title is required: %w", ErrValidation)
	}
	if input.Type != models.ItemLost && input.Type != models.ItemFound {
		return nil, fmt.Errorf("report type must be lost or found: %w", ErrValidation)
	}

	category, err := EnsureCategory(db, input.CategoryID)
	if err != nil {
		return nil, err
	}

	item := models.Item{
		UserID:          input.UserID,
		CategoryID:      category.ID,
		Type:            input.Type,
		Status:          models.ItemPending,
		Title:           strings.TrimSpace(input.Title),
		Description:     input.Description,
		Location:        input.Location,
		DateReported:    time.Now().UTC(),
		DateLostOrFound: input.DateLostOrFound,
		PhotoURLs:       pq.StringArray(input.PhotoURLs),
	}

	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
