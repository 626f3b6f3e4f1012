package services

import (
	"errors"

	"github.com/campus-finds/api-go/models"
	"gorm.io/gorm"
)

// EnsureCategory resolves the category for a new report. A valid explicit
// id wins; anything else falls back to the shared "Uncategorized" category,
// creating it on first use.
func EnsureCategory(db *gorm.DB, categoryID *uint) (*models.Category, error) {
	if categoryID != nil {
		var category models.Category
		err := db.First(&category, *categoryID).Error
		if err == nil {
			return &category, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var fallback models.Category
	err := db.Where("name = ?", models.DefaultCategoryName).First(&fallback).Error
	if err == nil {
		return &fallback, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fallback = models.Category{Name: models.DefaultCategoryName}
	if err := db.Create(&fallback).Error; err != nil {
		return nil, err
	}
	return &fallback, nil
}
