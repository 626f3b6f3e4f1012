package config

import (
	"log"
	"os"

	"github.com/campus-finds/api-go/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCategories = []string{
	"Uncategorized",
	"Electronics",
	"Clothing",
	"Documents & IDs",
	"Keys",
	"Bags & Wallets",
	"Books & Stationery",
}

// Seed creates the default admin account and the baseline categories if
// they are missing. Safe to run on every startup.
func Seed(db *gorm.DB) {
	for _, name := range seedCategories {
		var category models.Category
		if err := db.Where("name = ?", name).First(&category).Error; err == nil {
			continue
		}
		if err := db.Create(&models.Category{Name: name}).Error; err != nil {
			log.Printf("Failed to seed category %q: %v", name, err)
		}
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@campus-finds.local"
	}

	var admin models.User
	if err := db.Where("email = ?", adminEmail).First(&admin).Error; err == nil {
		return
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin account seed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	hashStr := string(hash)
	schoolID := "ADMIN001"
	admin = models.User{
		FullName:     "Administrator",
		Email:        &adminEmail,
		SchoolID:     &schoolID,
		PasswordHash: &hashStr,
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin account: %v", err)
		return
	}
	log.Printf("Seeded admin account %s", adminEmail)
}
