package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campus-finds/api-go/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Category{},
		&models.Item{},
		&models.Claim{},
		&models.Notification{},
	)
	require.NoError(t, err)

	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := models.User{FullName: name, Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

type itemSpec struct {
	user     *models.User
	category *models.Category
	itemType models.ItemType
	status   models.ItemStatus
	title    string
	location string
	reported time.Time
}

func createItem(t *testing.T, db *gorm.DB, spec itemSpec) *models.Item {
	t.Helper()

	if spec.status == "" {
		spec.status = models.ItemPending
	}
	if spec.reported.IsZero() {
		spec.reported = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}

	item := models.Item{
		UserID:       spec.user.ID,
		CategoryID:   spec.category.ID,
		Type:         spec.itemType,
		Status:       spec.status,
		Title:        spec.title,
		Location:     spec.location,
		DateReported: spec.reported,
	}
	require.NoError(t, db.Create(&item).Error)
	return &item
}

func reloadItem(t *testing.T, db *gorm.DB, id uint) *models.Item {
	t.Helper()

	var item models.Item
	require.NoError(t, db.First(&item, id).Error)
	return &item
}

func reloadClaim(t *testing.T, db *gorm.DB, id uint) *models.Claim {
	t.Helper()

	var claim models.Claim
	require.NoError(t, db.First(&claim, id).Error)
	return &claim
}
