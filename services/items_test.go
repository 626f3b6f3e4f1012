package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-finds/api-go/models"
)

func TestEnsureCategory(t *testing.T) {
	db := newTestDB(t)

	electronics := createCategory(t, db, "Electronics")

	resolved, err := EnsureCategory(db, &electronics.ID)
	require.NoError(t, err)
	assert.Equal(t, electronics.ID, resolved.ID)

	// Unknown ids fall back to the default category, created on demand.
	missing := uint(9999)
	fallback, err := EnsureCategory(db, &missing)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategoryName, fallback.Name)

	// Omitted ids reuse the same fallback instead of creating another.
	again, err := EnsureCategory(db, nil)
	require.NoError(t, err)
	assert.Equal(t, fallback.ID, again.ID)
}

func TestCreateReport(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "Reporter")

	item, err := CreateReport(db, CreateReportInput{
		UserID:   user.ID,
		Type:     models.ItemLost,
		Title:    "  Blue Umbrella  ",
		Location: "Gate 2",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ItemPending, item.Status)
	assert.Equal(t, models.ItemLost, item.Type)
	assert.Equal(t, "Blue Umbrella", item.Title)
	assert.NotZero(t, item.CategoryID)
	assert.False(t, item.DateReported.IsZero())
}

func TestCreateReportValidation(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "Reporter")

	_, err := CreateReport(db, CreateReportInput{
		UserID: user.ID,
		Type:   models.ItemLost,
		Title:  "   ",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CreateReport(db, CreateReportInput{
		UserID: user.ID,
		Type:   models.ItemType("misplaced"),
		Title:  "Umbrella",
	})
	assert.ErrorIs(t, err, ErrValidation)
}
