package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-finds/api-go/models"
)

func TestFindMatchesRanking(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "Owner")
	finder := createUser(t, db, "Finder")
	electronics := createCategory(t, db, "Electronics")
	clothing := createCategory(t, db, "Clothing")

	lost := createItem(t, db, itemSpec{
		user: owner, category: electronics, itemType: models.ItemLost,
		title: "Black Phone", location: "Library",
	})

	// Same category, location, date and overlapping title: top score.
	best := createItem(t, db, itemSpec{
		user: finder, category: electronics, itemType: models.ItemFound,
		title: "Phone", location: "Library",
	})
	// Location only.
	weak := createItem(t, db, itemSpec{
		user: finder, category: clothing, itemType: models.ItemFound,
		title: "Calculator", location: "Library",
		reported: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	// Nothing in common: must be dropped.
	createItem(t, db, itemSpec{
		user: finder, category: clothing, itemType: models.ItemFound,
		title: "Green Jacket", location: "Gym",
		reported: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	results, err := FindMatches(db, lost.ID, owner.ID)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, best.ID, results[0].Item.ID)
	assert.Equal(t, weak.ID, results[1].Item.ID)
	assert.Equal(t, 100, results[0].Score)
	assert.Equal(t, "Excellent", results[0].Band)
	assert.Equal(t, "Weak", results[1].Band)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	for _, result := range results {
		assert.Greater(t, result.Score, 0)
	}
}

func TestFindMatchesCapsResults(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "Owner")
	finder := createUser(t, db, "Finder")
	category := createCategory(t, db, "Keys")

	lost := createItem(t, db, itemSpec{
		user: owner, category: category, itemType: models.ItemLost,
		title: "Dorm Key", location: "Dorm B",
	})

	for i := 0; i < MaxMatchResults+5; i++ {
		createItem(t, db, itemSpec{
			user: finder, category: category, itemType: models.ItemFound,
			title: fmt.Sprintf("Key %d", i), location: "Dorm B",
		})
	}

	results, err := FindMatches(db, lost.ID, owner.ID)
	require.NoError(t, err)
	assert.Len(t, results, MaxMatchResults)
}

func TestFindMatchesTieBreakIsStable(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "Owner")
	finder := createUser(t, db, "Finder")
	category := createCategory(t, db, "Bags")

	lost := createItem(t, db, itemSpec{
		user: owner, category: category, itemType: models.ItemLost,
		title: "Backpack", location: "Gym",
	})

	var ids []uint
	for i := 0; i < 3; i++ {
		item := createItem(t, db, itemSpec{
			user: finder, category: category, itemType: models.ItemFound,
			title: "Backpack", location: "Gym",
		})
		ids = append(ids, item.ID)
	}

	results, err := FindMatches(db, lost.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Equal scores keep candidate id order.
	for i, result := range results {
		assert.Equal(t, ids[i], result.Item.ID)
	}
}

func TestFindMatchesEmptyPoolIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "Owner")
	category := createCategory(t, db, "Documents")

	lost := createItem(t, db, itemSpec{
		user: owner, category: category, itemType: models.ItemLost,
		title: "Student ID", location: "Main Hall",
	})

	results, err := FindMatches(db, lost.ID, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindMatchesGuards(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "Owner")
	other := createUser(t, db, "Other")
	category := createCategory(t, db, "Electronics")

	lost := createItem(t, db, itemSpec{
		user: owner, category: category, itemType: models.ItemLost,
		title: "Laptop", location: "Lab 3",
	})
	found := createItem(t, db, itemSpec{
		user: owner, category: category, itemType: models.ItemFound,
		title: "Charger", location: "Lab 3",
	})
	reviewed := createItem(t, db, itemSpec{
		user: owner, category: category, itemType: models.ItemLost,
		status: models.ItemUnderReview,
		title:  "Tablet", location: "Lab 3",
	})

	_, err := FindMatches(db, 9999, owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = FindMatches(db, lost.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = FindMatches(db, found.ID, owner.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = FindMatches(db, reviewed.ID, owner.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}
