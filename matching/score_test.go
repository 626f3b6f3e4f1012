package matching

import (
	"testing"
	"time"

	"github.com/campus-finds/api-go/models"
	"github.com/stretchr/testify/assert"
)

func day(offset int) time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func lostItem(mutate func(*models.Item)) *models.Item {
	item := &models.Item{
		ID:           1,
		CategoryID:   1,
		Type:         models.ItemLost,
		Status:       models.ItemPending,
		Title:        "Blue Umbrella",
		Location:     "Gate 2",
		DateReported: day(0),
	}
	if mutate != nil {
		mutate(item)
	}
	return item
}

func foundItem(mutate func(*models.Item)) *models.Item {
	item := &models.Item{
		ID:           2,
		CategoryID:   1,
		Type:         models.ItemFound,
		Status:       models.ItemPending,
		Title:        "Umbrella",
		Location:     "Gate 2",
		DateReported: day(0),
	}
	if mutate != nil {
		mutate(item)
	}
	return item
}

func TestScoreFullMatch(t *testing.T) {
	// category 40 + exact location 30 + same day 20 + title overlap 10
	score := Score(lostItem(nil), foundItem(nil))
	assert.Equal(t, 100, score)
}

func TestScoreIsDeterministic(t *testing.T) {
	source, candidate := lostItem(nil), foundItem(nil)
	first := Score(source, candidate)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(source, candidate))
	}
}

func TestScoreRules(t *testing.T) {
	tests := []struct {
		name      string
		source    *models.Item
		candidate *models.Item
		expected  int
	}{
		{
			name:   "different category drops 40",
			source: lostItem(nil),
			candidate: foundItem(func(i *models.Item) {
				i.CategoryID = 2
			}),
			expected: 60,
		},
		{
			name:   "partial location containment scores 15 not 30",
			source: lostItem(nil),
			candidate: foundItem(func(i *models.Item) {
				i.Location = "Near Gate 2, East Wing"
			}),
			expected: 85,
		},
		{
			name:   "location comparison is case-insensitive",
			source: lostItem(nil),
			candidate: foundItem(func(i *models.Item) {
				i.Location = "GATE 2"
			}),
			expected: 100,
		},
		{
			name:   "empty candidate location contributes nothing",
			source: lostItem(nil),
			candidate: foundItem(func(i *models.Item) {
				i.Location = ""
			}),
			expected: 70,
		},
		{
			name:   "two days apart scores 15 for dates",
			source: lostItem(nil),
			candidate: foundItem(func(i *models.Item) {
				i.DateReported = day(2)
			}),
			expected: 95,
		},
		{
			name:   "five days apart scores 10 for dates",
			source: lostItem(nil),
			candidate: foundItem(func(i *models.Item) {
				i.DateReported = day(5)
			}),
			expected: 90,
		},
		{
			name:   "beyond a week scores nothing for dates",
			source: lostItem(nil),
			candidate: foundItem(func(i *models.Item) {
				i.DateReported = day(30)
			}),
			expected: 80,
		},
		{
			name:   "event date takes precedence over report date",
			source: lostItem(nil),
			candidate: foundItem(func(i *models.Item) {
				i.DateReported = day(30)
				event := day(0)
				i.DateLostOrFound = &event
			}),
			expected: 100,
		},
		{
			name:   "unrelated title contributes nothing",
			source: lostItem(nil),
			candidate: foundItem(func(i *models.Item) {
				i.Title = "Red Scarf"
			}),
			expected: 90,
		},
		{
			name: "nothing in common scores zero",
			source: lostItem(func(i *models.Item) {
				i.Location = "Library"
			}),
			candidate: foundItem(func(i *models.Item) {
				i.CategoryID = 2
				i.Title = "Red Scarf"
				i.Location = "Cafeteria"
				i.DateReported = day(30)
			}),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.source, tt.candidate))
		})
	}
}

func TestScoreNeverNegative(t *testing.T) {
	source := lostItem(func(i *models.Item) {
		i.Title = ""
		i.Location = ""
	})
	candidate := foundItem(func(i *models.Item) {
		i.CategoryID = 99
		i.Title = ""
		i.Location = ""
		i.DateReported = day(100)
	})
	assert.GreaterOrEqual(t, Score(source, candidate), 0)
}

func TestBand(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, BandExcellent},
		{80, BandExcellent},
		{79, BandGood},
		{60, BandGood},
		{59, BandPossible},
		{40, BandPossible},
		{39, BandWeak},
		{0, BandWeak},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Band(tt.score), "score %d", tt.score)
	}
}
