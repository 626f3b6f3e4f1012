package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/campus-finds/api-go/matching"
	"github.com/campus-finds/api-go/models"
	"gorm.io/gorm"
)

// MaxMatchResults caps how many ranked candidates a match search returns.
const MaxMatchResults = 10

type MatchResult struct {
	Item  models.Item `json:"item"`
	Score int         `json:"score"`
	Band  string      `json:"band"`
}

// FindMatches ranks pending found reports against the caller's lost report.
// Candidates scoring zero are dropped; the rest are ordered score-descending
// with candidate id as the stable tie-break, capped at MaxMatchResults.
// An empty result is not an error.
func FindMatches(db *gorm.DB, itemID, userID uint) ([]MatchResult, error) {
	var source models.Item
	if err := db.First(&source, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %d: %w", itemID, ErrNotFound)
		}
		return nil, err
	}

	if source.UserID != userID {
		return nil, fmt.Errorf("item %d belongs to another user: %w", itemID, ErrNotAuthorized)
	}
	if source.Type != models.ItemLost || source.Status != models.ItemPending {
		return nil, fmt.Errorf("matching requires a pending lost report: %w", ErrInvalidState)
	}

	var candidates []models.Item
	err := db.Where("type = ? AND status = ? AND id <> ?", models.ItemFound, models.ItemPending, source.ID).
		Order("id asc").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	results := make([]MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		score := matching.Score(&source, &candidate)
		if score == 0 {
			continue
		}
		results = append(results, MatchResult{
			Item:  candidate,
			Score: score,
			Band:  matching.Band(score),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > MaxMatchResults {
		results = results[:MaxMatchResults]
	}
	return results, nil
}
