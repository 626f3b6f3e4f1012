// Package matching scores how well a found report matches a lost report.
// Scoring is a pure heuristic over the report fields; persistence and
// candidate selection live in the services package.
package matching

import (
	"strings"

	"github.com/campus-finds/api-go/models"
)

const (
	CategoryPoints        = 40
	LocationExactPoints   = 30
	LocationPartialPoints = 15
	DateSameDayPoints     = 20
	DateWithin3Points     = 15
	DateWithin7Points     = 10
	TitleOverlapPoints    = 10
)

// Quality bands for display. Bands never affect ranking; only the >0
// floor in the finder filters candidates.
const (
	BandExcellent = "Excellent"
	BandGood      = "Good"
	BandPossible  = "Possible"
	BandWeak      = "Weak"
)

// Score computes the compatibility between a lost report and a found
// candidate. Rules are independent and additive; a missing or empty field
// contributes nothing. Under normal inputs the total stays within [0,100].
func Score(source, candidate *models.Item) int {
	score := 0

	if source.CategoryID == candidate.CategoryID {
		score += CategoryPoints
	}

	score += locationScore(source.Location, candidate.Location)
	score += dateScore(source, candidate)

	srcTitle := strings.ToLower(strings.TrimSpace(source.Title))
	candTitle := strings.ToLower(strings.TrimSpace(candidate.Title))
	if srcTitle != "" && candTitle != "" &&
		(strings.Contains(srcTitle, candTitle) || strings.Contains(candTitle, srcTitle)) {
		score += TitleOverlapPoints
	}

	return score
}

func locationScore(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return LocationExactPoints
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return LocationPartialPoints
	}
	return 0
}

func dateScore(source, candidate *models.Item) int {
	delta := source.EffectiveDate().Sub(candidate.EffectiveDate())
	if delta < 0 {
		delta = -delta
	}

	days := delta.Hours() / 24
	switch {
	case days <= 1:
		return DateSameDayPoints
	case days <= 3:
		return DateWithin3Points
	case days <= 7:
		return DateWithin7Points
	default:
		return 0
	}
}

// Band classifies a score for display.
func Band(score int) string {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandPossible
	default:
		return BandWeak
	}
}
