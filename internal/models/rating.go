// internal/models/rating.go
package models

import (
	"strconv"

	"github.com/hazaldoster/beautybot/internal/i18n"
)

// Rating is an immutable value object for a product rating. A zero Score
// means "no data", not a zero-star rating.
type Rating struct {
	Score   float64 `json:"score"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

func NewRating(score float64, count int, average float64) Rating {
	return Rating{Score: score, Count: count, Average: average}
}

// IsHighlyRated reports whether the score clears the 4.0 threshold.
func (r Rating) IsHighlyRated() bool {
	return r.Score >= 4.0
}

// IsPopular reports whether the rating volume is significant.
func (r Rating) IsPopular() bool {
	return r.Count >= 50
}

func (r Rating) HasData() bool {
	return r.Score > 0 || r.Count > 0
}

func (r Rating) Display(lang string) string {
	if !r.HasData() {
		return i18n.T(lang, i18n.KeyRatingNone)
	}
	return i18n.T(lang, i18n.KeyRatingSummary, formatScore(r.Score), r.Count)
}

// formatScore renders a score with the shortest decimal representation,
// keeping one decimal for whole numbers ("4.0", "4.35").
func formatScore(score float64) string {
	if score == float64(int64(score)) {
		return strconv.FormatFloat(score, 'f', 1, 64)
	}
	return strconv.FormatFloat(score, 'f', -1, 64)
}
