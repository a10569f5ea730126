// internal/models/star_distribution.go
package models

import (
	"fmt"
	"strings"

	"github.com/hazaldoster/beautybot/internal/i18n"
)

// StarDistribution is an immutable value object holding the per-star rating
// breakdown, including the 0-star bucket the source data carries.
type StarDistribution struct {
	Star0 int `json:"star_0"`
	Star1 int `json:"star_1"`
	Star2 int `json:"star_2"`
	Star3 int `json:"star_3"`
	Star4 int `json:"star_4"`
	Star5 int `json:"star_5"`
}

func (d StarDistribution) Total() int {
	return d.Star0 + d.Star1 + d.Star2 + d.Star3 + d.Star4 + d.Star5
}

// PositiveRatio is the share of 4-5 star ratings, 0 when there is no data.
func (d StarDistribution) PositiveRatio() float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	return float64(d.Star4+d.Star5) / float64(total)
}

// NegativeRatio is the share of 0-2 star ratings, 0 when there is no data.
func (d StarDistribution) NegativeRatio() float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	return float64(d.Star0+d.Star1+d.Star2) / float64(total)
}

// IsPolarizing requires at least 5 ratings with significant shares on both
// ends of the scale.
func (d StarDistribution) IsPolarizing() bool {
	if d.Total() < 5 {
		return false
	}
	return d.PositiveRatio() > 0.3 && d.NegativeRatio() > 0.2
}

// SentimentKey classifies the distribution into an i18n label key.
func (d StarDistribution) SentimentKey() string {
	switch {
	case d.Total() == 0:
		return i18n.KeySentimentNone
	case d.PositiveRatio() >= 0.7:
		return i18n.KeySentimentVeryPositive
	case d.PositiveRatio() >= 0.5:
		return i18n.KeySentimentPositive
	case d.NegativeRatio() >= 0.5:
		return i18n.KeySentimentNegative
	default:
		return i18n.KeySentimentMixed
	}
}

func (d StarDistribution) SentimentLabel(lang string) string {
	return i18n.T(lang, d.SentimentKey())
}

// Summary renders the 1-5 star breakdown, highest first.
func (d StarDistribution) Summary(lang string) string {
	total := d.Total()
	if total == 0 {
		return i18n.T(lang, i18n.KeyStarsNone)
	}

	counts := []struct {
		stars int
		count int
	}{
		{5, d.Star5},
		{4, d.Star4},
		{3, d.Star3},
		{2, d.Star2},
		{1, d.Star1},
	}

	lines := make([]string, 0, len(counts))
	for _, c := range counts {
		pct := fmt.Sprintf("%.0f", float64(c.count)/float64(total)*100)
		lines = append(lines, i18n.T(lang, i18n.KeyStarsLine, c.stars, c.count, pct))
	}
	return strings.Join(lines, "\n")
}
