// internal/models/product.go
package models

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hazaldoster/beautybot/internal/i18n"
)

var favoritedRe = regexp.MustCompile(`(\d+[\d.]*)\s*kişi\s*favoriledi`)

// Product is the aggregate for one catalog item. It is only mutated during
// catalog load (favorite-count backfill) and is read-only afterwards.
type Product struct {
	ProductID        string           `json:"product_id"`
	Name             string           `json:"name"`
	URL              string           `json:"url"`
	Subcategory      string           `json:"subcategory"`
	Description      string           `json:"description"`
	Price            Price            `json:"price"`
	Rating           Rating           `json:"rating"`
	StarDistribution StarDistribution `json:"star_distribution"`
	Comments         []Comment        `json:"comments"`
	SocialProofs     []string         `json:"social_proofs"`
	Color            string           `json:"color,omitempty"`
	Origin           string           `json:"origin,omitempty"`

	TotalCommentCount int `json:"total_comment_count"`
	TotalQuestions    int `json:"total_questions"`
	FavoriteCount     int `json:"favorite_count"`
}

// SentimentRatio is the comment sentiment breakdown; the three shares sum to
// 1 when there are comments and are all 0 otherwise.
type SentimentRatio struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// CommentCount prefers the reported total over the embedded comment list,
// which the source often truncates.
func (p *Product) CommentCount() int {
	if p.TotalCommentCount > len(p.Comments) {
		return p.TotalCommentCount
	}
	return len(p.Comments)
}

func (p *Product) HasComments() bool {
	return len(p.Comments) > 0
}

func (p *Product) PositiveComments() []Comment {
	return p.filterComments(Comment.IsPositive)
}

func (p *Product) NegativeComments() []Comment {
	return p.filterComments(Comment.IsNegative)
}

func (p *Product) NeutralComments() []Comment {
	return p.filterComments(Comment.IsNeutral)
}

func (p *Product) filterComments(keep func(Comment) bool) []Comment {
	var out []Comment
	for _, c := range p.Comments {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func (p *Product) CommentSentimentRatio() SentimentRatio {
	total := len(p.Comments)
	if total == 0 {
		return SentimentRatio{}
	}
	return SentimentRatio{
		Positive: float64(len(p.PositiveComments())) / float64(total),
		Negative: float64(len(p.NegativeComments())) / float64(total),
		Neutral:  float64(len(p.NeutralComments())) / float64(total),
	}
}

func (p *Product) MostLikedComment() *Comment {
	if len(p.Comments) == 0 {
		return nil
	}
	best := 0
	for i, c := range p.Comments {
		if c.Likes > p.Comments[best].Likes {
			best = i
		}
	}
	return &p.Comments[best]
}

// EngagementScore is a composite 0-10 metric. Each component is capped
// before summing: comments contribute up to 5, rating volume up to 3,
// favorites up to 2.
func (p *Product) EngagementScore() float64 {
	score := math.Min(float64(p.CommentCount())/10, 5)
	score += math.Min(float64(p.Rating.Count)/20, 3)
	score += math.Min(float64(p.FavoriteCount)/500, 2)
	return math.Round(score*100) / 100
}

// IsTrending requires both high engagement and a high rating score.
func (p *Product) IsTrending() bool {
	return p.EngagementScore() >= 5.0 && p.Rating.IsHighlyRated()
}

// ParseFavoriteCount extracts the favorite count from the social proof
// texts, e.g. "1.234 kişi favoriledi". First match wins.
func (p *Product) ParseFavoriteCount() int {
	for _, sp := range p.SocialProofs {
		if sp == "" {
			continue
		}
		match := favoritedRe.FindStringSubmatch(sp)
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(strings.ReplaceAll(match[1], ".", ""))
		if err != nil {
			continue
		}
		return n
	}
	return 0
}

// Summary renders the one-line product description used in the context
// document and category insights.
func (p *Product) Summary(lang string) string {
	parts := []string{
		i18n.T(lang, i18n.KeySummaryName, p.Name),
		i18n.T(lang, i18n.KeySummaryCategory, p.Subcategory),
		i18n.T(lang, i18n.KeySummaryPrice, p.Price.Display(lang)),
		i18n.T(lang, i18n.KeySummaryRating, p.Rating.Display(lang)),
	}
	if p.StarDistribution.Total() > 0 {
		parts = append(parts, i18n.T(lang, i18n.KeySummarySentiment, p.StarDistribution.SentimentLabel(lang)))
	}
	if p.CommentCount() > 0 {
		parts = append(parts, i18n.T(lang, i18n.KeySummaryComments, p.CommentCount()))
	}
	if p.FavoriteCount > 0 {
		parts = append(parts, i18n.T(lang, i18n.KeySummaryFavorites, p.FavoriteCount))
	}
	if p.Color != "" {
		parts = append(parts, i18n.T(lang, i18n.KeySummaryColor, p.Color))
	}
	return strings.Join(parts, " | ")
}
