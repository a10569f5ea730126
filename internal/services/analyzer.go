// internal/services/analyzer.go
package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/hazaldoster/beautybot/internal/models"
)

// ErrCategoryNotFound is returned by CategoryAnalysis for a category with no
// products. All other analyzer operations degrade to empty or zero results.
var ErrCategoryNotFound = errors.New("category not found")

// ProductAnalyzer derives analytical insights from a loaded catalog. It is
// stateless: every call is a pure read of the catalog snapshot.
type ProductAnalyzer struct {
	catalog *models.Catalog
	lang    string
}

func NewProductAnalyzer(catalog *models.Catalog, lang string) *ProductAnalyzer {
	return &ProductAnalyzer{catalog: catalog, lang: lang}
}

type CatalogOverview struct {
	TotalProducts        int            `json:"total_products"`
	TotalCategories      int            `json:"total_categories"`
	Categories           map[string]int `json:"categories"`
	ProductsWithRatings  int            `json:"products_with_ratings"`
	ProductsWithComments int            `json:"products_with_comments"`
	AverageRating        float64        `json:"average_rating"`
	TrendingCount        int            `json:"trending_count"`
}

type CategoryAnalysis struct {
	Category       string            `json:"category"`
	ProductCount   int               `json:"product_count"`
	RatedCount     int               `json:"rated_count"`
	CommentedCount int               `json:"commented_count"`
	AverageRating  float64           `json:"average_rating"`
	TotalComments  int               `json:"total_comments"`
	TotalFavorites int               `json:"total_favorites"`
	PriceRange     models.PriceRange `json:"price_range"`
	TopRated       []string          `json:"top_rated"`
}

type SentimentSummary struct {
	ProductsAnalyzed int     `json:"products_analyzed"`
	TotalComments    int     `json:"total_comments"`
	PositiveComments int     `json:"positive_comments"`
	NegativeComments int     `json:"negative_comments"`
	NeutralComments  int     `json:"neutral_comments"`
	PositiveRatio    float64 `json:"positive_ratio"`
	NegativeRatio    float64 `json:"negative_ratio"`
}

type DiscussedProduct struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	CommentCount int    `json:"comment_count"`
	PositivePct  string `json:"positive_pct"`
	NegativePct  string `json:"negative_pct"`
	NeutralPct   string `json:"neutral_pct"`
	TopPositive  string `json:"top_positive"`
	TopNegative  string `json:"top_negative"`
}

type EngagementLeader struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	EngagementScore float64 `json:"engagement_score"`
	CommentCount    int     `json:"comment_count"`
	Rating          string  `json:"rating"`
	Favorites       int     `json:"favorites"`
}

type PolarizingProduct struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	StarSummary   string `json:"star_distribution"`
	Sentiment     string `json:"sentiment"`
	PositiveRatio string `json:"positive_ratio"`
	NegativeRatio string `json:"negative_ratio"`
}

type ValueProduct struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Price      string  `json:"price"`
	Rating     string  `json:"rating"`
	ValueScore float64 `json:"value_score"`
}

// CatalogOverview computes the high-level view of the whole catalog. The
// mean rating only averages over products that have rating data.
func (a *ProductAnalyzer) CatalogOverview() CatalogOverview {
	var withRatings, withComments int
	var ratingSum float64

	for _, p := range a.catalog.Products() {
		if p.Rating.HasData() {
			withRatings++
			ratingSum += p.Rating.Score
		}
		if p.HasComments() {
			withComments++
		}
	}

	var avgRating float64
	if withRatings > 0 {
		avgRating = ratingSum / float64(withRatings)
	}

	return CatalogOverview{
		TotalProducts:        a.catalog.TotalProducts(),
		TotalCategories:      len(a.catalog.Categories()),
		Categories:           a.catalog.CategoryCounts(),
		ProductsWithRatings:  withRatings,
		ProductsWithComments: withComments,
		AverageRating:        round2(avgRating),
		TrendingCount:        len(a.catalog.Trending()),
	}
}

// CategoryAnalysis is the only analyzer operation with an explicit failure:
// an unknown or empty category yields ErrCategoryNotFound.
func (a *ProductAnalyzer) CategoryAnalysis(category string) (CategoryAnalysis, error) {
	products := a.catalog.GetByCategory(category)
	if len(products) == 0 {
		return CategoryAnalysis{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, category)
	}

	var rated, commented, totalComments, totalFavorites int
	var ratingSum float64
	for _, p := range products {
		if p.Rating.HasData() {
			rated++
			ratingSum += p.Rating.Score
		}
		if p.HasComments() {
			commented++
		}
		totalComments += p.CommentCount()
		totalFavorites += p.FavoriteCount
	}

	var avgRating float64
	if rated > 0 {
		avgRating = ratingSum / float64(rated)
	}

	topRated := a.catalog.TopRatedByCategory(category, 3)
	summaries := make([]string, 0, len(topRated))
	for _, p := range topRated {
		summaries = append(summaries, p.Summary(a.lang))
	}

	return CategoryAnalysis{
		Category:       category,
		ProductCount:   len(products),
		RatedCount:     rated,
		CommentedCount: commented,
		AverageRating:  round2(avgRating),
		TotalComments:  totalComments,
		TotalFavorites: totalFavorites,
		PriceRange:     a.catalog.PriceRangeByCategory(category),
		TopRated:       summaries,
	}, nil
}

// MostDiscussedProducts returns the top-commented products that actually
// carry comments, each with its sentiment split and one representative quote
// per polarity.
func (a *ProductAnalyzer) MostDiscussedProducts(limit int) []DiscussedProduct {
	var out []DiscussedProduct
	for _, p := range a.catalog.MostCommented(limit) {
		if !p.HasComments() {
			continue
		}
		out = append(out, a.commentInsight(p))
	}
	return out
}

func (a *ProductAnalyzer) commentInsight(p *models.Product) DiscussedProduct {
	sentiment := p.CommentSentimentRatio()

	return DiscussedProduct{
		Name:         p.Name,
		Category:     p.Subcategory,
		CommentCount: p.CommentCount(),
		PositivePct:  percent(sentiment.Positive),
		NegativePct:  percent(sentiment.Negative),
		NeutralPct:   percent(sentiment.Neutral),
		TopPositive:  representativeQuote(p.PositiveComments()),
		TopNegative:  representativeQuote(p.NegativeComments()),
	}
}

// representativeQuote picks the longest comment text as the most informative
// one, ties keeping the earliest, truncated to 150 characters.
func representativeQuote(comments []models.Comment) string {
	if len(comments) == 0 {
		return ""
	}
	best := 0
	for i, c := range comments {
		if len([]rune(c.Text)) > len([]rune(comments[best].Text)) {
			best = i
		}
	}
	return truncateRunes(comments[best].Text, 150)
}

func (a *ProductAnalyzer) SentimentSummary() SentimentSummary {
	var summary SentimentSummary
	for _, p := range a.catalog.Products() {
		if !p.HasComments() {
			continue
		}
		summary.ProductsAnalyzed++
		summary.PositiveComments += len(p.PositiveComments())
		summary.NegativeComments += len(p.NegativeComments())
		summary.NeutralComments += len(p.NeutralComments())
		summary.TotalComments += len(p.Comments)
	}

	if summary.TotalComments > 0 {
		summary.PositiveRatio = round2(float64(summary.PositiveComments) / float64(summary.TotalComments))
		summary.NegativeRatio = round2(float64(summary.NegativeComments) / float64(summary.TotalComments))
	}
	return summary
}

func (a *ProductAnalyzer) EngagementLeaders(limit int) []EngagementLeader {
	products := a.catalog.MostEngaging(limit)
	out := make([]EngagementLeader, 0, len(products))
	for _, p := range products {
		out = append(out, EngagementLeader{
			Name:            p.Name,
			Category:        p.Subcategory,
			EngagementScore: p.EngagementScore(),
			CommentCount:    p.CommentCount(),
			Rating:          p.Rating.Display(a.lang),
			Favorites:       p.FavoriteCount,
		})
	}
	return out
}

func (a *ProductAnalyzer) PolarizingProducts(limit int) []PolarizingProduct {
	products := a.catalog.Polarizing(limit)
	out := make([]PolarizingProduct, 0, len(products))
	for _, p := range products {
		out = append(out, PolarizingProduct{
			Name:          p.Name,
			Category:      p.Subcategory,
			StarSummary:   p.StarDistribution.Summary(a.lang),
			Sentiment:     p.StarDistribution.SentimentLabel(a.lang),
			PositiveRatio: percent(p.StarDistribution.PositiveRatio()),
			NegativeRatio: percent(p.StarDistribution.NegativeRatio()),
		})
	}
	return out
}

// PriceComparisonByCategory emits the price range per category, omitting
// categories without a single valid price.
func (a *ProductAnalyzer) PriceComparisonByCategory() map[string]models.PriceRange {
	result := make(map[string]models.PriceRange)
	for _, cat := range a.catalog.Categories() {
		rng := a.catalog.PriceRangeByCategory(cat)
		if rng.Max > 0 {
			result[cat] = rng
		}
	}
	return result
}

// BestValueProducts ranks by rating-to-price ratio among products with a
// valid price and a rating score of at least 3.5.
func (a *ProductAnalyzer) BestValueProducts(limit int) []ValueProduct {
	var candidates []*models.Product
	for _, p := range a.catalog.Products() {
		if p.Rating.HasData() && p.Price.IsValid() && p.Rating.Score >= 3.5 {
			candidates = append(candidates, p)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rating.Score/candidates[i].Price.Amount >
			candidates[j].Rating.Score/candidates[j].Price.Amount
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]ValueProduct, 0, len(candidates))
	for _, p := range candidates {
		out = append(out, ValueProduct{
			Name:       p.Name,
			Category:   p.Subcategory,
			Price:      p.Price.Display(a.lang),
			Rating:     p.Rating.Display(a.lang),
			ValueScore: round2(p.Rating.Score / p.Price.Amount * 100),
		})
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// percent renders a 0-1 ratio as a whole percentage, e.g. "67%".
func percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

// floatText renders a float with minimal decimals, keeping one decimal for
// whole values so "4.0" stays distinguishable from the integer count 4.
func floatText(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
