// internal/services/report.go
package services

import (
	"strings"

	"github.com/hazaldoster/beautybot/internal/i18n"
)

// ContextDocument assembles the full analytical context handed to the LLM as
// grounding. It performs no computation of its own, only fixed-order
// rendering of the analyzer's insights; section and field order are part of
// the downstream contract.
func (a *ProductAnalyzer) ContextDocument() string {
	lang := a.lang
	overview := a.CatalogOverview()
	sentiment := a.SentimentSummary()
	topCommented := a.MostDiscussedProducts(5)
	topEngaging := a.EngagementLeaders(5)
	polarizing := a.PolarizingProducts(5)
	bestValue := a.BestValueProducts(5)
	priceByCat := a.PriceComparisonByCategory()

	var sections []string
	add := func(line string) { sections = append(sections, line) }

	// Section 1: overview
	add(i18n.T(lang, i18n.KeyCtxSectionOverview))
	add(i18n.T(lang, i18n.KeyCtxOverviewTotalProducts, overview.TotalProducts))
	add(i18n.T(lang, i18n.KeyCtxOverviewTotalCategories, overview.TotalCategories))
	add(i18n.T(lang, i18n.KeyCtxOverviewRatedProducts, overview.ProductsWithRatings))
	add(i18n.T(lang, i18n.KeyCtxOverviewCommentedProduct, overview.ProductsWithComments))
	add(i18n.T(lang, i18n.KeyCtxOverviewAverageRating, floatText(overview.AverageRating)))
	add(i18n.T(lang, i18n.KeyCtxOverviewTrendingCount, overview.TrendingCount))
	add("")

	// Section 2: category distribution
	add(i18n.T(lang, i18n.KeyCtxSectionCategories))
	for _, cat := range a.catalog.Categories() {
		add(i18n.T(lang, i18n.KeyCtxCategoriesLine, cat, overview.Categories[cat]))
	}
	add("")

	// Section 3: sentiment
	add(i18n.T(lang, i18n.KeyCtxSectionSentiment))
	add(i18n.T(lang, i18n.KeyCtxSentimentAnalyzed, sentiment.ProductsAnalyzed))
	add(i18n.T(lang, i18n.KeyCtxSentimentTotal, sentiment.TotalComments))
	add(i18n.T(lang, i18n.KeyCtxSentimentPositive, sentiment.PositiveComments, percent(sentiment.PositiveRatio)))
	add(i18n.T(lang, i18n.KeyCtxSentimentNegative, sentiment.NegativeComments, percent(sentiment.NegativeRatio)))
	add(i18n.T(lang, i18n.KeyCtxSentimentNeutral, sentiment.NeutralComments))
	add("")

	// Section 4: most discussed
	add(i18n.T(lang, i18n.KeyCtxSectionDiscussed))
	for _, item := range topCommented {
		add(i18n.T(lang, i18n.KeyCtxProductHeader, item.Name, item.Category))
		add(i18n.T(lang, i18n.KeyCtxDiscussedCounts, item.CommentCount, item.PositivePct, item.NegativePct))
		if item.TopPositive != "" {
			add(i18n.T(lang, i18n.KeyCtxDiscussedTopPositive, item.TopPositive))
		}
		if item.TopNegative != "" {
			add(i18n.T(lang, i18n.KeyCtxDiscussedTopNegative, item.TopNegative))
		}
	}
	add("")

	// Section 5: engagement leaders
	add(i18n.T(lang, i18n.KeyCtxSectionEngagement))
	for _, item := range topEngaging {
		add(i18n.T(lang, i18n.KeyCtxEngagementLine,
			item.Name, floatText(item.EngagementScore), item.CommentCount, item.Favorites, item.Rating))
	}
	add("")

	// Section 6: polarizing, omitted entirely when empty
	if len(polarizing) > 0 {
		add(i18n.T(lang, i18n.KeyCtxSectionPolarizing))
		for _, item := range polarizing {
			add(i18n.T(lang, i18n.KeyCtxProductHeader, item.Name, item.Category))
			add(i18n.T(lang, i18n.KeyCtxPolarizingLine, item.Sentiment, item.PositiveRatio, item.NegativeRatio))
		}
		add("")
	}

	// Section 7: best value
	add(i18n.T(lang, i18n.KeyCtxSectionBestValue))
	for _, item := range bestValue {
		add(i18n.T(lang, i18n.KeyCtxBestValueLine,
			item.Name, item.Price, item.Rating, floatText(item.ValueScore)))
	}
	add("")

	// Section 8: price ranges per category
	add(i18n.T(lang, i18n.KeyCtxSectionPriceRanges))
	for _, cat := range a.catalog.Categories() {
		rng, ok := priceByCat[cat]
		if !ok {
			continue
		}
		add(i18n.T(lang, i18n.KeyCtxPriceRangeLine, cat, rng.Min, rng.Max, rng.Avg))
	}

	// Section 9: top rated per category
	add("")
	add(i18n.T(lang, i18n.KeyCtxSectionCategoryTop))
	for _, cat := range a.catalog.Categories() {
		top := a.catalog.TopRatedByCategory(cat, 3)
		if len(top) == 0 {
			continue
		}
		add(i18n.T(lang, i18n.KeyCtxCategoryTopHeader, cat))
		for _, p := range top {
			add("    " + p.Summary(lang))
		}
	}

	return strings.Join(sections, "\n")
}
