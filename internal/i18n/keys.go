// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Value object display
	KeyPriceNotSpecified = "price.not_specified"
	KeyRatingNone        = "rating.none"
	KeyRatingSummary     = "rating.summary"
	KeyStarsNone         = "stars.none"
	KeyStarsLine         = "stars.line"

	// Sentiment labels
	KeySentimentNone         = "sentiment.none"
	KeySentimentVeryPositive = "sentiment.very_positive"
	KeySentimentPositive     = "sentiment.positive"
	KeySentimentNegative     = "sentiment.negative"
	KeySentimentMixed        = "sentiment.mixed"

	// Product summary
	KeySummaryName      = "product.summary.name"
	KeySummaryCategory  = "product.summary.category"
	KeySummaryPrice     = "product.summary.price"
	KeySummaryRating    = "product.summary.rating"
	KeySummarySentiment = "product.summary.sentiment"
	KeySummaryComments  = "product.summary.comments"
	KeySummaryFavorites = "product.summary.favorites"
	KeySummaryColor     = "product.summary.color"

	// Analysis
	KeyCategoryNotFound = "category.not_found"

	// Context document sections
	KeyCtxSectionOverview          = "context.section.overview"
	KeyCtxOverviewTotalProducts    = "context.overview.total_products"
	KeyCtxOverviewTotalCategories  = "context.overview.total_categories"
	KeyCtxOverviewRatedProducts    = "context.overview.rated_products"
	KeyCtxOverviewCommentedProduct = "context.overview.commented_products"
	KeyCtxOverviewAverageRating    = "context.overview.average_rating"
	KeyCtxOverviewTrendingCount    = "context.overview.trending_count"
	KeyCtxSectionCategories        = "context.section.categories"
	KeyCtxCategoriesLine           = "context.categories.line"
	KeyCtxSectionSentiment         = "context.section.sentiment"
	KeyCtxSentimentAnalyzed        = "context.sentiment.analyzed"
	KeyCtxSentimentTotal           = "context.sentiment.total"
	KeyCtxSentimentPositive        = "context.sentiment.positive"
	KeyCtxSentimentNegative        = "context.sentiment.negative"
	KeyCtxSentimentNeutral         = "context.sentiment.neutral"
	KeyCtxSectionDiscussed         = "context.section.discussed"
	KeyCtxProductHeader            = "context.product.header"
	KeyCtxDiscussedCounts          = "context.discussed.counts"
	KeyCtxDiscussedTopPositive     = "context.discussed.top_positive"
	KeyCtxDiscussedTopNegative     = "context.discussed.top_negative"
	KeyCtxSectionEngagement        = "context.section.engagement"
	KeyCtxEngagementLine           = "context.engagement.line"
	KeyCtxSectionPolarizing        = "context.section.polarizing"
	KeyCtxPolarizingLine           = "context.polarizing.line"
	KeyCtxSectionBestValue         = "context.section.best_value"
	KeyCtxBestValueLine            = "context.best_value.line"
	KeyCtxSectionPriceRanges       = "context.section.price_ranges"
	KeyCtxPriceRangeLine           = "context.price_ranges.line"
	KeyCtxSectionCategoryTop       = "context.section.category_top"
	KeyCtxCategoryTopHeader        = "context.category_top.header"

	// Quick stats
	KeyStatsTotalProducts     = "stats.total_products"
	KeyStatsTotalCategories   = "stats.total_categories"
	KeyStatsAverageRating     = "stats.average_rating"
	KeyStatsCommentedProducts = "stats.commented_products"
	KeyStatsTotalComments     = "stats.total_comments"
	KeyStatsPositiveRatio     = "stats.positive_ratio"
	KeyStatsTrending          = "stats.trending"

	// Chat service
	KeyChatLoaded = "chat.loaded"
	KeyChatReset  = "chat.reset"

	// API errors
	KeyErrProductNotFound  = "error.product_not_found"
	KeyErrMessageRequired  = "error.message_required"
	KeyErrMessageEmpty     = "error.message_empty"
	KeyErrRateLimited      = "error.rate_limited"
	KeyErrValidationFailed = "error.validation_failed"
)
