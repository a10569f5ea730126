// internal/handlers/insights.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hazaldoster/beautybot/internal/services"
	"github.com/hazaldoster/beautybot/internal/utils"
)

type InsightHandler struct {
	analysisService *services.AnalysisService
}

func NewInsightHandler(analysisService *services.AnalysisService) *InsightHandler {
	return &InsightHandler{analysisService: analysisService}
}

// GET /stats
func (h *InsightHandler) GetStats(c *gin.Context) {
	analyzer, err := h.analysisService.Analyzer()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	overview := analyzer.CatalogOverview()
	sentiment := analyzer.SentimentSummary()

	utils.SuccessResponse(c, gin.H{
		"total_products":         overview.TotalProducts,
		"total_categories":       overview.TotalCategories,
		"categories":             overview.Categories,
		"average_rating":         overview.AverageRating,
		"products_with_comments": overview.ProductsWithComments,
		"total_comments":         sentiment.TotalComments,
		"positive_ratio":         sentiment.PositiveRatio,
		"negative_ratio":         sentiment.NegativeRatio,
		"trending_count":         overview.TrendingCount,
	})
}

// GET /insights
func (h *InsightHandler) GetInsights(c *gin.Context) {
	analyzer, err := h.analysisService.Analyzer()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"top_commented":     analyzer.MostDiscussedProducts(5),
		"top_engaging":      analyzer.EngagementLeaders(5),
		"polarizing":        analyzer.PolarizingProducts(5),
		"best_value":        analyzer.BestValueProducts(5),
		"price_by_category": analyzer.PriceComparisonByCategory(),
	})
}

// GET /insights/full
func (h *InsightHandler) GetFullInsights(c *gin.Context) {
	bundle, err := h.analysisService.FullInsights()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, bundle)
}
