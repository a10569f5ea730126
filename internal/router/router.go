// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hazaldoster/beautybot/internal/config"
	"github.com/hazaldoster/beautybot/internal/handlers"
	"github.com/hazaldoster/beautybot/internal/middleware"
	"github.com/hazaldoster/beautybot/internal/services"
)

func Initialize(cfg *config.Config, analysisService *services.AnalysisService, chatService *services.ChatService, log *logrus.Logger) *gin.Engine {
	// Initialize handlers
	productHandler := handlers.NewProductHandler(analysisService)
	insightHandler := handlers.NewInsightHandler(analysisService)
	chatHandler := handlers.NewChatHandler(chatService, log)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit(cfg.RateLimit.GeneralPerSecond))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", productHandler.GetCategories)
			categories.GET("/:category/analysis", productHandler.GetCategoryAnalysis)
		}

		// Analysis routes
		v1.GET("/stats", insightHandler.GetStats)
		v1.GET("/insights", insightHandler.GetInsights)
		v1.GET("/insights/full", insightHandler.GetFullInsights)

		// Chat routes
		chat := v1.Group("/chat")
		chat.Use(middleware.ChatRateLimit(cfg.RateLimit.ChatPerMinute))
		{
			chat.POST("", chatHandler.Chat)
			chat.POST("/reset", chatHandler.Reset)
		}
	}

	return r
}
