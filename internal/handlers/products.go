// internal/handlers/products.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hazaldoster/beautybot/internal/i18n"
	"github.com/hazaldoster/beautybot/internal/models"
	"github.com/hazaldoster/beautybot/internal/services"
	"github.com/hazaldoster/beautybot/internal/utils"
)

type ProductHandler struct {
	analysisService *services.AnalysisService
}

func NewProductHandler(analysisService *services.AnalysisService) *ProductHandler {
	return &ProductHandler{analysisService: analysisService}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	catalog, err := h.analysisService.Catalog()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	var products []*models.Product
	switch {
	case params.Search != "":
		products = catalog.Search(params.Search, catalog.TotalProducts())
	case params.Category != "":
		products = catalog.GetByCategory(params.Category)
	default:
		products = catalog.Products()
	}

	total := len(products)
	start, end := utils.PageBounds(params, total)

	result := utils.CreatePaginationResult(products[start:end], total, params)
	utils.PaginatedResponse(c, result)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	catalog, err := h.analysisService.Catalog()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	product, ok := catalog.GetByID(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyErrProductNotFound)
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"product": product,
		"summary": product.Summary(lang),
	})
}

// GET /categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	catalog, err := h.analysisService.Catalog()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	counts := catalog.CategoryCounts()
	categories := make([]gin.H, 0, len(counts))
	for _, cat := range catalog.Categories() {
		categories = append(categories, gin.H{
			"category":      cat,
			"product_count": counts[cat],
		})
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
	})
}

// GET /categories/:category/analysis
func (h *ProductHandler) GetCategoryAnalysis(c *gin.Context) {
	analyzer, err := h.analysisService.Analyzer()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	analysis, err := analyzer.CategoryAnalysis(c.Param("category"))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.NotFoundResponse(c, i18n.KeyCategoryNotFound, c.Param("category"))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"analysis": analysis,
	})
}
