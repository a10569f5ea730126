// internal/services/analysis_service.go
package services

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/hazaldoster/beautybot/internal/models"
	"github.com/hazaldoster/beautybot/internal/repository"
)

// ErrNotInitialized signals a query before Initialize; this is a programming
// contract violation, not a data problem.
var ErrNotInitialized = errors.New("analysis service not initialized")

// AnalysisService coordinates loading the product table and running the
// analyzer over it. The catalog is loaded exactly once per service instance.
type AnalysisService struct {
	repo *repository.CSVProductRepository
	lang string
	log  *logrus.Logger

	catalog  *models.Catalog
	analyzer *ProductAnalyzer
}

type CategoryInsight struct {
	Category      string            `json:"category"`
	ProductCount  int               `json:"product_count"`
	AverageRating float64           `json:"average_rating"`
	TotalComments int               `json:"total_comments"`
	PriceRange    models.PriceRange `json:"price_range"`
	TopProducts   []string          `json:"top_products"`
}

// InsightBundle is the complete analysis result set handed to presentation
// layers in one piece.
type InsightBundle struct {
	CatalogOverview  CatalogOverview     `json:"catalog_overview"`
	SentimentSummary SentimentSummary    `json:"sentiment_summary"`
	TopCommented     []DiscussedProduct  `json:"top_commented"`
	TopEngaging      []EngagementLeader  `json:"top_engaging"`
	Polarizing       []PolarizingProduct `json:"polarizing"`
	BestValue        []ValueProduct      `json:"best_value"`
	CategoryInsights []CategoryInsight   `json:"category_insights"`
	LLMContext       string              `json:"llm_context"`
}

func NewAnalysisService(csvPath, lang string, log *logrus.Logger) (*AnalysisService, error) {
	repo, err := repository.NewCSVProductRepository(csvPath, log)
	if err != nil {
		return nil, err
	}
	return &AnalysisService{repo: repo, lang: lang, log: log}, nil
}

// Initialize loads the catalog and prepares the analyzer.
func (s *AnalysisService) Initialize() error {
	catalog, err := s.repo.LoadCatalog()
	if err != nil {
		return err
	}
	s.catalog = catalog
	s.analyzer = NewProductAnalyzer(catalog, s.lang)
	return nil
}

func (s *AnalysisService) Catalog() (*models.Catalog, error) {
	if s.catalog == nil {
		return nil, ErrNotInitialized
	}
	return s.catalog, nil
}

func (s *AnalysisService) Analyzer() (*ProductAnalyzer, error) {
	if s.analyzer == nil {
		return nil, ErrNotInitialized
	}
	return s.analyzer, nil
}

// LLMContext returns the analysis context document for the LLM.
func (s *AnalysisService) LLMContext() (string, error) {
	analyzer, err := s.Analyzer()
	if err != nil {
		return "", err
	}
	return analyzer.ContextDocument(), nil
}

// FullInsights assembles every analysis result into one bundle.
func (s *AnalysisService) FullInsights() (*InsightBundle, error) {
	analyzer, err := s.Analyzer()
	if err != nil {
		return nil, err
	}

	var categoryInsights []CategoryInsight
	for _, cat := range s.catalog.Categories() {
		analysis, err := analyzer.CategoryAnalysis(cat)
		if err != nil {
			continue
		}
		categoryInsights = append(categoryInsights, CategoryInsight{
			Category:      analysis.Category,
			ProductCount:  analysis.ProductCount,
			AverageRating: analysis.AverageRating,
			TotalComments: analysis.TotalComments,
			PriceRange:    analysis.PriceRange,
			TopProducts:   analysis.TopRated,
		})
	}

	return &InsightBundle{
		CatalogOverview:  analyzer.CatalogOverview(),
		SentimentSummary: analyzer.SentimentSummary(),
		TopCommented:     analyzer.MostDiscussedProducts(5),
		TopEngaging:      analyzer.EngagementLeaders(5),
		Polarizing:       analyzer.PolarizingProducts(5),
		BestValue:        analyzer.BestValueProducts(5),
		CategoryInsights: categoryInsights,
		LLMContext:       analyzer.ContextDocument(),
	}, nil
}
