// internal/services/chat_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hazaldoster/beautybot/internal/i18n"
	"github.com/hazaldoster/beautybot/internal/llm"
)

var ErrChatNotInitialized = errors.New("chatbot not initialized")

// ChatService ties the catalog analysis to the LLM: it loads the data,
// injects the context document into the model's conversation, and relays
// user turns.
type ChatService struct {
	analysis    *AnalysisService
	client      *llm.GeminiClient
	log         *logrus.Logger
	initialized bool
}

func NewChatService(analysis *AnalysisService, client *llm.GeminiClient, log *logrus.Logger) *ChatService {
	return &ChatService{analysis: analysis, client: client, log: log}
}

// Initialize loads and analyzes the data, then primes the LLM with the
// context document. Returns a localized status line about the loaded data.
func (s *ChatService) Initialize() (string, error) {
	if err := s.analysis.Initialize(); err != nil {
		return "", err
	}

	doc, err := s.analysis.LLMContext()
	if err != nil {
		return "", err
	}
	s.client.InjectContext(doc)
	s.initialized = true

	catalog, err := s.analysis.Catalog()
	if err != nil {
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"context_bytes": len(doc),
		"products":      catalog.TotalProducts(),
	}).Info("LLM context injected")

	return i18n.T(s.analysis.lang, i18n.KeyChatLoaded,
		catalog.TotalProducts(), len(catalog.Categories())), nil
}

// ChatStream relays a user message and emits reply chunks as they arrive.
func (s *ChatService) ChatStream(ctx context.Context, userMessage string, emit func(chunk string) error) error {
	if !s.initialized {
		return ErrChatNotInitialized
	}
	return s.client.ChatStream(ctx, userMessage, emit)
}

// Chat relays a user message and returns the complete reply.
func (s *ChatService) Chat(ctx context.Context, userMessage string) (string, error) {
	if !s.initialized {
		return "", ErrChatNotInitialized
	}
	return s.client.Chat(ctx, userMessage)
}

// ResetConversation clears the chat turns while keeping the analysis
// context in place.
func (s *ChatService) ResetConversation() {
	s.client.ResetConversation()
}

// QuickStats renders the short localized stats summary without the LLM.
func (s *ChatService) QuickStats() (string, error) {
	if !s.initialized {
		return "", ErrChatNotInitialized
	}

	analyzer, err := s.analysis.Analyzer()
	if err != nil {
		return "", err
	}

	lang := s.analysis.lang
	overview := analyzer.CatalogOverview()
	sentiment := analyzer.SentimentSummary()

	lines := []string{
		i18n.T(lang, i18n.KeyStatsTotalProducts, overview.TotalProducts),
		i18n.T(lang, i18n.KeyStatsTotalCategories, overview.TotalCategories),
		i18n.T(lang, i18n.KeyStatsAverageRating, floatText(overview.AverageRating)),
		i18n.T(lang, i18n.KeyStatsCommentedProducts, overview.ProductsWithComments),
		i18n.T(lang, i18n.KeyStatsTotalComments, sentiment.TotalComments),
		i18n.T(lang, i18n.KeyStatsPositiveRatio, percent(sentiment.PositiveRatio)),
		i18n.T(lang, i18n.KeyStatsTrending, overview.TrendingCount),
	}
	return strings.Join(lines, "\n"), nil
}
