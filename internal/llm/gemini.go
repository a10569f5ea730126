// internal/llm/gemini.go
package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var (
	ErrMissingAPIKey      = fmt.Errorf("GEMINI_API_KEY is required")
	ErrContextNotInjected = fmt.Errorf("analysis context must be injected before chatting")
)

// systemPrompt steers the model as a Turkish-speaking beauty product expert
// grounded on the injected catalog analysis.
const systemPrompt = `Sen bir güzellik ürünleri uzmanı chatbot'sun. Trendyol'daki güzellik ürünleri veritabanından
elde edilen detaylı analizlere dayanarak kullanıcılara yardımcı oluyorsun.

Görevlerin:
1. Kullanıcıların sorularını veriye dayalı olarak yanıtlamak
2. Ürün önerileri yapmak (puan, yorum, fiyat/performans bazında)
3. Kategori bazında analizler sunmak
4. Yorum ve duygu analizlerini yorumlamak
5. Trend ürünleri ve kutuplaştırıcı ürünleri açıklamak
6. Fiyat karşılaştırmaları yapmak

Kuralların:
- Her zaman Türkçe yanıt ver
- Veriye dayalı konuş, tahmin yapma
- Kullanıcıya samimi ama profesyonel bir dille hitap et
- Fiyatları TL olarak belirt
- Ürün önerirken neden önerdiğini açıkla (yüksek puan, olumlu yorumlar, iyi fiyat/performans vb.)
- Olumsuz yorumları da dürüstçe paylaş, tek taraflı olma
- Eğer bir bilgiye sahip değilsen, bunu açıkça belirt

Aşağıda sana verilen analiz verileri, tüm katalog üzerinden yapılan kapsamlı bir analizdir.
Bu verileri kullanarak kullanıcının sorularını yanıtla.`

const contextPrimerFormat = "İşte güzellik ürünleri veritabanının kapsamlı analizi:\n\n%s\n\n" +
	"Bu verileri kullanarak sorularıma yanıt vereceksin. Hazır mısın?"

const contextAck = "Evet, güzellik ürünleri veritabanının analizini aldım. " +
	"Tüm kategoriler, puanlar, yorumlar, fiyat aralıkları ve trend ürünler hakkında " +
	"detaylı bilgiye sahibim. Sorularınızı yanıtlamaya hazırım!"

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// GeminiClient wraps the Gemini REST API for multi-turn chat. Conversation
// history, including the analysis context primer, is kept on the client so
// every request replays the full conversation.
type GeminiClient struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	httpClient  *http.Client

	mu              sync.Mutex
	history         []chatContent
	contextInjected bool
}

type chatContent struct {
	Role  string     `json:"role"`
	Parts []chatPart `json:"parts"`
}

type chatPart struct {
	Text string `json:"text"`
}

type generateRequest struct {
	SystemInstruction *chatContent     `json:"system_instruction,omitempty"`
	Contents          []chatContent    `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content chatContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewGeminiClient(cfg Config) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-3-flash-preview"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	return &GeminiClient{
		apiKey:      cfg.APIKey,
		baseURL:     baseURL,
		model:       model,
		temperature: temperature,
		httpClient:  &http.Client{Timeout: timeout},
	}, nil
}

// InjectContext seeds the conversation with the catalog analysis as the
// first user turn plus a fixed model acknowledgement, replacing any prior
// history.
func (c *GeminiClient) InjectContext(analysisContext string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = []chatContent{
		{Role: "user", Parts: []chatPart{{Text: fmt.Sprintf(contextPrimerFormat, analysisContext)}}},
		{Role: "model", Parts: []chatPart{{Text: contextAck}}},
	}
	c.contextInjected = true
}

// ChatStream sends a user message and invokes emit for each streamed reply
// chunk. The full reply is appended to the conversation history.
func (c *GeminiClient) ChatStream(ctx context.Context, userMessage string, emit func(chunk string) error) error {
	c.mu.Lock()
	if !c.contextInjected {
		c.mu.Unlock()
		return ErrContextNotInjected
	}
	c.history = append(c.history, chatContent{Role: "user", Parts: []chatPart{{Text: userMessage}}})
	contents := make([]chatContent, len(c.history))
	copy(contents, c.history)
	c.mu.Unlock()

	payload := generateRequest{
		SystemInstruction: &chatContent{Parts: []chatPart{{Text: systemPrompt}}},
		Contents:          contents,
		GenerationConfig:  generationConfig{Temperature: c.temperature},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gemini error: status %d: %s", resp.StatusCode, string(respBody))
	}

	var full strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" {
			continue
		}

		var parsed generateResponse
		if err := json.Unmarshal([]byte(data), &parsed); err != nil {
			return fmt.Errorf("failed to parse stream chunk: %w", err)
		}
		if parsed.Error != nil {
			return fmt.Errorf("gemini error: %s", parsed.Error.Message)
		}

		for _, candidate := range parsed.Candidates {
			for _, p := range candidate.Content.Parts {
				if p.Text == "" {
					continue
				}
				full.WriteString(p.Text)
				if err := emit(p.Text); err != nil {
					return err
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stream: %w", err)
	}

	c.mu.Lock()
	c.history = append(c.history, chatContent{Role: "model", Parts: []chatPart{{Text: full.String()}}})
	c.mu.Unlock()

	return nil
}

// Chat sends a message and returns the complete reply.
func (c *GeminiClient) Chat(ctx context.Context, userMessage string) (string, error) {
	var full strings.Builder
	err := c.ChatStream(ctx, userMessage, func(chunk string) error {
		full.WriteString(chunk)
		return nil
	})
	if err != nil {
		return "", err
	}
	return full.String(), nil
}

// ResetConversation drops all turns except the analysis context primer and
// its acknowledgement.
func (c *GeminiClient) ResetConversation() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.contextInjected && len(c.history) >= 2 {
		c.history = c.history[:2]
		return
	}
	c.history = nil
	c.contextInjected = false
}
