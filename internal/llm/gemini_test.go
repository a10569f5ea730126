// internal/llm/gemini_test.go
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClientRequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(Config{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestChatStreamRequiresInjectedContext(t *testing.T) {
	client, err := NewGeminiClient(Config{APIKey: "test-key"})
	require.NoError(t, err)

	err = client.ChatStream(context.Background(), "merhaba", func(string) error {
		return nil
	})
	assert.ErrorIs(t, err, ErrContextNotInjected)
}

func TestChatStream(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, `data: {"candidates":[{"content":{"role":"model","parts":[{"text":"Merhaba"}]}}]}`+"\n\n")
		fmt.Fprint(w, "\n")
		fmt.Fprint(w, `data: {"candidates":[{"content":{"role":"model","parts":[{"text":", nasıl yardımcı olabilirim?"}]}}]}`+"\n\n")
	}))
	defer srv.Close()

	client, err := NewGeminiClient(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model"})
	require.NoError(t, err)
	client.InjectContext("analiz verileri")

	var chunks []string
	err = client.ChatStream(context.Background(), "merhaba", func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "/models/test-model:streamGenerateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, []string{"Merhaba", ", nasıl yardımcı olabilirim?"}, chunks)

	// Context primer, acknowledgement, then the user turn.
	require.Len(t, gotReq.Contents, 3)
	assert.Equal(t, "user", gotReq.Contents[0].Role)
	assert.Contains(t, gotReq.Contents[0].Parts[0].Text, "analiz verileri")
	assert.Equal(t, "model", gotReq.Contents[1].Role)
	assert.Equal(t, "merhaba", gotReq.Contents[2].Parts[0].Text)
	require.NotNil(t, gotReq.SystemInstruction)
}

func TestChatReplaysHistory(t *testing.T) {
	var turnCounts []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		turnCounts = append(turnCounts, len(req.Contents))

		fmt.Fprint(w, `data: {"candidates":[{"content":{"role":"model","parts":[{"text":"yanıt"}]}}]}`+"\n\n")
	}))
	defer srv.Close()

	client, err := NewGeminiClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)
	client.InjectContext("analiz")

	reply, err := client.Chat(context.Background(), "ilk soru")
	require.NoError(t, err)
	assert.Equal(t, "yanıt", reply)

	_, err = client.Chat(context.Background(), "ikinci soru")
	require.NoError(t, err)

	// The second request replays the first exchange on top of the primer.
	assert.Equal(t, []int{3, 5}, turnCounts)
}

func TestResetConversationKeepsPrimer(t *testing.T) {
	var turnCounts []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		turnCounts = append(turnCounts, len(req.Contents))

		fmt.Fprint(w, `data: {"candidates":[{"content":{"role":"model","parts":[{"text":"yanıt"}]}}]}`+"\n\n")
	}))
	defer srv.Close()

	client, err := NewGeminiClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)
	client.InjectContext("analiz")

	_, err = client.Chat(context.Background(), "ilk soru")
	require.NoError(t, err)

	client.ResetConversation()

	_, err = client.Chat(context.Background(), "temiz sayfa")
	require.NoError(t, err)

	assert.Equal(t, []int{3, 3}, turnCounts)
}

func TestChatStreamAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid key"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client, err := NewGeminiClient(Config{APIKey: "bad-key", BaseURL: srv.URL})
	require.NoError(t, err)
	client.InjectContext("analiz")

	err = client.ChatStream(context.Background(), "merhaba", func(string) error {
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestChatStreamInBandError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `data: {"error":{"message":"quota exceeded"}}`+"\n\n")
	}))
	defer srv.Close()

	client, err := NewGeminiClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)
	client.InjectContext("analiz")

	err = client.ChatStream(context.Background(), "merhaba", func(string) error {
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestInjectContextReplacesHistory(t *testing.T) {
	client, err := NewGeminiClient(Config{APIKey: "test-key"})
	require.NoError(t, err)

	client.InjectContext("ilk analiz")
	client.InjectContext("yeni analiz")

	require.Len(t, client.history, 2)
	assert.Contains(t, client.history[0].Parts[0].Text, "yeni analiz")
}
