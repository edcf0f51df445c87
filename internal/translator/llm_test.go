package translator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringstone-ai/tms-translator/internal/llm"
	"github.com/ringstone-ai/tms-translator/internal/report"
)

func newMockLLMServer(t *testing.T, content string, totalTokens int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := `{
			"id": "test-id",
			"object": "chat.completion",
			"model": "test-model",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "` + content + `"},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": ` +
			strconv.Itoa(totalTokens) + `}
		}`
		_, _ = w.Write([]byte(response))
	}))
}

func newTestClient(t *testing.T, url string) *llm.Client {
	t.Helper()
	client, err := llm.NewClient(&llm.Config{
		APIKey:      "test-key",
		APIURL:      url,
		Model:       "test-model",
		MaxTokens:   1000,
		Temperature: 0.3,
		Timeout:     30,
	})
	require.NoError(t, err)
	return client
}

func TestLLMTranslatorTrimsAndCountsUsage(t *testing.T) {
	server := newMockLLMServer(t, "  Hola  ", 30)
	defer server.Close()

	runLog := report.NewLog()
	tr := NewLLMTranslator(newTestClient(t, server.URL), runLog)

	translated, err := tr.Translate(context.Background(), "Hello", "es")
	require.NoError(t, err)
	assert.Equal(t, "Hola", translated)
	assert.Equal(t, 30, runLog.TotalTokens())

	// Usage accumulates across calls
	_, err = tr.Translate(context.Background(), "Goodbye", "es")
	require.NoError(t, err)
	assert.Equal(t, 60, runLog.TotalTokens())
}

func TestLLMTranslatorPropagatesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit_error"}}`))
	}))
	defer server.Close()

	runLog := report.NewLog()
	tr := NewLLMTranslator(newTestClient(t, server.URL), runLog)

	_, err := tr.Translate(context.Background(), "Hello", "es")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")

	// Nothing is counted for a failed call
	assert.Equal(t, 0, runLog.TotalTokens())
}
