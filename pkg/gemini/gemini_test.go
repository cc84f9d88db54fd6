package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fridge-inventory/pkg/gemini"
)

func newTestServer(t *testing.T, status int, body string, seen *map[string]any) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if seen != nil {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestConfig_Validate(t *testing.T) {
	cfg := gemini.Config{}
	assert.Error(t, cfg.Validate())

	cfg = gemini.Config{APIKey: "k"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, gemini.DefaultModel, cfg.Model)
	assert.Equal(t, gemini.DefaultTimeout, cfg.Timeout)
}

func TestGenerateContent(t *testing.T) {
	var seen map[string]any
	ts := newTestServer(t, http.StatusOK, `{
		"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"actions\":"}, {"text": "[]}"}]}}],
		"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 3, "totalTokenCount": 15}
	}`, &seen)

	client, err := gemini.New(context.Background(), gemini.Config{APIKey: "test-key", BaseURL: ts.URL})
	require.NoError(t, err)

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "be brief"}}},
		Messages:          []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "dodaj mleko"}}}},
		Temperature:       0.1,
		JSONOutput:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, `{"actions":[]}`, resp.Text())
	assert.Equal(t, 12, resp.Usage.InputTokens)
	assert.Equal(t, 3, resp.Usage.OutputTokens)
	assert.Equal(t, 15, resp.Usage.TotalTokens)
	assert.Contains(t, seen, "contents")
	assert.Contains(t, seen, "systemInstruction")
	assert.Equal(t, gemini.DefaultModel, client.Model())
}

func TestGenerateContent_RateLimited(t *testing.T) {
	ts := newTestServer(t, http.StatusTooManyRequests,
		`{"error": {"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"}}`, nil)

	client, err := gemini.New(context.Background(), gemini.Config{APIKey: "test-key", BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{{Parts: []gemini.Part{{Text: "hi"}}}},
	})
	assert.ErrorIs(t, err, gemini.ErrRateLimited)
}

func TestGenerateContent_ServerError(t *testing.T) {
	ts := newTestServer(t, http.StatusInternalServerError,
		`{"error": {"code": 500, "message": "boom", "status": "INTERNAL"}}`, nil)

	client, err := gemini.New(context.Background(), gemini.Config{APIKey: "test-key", BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{{Parts: []gemini.Part{{Text: "hi"}}}},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, gemini.ErrRateLimited)
}
