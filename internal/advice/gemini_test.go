package advice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) *geminiGenerator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	generator, err := newGeminiGenerator(Config{APIKey: "test-key"})
	require.NoError(t, err)
	g, ok := generator.(*geminiGenerator)
	require.True(t, ok)
	g.baseURL = server.URL
	return g
}

func TestGeminiGenerator_Generate(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "contents")

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Spend "},{"text":"less."}]}}]}`))
	})

	text, err := g.Generate(context.Background(), "analyze this")
	require.NoError(t, err)
	assert.Equal(t, "Spend less.", text)
}

func TestGeminiGenerator_Generate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		wantErr string
	}{
		{
			name:    "service error",
			status:  http.StatusInternalServerError,
			body:    `{"error":"boom"}`,
			wantErr: "status 500",
		},
		{
			name:    "no candidates",
			status:  http.StatusOK,
			body:    `{"candidates":[]}`,
			wantErr: "no candidates",
		},
		{
			name:    "malformed response",
			status:  http.StatusOK,
			body:    `{not json`,
			wantErr: "failed to parse response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGemini(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := g.Generate(context.Background(), "analyze this")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOpenAIGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Budget better."}}]}`))
	}))
	t.Cleanup(server.Close)

	generator, err := newOpenAIGenerator(Config{APIKey: "test-key"})
	require.NoError(t, err)
	g, ok := generator.(*openAIGenerator)
	require.True(t, ok)
	g.baseURL = server.URL

	text, err := g.Generate(context.Background(), "analyze this")
	require.NoError(t, err)
	assert.Equal(t, "Budget better.", text)
}
