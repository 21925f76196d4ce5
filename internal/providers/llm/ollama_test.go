package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sandevgo/memobot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOllama(baseURL string) *Ollama {
	return NewOllama(&config.OllamaConfig{BaseURL: baseURL, Model: "llama3"})
}

func TestOllama_Generate(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantErr    bool
		wantErrMsg string
		want       string
	}{
		{
			name: "successful generation",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/generate", r.URL.Path)
				assert.Equal(t, http.MethodPost, r.Method)
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, `{"response": "Привіт! Чим можу допомогти?"}`)
			},
			want: "Привіт! Чим можу допомогти?",
		},
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"error": "model not found"}`)
			},
			wantErr:    true,
			wantErrMsg: "http 500",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, `{not json`)
			},
			wantErr:    true,
			wantErrMsg: "decode",
		},
		{
			name: "missing response field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, `{"done": true}`)
			},
			wantErr:    true,
			wantErrMsg: "empty response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			got, err := newTestOllama(server.URL).Generate(context.Background(), "test prompt")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOllama_Generate_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"response": "ok"}`)
	}))
	defer server.Close()

	ollama := NewOllama(&config.OllamaConfig{BaseURL: server.URL, Model: "llama3", APIKey: "secret"})
	_, err := ollama.Generate(context.Background(), "test")
	require.NoError(t, err)
}

func TestOllama_Generate_Unreachable(t *testing.T) {
	// Closed server to force a connection error.
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	_, err := newTestOllama(server.URL).Generate(context.Background(), "test")
	require.Error(t, err)
}

func TestOllama_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"models": []}`)
	}))
	defer server.Close()

	require.NoError(t, newTestOllama(server.URL).Ping(context.Background()))
}

func TestOllama_Ping_Down(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	require.Error(t, newTestOllama(server.URL).Ping(context.Background()))
}
