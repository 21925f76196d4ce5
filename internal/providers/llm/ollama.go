package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandevgo/memobot/internal/config"
)

// Ollama talks to a local Ollama daemon through its native completion API.
type Ollama struct {
	baseProvider
}

func NewOllama(cfg *config.OllamaConfig) *Ollama {
	return &Ollama{
		baseProvider: newBaseProvider(cfg.BaseURL, cfg.APIKey, cfg.Model),
	}
}

func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"model":  o.model,
		"prompt": prompt,
		"stream": false,
	}

	resp, err := o.doRequest(ctx, http.MethodPost, "/api/generate", payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned http %d: %s", resp.StatusCode, string(data))
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if result.Response == "" {
		return "", fmt.Errorf("empty response: %s", string(data))
	}
	return result.Response, nil
}

// Ping checks that the daemon is reachable. Used as a startup probe; a
// failing probe is informational, the service still answers offline.
func (o *Ollama) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/api/tags", nil)
	if err != nil {
		return err
	}
	o.authorize(req)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama not available: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}
	return nil
}
