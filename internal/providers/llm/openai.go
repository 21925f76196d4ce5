package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/memobot/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAI wraps the chat-completion API of OpenAI or any compatible hosted
// endpoint (configurable base URL).
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(cfg *config.OpenAIConfig) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAI{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty choices in completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
