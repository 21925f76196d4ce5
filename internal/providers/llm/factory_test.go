package llm

import (
	"context"
	"testing"

	"github.com/sandevgo/memobot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator_Ollama(t *testing.T) {
	gen, err := NewGenerator(context.Background(), &config.AppConfig{LLMProvider: "ollama"})
	require.NoError(t, err)
	assert.IsType(t, &Ollama{}, gen)
}

func TestNewGenerator_OpenAI(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	gen, err := NewGenerator(context.Background(), &config.AppConfig{LLMProvider: "openai"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAI{}, gen)
}

func TestNewGenerator_OpenAIWithoutKeyDegrades(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	gen, err := NewGenerator(context.Background(), &config.AppConfig{LLMProvider: "openai"})
	require.Error(t, err)
	assert.Nil(t, gen)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestNewGenerator_Unknown(t *testing.T) {
	_, err := NewGenerator(context.Background(), &config.AppConfig{LLMProvider: "carrier-pigeon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown llm provider")
}
