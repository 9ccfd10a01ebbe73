package advice

import (
	"context"
	"fmt"
	"strings"
)

// Generator defines the interface for text-generation providers.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds provider settings for the advice service.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// NewGenerator creates a generator for the configured provider. It returns
// nil (and no error) when no API key is configured, which disables the
// feature gracefully.
func NewGenerator(cfg Config) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	switch strings.ToLower(cfg.Provider) {
	case "", "gemini":
		return newGeminiGenerator(cfg)
	case "openai":
		return newOpenAIGenerator(cfg)
	default:
		return nil, fmt.Errorf("unsupported advice provider: %s", cfg.Provider)
	}
}
