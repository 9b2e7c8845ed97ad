package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// New builds the generation client selected by cfg.Provider. The provider
// name is matched case-insensitively and defaults to openai.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (Client, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = "openai"
	}

	switch provider {
	case "openai":
		return NewOpenAIClient(cfg, logger), nil
	case "gemini":
		return NewGeminiClient(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
