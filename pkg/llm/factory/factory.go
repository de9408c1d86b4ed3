package factory

import (
	"context"
	"fmt"

	"mindwell-be/pkg/llm"
	"mindwell-be/pkg/llm/gemini"
	"mindwell-be/pkg/llm/ollama"
)

type Config struct {
	Provider     string
	Model        string
	GeminiAPIKey string
	OllamaURL    string
}

func NewStructuredProvider(ctx context.Context, cfg Config) (llm.StructuredProvider, error) {
	switch cfg.Provider {
	case "gemini", "":
		model := cfg.Model
		if model == "" {
			model = "gemini-1.5-pro"
		}
		return gemini.NewGeminiProvider(ctx, cfg.GeminiAPIKey, model)
	case "ollama":
		baseURL := cfg.OllamaURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
