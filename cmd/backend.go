package cmd

import (
	"context"
	"fmt"

	"github.com/spigell/interview-simulator/internal/ai"
	"github.com/spigell/interview-simulator/internal/ai/gemini"
	"github.com/spigell/interview-simulator/internal/secrets"
	"go.uber.org/zap"
)

const modelURLTemplate = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

func newBackend(ctx context.Context, cfg *GeminiConfig, logger *zap.Logger) (ai.Backend, error) {
	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.APIKey,
		File:  cfg.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	url := cfg.URL
	if url == "" {
		url = fmt.Sprintf(modelURLTemplate, cfg.Model)
	}

	return gemini.New(ctx, gemini.Options{
		APIKey:       apiKey,
		Model:        cfg.Model,
		Transport:    cfg.Transport,
		URL:          url,
		BaseURL:      cfg.BaseURL,
		MaxLogLength: cfg.MaxLogLength,
	}, logger)
}
