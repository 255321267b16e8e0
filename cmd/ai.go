/*
Copyright © 2025 studydrop
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/studydrop/studydrop-be/config"
	"github.com/studydrop/studydrop-be/service"
)

// newAIService picks the completion provider from config.
func newAIService(ctx context.Context, cfg *config.Config) (service.AIService, error) {
	switch cfg.AIProvider {
	case "", "openai":
		return service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model), nil
	case "gemini":
		return service.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown ai_provider %q", cfg.AIProvider)
	}
}
