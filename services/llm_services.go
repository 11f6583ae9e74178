package services

import (
	"context"
	"fmt"
	"go_trustedbot_backend/config"
	"go_trustedbot_backend/pkg/logging"
	"go_trustedbot_backend/utils"
)

type LLMService struct {
	maxTokens int
}

func NewLLMService(cfg *config.Config) *LLMService {
	return &LLMService{maxTokens: cfg.MaxTokens}
}

// Complete sends one prompt to the configured provider.
func (s *LLMService) Complete(ctx context.Context, prompt string, llmConfig *LLMConfig, temperature float64) (string, error) {
	switch llmConfig.Provider {
	case "OpenAI":
		return utils.CallOpenAI(ctx, prompt, llmConfig.Model, llmConfig.APIKey, temperature, s.maxTokens)
	case "Gemini":
		return utils.CallGemini(ctx, prompt, llmConfig.Model, llmConfig.APIKey, temperature)
	case "Claude":
		return utils.CallClaude(ctx, prompt, llmConfig.Model, llmConfig.APIKey, temperature, s.maxTokens)
	default:
		logging.Logger.Error("invalid provider", "provider", llmConfig.Provider)
		return "", fmt.Errorf("invalid provider")
	}
}
