package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go_trustedbot_backend/config"
	"go_trustedbot_backend/platform/cache"
)

// LLMConfig is the provider configuration used for one session.
type LLMConfig struct {
	APIKey    string `json:"api_key"`
	Model     string `json:"model"`
	Provider  string `json:"provider"`
	SessionID string `json:"session_id"`
}

func (c *LLMConfig) MarshalBinary() ([]byte, error) {
	return json.Marshal(c)
}

func (c *LLMConfig) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, c)
}

// LLMConfigService keeps per-session provider overrides, falling back to the
// process-wide configuration loaded at startup.
type LLMConfigService struct {
	typedCache *cache.TypedCache[LLMConfig]
	cacheTTL   time.Duration
	defaults   LLMConfig
}

func NewLLMConfigService(cacheService cache.CacheService, cfg *config.Config) *LLMConfigService {
	return &LLMConfigService{
		typedCache: cache.NewTypedCache[LLMConfig](cacheService),
		cacheTTL:   30 * time.Minute,
		defaults: LLMConfig{
			APIKey:   cfg.APIKey,
			Model:    cfg.Model,
			Provider: cfg.Provider,
		},
	}
}

func (s *LLMConfigService) SetSessionLLMConfig(ctx context.Context, sessionID string, config *LLMConfig) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID cannot be empty")
	}

	config.SessionID = sessionID
	cacheKey := s.getCacheKey(sessionID)

	return s.typedCache.Set(cacheKey, *config, s.cacheTTL)
}

func (s *LLMConfigService) GetSessionLLMConfig(ctx context.Context, sessionID string) (*LLMConfig, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID cannot be empty")
	}

	cacheKey := s.getCacheKey(sessionID)

	config, exists, err := s.typedCache.Get(cacheKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get LLM config for session %s: %w", sessionID, err)
	}
	if !exists {
		return nil, fmt.Errorf("LLM config not found for session %s", sessionID)
	}

	return &config, nil
}

// GetOrUseDefault prefers a full config from the request, then the cached
// session config, then the startup defaults. Partial request fields override
// whatever was resolved.
func (s *LLMConfigService) GetOrUseDefault(ctx context.Context, sessionID, apiKey, model, provider string) (*LLMConfig, error) {
	if apiKey != "" && model != "" && provider != "" {
		config := &LLMConfig{
			APIKey:    apiKey,
			Model:     model,
			Provider:  provider,
			SessionID: sessionID,
		}
		// cache update must not block the request
		go func() {
			_ = s.SetSessionLLMConfig(context.Background(), sessionID, config)
		}()
		return config, nil
	}

	resolved := s.defaults
	resolved.SessionID = sessionID
	if cached, err := s.GetSessionLLMConfig(ctx, sessionID); err == nil {
		resolved = *cached
	}

	if apiKey != "" {
		resolved.APIKey = apiKey
	}
	if model != "" {
		resolved.Model = model
	}
	if provider != "" {
		resolved.Provider = provider
	}

	if resolved.APIKey == "" {
		return nil, fmt.Errorf("no API credential resolved for session %s", sessionID)
	}

	return &resolved, nil
}

func (s *LLMConfigService) DeleteSessionLLMConfig(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID cannot be empty")
	}

	cacheKey := s.getCacheKey(sessionID)
	return s.typedCache.Delete(cacheKey)
}

func (s *LLMConfigService) getCacheKey(sessionID string) string {
	return fmt.Sprintf("llm_config:session:%s", sessionID)
}

// MaskAPIKey hides most of an API key for logging.
func MaskAPIKey(apiKey string) string {
	if len(apiKey) <= 8 {
		return "***"
	}
	return apiKey[:4] + "***" + apiKey[len(apiKey)-4:]
}
