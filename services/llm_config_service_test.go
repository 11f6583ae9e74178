package services

import (
	"context"
	"testing"

	"go_trustedbot_backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLLMConfigService() *LLMConfigService {
	cfg := &config.Config{
		Provider: "OpenAI",
		Model:    "gpt-3.5-turbo",
		APIKey:   "sk-default-key-1234",
	}
	return NewLLMConfigService(newFakeCache(), cfg)
}

func TestGetOrUseDefault_FallsBackToStartupConfig(t *testing.T) {
	s := newTestLLMConfigService()

	got, err := s.GetOrUseDefault(context.Background(), "s1", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "OpenAI", got.Provider)
	assert.Equal(t, "gpt-3.5-turbo", got.Model)
	assert.Equal(t, "sk-default-key-1234", got.APIKey)
	assert.Equal(t, "s1", got.SessionID)
}

func TestGetOrUseDefault_FullRequestConfigWins(t *testing.T) {
	s := newTestLLMConfigService()

	got, err := s.GetOrUseDefault(context.Background(), "s1", "sk-other", "claude-3-haiku", "Claude")
	require.NoError(t, err)
	assert.Equal(t, "Claude", got.Provider)
	assert.Equal(t, "claude-3-haiku", got.Model)
	assert.Equal(t, "sk-other", got.APIKey)
}

func TestGetOrUseDefault_PartialOverrideMergesDefaults(t *testing.T) {
	s := newTestLLMConfigService()

	got, err := s.GetOrUseDefault(context.Background(), "s1", "", "gpt-4o", "")
	require.NoError(t, err)
	assert.Equal(t, "OpenAI", got.Provider)
	assert.Equal(t, "gpt-4o", got.Model)
	assert.Equal(t, "sk-default-key-1234", got.APIKey)
}

func TestSessionLLMConfig_RoundTrip(t *testing.T) {
	s := newTestLLMConfigService()
	ctx := context.Background()

	require.NoError(t, s.SetSessionLLMConfig(ctx, "s9", &LLMConfig{
		APIKey:   "sk-session",
		Model:    "gemini-1.5-flash",
		Provider: "Gemini",
	}))

	got, err := s.GetSessionLLMConfig(ctx, "s9")
	require.NoError(t, err)
	assert.Equal(t, "Gemini", got.Provider)
	assert.Equal(t, "s9", got.SessionID)

	require.NoError(t, s.DeleteSessionLLMConfig(ctx, "s9"))
	_, err = s.GetSessionLLMConfig(ctx, "s9")
	assert.Error(t, err)
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "***", MaskAPIKey("short"))
	assert.Equal(t, "sk-a***wxyz", MaskAPIKey("sk-abcdefgh-wxyz"))
}
