package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := LoadConfig()
	assert.Equal(t, "OpenAI", cfg.Provider)
	assert.Equal(t, "gpt-3.5-turbo", cfg.Model)
	assert.Equal(t, 5, cfg.PathCount)
	assert.Equal(t, 0.7, cfg.Temperature)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_ProviderSelectsCredential(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg := LoadConfig()
	assert.Equal(t, "Gemini", cfg.Provider)
	assert.Equal(t, "g-key", cfg.APIKey)
}

func TestValidate_MissingCredentialIsFatal(t *testing.T) {
	cfg := &Config{Provider: "OpenAI", PathCount: 5, Temperature: 0.7}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestValidate_RejectsBadSamplingParams(t *testing.T) {
	cfg := &Config{Provider: "OpenAI", APIKey: "sk", PathCount: 0, Temperature: 0.7}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Provider: "OpenAI", APIKey: "sk", PathCount: 5, Temperature: 0}
	assert.Error(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PATH_COUNT", "7")
	t.Setenv("LLM_TEMPERATURE", "1.1")
	t.Setenv("LLM_MODEL", "gpt-4o-mini")

	cfg := LoadConfig()
	assert.Equal(t, 7, cfg.PathCount)
	assert.Equal(t, 1.1, cfg.Temperature)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
}

func TestLoadConfig_BadNumbersFallBack(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PATH_COUNT", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 5, cfg.PathCount)
}
