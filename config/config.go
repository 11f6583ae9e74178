package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HttpPort     string
	AppEnv       string
	AllowOrigins string

	// LLM
	Provider    string // "OpenAI", "Gemini" or "Claude"
	Model       string
	APIKey      string
	PathCount   int     // reasoning paths sampled per question
	Temperature float64 // must stay > 0 so paths can differ
	MaxTokens   int

	// Redis
	RedisURL      string
	RedisPassword string

	// Postgres
	Host     string
	User     string
	Password string
	DBName   string
	Port     string

	// others
	HistoryCacheTTL time.Duration
}

func LoadConfig() *Config {
	provider := getEnv("LLM_PROVIDER", "OpenAI")
	return &Config{
		HttpPort:        os.Getenv("PORT"),
		AppEnv:          os.Getenv("APP_ENV"),
		AllowOrigins:    os.Getenv("ALLOWORIGINS"),
		Provider:        provider,
		Model:           getEnv("LLM_MODEL", "gpt-3.5-turbo"),
		APIKey:          apiKeyFor(provider),
		PathCount:       getEnvInt("PATH_COUNT", 5),
		Temperature:     getEnvFloat("LLM_TEMPERATURE", 0.7),
		MaxTokens:       getEnvInt("LLM_MAX_TOKENS", 2000),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		Host:            os.Getenv("PG_HOST"),
		User:            os.Getenv("PG_USER"),
		Password:        os.Getenv("PG_PASSWORD"),
		DBName:          os.Getenv("PG_DB"),
		Port:            os.Getenv("PG_PORT"),
		HistoryCacheTTL: 2 * time.Hour,
	}
}

// Validate reports fatal misconfiguration before any request is served.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("missing API credential for provider %s (set %s)", c.Provider, keyEnvName(c.Provider))
	}
	if c.PathCount < 1 {
		return fmt.Errorf("PATH_COUNT must be a positive integer, got %d", c.PathCount)
	}
	if c.Temperature <= 0 {
		return fmt.Errorf("LLM_TEMPERATURE must be > 0 for self-consistency sampling, got %v", c.Temperature)
	}
	return nil
}

func apiKeyFor(provider string) string {
	return os.Getenv(keyEnvName(provider))
}

func keyEnvName(provider string) string {
	switch provider {
	case "Gemini":
		return "GEMINI_API_KEY"
	case "Claude":
		return "CLAUDE_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
