// ABOUTME: Centralized configuration for the tend CLI and MCP server
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the app.
type Config struct {
	// Charm KV settings
	CharmHost string
	DBName    string
	AutoSync  bool

	// Store settings
	Debounce time.Duration

	// Insight (LLM) settings
	OpenAIKey  string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		CharmHost:  getEnv("CHARM_HOST", "cloud.charm.sh"),
		DBName:     getEnv("TEND_DB", "tend"),
		AutoSync:   getEnvBool("TEND_AUTO_SYNC", false),
		Debounce:   getEnvDuration("TEND_DEBOUNCE", 500*time.Millisecond),
		OpenAIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL:    os.Getenv("TEND_OPENAI_BASE_URL"),
		Model:      getEnv("TEND_OPENAI_MODEL", "gpt-4o-mini"),
		Timeout:    getEnvDuration("TEND_INSIGHT_TIMEOUT", 10*time.Second),
		MaxRetries: getEnvInt("TEND_INSIGHT_MAX_RETRIES", 2),
		RetryDelay: getEnvDuration("TEND_INSIGHT_RETRY_DELAY", 2*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Debounce < 0 {
		return fmt.Errorf("TEND_DEBOUNCE must not be negative, got %s", c.Debounce)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("TEND_INSIGHT_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
