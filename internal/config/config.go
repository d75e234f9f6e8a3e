// ABOUTME: Centralized configuration for the talent warehouse
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the warehouse services
type Config struct {
	// Storage settings. Empty paths resolve to the XDG data directory.
	DBPath     string
	ReportsDir string

	// HTTP server settings
	HTTPAddr        string
	HTTPTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Search settings
	SuggestionLimit int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		DBPath:          os.Getenv("TALENT_DB_PATH"),
		ReportsDir:      os.Getenv("TALENT_REPORTS_DIR"),
		HTTPAddr:        getEnv("TALENT_HTTP_ADDR", ":8080"),
		HTTPTimeout:     getEnvDuration("TALENT_HTTP_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvDuration("TALENT_SHUTDOWN_TIMEOUT", 10*time.Second),
		SuggestionLimit: getEnvInt("TALENT_SUGGESTION_LIMIT", 30),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.SuggestionLimit < 1 || c.SuggestionLimit > 500 {
		return fmt.Errorf("TALENT_SUGGESTION_LIMIT must be 1-500, got %d", c.SuggestionLimit)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("TALENT_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("TALENT_SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
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
