// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Port           string
	Env            string
	DataDir        string
	WebDir         string
	CacheTTL       time.Duration
	CacheSize      int
	RequestTimeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// Variables from a .env file in the working directory are applied first;
// values already set in the environment take precedence.
func Load() *Config {
	// a missing .env is the normal case outside local development
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "3000"),
		Env:            getEnv("ENV", "development"),
		DataDir:        getEnv("DATA_DIR", "data"),
		WebDir:         getEnv("WEB_DIR", ""),
		CacheTTL:       getDurationEnv("CACHE_TTL_SECONDS", 300) * time.Second,
		CacheSize:      getIntEnv("CACHE_SIZE", 1000),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT_SECONDS", 15) * time.Second,
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("DATA_DIR must not be empty")
	}
	if c.CacheSize <= 0 {
		return errors.New("CACHE_SIZE must be positive")
	}
	if c.CacheTTL <= 0 {
		return errors.New("CACHE_TTL_SECONDS must be positive")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	return time.Duration(getIntEnv(key, defaultSeconds))
}
