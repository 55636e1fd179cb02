// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Marlon154/boardgame-search/internal/constants"
)

const defaultConfigFile = "config.json"

// Config holds the application configuration.
// It supports loading from a JSON file with environment variable overrides.
type Config struct {
	Port     string `json:"PORT"`
	LogLevel string `json:"LOG_LEVEL"`

	// Upstream provider settings
	BGGBaseURL  string `json:"BGG_BASE_URL"`
	BGGAPIToken string `json:"BGG_API_TOKEN"`

	// Search cache settings
	CacheSize       int `json:"CACHE_SIZE"`
	CacheTTLMinutes int `json:"CACHE_TTL_MINUTES"`

	// Upstream throttling
	ThrottleIntervalSeconds   int `json:"THROTTLE_INTERVAL_SECONDS"`
	ThrottleRetryDelaySeconds int `json:"THROTTLE_RETRY_DELAY_SECONDS"`
	ThrottleMaxRetries        int `json:"THROTTLE_MAX_RETRIES"`

	// Saved-games storage
	DatabasePath string `json:"DATABASE_PATH"`
}

// Load reads configuration from an optional JSON file and environment
// variables. Environment variables take precedence over file values.
// Returns an error if the configuration is invalid.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                      constants.DefaultPort,
		LogLevel:                  constants.DefaultLogLevel,
		BGGBaseURL:                constants.DefaultBGGBaseURL,
		CacheSize:                 constants.DefaultCacheSize,
		CacheTTLMinutes:           constants.DefaultCacheTTLMinutes,
		ThrottleIntervalSeconds:   int(constants.MinRequestInterval / time.Second),
		ThrottleRetryDelaySeconds: int(constants.ThrottleRetryDelay / time.Second),
		ThrottleMaxRetries:        constants.MaxThrottleRetries,
		DatabasePath:              "./games.db",
	}

	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if baseURL := os.Getenv("BGG_BASE_URL"); baseURL != "" {
		c.BGGBaseURL = baseURL
	}
	if token := os.Getenv("BGG_API_TOKEN"); token != "" {
		c.BGGAPIToken = token
	}
	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		c.DatabasePath = dbPath
	}

	setIntFromEnv("CACHE_SIZE", &c.CacheSize)
	setIntFromEnv("CACHE_TTL_MINUTES", &c.CacheTTLMinutes)
	setIntFromEnv("THROTTLE_INTERVAL_SECONDS", &c.ThrottleIntervalSeconds)
	setIntFromEnv("THROTTLE_RETRY_DELAY_SECONDS", &c.ThrottleRetryDelaySeconds)
	setIntFromEnv("THROTTLE_MAX_RETRIES", &c.ThrottleMaxRetries)
}

func setIntFromEnv(key string, dst *int) {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			*dst = n
		}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.BGGBaseURL == "" {
		return fmt.Errorf("BGG_BASE_URL must not be empty")
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("CACHE_SIZE must be positive, got %d", c.CacheSize)
	}
	if c.CacheTTLMinutes <= 0 {
		return fmt.Errorf("CACHE_TTL_MINUTES must be positive, got %d", c.CacheTTLMinutes)
	}
	if c.ThrottleIntervalSeconds <= 0 {
		return fmt.Errorf("THROTTLE_INTERVAL_SECONDS must be positive, got %d", c.ThrottleIntervalSeconds)
	}
	if c.ThrottleRetryDelaySeconds <= 0 {
		return fmt.Errorf("THROTTLE_RETRY_DELAY_SECONDS must be positive, got %d", c.ThrottleRetryDelaySeconds)
	}
	if c.ThrottleMaxRetries <= 0 {
		return fmt.Errorf("THROTTLE_MAX_RETRIES must be positive, got %d", c.ThrottleMaxRetries)
	}
	return nil
}

// CacheTTL returns the configured cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// ThrottleInterval returns the configured minimum gap between upstream
// requests as a duration.
func (c *Config) ThrottleInterval() time.Duration {
	return time.Duration(c.ThrottleIntervalSeconds) * time.Second
}

// ThrottleRetryDelay returns the configured delay before a throttled
// request is retried as a duration.
func (c *Config) ThrottleRetryDelay() time.Duration {
	return time.Duration(c.ThrottleRetryDelaySeconds) * time.Second
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
