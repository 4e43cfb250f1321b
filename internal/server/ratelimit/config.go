package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Config holds rate limiting configuration. Analysis requests are cheap
// pure computation, so the defaults are generous.
type Config struct {
	Enabled         bool
	Limit           int           // requests per window
	Window          time.Duration // refill window
	Burst           int           // burst capacity, defaults to Limit
	CleanupInterval time.Duration
}

func defaultConfig() Config {
	return Config{
		Enabled:         true,
		Limit:           120,
		Window:          time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	cfg := defaultConfig()

	cfg.Enabled = getEnvBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return &cfg
	}

	cfg.Limit = getEnvInt("RATE_LIMIT_LIMIT", cfg.Limit)
	cfg.Window = getEnvDuration("RATE_LIMIT_WINDOW", cfg.Window)
	cfg.Burst = getEnvInt("RATE_LIMIT_BURST", cfg.Burst)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)

	return &cfg
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
