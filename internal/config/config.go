// Package config provides configuration loading and validation for the
// CLI and the HTTP API.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds the runtime configuration. All fields are optional in a
// config file; missing values fall back to defaults or environment
// variables. Once resolved, the configuration is treated as immutable:
// thresholds are handed to the scoring engine at construction and never
// mutated afterwards.
type Config struct {
	// Scoring thresholds
	HireThreshold       float64 `json:"hire_threshold,omitempty" validate:"gte=0,lte=100"`
	StrongHireThreshold float64 `json:"strong_hire_threshold,omitempty" validate:"gte=0,lte=100,gtefield=HireThreshold"`

	// Server
	Port   int    `json:"port,omitempty" validate:"gte=1,lte=65535"`
	APIKey string `json:"api_key,omitempty"`

	// Output
	LogJSON bool `json:"log_json,omitempty"`
	Verbose bool `json:"verbose,omitempty"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		HireThreshold:       70,
		StrongHireThreshold: 85,
		Port:                8080,
	}
}

// Load reads configuration from a JSON file. Decoding starts from the
// defaults, so fields absent from the file keep their default values
// while explicitly set fields win — including an explicit zero.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a copy of the config with environment overrides applied:
// HIRE_THRESHOLD, STRONG_HIRE_THRESHOLD, PORT, API_KEY, LOG_JSON.
func (c Config) FromEnv() (Config, error) {
	result := c

	if v := os.Getenv("HIRE_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return result, fmt.Errorf("invalid HIRE_THRESHOLD %q: %w", v, err)
		}
		result.HireThreshold = threshold
	}
	if v := os.Getenv("STRONG_HIRE_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return result, fmt.Errorf("invalid STRONG_HIRE_THRESHOLD %q: %w", v, err)
		}
		result.StrongHireThreshold = threshold
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return result, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		result.Port = port
	}
	if v := os.Getenv("API_KEY"); v != "" {
		result.APIKey = v
	}
	if v := os.Getenv("LOG_JSON"); v != "" {
		logJSON, err := strconv.ParseBool(v)
		if err != nil {
			return result, fmt.Errorf("invalid LOG_JSON %q: %w", v, err)
		}
		result.LogJSON = logJSON
	}

	return result, nil
}

// Validate checks value ranges and the threshold ordering.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
