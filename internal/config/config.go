// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultParseTimeoutSeconds bounds a single AI parse call
const DefaultParseTimeoutSeconds = 30

// Config is the CLI configuration loadable from a JSON file. All fields
// are optional; missing values use defaults or come from CLI flags and
// the environment.
type Config struct {
	// Behavior
	APIKey              string `json:"api_key,omitempty"`               // Gemini API key
	DatabaseURL         string `json:"database_url,omitempty"`          // PostgreSQL connection URL
	ParseTimeoutSeconds int    `json:"parse_timeout_seconds,omitempty"` // AI parse call timeout
	Verbose             bool   `json:"verbose,omitempty"`               // Print detailed debug information

	// Candidate
	UserID string `json:"user_id,omitempty"` // Opaque user key for DB-backed commands
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv fills credentials from the environment when the file left
// them empty. GEMINI_API_KEY and DATABASE_URL are recognized; a .env
// file, if any, is loaded by main before this runs.
func (c *Config) ApplyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// Validate checks that the configuration has usable values. Required
// fields are not enforced here; command flag validation handles those
// after merging.
func (c *Config) Validate() error {
	if c.ParseTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'parse_timeout_seconds' must be non-negative")
	}
	return nil
}

// ParseTimeout returns the configured AI parse timeout in seconds,
// defaulting when unset.
func (c *Config) ParseTimeout() int {
	if c.ParseTimeoutSeconds > 0 {
		return c.ParseTimeoutSeconds
	}
	return DefaultParseTimeoutSeconds
}
