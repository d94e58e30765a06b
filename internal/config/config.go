// Package config provides configuration loading and validation for the
// resume studio CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the application configuration loadable from a JSON file. All
// fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	// Storage
	DataDir     string `json:"data_dir,omitempty"`     // Directory for the file store
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL; takes precedence over DataDir when set

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Identity
	OwnerID string `json:"owner_id,omitempty"` // Owner id used by CLI commands
}

// LoadConfig loads configuration from a JSON file.
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

// FromEnv builds a configuration from environment variables only.
func FromEnv() Config {
	return Config{
		DataDir:     os.Getenv("RESUME_DATA_DIR"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		OwnerID:     os.Getenv("RESUME_OWNER_ID"),
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.OwnerID == "" {
		result.OwnerID = defaults.OwnerID
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DataDir == "" && result.DatabaseURL == "" {
		result.DataDir = defaultDataDir()
	}
	return result
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.DataDir == "" && c.DatabaseURL == "" {
		return fmt.Errorf("config error: either 'data_dir' or 'database_url' must be set")
	}
	return nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".resume-studio"
	}
	return filepath.Join(home, ".resume-studio")
}
