// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port        int    `json:"port,omitempty"`         // Listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// RosterConfig holds candidate roster settings.
type RosterConfig struct {
	Dir string `json:"dir,omitempty"` // Directory of roster JSON files
}

// SearchConfig holds search behavior settings.
type SearchConfig struct {
	DefaultLimit int `json:"default_limit,omitempty"` // Result cap applied when a request sets none
}

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	Server  ServerConfig `json:"server,omitempty"`
	Roster  RosterConfig `json:"roster,omitempty"`
	Search  SearchConfig `json:"search,omitempty"`
	Verbose bool         `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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

// Validate checks that the configuration has valid values.
// Required fields are not checked here; those are handled by CLI flag
// validation after merging.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' out of range: %d", c.Server.Port)
	}

	if c.Search.DefaultLimit < 0 {
		return fmt.Errorf("config error: 'search.default_limit' must be non-negative")
	}

	if c.Roster.Dir != "" {
		if _, err := os.Stat(c.Roster.Dir); os.IsNotExist(err) {
			return fmt.Errorf("config error: roster directory not found: %s", c.Roster.Dir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Server.DatabaseURL == "" {
		result.Server.DatabaseURL = defaults.Server.DatabaseURL
	}
	if result.Roster.Dir == "" {
		result.Roster.Dir = defaults.Roster.Dir
	}

	if result.Server.Port == 0 {
		if defaults.Server.Port > 0 {
			result.Server.Port = defaults.Server.Port
		} else {
			result.Server.Port = 8080
		}
	}
	if result.Search.DefaultLimit == 0 {
		if defaults.Search.DefaultLimit > 0 {
			result.Search.DefaultLimit = defaults.Search.DefaultLimit
		} else {
			result.Search.DefaultLimit = 100
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
