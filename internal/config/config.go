// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags. Environment variables (REPORT_*) override file
// values after ApplyEnv.
type Config struct {
	// DefaultCategory is assigned to competitors whose record carries no
	// category and whose payload has no industry_name.
	DefaultCategory string `json:"default_category,omitempty"`
	// CategoryFilter restricts the feature-diff matrix to one category.
	CategoryFilter string `json:"category_filter,omitempty"`
	// SchemaPath points at the normalized report JSON Schema. Defaults to
	// the repo-relative schema when empty.
	SchemaPath string `json:"schema_path,omitempty"`
	// Verbose prints detailed summaries and enables debug logging.
	Verbose bool `json:"verbose,omitempty"`
	// BatchConcurrency bounds parallel payload processing in batch mode.
	BatchConcurrency int `json:"batch_concurrency,omitempty"`
}

// DefaultBatchConcurrency is used when no concurrency is configured.
const DefaultBatchConcurrency = 4

// Load reads configuration from a JSON file.
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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// ApplyEnv overlays REPORT_* environment variables onto the config.
// Callers load .env first (godotenv in main), so dotfile values arrive
// through the same path.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("REPORT_DEFAULT_CATEGORY"); v != "" {
		c.DefaultCategory = v
	}
	if v := os.Getenv("REPORT_CATEGORY_FILTER"); v != "" {
		c.CategoryFilter = v
	}
	if v := os.Getenv("REPORT_SCHEMA_PATH"); v != "" {
		c.SchemaPath = v
	}
	if v := os.Getenv("REPORT_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verbose = b
		}
	}
	if v := os.Getenv("REPORT_BATCH_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.BatchConcurrency = n
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.BatchConcurrency < 0 {
		return fmt.Errorf("config error: 'batch_concurrency' must be non-negative")
	}
	return nil
}

// Concurrency returns the configured batch concurrency or the default.
func (c *Config) Concurrency() int {
	if c.BatchConcurrency > 0 {
		return c.BatchConcurrency
	}
	return DefaultBatchConcurrency
}
