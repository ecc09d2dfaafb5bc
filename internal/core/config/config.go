// Package config handles configuration loading and validation for stencil.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/stencil/internal/core/validate"
)

// Config holds the application configuration.
type Config struct {
	// TemplateGlobs are doublestar patterns for template definition files
	// loaded at startup, on top of the built-ins.
	TemplateGlobs []string `yaml:"template_globs"`
	// Output selects the default serialization format.
	Output OutputConfig `yaml:"output"`
	// Quality configures the optional external review hook.
	Quality QualityConfig `yaml:"quality"`
	// Validation overrides validator thresholds. Zero fields keep the
	// built-in defaults.
	Validation validate.Config `yaml:"validation"`
	// LogFile receives structured logs. Empty disables file logging.
	LogFile string `yaml:"log_file"`
	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// OutputConfig selects output behavior.
type OutputConfig struct {
	Format string `yaml:"format"`
	// Color forces styled terminal reports on or off. Nil means auto.
	Color *bool `yaml:"color,omitempty"`
}

// QualityConfig configures the review proxy.
type QualityConfig struct {
	// Endpoint is the HTTP review endpoint. Empty disables the hook.
	Endpoint string `yaml:"endpoint"`
	// TimeoutSeconds bounds a single review call.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Output:     OutputConfig{Format: "yaml"},
		Quality:    QualityConfig{TimeoutSeconds: 10},
		Validation: validate.DefaultConfig(),
		LogLevel:   "info",
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Output.Format == "" {
		c.Output.Format = defaults.Output.Format
	}
	if c.Quality.TimeoutSeconds == 0 {
		c.Quality.TimeoutSeconds = defaults.Quality.TimeoutSeconds
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}
