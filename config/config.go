// Package config provides tool configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the envguard tool.
// It configures where the schema lives and how reports are produced; the
// validation semantics themselves are entirely schema-driven.
type Config struct {
	Schema   string        `yaml:"schema"`
	EnvFiles []string      `yaml:"env_files"`
	Output   OutputConfig  `yaml:"output"`
	Logging  LoggingConfig `yaml:"logging"`
}

// OutputConfig configures report output.
type OutputConfig struct {
	Format string `yaml:"format"` // "text", "json" or "github"
	Color  bool   `yaml:"color"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadWithFallback tries to load from file, falling back to defaults plus
// environment overrides when no file exists. Projects without an
// envguard.yaml still get a working tool.
func LoadWithFallback(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	var cfg Config
	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// applyEnvOverrides applies ENVGUARD_* environment variables to the
// config. Environment variables always override file-based configuration.
//
//	ENVGUARD_SCHEMA     - schema file path
//	ENVGUARD_ENV_FILES  - comma-separated env file paths
//	ENVGUARD_FORMAT     - output format: text, json or github
//	ENVGUARD_LOG_LEVEL  - log level: debug, info, warn, error
//	ENVGUARD_LOG_FORMAT - log format: json or console
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ENVGUARD_SCHEMA"); v != "" {
		cfg.Schema = v
	}
	if v := os.Getenv("ENVGUARD_ENV_FILES"); v != "" {
		cfg.EnvFiles = nil
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.EnvFiles = append(cfg.EnvFiles, p)
			}
		}
	}
	if v := os.Getenv("ENVGUARD_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("ENVGUARD_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ENVGUARD_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// setDefaults fills in zero values.
func setDefaults(cfg *Config) {
	if cfg.Schema == "" {
		cfg.Schema = "env.schema.yaml"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

// validate rejects values no component can act on.
func validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "text", "json", "github":
	default:
		return fmt.Errorf("output format %q: must be text, json or github", cfg.Output.Format)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q: must be debug, info, warn or error", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log format %q: must be json or console", cfg.Logging.Format)
	}

	return nil
}
