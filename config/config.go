// Package config provides CLI configuration management for the chatstats
// command-line tool. It supports loading configuration from YAML files,
// environment variables, and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat defines the supported output formats for CLI results.
type OutputFormat string

const (
	// OutputFormatText is human-readable plain text output.
	OutputFormatText OutputFormat = "text"
	// OutputFormatJSON is JSON-formatted output for machine processing.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML is YAML-formatted output for machine processing.
	OutputFormatYAML OutputFormat = "yaml"
)

// Default configuration values.
const (
	DefaultTopN         = 10
	DefaultConcurrency  = 4
	DefaultCourseName   = "EDA"
	DefaultOutputFormat = OutputFormatText
	DefaultConfigDir    = ".chatstats"
	DefaultConfigFile   = "config.yaml"
)

// CLIConfig holds the CLI configuration settings.
type CLIConfig struct {
	// TopN is the default number of speakers shown in rankings.
	TopN int `yaml:"top_n"`

	// OutputFormat specifies the default output format for commands.
	OutputFormat OutputFormat `yaml:"output_format"`

	// CourseName labels reports and chart titles.
	CourseName string `yaml:"course_name,omitempty"`

	// PlotDir is where chart PNGs are written. Empty disables plotting
	// unless overridden on the command line.
	PlotDir string `yaml:"plot_dir,omitempty"`

	// Concurrency is the number of transcript files parsed in parallel.
	Concurrency int `yaml:"concurrency,omitempty"`

	// Debug enables verbose debug logging.
	Debug bool `yaml:"debug,omitempty"`
}

// DefaultConfig returns a CLIConfig with default values.
func DefaultConfig() *CLIConfig {
	return &CLIConfig{
		TopN:         DefaultTopN,
		OutputFormat: DefaultOutputFormat,
		CourseName:   DefaultCourseName,
		Concurrency:  DefaultConcurrency,
	}
}

// ConfigDir returns the configuration directory path.
// Uses $CHATSTATS_CONFIG_DIR if set, otherwise ~/.chatstats
func ConfigDir() (string, error) {
	if dir := os.Getenv("CHATSTATS_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, DefaultConfigDir), nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFile), nil
}

// LoadConfig loads the CLI configuration from file and environment variables.
// Configuration is loaded in this order (later sources override earlier):
// 1. Default values
// 2. Config file (~/.chatstats/config.yaml or $CHATSTATS_CONFIG_DIR/config.yaml)
// 3. Environment variables (CHATSTATS_TOP_N, CHATSTATS_OUTPUT_FORMAT, ...)
func LoadConfig() (*CLIConfig, error) {
	cfg := DefaultConfig()

	configPath, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("getting config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(cfg *CLIConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var fileCfg CLIConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if fileCfg.TopN != 0 {
		cfg.TopN = fileCfg.TopN
	}
	if fileCfg.OutputFormat != "" {
		cfg.OutputFormat = fileCfg.OutputFormat
	}
	if fileCfg.CourseName != "" {
		cfg.CourseName = fileCfg.CourseName
	}
	if fileCfg.PlotDir != "" {
		cfg.PlotDir = fileCfg.PlotDir
	}
	if fileCfg.Concurrency != 0 {
		cfg.Concurrency = fileCfg.Concurrency
	}
	if fileCfg.Debug {
		cfg.Debug = true
	}

	return nil
}

// loadFromEnv overlays configuration from environment variables.
func loadFromEnv(cfg *CLIConfig) {
	if v := os.Getenv("CHATSTATS_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TopN = n
		}
	}
	if v := os.Getenv("CHATSTATS_OUTPUT_FORMAT"); v != "" {
		cfg.OutputFormat = OutputFormat(strings.ToLower(v))
	}
	if v := os.Getenv("CHATSTATS_COURSE_NAME"); v != "" {
		cfg.CourseName = v
	}
	if v := os.Getenv("CHATSTATS_PLOT_DIR"); v != "" {
		cfg.PlotDir = v
	}
	if v := os.Getenv("CHATSTATS_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Concurrency = n
		}
	}
	if v := os.Getenv("CHATSTATS_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}

// Validate checks that the configuration is usable.
func (c *CLIConfig) Validate() error {
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1, got %d", c.TopN)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if !c.OutputFormat.IsValid() {
		return fmt.Errorf("invalid output format %q (valid: text, json, yaml)", c.OutputFormat)
	}
	return nil
}

// IsValid reports whether the output format is one of the supported values.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML:
		return true
	}
	return false
}

// String returns the output format as a string.
func (f OutputFormat) String() string {
	return string(f)
}

// SaveConfig writes the configuration to the config file, creating the
// config directory if needed.
func SaveConfig(cfg *CLIConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	path := filepath.Join(dir, DefaultConfigFile)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
