// =============================================================================
// EA Modeler - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. All
// settings have working defaults: the CLI runs with zero setup, and the
// config file only overrides what it names.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/umabot/eamodeler/internal/model"
)

// DefaultConfigFile is the config path probed when --config is not given.
const DefaultConfigFile = "eamodeler.yaml"

// MainConfig holds the application configuration.
type MainConfig struct {
	// OutputDir is the directory generated reports are written to.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory processed input files are moved to when
	// archiving is enabled.
	// Default: "./input_archive"
	ArchiveDir string `yaml:"archive_dir"`

	// LogsDir is the directory error logs for failed runs are written to.
	// Default: "./logs"
	LogsDir string `yaml:"logs_dir"`

	// LogLevel controls logging verbosity: "debug" or "info".
	// The --verbose flag forces "debug".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// DefaultDiagramType is the dialect used when --type is not given.
	// Valid values: "erDiagram", "classDiagram".
	// Default: "erDiagram"
	DefaultDiagramType string `yaml:"default_diagram_type"`

	// ArchiveOnSuccess moves input files to ArchiveDir after a successful
	// run. Default: false
	ArchiveOnSuccess bool `yaml:"archive_on_success"`
}

// Default returns the built-in configuration.
func Default() *MainConfig {
	cfg := &MainConfig{}
	applyDefaults(cfg)
	return cfg
}

// LoadMainConfig loads the configuration from a YAML file, applies defaults
// for unset values and validates the result.
func LoadMainConfig(path string) (*MainConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg MainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *MainConfig) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./input_archive"
	}
	if cfg.LogsDir == "" {
		cfg.LogsDir = "./logs"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.DefaultDiagramType == "" {
		cfg.DefaultDiagramType = string(model.DiagramER)
	}
}

// validate rejects option values that would only fail later, mid-run.
func validate(cfg *MainConfig) error {
	if _, err := model.ParseDiagramType(cfg.DefaultDiagramType); err != nil {
		return fmt.Errorf("default_diagram_type: %w", err)
	}
	switch cfg.LogLevel {
	case "debug", "info":
	default:
		return fmt.Errorf("log_level must be \"debug\" or \"info\", got %q", cfg.LogLevel)
	}
	return nil
}
