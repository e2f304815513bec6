// =============================================================================
// Purchase Report Engine - Configuration Module
// =============================================================================
//
// This module loads the application configuration and the category mapping
// table. The mapping is deliberately configuration, not business logic: the
// engine ships with a built-in default table, and a deployment can swap it
// by pointing category_mapping_file at a YAML file without a code change.
//
// CONFIGURATION FILES:
//   1. Main config (config.yaml): output locations, naming, logging
//   2. Category mapping (optional YAML): code -> canonical name overrides
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"purchasereport/internal/categories"
)

// =============================================================================
// MAIN CONFIGURATION
// =============================================================================

// Config holds the application configuration loaded from config.yaml.
type Config struct {
	// OutputDir is the directory report files are written to.
	// Default: "./ReportOutput"
	OutputDir string `yaml:"output_dir"`

	// OutputNameFormat is the pattern for generated file names. Supported
	// placeholders:
	//   {stem}      - report kind ("purchase_report", "purchase_analysis", ...)
	//   {file_no}   - the analyzed file number (analysis reports only)
	//   {timestamp} - generation time, YYYYMMDD_HHMMSS
	//   {uuid}      - a random UUID
	// Default: "{stem}_{timestamp}"
	OutputNameFormat string `yaml:"output_name_format"`

	// CategoryMappingFile optionally points at a YAML file replacing the
	// built-in category mapping table.
	CategoryMappingFile string `yaml:"category_mapping_file"`

	// LogLevel controls log verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// Load reads the main configuration file. A missing file is not an error:
// the engine runs fine on defaults, so only a present-but-broken file fails.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./ReportOutput"
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = "{stem}_{timestamp}"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate checks the configuration and creates the output directory when
// it does not exist yet.
func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	if _, err := os.Stat(cfg.OutputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
		}
	}

	return nil
}

// =============================================================================
// CATEGORY MAPPING
// =============================================================================

// LoadCategoryMapping returns the category replacement table: the YAML file
// named in the config when set, the built-in default table otherwise. The
// file is a flat map of code string to canonical name:
//
//	"02": "E:assembly-board"
//	"11": "E:parts"
func (cfg *Config) LoadCategoryMapping() (map[string]string, error) {
	if cfg.CategoryMappingFile == "" {
		return categories.DefaultMapping(), nil
	}

	data, err := os.ReadFile(cfg.CategoryMappingFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read category mapping file: %w", err)
	}

	mapping := make(map[string]string)
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("failed to parse category mapping file: %w", err)
	}
	if len(mapping) == 0 {
		return nil, fmt.Errorf("category mapping file %s defines no entries", cfg.CategoryMappingFile)
	}

	return mapping, nil
}
