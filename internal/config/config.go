// Package config provides Viper-based configuration management for recipectl
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config represents the complete recipectl configuration
type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog" json:"catalog"`
	Convert   ConvertConfig   `mapstructure:"convert" json:"convert"`
	Snapshots SnapshotsConfig `mapstructure:"snapshots" json:"snapshots"`
	Confirm   ConfirmConfig   `mapstructure:"confirm" json:"confirm"`
	Report    ReportConfig    `mapstructure:"report" json:"report"`
	Logging   LoggingConfig   `mapstructure:"logging" json:"logging"`
	Output    OutputConfig    `mapstructure:"output" json:"output"`

	// File is the config file that was read, empty when only defaults apply
	File string `mapstructure:"-" json:"file,omitempty"`
}

// CatalogConfig locates the recipe catalog
type CatalogConfig struct {
	Path string `mapstructure:"path" json:"path"`
}

// ConvertConfig contains export conversion settings
type ConvertConfig struct {
	Input string `mapstructure:"input" json:"input"`
}

// SnapshotsConfig contains snapshot store settings
type SnapshotsConfig struct {
	// Dir holds snapshots and the index; empty means next to the catalog
	Dir string `mapstructure:"dir" json:"dir"`
}

// ConfirmConfig controls confirmation of destructive writes
type ConfirmConfig struct {
	AssumeYes bool `mapstructure:"assume_yes" json:"assume_yes"`
}

// ReportConfig sizes command summaries
type ReportConfig struct {
	SampleSize int `mapstructure:"sample_size" json:"sample_size"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Colors bool `mapstructure:"colors" json:"colors"`
}

// flagKeys maps global flag names to the config keys they override
var flagKeys = map[string]string{
	"catalog": "catalog.path",
	"yes":     "confirm.assume_yes",
}

// Load reads configuration from file, environment variables and flags.
// flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Search paths for .recipectl.yaml
		v.SetConfigName(".recipectl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/recipectl")
	}

	// RECIPECTL_CATALOG_PATH and friends
	v.SetEnvPrefix("RECIPECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing overrides a default
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{Path: "data/recipes.json"},
		Convert: ConvertConfig{Input: "data/pocket_export/part_000000.csv"},
		Report:  ReportConfig{SampleSize: 10},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Output:  OutputConfig{Colors: true},
	}
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("convert.input", d.Convert.Input)
	v.SetDefault("snapshots.dir", d.Snapshots.Dir)
	v.SetDefault("confirm.assume_yes", d.Confirm.AssumeYes)
	v.SetDefault("report.sample_size", d.Report.SampleSize)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("output.colors", d.Output.Colors)
}

// validate checks the configuration for errors
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Catalog.Path) == "" {
		return fmt.Errorf("catalog.path must not be empty")
	}

	if cfg.Report.SampleSize < 1 {
		return fmt.Errorf("invalid report.sample_size: %d (must be at least 1)", cfg.Report.SampleSize)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (must be text or json)", cfg.Logging.Format)
	}

	return nil
}

// UnchangedSampleSize is the number of unchanged titles shown by reports
func (c *Config) UnchangedSampleSize() int {
	return c.Report.SampleSize / 2
}
