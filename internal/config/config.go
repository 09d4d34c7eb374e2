// Package config loads optional settings from a config file and the environment.
//
// Sources in order of precedence (highest first):
//  1. CLI flags (applied by the caller)
//  2. Environment variables (NOSPACE_*)
//  3. Configuration file (YAML or TOML)
//  4. Default values
//
// The disk capacity, update size and small-directory threshold are fixed and
// cannot be configured.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "NOSPACE"

// Config represents the complete nospace configuration.
type Config struct {
	// Output is the result format: table, json or yaml.
	Output string `mapstructure:"output" validate:"required,oneof=table json yaml"`

	// Top is the number of largest directories to report (0 = default).
	Top int `mapstructure:"top" validate:"gte=0"`

	// Depth limits how deep the tree is printed (0 = unlimited).
	Depth int `mapstructure:"depth" validate:"gte=0"`

	// Logging controls trace and diagnostic output.
	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output.
	// Valid values: debug, info, warn, error (case-insensitive).
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error DEBUG INFO WARN ERROR"`

	// Format specifies the log encoding: console or json.
	Format string `mapstructure:"format" validate:"required,oneof=console json"`

	// Output is stdout, stderr or a file path. Empty selects a default based on the output format.
	Output string `mapstructure:"output"`
}

// Load reads configuration from configPath (optional), the environment and defaults.
// A missing config file is only an error when configPath was given explicitly.
// The result is not validated: callers merge flag overrides first and then call Validate.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if configPath != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	ApplyDefaults(&cfg)

	return &cfg, nil
}

// setupViper configures environment variable support and the config file location.
// Example: NOSPACE_LOGGING_LEVEL=debug.
func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about.
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	}
}
