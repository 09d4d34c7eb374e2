package config

import "strings"

const (
	// DefaultOutput is the default result format.
	DefaultOutput = "table"
	// DefaultLogLevel is the default log level; trace lines are logged at info.
	DefaultLogLevel = "info"
	// DefaultLogFormat is the default log encoding.
	DefaultLogFormat = "console"
)

// defaults returns the default value of every key, keyed by its viper path.
func defaults() map[string]any {
	return map[string]any{
		"output":         DefaultOutput,
		"top":            0,
		"depth":          0,
		"logging.level":  DefaultLogLevel,
		"logging.format": DefaultLogFormat,
		"logging.output": "",
	}
}

// ApplyDefaults fills empty fields and normalizes case.
func ApplyDefaults(cfg *Config) {
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	cfg.Output = strings.ToLower(cfg.Output)

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}

	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}

// LogOutput returns the configured log destination. When unset, logs go to
// stdout for table output and to stderr otherwise, so json and yaml stay parseable.
func (c *Config) LogOutput() string {
	switch {
	case c.Logging.Output != "":
		return c.Logging.Output
	case c.Output == DefaultOutput:
		return "stdout"
	default:
		return "stderr"
	}
}
