package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, 0, cfg.Top)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.LogOutput())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
output: json
top: 3
depth: 2
logging:
  level: DEBUG
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 3, cfg.Top)
	assert.Equal(t, 2, cfg.Depth)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.LogOutput(), "json output keeps logs off stdout")
}

func TestLoad_TOMLFile(t *testing.T) {
	path := writeConfig(t, "config.toml", `
output = "yaml"

[logging]
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("NOSPACE_OUTPUT", "yaml")
	t.Setenv("NOSPACE_LOGGING_LEVEL", "warn")

	path := writeConfig(t, "config.yaml", "output: json\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown output", content: "output: xml\n"},
		{name: "negative top", content: "top: -1\n"},
		{name: "negative depth", content: "depth: -2\n"},
		{name: "unknown level", content: "logging:\n  level: loud\n"},
		{name: "unknown format", content: "logging:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, "config.yaml", tt.content))
			require.NoError(t, err, "loading does not validate")

			err = Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestConfig_LogOutput(t *testing.T) {
	cfg := &Config{Output: "yaml"}
	assert.Equal(t, "stderr", cfg.LogOutput())

	cfg.Output = "table"
	assert.Equal(t, "stdout", cfg.LogOutput())

	cfg.Logging.Output = "trace.log"
	assert.Equal(t, "trace.log", cfg.LogOutput())
}
