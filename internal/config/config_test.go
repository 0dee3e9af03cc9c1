package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eamodeler.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "./input_archive", cfg.ArchiveDir)
	assert.Equal(t, "./logs", cfg.LogsDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "erDiagram", cfg.DefaultDiagramType)
	assert.False(t, cfg.ArchiveOnSuccess)
}

func TestLoadMainConfig(t *testing.T) {
	path := writeConfig(t, `
output_dir: /tmp/reports
log_level: debug
default_diagram_type: classDiagram
archive_on_success: true
`)

	cfg, err := LoadMainConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/reports", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "classDiagram", cfg.DefaultDiagramType)
	assert.True(t, cfg.ArchiveOnSuccess)

	// Unset options keep their defaults.
	assert.Equal(t, "./input_archive", cfg.ArchiveDir)
	assert.Equal(t, "./logs", cfg.LogsDir)
}

func TestLoadMainConfig_FileNotFound(t *testing.T) {
	_, err := LoadMainConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMainConfig_MalformedYAML(t *testing.T) {
	_, err := LoadMainConfig(writeConfig(t, "output_dir: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadMainConfig_InvalidDiagramType(t *testing.T) {
	_, err := LoadMainConfig(writeConfig(t, "default_diagram_type: ERDiagram\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_diagram_type")
}

func TestLoadMainConfig_InvalidLogLevel(t *testing.T) {
	_, err := LoadMainConfig(writeConfig(t, "log_level: trace\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}
