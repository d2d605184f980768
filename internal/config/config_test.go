package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `server:
  port: "9090"
  mode: "production"
data:
  classes_file: "exports/Classes.html"
  teachers_file: "exports/Teachers.html"
  templates_glob: "tpl/*.html"
logging:
  level: "debug"
  format: "text"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "exports/Classes.html", cfg.Data.ClassesFile)
	assert.Equal(t, "exports/Teachers.html", cfg.Data.TeachersFile)
	assert.Equal(t, "tpl/*.html", cfg.Data.TemplatesGlob)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()

	// No config file: defaults apply.
	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "data/Classes.html", cfg.Data.ClassesFile)
	assert.Equal(t, "data/Teachers.html", cfg.Data.TeachersFile)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DATA_CLASSES_FILE", "/srv/exports/Classes.html")
	t.Setenv("LOG_LEVEL", "warn")

	dir := t.TempDir()
	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "/srv/exports/Classes.html", cfg.Data.ClassesFile)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("DATA_CLASSES_FILE", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  classes_file: \"\"\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classes export file path is required")
}
