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
	path := filepath.Join(t.TempDir(), "menuplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, "storage.json", filepath.Base(cfg.Storage.Path))
	assert.Equal(t, ".menu_planner", filepath.Base(filepath.Dir(cfg.Storage.Path)))
	assert.Equal(t, "balanced", cfg.Defaults.Profile)
	assert.Equal(t, 2300, cfg.Defaults.Calories)
	assert.Equal(t, "on", cfg.Defaults.DailyMode)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MENU_TEST_DIR", dir)

	path := writeConfig(t, `
storage:
  backend: sqlite
  path: ${MENU_TEST_DIR}/plans.db
defaults:
  profile: vegetarian
  calories: 1900
  exclude: [грибы, лук]
  daily_mode: "off"
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, dir+"/plans.db", cfg.Storage.Path)
	assert.Equal(t, "vegetarian", cfg.Defaults.Profile)
	assert.Equal(t, 1900, cfg.Defaults.Calories)
	assert.Equal(t, []string{"грибы", "лук"}, cfg.Defaults.Exclude)
	assert.Equal(t, "off", cfg.Defaults.DailyMode)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: sqlite
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "storage.db", filepath.Base(cfg.Storage.Path))
	assert.Equal(t, 2300, cfg.Defaults.Calories)
	assert.Equal(t, "balanced", cfg.Defaults.Profile)
}

func TestLoadUnknownBackend(t *testing.T) {
	path := writeConfig(t, "storage:\n  backend: redis\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "storage: [unclosed\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/menuplan.yaml")
	assert.Error(t, err)
}
