package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all menuplan configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// StorageConfig selects where the week cache is persisted.
// Backend is "json" (default) or "sqlite".
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// DefaultsConfig supplies planner settings for flags the user did not set.
type DefaultsConfig struct {
	Profile   string   `yaml:"profile"`
	Calories  int      `yaml:"calories"`
	Exclude   []string `yaml:"exclude"`
	DailyMode string   `yaml:"daily_mode"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
			Path:    DefaultStoragePath(BackendJSON),
		},
		Defaults: DefaultsConfig{
			Profile:   "balanced",
			Calories:  2300,
			DailyMode: "on",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultStoragePath returns ~/.menu_planner/storage.json, or storage.db for
// the sqlite backend. It falls back to the working directory when the home
// directory is unknown.
func DefaultStoragePath(backend string) string {
	name := "storage.json"
	if backend == BackendSQLite {
		name = "storage.db"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".menu_planner", name)
	}
	return filepath.Join(home, ".menu_planner", name)
}

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	cfg.Storage.Path = ""
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendJSON
	}
	if cfg.Storage.Backend != BackendJSON && cfg.Storage.Backend != BackendSQLite {
		return nil, fmt.Errorf("parse config: unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultStoragePath(cfg.Storage.Backend)
	}

	return cfg, nil
}
