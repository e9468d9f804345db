package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings.
type Config struct {
	Addr     string        `yaml:"addr"`
	LogLevel string        `yaml:"log_level"`
	Storage  StorageConfig `yaml:"storage"`
}

// StorageConfig selects and parameterizes the puzzle store.
type StorageConfig struct {
	Backend string `yaml:"backend"` // fs | sqlite
	Dir     string `yaml:"dir"`     // fs: puzzle directory
	Path    string `yaml:"path"`    // sqlite: database file
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
		Storage: StorageConfig{
			Backend: "fs",
			Dir:     "./data",
			Path:    "./data/puzzles.db",
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path yields
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	switch cfg.Storage.Backend {
	case "fs", "sqlite":
	default:
		return cfg, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return cfg, nil
}

// SlogLevel maps the configured level name onto slog, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
