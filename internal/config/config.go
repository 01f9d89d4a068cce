// Package config loads the optional user config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds user settings. Every field has a working default, so a
// missing config file is not an error.
type Config struct {
	// DatabasePath is where the task database lives.
	DatabasePath string `yaml:"database_path"`

	// AutosaveSeconds is how often the TUI flushes a dirty store.
	AutosaveSeconds int `yaml:"autosave_seconds"`

	// DefaultSort is the sort applied when a view specifies none,
	// as "key" or "key:dir" tokens (alpha, due, priority).
	DefaultSort []string `yaml:"default_sort"`
}

// Default returns the built-in configuration.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DatabasePath:    filepath.Join(home, ".taskit", "taskit.db"),
		AutosaveSeconds: 10,
	}
}

// DefaultPath is where Load looks when no explicit path is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".taskit", "config.yaml")
}

// Load reads the config file at path, filling unset fields from the
// defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = Default().DatabasePath
	}
	if cfg.AutosaveSeconds <= 0 {
		cfg.AutosaveSeconds = Default().AutosaveSeconds
	}
	return cfg, nil
}

// AutosaveInterval returns the autosave period as a duration.
func (c Config) AutosaveInterval() time.Duration {
	return time.Duration(c.AutosaveSeconds) * time.Second
}
