// Package config loads qen's main configuration and per-project repo records.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ErrNotInitialized indicates qen has no main configuration yet
var ErrNotInitialized = errors.New("qen is not initialized")

// ErrNoActiveProject indicates no project is currently selected
var ErrNoActiveProject = errors.New("no active project")

// Config is qen's main configuration, stored as config.toml under the
// qen config directory.
type Config struct {
	CurrentProject string `toml:"current_project"`
	MetaPath       string `toml:"meta_path"`
}

// DefaultDir returns the qen config directory, honoring XDG_CONFIG_HOME
func DefaultDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "qen")
}

// Load reads the main configuration from dir.
// Returns ErrNotInitialized when no config file exists.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Save writes the main configuration to dir, creating it if needed
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ProjectDir resolves the directory of the currently selected project.
// Returns ErrNoActiveProject when no project is selected.
func (c *Config) ProjectDir() (string, error) {
	if c.CurrentProject == "" {
		return "", ErrNoActiveProject
	}
	return filepath.Join(c.MetaPath, c.CurrentProject), nil
}
