package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults loaded from an optional YAML file.
type Config struct {
	// DefaultPath is the derivation path used when a command is not
	// given one explicitly.
	DefaultPath string `yaml:"default_path"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{DefaultPath: "m"}
}

// LoadConfig reads the YAML file at path, overlaying the defaults.
// An empty path or a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DefaultPath == "" {
		cfg.DefaultPath = DefaultConfig().DefaultPath
	}
	return cfg, nil
}
