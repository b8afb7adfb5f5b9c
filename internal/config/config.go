// pattern: Functional Core

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration for a status run.
// Unrecognized keys are ignored.
type Config struct {
	Directories []string `yaml:"directories"`
	Groups      []Group  `yaml:"groups"`
	Theme       string   `yaml:"theme"`
	LogLevel    string   `yaml:"log_level"`
	LogFile     string   `yaml:"log_file"`
}

// Group is a named, ordered set of directories rendered as its own table.
type Group struct {
	Name        string   `yaml:"name"`
	Directories []string `yaml:"directories"`
}

func DefaultConfig() Config {
	return Config{
		Theme:    "mocha",
		LogLevel: "warn",
	}
}

// Load reads and parses the config file at path. An unreadable or
// malformed file is an error; callers treat it as fatal.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.Theme == "" {
		cfg.Theme = "mocha"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	return cfg, nil
}

// ExpandHome resolves a leading ~ against the current user's home
// directory. Paths without a tilde prefix are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
