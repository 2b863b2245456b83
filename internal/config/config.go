package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional zai.yaml project configuration. Every field
// has a working default; the file only overrides.
type Config struct {
	// ModulePaths are extra module search directories, appended after
	// the ZAI_PATH entries. Relative paths resolve against the
	// directory holding the config file.
	ModulePaths []string `yaml:"module_paths"`

	// HistoryFile overrides the REPL history location.
	HistoryFile string `yaml:"history_file"`

	// HistoryLimit overrides the REPL history cap.
	HistoryLimit int `yaml:"history_limit"`
}

// Default returns the configuration used when no zai.yaml exists.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		HistoryFile:  filepath.Join(home, DefaultHistoryFile),
		HistoryLimit: DefaultHistoryLimit,
	}
}

// Load reads zai.yaml from dir, falling back to defaults when the file
// is absent. A malformed file is an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, ProjectConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Resolve module paths relative to the config file.
	for i, p := range cfg.ModulePaths {
		if !filepath.IsAbs(p) {
			cfg.ModulePaths[i] = filepath.Join(dir, p)
		}
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = Default().HistoryFile
	}
	return cfg, nil
}
