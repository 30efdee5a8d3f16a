// Package config loads the optional per-user defaults shared by the
// infoutils tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/qainar-projects/infoutils/pkg/report"
)

// Config holds user-tunable defaults. Command-line flags override it.
type Config struct {
	// Color is auto, always or never.
	Color report.ColorMode `yaml:"color"`
	// ProcessLimit caps meminfo's top-process table.
	ProcessLimit int `yaml:"process_limit"`
}

// Default returns the built-in settings used when no config file
// exists.
func Default() Config {
	return Config{
		Color:        report.ColorAuto,
		ProcessLimit: 15,
	}
}

// Load reads the user config file, resolving $XDG_CONFIG_HOME before
// ~/.config. A missing file yields the defaults without error.
func Load() (Config, error) {
	path := defaultPath()
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates one config file. Parse and validation
// failures return the defaults along with the error so callers can
// warn and continue.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if !cfg.Color.Valid() {
		return Default(), fmt.Errorf("config %s: unknown color mode %q", path, cfg.Color)
	}
	if cfg.ProcessLimit <= 0 {
		cfg.ProcessLimit = Default().ProcessLimit
	}
	return cfg, nil
}

func defaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "infoutils", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "infoutils", "config.yaml")
}
