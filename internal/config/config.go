// Package config provides configuration file parsing for brewrecent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir returns the brewrecent config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/brewrecent if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "brewrecent"), nil
}

// Config holds the user defaults read from {dir}/config.yaml. Command-line
// flags override any value set here.
type Config struct {
	Days          int  `yaml:"days"`
	TruncateChars int  `yaml:"truncate_chars"`
	DimLookedUp   bool `yaml:"dim_looked_up"`
	HideLookedUp  bool `yaml:"hide_looked_up"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Days:          7,
		TruncateChars: 25,
		DimLookedUp:   true,
	}
}

// Load reads {dir}/config.yaml on top of the defaults. A missing file is not
// an error; a malformed one is.
func Load(dir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}
