package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Wobble")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Wobble")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "wobble")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "wobble")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// A textures or objects section in the file replaces the default one whole.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var sections struct {
		Scene struct {
			Textures yaml.Node `yaml:"textures"`
			Objects  yaml.Node `yaml:"objects"`
		} `yaml:"scene"`
	}
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return err
	}
	if sections.Scene.Textures.Kind != 0 {
		cfg.Scene.Textures = nil
	}
	if sections.Scene.Objects.Kind != 0 {
		cfg.Scene.Objects = nil
	}

	return yaml.Unmarshal(data, cfg)
}
