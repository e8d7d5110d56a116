package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/riordanpawley/selectmenu/internal/ui/dropdown"
)

// FileName is the config file looked up in the working directory
const FileName = ".selectmenu.json"

// Config represents the full selectmenu configuration
type Config struct {
	// Label is the trigger placeholder. Empty uses the widget default.
	Label        string        `json:"label"`
	OptionsFile  string        `json:"optionsFile"`
	ExitOnSelect bool          `json:"exitOnSelect"`
	Overlay      OverlayConfig `json:"overlay"`
	Keys         KeysConfig    `json:"keys"`
	Log          LogConfig     `json:"log"`
}

// OverlayConfig contains option list placement settings
type OverlayConfig struct {
	// Offset is the number of rows between the trigger and the list
	Offset int `json:"offset"`
}

// KeysConfig lists extra terminal keys bound to each logical key, on top of
// the defaults
type KeysConfig struct {
	Enter  []string `json:"enter"`
	Space  []string `json:"space"`
	Down   []string `json:"down"`
	Up     []string `json:"up"`
	Escape []string `json:"escape"`
}

// LogConfig contains logging settings
type LogConfig struct {
	File  string `json:"file"`
	Level string `json:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
	}
}

// KeyMap returns the default widget key map extended with the configured keys
func (k KeysConfig) KeyMap() dropdown.KeyMap {
	return dropdown.DefaultKeyMap().Extend(k.Enter, k.Space, k.Down, k.Up, k.Escape)
}

// Validate checks values the widget cannot use
func (c *Config) Validate() error {
	if c.Overlay.Offset < 0 {
		return fmt.Errorf("overlay.offset must not be negative, got %d", c.Overlay.Offset)
	}
	return nil
}

// LoadConfig loads configuration from the project directory. A missing
// .selectmenu.json yields the defaults.
func LoadConfig(projectPath string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(projectPath, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile loads configuration from an explicit path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	cfg = MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
