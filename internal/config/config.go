package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hwdbkit/hwdbcheck/pkg/hwdbcheck"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is looked up in the working directory.
const ConfigFileName = "hwdbcheck.yaml"

// Config holds the project-level settings of a validation run. Every field
// has a flag and an environment override; precedence is
// flag > environment > file > default.
type Config struct {
	// HwdbDir is the directory searched when no files are given.
	HwdbDir string `yaml:"hwdb_dir"`

	// FileGlob selects hwdb files inside HwdbDir.
	FileGlob string `yaml:"file_glob"`

	// Keycodes points at a keycode-name table (kernel header or plain
	// list) for KEYBOARD_KEY_* checks.
	Keycodes string `yaml:"keycodes"`

	// Color controls styled output: auto, always or never.
	Color string `yaml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HwdbDir:  hwdbcheck.DefaultHwdbDir,
		FileGlob: hwdbcheck.DefaultFileGlob,
		Keycodes: hwdbcheck.DefaultKeycodesPath,
		Color:    "auto",
	}
}

// Load reads ConfigFileName from dir and merges it over the defaults.
// A missing file yields ErrConfigNotFound; callers treat that as "use
// defaults", not as a failure.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", hwdbcheck.ErrInvalidConfig, ConfigFileName, err)
	}
	return cfg, nil
}

// ApplyEnv overlays HWDBCHECK_* environment variables onto the config.
// The caller is expected to have loaded any .env file first (godotenv).
func (c *Config) ApplyEnv() {
	if v := os.Getenv("HWDBCHECK_HWDB_DIR"); v != "" {
		c.HwdbDir = v
	}
	if v := os.Getenv("HWDBCHECK_FILE_GLOB"); v != "" {
		c.FileGlob = v
	}
	if v := os.Getenv("HWDBCHECK_KEYCODES"); v != "" {
		c.Keycodes = v
	}
	if v := os.Getenv("HWDBCHECK_COLOR"); v != "" {
		c.Color = v
	}
}

// Validate checks field values that have a closed domain.
func (c *Config) Validate() error {
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q: %w",
			c.Color, hwdbcheck.ErrInvalidConfig)
	}
	return nil
}
