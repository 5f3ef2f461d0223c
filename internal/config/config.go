package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/thenoetrevino/tasklane/internal/config/colors"
	"github.com/thenoetrevino/tasklane/internal/storage"
	"gopkg.in/yaml.v3"
)

// Views the TUI can open in
const (
	ViewKanban = "kanban"
	ViewList   = "list"
)

// ThemeFileEnv names a YAML file whose theme section is merged over the config
const ThemeFileEnv = "TASKLANE_THEME_FILE"

// ErrInvalidConfig wraps every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Storage         StorageConfig      `yaml:"storage"`
	DefaultCategory string             `yaml:"default_category"`
	DefaultView     string             `yaml:"default_view"`
	KeyMappings     KeyMappings        `yaml:"key_mappings"`
	ColorScheme     colors.ColorScheme `yaml:"theme"`
}

// StorageConfig selects the key-value backend and where it keeps its files
type StorageConfig struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir"`
}

// Default returns a config with every value at its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile merges the theme from TASKLANE_THEME_FILE, if set and readable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load reads the config at path. An empty path means DefaultPath().
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			// No home directory: run on defaults
			config := &Config{}
			loadThemeFile(config)
			config.applyDefaults()
			return config, nil
		}
		path = p
	}

	var config Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save writes the config to path, creating the directory if needed
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate rejects values no component can act on
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case storage.BackendSQLite, storage.BackendFile, storage.BackendMemory:
	default:
		return fmt.Errorf("%w: storage.backend %q (must be: sqlite, file, memory)", ErrInvalidConfig, c.Storage.Backend)
	}

	if c.DefaultView != ViewKanban && c.DefaultView != ViewList {
		return fmt.Errorf("%w: default_view %q (must be: kanban, list)", ErrInvalidConfig, c.DefaultView)
	}

	if !slices.Contains(colors.Presets, c.ColorScheme.Preset) {
		return fmt.Errorf("%w: theme.preset %q", ErrInvalidConfig, c.ColorScheme.Preset)
	}

	if dup := c.KeyMappings.duplicate(); dup != "" {
		return fmt.Errorf("%w: key %q is bound to more than one action", ErrInvalidConfig, dup)
	}

	return nil
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tasklane", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tasklane", "config.yaml"), nil
}

// DefaultDataDir returns $XDG_DATA_HOME/tasklane or ~/.local/share/tasklane
func DefaultDataDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "tasklane")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "tasklane")
	}
	return filepath.Join(homeDir, ".local", "share", "tasklane")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = storage.BackendSQLite
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = DefaultDataDir()
	}
	if c.DefaultCategory == "" {
		c.DefaultCategory = "General"
	}
	if c.DefaultView == "" {
		c.DefaultView = ViewKanban
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
