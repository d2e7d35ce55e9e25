// Package config loads and saves the demo host's settings as a JSON file.
//
// A missing file is created with the defaults on first Load:
//
//	{
//	  "window": {"width": 1024, "height": 768, "title": "hud", "vsync": true, "resizable": true},
//	  "debug": false,
//	  "asset_dir": "assets",
//	  "font": "builtin:goregular",
//	  "font_size": 14,
//	  "dim_alpha": 128,
//	  "layout": {"padding": 5, "margin": 5},
//	  "preload": []
//	}
//
// String values may reference environment variables as $VAR or ${VAR}.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Window holds the host window settings.
type Window struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	VSync     bool   `json:"vsync"`
	Resizable bool   `json:"resizable"`
}

// Layout holds the spacing applied to panel layouts.
type Layout struct {
	Padding float64 `json:"padding"`
	Margin  float64 `json:"margin"`
}

// Config is the demo host configuration.
type Config struct {
	Window Window `json:"window"`
	Debug  bool   `json:"debug"`

	AssetDir string   `json:"asset_dir"`
	Font     string   `json:"font"`
	FontSize float64  `json:"font_size"`
	Preload  []string `json:"preload"`

	// DimAlpha is the opacity of the overlay drawn behind modal items.
	DimAlpha uint8  `json:"dim_alpha"`
	Layout   Layout `json:"layout"`
}

// DefaultConfig returns a config that works without a file.
func DefaultConfig() *Config {
	return &Config{
		Window: Window{
			Width:     1024,
			Height:    768,
			Title:     "hud",
			VSync:     true,
			Resizable: true,
		},
		AssetDir: "assets",
		Font:     "builtin:goregular",
		FontSize: 14,
		Preload:  []string{},
		DimAlpha: 128,
		Layout:   Layout{Padding: 5, Margin: 5},
	}
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font_size %v must be positive", c.FontSize))
	}
	if c.Layout.Padding < 0 || c.Layout.Margin < 0 {
		errs = append(errs, fmt.Errorf("layout spacing must not be negative"))
	}
	return errors.Join(errs...)
}

// Manager handles configuration loading and saving.
type Manager struct {
	path   string
	config *Config
}

// NewManager creates a manager for the file at path.
func NewManager(path string) *Manager {
	return &Manager{
		path:   path,
		config: DefaultConfig(),
	}
}

// Path returns the configuration file path.
func (m *Manager) Path() string {
	return m.path
}

// Load reads the configuration from disk, creating it with defaults if needed.
// Fields absent from the file keep their default values. A freshly written
// file is read back like any other, so it is expanded and validated too.
func (m *Manager) Load() error {
	if _, err := os.Stat(m.path); errors.Is(err, os.ErrNotExist) {
		if err := m.Save(); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}
	expandEnv(config)

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", m.path, err)
	}
	m.config = config
	return nil
}

// Save writes the current configuration to disk.
func (m *Manager) Save() error {
	if dir := filepath.Dir(m.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Config returns the current configuration.
func (m *Manager) Config() *Config {
	return m.config
}

func expandEnv(c *Config) {
	c.Window.Title = os.ExpandEnv(c.Window.Title)
	c.AssetDir = os.ExpandEnv(c.AssetDir)
	c.Font = os.ExpandEnv(c.Font)
	for i, p := range c.Preload {
		c.Preload[i] = os.ExpandEnv(p)
	}
}
