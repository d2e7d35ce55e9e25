package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hud.json")
	m := NewManager(path)

	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if !reflect.DeepEqual(m.Config(), DefaultConfig()) {
		t.Errorf("Config() = %+v, want defaults", m.Config())
	}

	// A second manager reads back what the first one wrote.
	again := NewManager(path)
	if err := again.Load(); err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if !reflect.DeepEqual(again.Config(), DefaultConfig()) {
		t.Errorf("reloaded Config() = %+v, want defaults", again.Config())
	}
}

func TestLoadMissingFileExpandsAndValidates(t *testing.T) {
	t.Setenv("HUD_ASSETS", "/srv/assets")
	dir := t.TempDir()

	m := NewManager(filepath.Join(dir, "env.json"))
	m.config.AssetDir = "$HUD_ASSETS/ui"
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := m.Config().AssetDir; got != "/srv/assets/ui" {
		t.Errorf("AssetDir = %q, want /srv/assets/ui", got)
	}
	data, err := os.ReadFile(m.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "$HUD_ASSETS/ui") {
		t.Errorf("written file lost the variable: %s", data)
	}

	bad := NewManager(filepath.Join(dir, "bad.json"))
	bad.config.Window.Width = 0
	if err := bad.Load(); err == nil {
		t.Error("Load() accepted an invalid default")
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("HUD_ASSETS", "/srv/assets")

	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name:    "partial file keeps defaults",
			content: `{"debug": true, "window": {"width": 640, "height": 480}}`,
			check: func(t *testing.T, c *Config) {
				if !c.Debug {
					t.Error("Debug = false, want true")
				}
				if c.Window.Width != 640 || c.Window.Height != 480 {
					t.Errorf("window = %dx%d, want 640x480", c.Window.Width, c.Window.Height)
				}
				if c.FontSize != 14 {
					t.Errorf("FontSize = %v, want default 14", c.FontSize)
				}
				if c.DimAlpha != 128 {
					t.Errorf("DimAlpha = %v, want default 128", c.DimAlpha)
				}
			},
		},
		{
			name:    "environment expansion",
			content: `{"asset_dir": "${HUD_ASSETS}", "preload": ["$HUD_ASSETS/a.png"]}`,
			check: func(t *testing.T, c *Config) {
				if c.AssetDir != "/srv/assets" {
					t.Errorf("AssetDir = %q, want /srv/assets", c.AssetDir)
				}
				if len(c.Preload) != 1 || c.Preload[0] != "/srv/assets/a.png" {
					t.Errorf("Preload = %v", c.Preload)
				}
			},
		},
		{
			name:    "malformed json",
			content: `{"debug": }`,
			wantErr: true,
		},
		{
			name:    "invalid window",
			content: `{"window": {"width": 0, "height": 480}}`,
			wantErr: true,
		},
		{
			name:    "negative spacing",
			content: `{"layout": {"padding": -1, "margin": 5}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hud.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			m := NewManager(path)
			err := m.Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !reflect.DeepEqual(m.Config(), DefaultConfig()) {
					t.Error("failed Load() replaced the config")
				}
				return
			}
			tt.check(t, m.Config())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hud.json")
	m := NewManager(path)
	m.Config().Window.Title = "editor"
	m.Config().Layout.Margin = 8
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := NewManager(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := loaded.Config().Window.Title; got != "editor" {
		t.Errorf("Title = %q, want editor", got)
	}
	if got := loaded.Config().Layout.Margin; got != 8 {
		t.Errorf("Margin = %v, want 8", got)
	}
}
