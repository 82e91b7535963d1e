package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", cfg.UI.Theme)
	}
	if cfg.Layout.CompactHeight != 24 {
		t.Errorf("expected compact_height 24, got %d", cfg.Layout.CompactHeight)
	}
	if cfg.Panel.ID != "welcome" {
		t.Errorf("expected panel id welcome, got %s", cfg.Panel.ID)
	}
	if !cfg.Panel.ShowCloseButton {
		t.Errorf("expected close button enabled by default")
	}
	if cfg.Panel.DiscardDismissOnPrimary {
		t.Errorf("expected discard_dismiss_on_primary disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Panel.Heading != Default().Panel.Heading {
		t.Errorf("expected default heading, got %s", cfg.Panel.Heading)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[ui]
theme = "latte"

[layout]
compact_height = 18
max_width = 50

[panel]
id = "sync-intro"
heading = "Sync your reading list"
subheading = ""
primary_title = "Turn on sync"
secondary_title = ""
footer = "You can change this later."
show_close_button = false
discard_dismiss_on_primary = true

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
	if cfg.Layout.CompactHeight != 18 {
		t.Errorf("expected compact_height 18, got %d", cfg.Layout.CompactHeight)
	}
	if cfg.Layout.MaxWidth != 50 {
		t.Errorf("expected max_width 50, got %d", cfg.Layout.MaxWidth)
	}
	if cfg.Panel.ID != "sync-intro" {
		t.Errorf("expected panel id sync-intro, got %s", cfg.Panel.ID)
	}
	if cfg.Panel.Subheading != "" {
		t.Errorf("expected empty subheading, got %q", cfg.Panel.Subheading)
	}
	if cfg.Panel.ShowCloseButton {
		t.Errorf("expected close button disabled")
	}
	if !cfg.Panel.DiscardDismissOnPrimary {
		t.Errorf("expected discard_dismiss_on_primary enabled")
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[ui]
theme = "latte"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("EDUPANEL_UI_THEME", "mocha")
	t.Setenv("EDUPANEL_COMPACT_HEIGHT", "12")
	t.Setenv("EDUPANEL_PANEL_ID", "from-env")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha from env, got %s", cfg.UI.Theme)
	}
	// File value should be kept when no env override
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path from file, got %s", cfg.Storage.DBPath)
	}
	// Env should override default
	if cfg.Layout.CompactHeight != 12 {
		t.Errorf("expected compact_height 12 from env, got %d", cfg.Layout.CompactHeight)
	}
	if cfg.Panel.ID != "from-env" {
		t.Errorf("expected panel id from env, got %s", cfg.Panel.ID)
	}
}

func TestLoadFrom_InvalidEnvNumber(t *testing.T) {
	t.Setenv("EDUPANEL_MAX_WIDTH", "wide")

	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Fatal("expected error for non-numeric EDUPANEL_MAX_WIDTH")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "unknown theme", mutate: func(c *Config) { c.UI.Theme = "neon" }, wantErr: "unknown theme"},
		{name: "zero compact height", mutate: func(c *Config) { c.Layout.CompactHeight = 0 }, wantErr: "compact_height"},
		{name: "narrow card", mutate: func(c *Config) { c.Layout.MaxWidth = 10 }, wantErr: "max_width"},
		{name: "blank panel id", mutate: func(c *Config) { c.Panel.ID = "  " }, wantErr: "panel id"},
		{name: "empty db path", mutate: func(c *Config) { c.Storage.DBPath = "" }, wantErr: "db_path"},
		{name: "empty theme allowed", mutate: func(c *Config) { c.UI.Theme = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Validate() error = %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestPanelContent(t *testing.T) {
	p := Default().Panel
	p.Image = ""
	p.Footer = "   "

	c, err := p.Content()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Image != nil {
		t.Errorf("expected nil image when no art configured")
	}
	if c.Heading != p.Heading {
		t.Errorf("expected heading %q, got %q", p.Heading, c.Heading)
	}
	if c.Footer != "   " {
		t.Errorf("expected footer passed through unchanged, got %q", c.Footer)
	}
}

func TestPanelLoadImage_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	imgPath := filepath.Join(tmpDir, "art.txt")
	if err := os.WriteFile(imgPath, []byte("\n/\\\n\\/\n"), 0o644); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}

	p := PanelConfig{Image: "ignored", ImageFile: imgPath}
	img, err := p.LoadImage()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(img.Lines) != 2 || img.Lines[0] != "/\\" {
		t.Errorf("unexpected image lines %q", img.Lines)
	}

	p.ImageFile = filepath.Join(tmpDir, "missing.txt")
	if _, err := p.LoadImage(); err == nil {
		t.Errorf("expected error for missing image file")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.UI.Theme = "macchiato"
	cfg.Panel.Heading = "Saved heading"
	cfg.Panel.ShowCloseButton = false

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.UI.Theme != "macchiato" {
		t.Errorf("expected theme macchiato, got %s", loaded.UI.Theme)
	}
	if loaded.Panel.Heading != "Saved heading" {
		t.Errorf("expected saved heading, got %s", loaded.Panel.Heading)
	}
	if loaded.Panel.ShowCloseButton {
		t.Errorf("expected close button disabled after reload")
	}
	if loaded.Panel.Image != cfg.Panel.Image {
		t.Errorf("expected image art to round-trip")
	}
}
