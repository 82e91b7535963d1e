// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/edupanel/internal/panel"
	"github.com/javiermolinar/edupanel/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Layout  LayoutConfig  `toml:"layout"`
	Panel   PanelConfig   `toml:"panel"`
	Storage StorageConfig `toml:"storage"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// LayoutConfig holds sizing rules for the panel card.
type LayoutConfig struct {
	CompactHeight int `toml:"compact_height"` // rows below which the vertical size class is compact
	MaxWidth      int `toml:"max_width"`      // widest the card may grow
}

// PanelConfig holds the content and behavior of the presented panel.
type PanelConfig struct {
	ID                      string `toml:"id"`
	Image                   string `toml:"image,multiline"`
	ImageFile               string `toml:"image_file"`
	Heading                 string `toml:"heading"`
	Subheading              string `toml:"subheading"`
	PrimaryTitle            string `toml:"primary_title"`
	SecondaryTitle          string `toml:"secondary_title"`
	Footer                  string `toml:"footer"`
	ShowCloseButton         bool   `toml:"show_close_button"`
	DiscardDismissOnPrimary bool   `toml:"discard_dismiss_on_primary"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

const defaultImage = `
   .--------.
  /  .--.  /|
 /  /  /  / |
.--------.  |
|  EDU   |  /
|  PANEL | /
'--------'
`

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "frappe",
		},
		Layout: LayoutConfig{
			CompactHeight: 24,
			MaxWidth:      60,
		},
		Panel: PanelConfig{
			ID:              "welcome",
			Image:           strings.TrimPrefix(defaultImage, "\n"),
			Heading:         "Welcome to edupanel",
			Subheading:      "Panels collapse any row without content and scroll when the terminal is too small.",
			PrimaryTitle:    "Got it",
			SecondaryTitle:  "Remind me later",
			Footer:          "Press y to copy this text.",
			ShowCloseButton: true,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "edupanel.db"
	}
	return filepath.Join(home, ".local", "share", "edupanel", "edupanel.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "edupanel", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Panel.ImageFile = expandPath(cfg.Panel.ImageFile)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("EDUPANEL_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}

	if v := os.Getenv("EDUPANEL_COMPACT_HEIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing EDUPANEL_COMPACT_HEIGHT: %w", err)
		}
		cfg.Layout.CompactHeight = n
	}
	if v := os.Getenv("EDUPANEL_MAX_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing EDUPANEL_MAX_WIDTH: %w", err)
		}
		cfg.Layout.MaxWidth = n
	}

	if v := os.Getenv("EDUPANEL_PANEL_ID"); v != "" {
		cfg.Panel.ID = v
	}

	if v := os.Getenv("EDUPANEL_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.UI.Theme != "" && !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	if c.Layout.CompactHeight < 1 {
		return fmt.Errorf("compact_height must be positive, got %d", c.Layout.CompactHeight)
	}
	if c.Layout.MaxWidth < 20 {
		return fmt.Errorf("max_width must be at least 20, got %d", c.Layout.MaxWidth)
	}
	if strings.TrimSpace(c.Panel.ID) == "" {
		return errors.New("panel id must be set")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// LoadImage returns the configured panel image. image_file takes precedence
// over inline art. No image configured yields nil.
func (p PanelConfig) LoadImage() (*panel.Image, error) {
	art := p.Image
	if p.ImageFile != "" {
		data, err := os.ReadFile(p.ImageFile)
		if err != nil {
			return nil, fmt.Errorf("reading image file: %w", err)
		}
		art = string(data)
	}
	if art == "" {
		return nil, nil
	}
	return panel.NewImage(art), nil
}

// Content converts the panel section into panel content.
func (p PanelConfig) Content() (panel.Content, error) {
	img, err := p.LoadImage()
	if err != nil {
		return panel.Content{}, err
	}
	return panel.Content{
		Image:          img,
		Heading:        p.Heading,
		Subheading:     p.Subheading,
		PrimaryTitle:   p.PrimaryTitle,
		SecondaryTitle: p.SecondaryTitle,
		Footer:         p.Footer,
	}, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
