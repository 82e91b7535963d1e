package ui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/edupanel/internal/config"
)

func TestRunConfigInteractive_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	var out bytes.Buffer

	if err := runConfigInteractive(path, strings.NewReader("n\n"), &out); err != nil {
		t.Fatalf("runConfigInteractive failed: %v", err)
	}
	if !strings.Contains(out.String(), "Created "+path) {
		t.Errorf("output = %q", out.String())
	}
	if _, err := config.LoadFrom(path); err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
}

func TestRunConfigInteractive_Edit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	input := strings.Join([]string{
		"y",     // edit
		"neon",  // invalid theme
		"latte", // theme
		"abc",   // invalid number
		"30",    // compact height
		"",      // max width
		"tips",  // panel id
		"Hello", // heading
		"",      // subheading
		"",      // primary
		"",      // secondary
		"",      // footer
		"",      // image file
		"n",     // show close
		"y",     // discard dismiss
		"",      // db path
	}, "\n") + "\n"
	var out bytes.Buffer

	if err := runConfigInteractive(path, strings.NewReader(input), &out); err != nil {
		t.Fatalf("runConfigInteractive failed: %v\n%s", err, out.String())
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("Theme = %q, want latte", cfg.UI.Theme)
	}
	if cfg.Layout.CompactHeight != 30 {
		t.Errorf("CompactHeight = %d, want 30", cfg.Layout.CompactHeight)
	}
	if cfg.Layout.MaxWidth != config.Default().Layout.MaxWidth {
		t.Errorf("MaxWidth = %d, want default", cfg.Layout.MaxWidth)
	}
	if cfg.Panel.ID != "tips" || cfg.Panel.Heading != "Hello" {
		t.Errorf("panel = %+v", cfg.Panel)
	}
	if cfg.Panel.ShowCloseButton {
		t.Error("ShowCloseButton should be false")
	}
	if !cfg.Panel.DiscardDismissOnPrimary {
		t.Error("DiscardDismissOnPrimary should be true")
	}
	if !strings.Contains(out.String(), `Invalid theme "neon"`) {
		t.Error("expected invalid theme message")
	}
	if !strings.Contains(out.String(), `Invalid number "abc"`) {
		t.Error("expected invalid number message")
	}
}
