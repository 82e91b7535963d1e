package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestReapplyBackground(t *testing.T) {
	bg := lipgloss.Color("#303446")
	seq := BackgroundSeq(bg)
	if seq == "" {
		t.Fatal("expected a background sequence")
	}

	line := "a" + ansi.ResetStyle + "b\x1b[49mc"
	got := ReapplyBackground(line, bg)
	if !strings.Contains(got, ansi.ResetStyle+seq) {
		t.Fatalf("background not restored after reset: %q", got)
	}
	if !strings.Contains(got, "\x1b[49m"+seq) {
		t.Fatalf("background not restored after default bg: %q", got)
	}
	if ansi.Strip(got) != "abc" {
		t.Fatalf("visible text = %q, want abc", ansi.Strip(got))
	}
}

func TestReapplyBackground_NoColor(t *testing.T) {
	line := "a" + ansi.ResetStyle + "b"
	if got := ReapplyBackground(line, ""); got != line {
		t.Fatalf("expected line unchanged, got %q", got)
	}
	if BackgroundSeq("") != "" {
		t.Fatal("expected empty sequence for empty color")
	}
}
