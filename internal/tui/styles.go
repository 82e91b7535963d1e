// Package tui provides the terminal user interface for edupanel.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/edupanel/internal/tui/theme"
	"github.com/javiermolinar/edupanel/internal/tui/view"
)

// Card chrome: rounded border plus Padding(1, 2).
const (
	cardFrameW = 2 + 4
	cardFrameH = 2 + 2

	// Offset of the body's first cell from the card's top-left corner.
	cardInsetX = 1 + 2
	cardInsetY = 1 + 1
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBackdrop lipgloss.Color
	colorCardBg   lipgloss.Color

	Panel view.PanelStyles
	Modal view.ModalStyles

	StatusStyle lipgloss.Style
	Help        help.Styles
}

// NewStyles creates styles from a palette.
func NewStyles(p *theme.Palette) *Styles {
	cardBg := p.Modal.Bg
	base := lipgloss.NewStyle().Background(cardBg)

	s := &Styles{
		colorBackdrop: p.Modal.Backdrop,
		colorCardBg:   cardBg,
	}

	s.Panel = view.PanelStyles{
		Close:      base.Foreground(p.Modal.Muted),
		Image:      base.Foreground(p.Accent),
		Heading:    base.Foreground(p.Modal.Text).Bold(true),
		Subheading: base.Foreground(p.Modal.Muted),
		Primary: lipgloss.NewStyle().
			Foreground(p.TextOnLink).
			Background(p.Link).
			Bold(true).
			Padding(0, 2),
		Secondary: lipgloss.NewStyle().
			Foreground(p.TextOnLinkSoft).
			Background(p.LinkSoft).
			Padding(0, 2),
		Footer: base.Foreground(p.Modal.Muted).Italic(true),
		Tint:   p.Link,
		Gap:    1,
	}

	s.Modal = view.ModalStyles{
		ModalTitleStyle:  base.Foreground(p.Accent).Bold(true),
		ModalFooterStyle: base.Foreground(p.Modal.Muted),
		ModalStyle: lipgloss.NewStyle().
			Background(cardBg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Modal.Border).
			BorderBackground(cardBg).
			Padding(1, 2),
	}

	s.StatusStyle = base.Foreground(p.Warning)

	s.Help = help.Styles{
		ShortKey:       base.Foreground(p.Link),
		ShortDesc:      base.Foreground(p.Modal.Muted),
		ShortSeparator: base.Foreground(p.Modal.Muted),
		Ellipsis:       base.Foreground(p.Modal.Muted),
		FullKey:        base.Foreground(p.Link),
		FullDesc:       base.Foreground(p.Modal.Muted),
		FullSeparator:  base.Foreground(p.Modal.Muted),
	}

	return s
}
