package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render the modal card.
type ModalStyles struct {
	ModalTitleStyle  lipgloss.Style
	ModalFooterStyle lipgloss.Style
	ModalStyle       lipgloss.Style
}

// RenderModalFrame renders a modal with the provided title, body, and footer.
// An empty title or footer is left out along with its spacing.
func RenderModalFrame(title, body, footer string, styles ModalStyles) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(styles.ModalTitleStyle.Render(title))
	}
	if body != "" {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(body)
	}
	if footer != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.ModalFooterStyle.Render(footer))
	}

	return styles.ModalStyle.Render(b.String())
}

// ScrollIndicator describes how much of a scrolled body is hidden. It
// returns an empty string when everything fits.
func ScrollIndicator(atTop, atBottom bool, percent float64) string {
	switch {
	case atTop && atBottom:
		return ""
	case atTop:
		return "↓ more"
	case atBottom:
		return "↑ more"
	default:
		return fmt.Sprintf("↕ %d%%", int(percent*100))
	}
}
