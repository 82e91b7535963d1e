package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/edupanel/internal/tui/view"
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// OverlayModel draws a full-screen backdrop with a card centered on it.
type OverlayModel struct {
	bgColor   lipgloss.Color
	cardColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{
		bgColor:   lipgloss.Color(""),
		cardColor: lipgloss.Color(""),
	}
}

// SetBackground updates the backdrop color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// SetCardBackground sets the color restored inside the card after resets.
func (o *OverlayModel) SetCardBackground(color lipgloss.Color) {
	o.cardColor = color
}

// Place returns where card lands on a width x height screen.
func (o OverlayModel) Place(width, height int, card string) Rect {
	if width <= 0 || height <= 0 {
		return Rect{}
	}
	cardW, cardH := o.contentSize(o.contentLines(card))
	cardW = min(cardW, width)
	cardH = min(cardH, height)
	return Rect{
		X: max((width-cardW)/2, 0),
		Y: max((height-cardH)/2, 0),
		W: cardW,
		H: cardH,
	}
}

// Render draws the backdrop and the centered card.
func (o OverlayModel) Render(width, height int, card string) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	cardLines := o.contentLines(card)
	rect := o.Place(width, height, card)
	backdrop := o.backdropLine(width)

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < rect.Y || row >= rect.Y+rect.H {
			lines = append(lines, backdrop)
			continue
		}

		line := cardLines[row-rect.Y]
		lineWidth := lipgloss.Width(line)
		if lineWidth > rect.W {
			line = ansi.Cut(line, 0, rect.W)
			lineWidth = rect.W
		}
		if lineWidth < rect.W {
			line += strings.Repeat(" ", rect.W-lineWidth)
		}
		line = view.BackgroundSeq(o.cardColor) + view.ReapplyBackground(line, o.cardColor)

		left := o.fill(rect.X)
		right := o.fill(width - rect.X - rect.W)
		lines = append(lines, left+line+ansi.ResetStyle+right)
	}

	return strings.Join(lines, "\n")
}

func (o OverlayModel) backdropLine(width int) string {
	return o.fill(width)
}

func (o OverlayModel) fill(width int) string {
	if width <= 0 {
		return ""
	}
	spaces := strings.Repeat(" ", width)
	bgSeq := view.BackgroundSeq(o.bgColor)
	if bgSeq == "" {
		return spaces
	}
	return bgSeq + spaces + ansi.ResetStyle
}

func (o OverlayModel) contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (o OverlayModel) contentSize(lines []string) (int, int) {
	if len(lines) == 0 {
		return 0, 0
	}
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}
