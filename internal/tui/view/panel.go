// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/edupanel/internal/panel"
)

// PanelStyles groups one style per panel row.
type PanelStyles struct {
	Close      lipgloss.Style
	Image      lipgloss.Style
	Heading    lipgloss.Style
	Subheading lipgloss.Style
	Primary    lipgloss.Style
	Secondary  lipgloss.Style
	Footer     lipgloss.Style

	// Tint colors the buttons. Empty keeps the button styles unchanged.
	Tint lipgloss.Color
	// Gap is the number of blank lines between visible rows.
	Gap int
}

// Row returns the style for r.
func (s PanelStyles) Row(r panel.Row) lipgloss.Style {
	switch r {
	case panel.RowClose:
		return s.Close
	case panel.RowImage:
		return s.Image
	case panel.RowHeading:
		return s.Heading
	case panel.RowSubheading:
		return s.Subheading
	case panel.RowPrimary:
		return s.Primary
	case panel.RowSecondary:
		return s.Secondary
	case panel.RowFooter:
		return s.Footer
	default:
		return lipgloss.NewStyle()
	}
}

// CheckCollapsible reports the first collapsible row whose style forces a
// height. Such a row would keep its space when hidden.
func CheckCollapsible(styles PanelStyles) error {
	for _, r := range panel.AllRows() {
		if !r.Collapsible() {
			continue
		}
		if h := styles.Row(r).GetHeight(); h > 0 {
			return fmt.Errorf("row %s has a fixed height of %d; collapsible rows must not set Height", r, h)
		}
	}
	return nil
}

// MustCollapsible panics if CheckCollapsible fails.
func MustCollapsible(styles PanelStyles) {
	if err := CheckCollapsible(styles); err != nil {
		panic("view: " + err.Error())
	}
}

// PanelModel contains the fields needed to render the panel body.
type PanelModel struct {
	Content    panel.Content
	Visibility panel.Visibility

	CloseHint     string
	PrimaryHint   string
	SecondaryHint string
}

// RowSpan is where a visible row landed in the rendered body. Left and
// Width cover the label for the close and button rows and the full width
// otherwise.
type RowSpan struct {
	Row    panel.Row
	Top    int
	Height int
	Left   int
	Width  int
}

// Contains reports whether the body cell (x, y) lies inside the span.
func (s RowSpan) Contains(x, y int) bool {
	return y >= s.Top && y < s.Top+s.Height && x >= s.Left && x < s.Left+s.Width
}

// RenderPanelRows renders the visible rows in stack order. Hidden rows take
// no lines.
func RenderPanelRows(model PanelModel, styles PanelStyles, width int) string {
	body, _ := LayoutPanelRows(model, styles, width)
	return body
}

// LayoutPanelRows renders like RenderPanelRows and also reports the span of
// every drawn row.
func LayoutPanelRows(model PanelModel, styles PanelStyles, width int) (string, []RowSpan) {
	if width <= 0 {
		return "", nil
	}

	gap := max(styles.Gap, 0)
	var (
		blocks []string
		spans  []RowSpan
		top    int
	)
	for _, r := range model.Visibility.VisibleRows() {
		block := renderRow(r, model, styles, width)
		if block == "" {
			continue
		}
		h := lipgloss.Height(block)
		span := RowSpan{Row: r, Top: top, Height: h, Width: width}
		if r == panel.RowClose || r == panel.RowPrimary || r == panel.RowSecondary {
			span.Left, span.Width = buttonExtent(block, width)
		}
		blocks = append(blocks, block)
		spans = append(spans, span)
		top += h + gap
	}

	sep := "\n" + strings.Repeat("\n", gap)
	return strings.Join(blocks, sep), spans
}

// buttonExtent finds the first non-blank column of a row and the width of
// its non-blank part.
func buttonExtent(block string, width int) (int, int) {
	line := ansi.Strip(strings.Split(block, "\n")[0])
	trimmed := strings.TrimLeft(line, " ")
	left := lipgloss.Width(line) - lipgloss.Width(trimmed)
	w := lipgloss.Width(strings.TrimRight(trimmed, " "))
	if w == 0 {
		return 0, width
	}
	return left, w
}

func renderRow(r panel.Row, model PanelModel, styles PanelStyles, width int) string {
	c := model.Content
	switch r {
	case panel.RowClose:
		label := withHint("✕ close", model.CloseHint)
		return styles.Close.Width(width).Align(lipgloss.Right).Render(label)
	case panel.RowImage:
		return styles.Image.Render(centerBlock(c.Image, width))
	case panel.RowHeading:
		return styles.Heading.Width(width).Align(lipgloss.Center).Render(strings.TrimSpace(c.Heading))
	case panel.RowSubheading:
		return styles.Subheading.Width(width).Align(lipgloss.Center).Render(strings.TrimSpace(c.Subheading))
	case panel.RowPrimary:
		style := styles.Primary
		if styles.Tint != "" {
			style = style.Background(styles.Tint)
		}
		return renderButton(style, withHint(strings.TrimSpace(c.PrimaryTitle), model.PrimaryHint), width)
	case panel.RowSecondary:
		style := styles.Secondary
		if styles.Tint != "" {
			style = style.Foreground(styles.Tint)
		}
		return renderButton(style, withHint(strings.TrimSpace(c.SecondaryTitle), model.SecondaryHint), width)
	case panel.RowFooter:
		return styles.Footer.Width(width).Align(lipgloss.Center).Render(strings.TrimSpace(c.Footer))
	}
	return ""
}

func renderButton(style lipgloss.Style, label string, width int) string {
	btn := style.MaxWidth(width).Render(label)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, btn)
}

func withHint(label, hint string) string {
	if hint == "" {
		return label
	}
	return "[" + hint + "] " + label
}

// centerBlock centers the image as one block so its lines stay aligned.
// Lines wider than width are truncated.
func centerBlock(img *panel.Image, width int) string {
	if img.Empty() {
		return ""
	}

	blockW := 0
	for _, line := range img.Lines {
		if w := runewidth.StringWidth(line); w > blockW {
			blockW = w
		}
	}
	if blockW > width {
		blockW = width
	}
	left := (width - blockW) / 2

	lines := make([]string, len(img.Lines))
	for i, line := range img.Lines {
		line = runewidth.Truncate(line, blockW, "")
		line = runewidth.FillRight(line, blockW)
		lines[i] = strings.Repeat(" ", left) + line
	}
	return strings.Join(lines, "\n")
}
