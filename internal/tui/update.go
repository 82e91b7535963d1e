package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/edupanel/internal/panel"
	"github.com/javiermolinar/edupanel/internal/tui/theme"
	"github.com/javiermolinar/edupanel/internal/tui/view"
)

// footerLines is the space reserved under the body for the scroll
// indicator or status line and the key help.
const footerLines = 2

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case themeChangedMsg:
		m.applyTheme(msg.theme)
		if msg.theme != nil {
			m.status = "theme: " + msg.theme.Name
		}
		return m, nil
	case statusMsg:
		m.status = string(msg)
		return m, nil
	case ContentMsg:
		m.state.SetContent(msg.Content)
		m.refreshContent()
		return m, nil
	case disappearedMsg:
		m.state.DidDisappear()
		m.log.Debug("panel did disappear")
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	sc := m.sizeClassFor(msg.Height)
	switch {
	case !m.appeared:
		m.sizeClass = sc
		m.state.WillAppear(sc)
		m.appeared = true
	case sc != m.sizeClass:
		// Image visibility must settle before the relayout below.
		m.sizeClass = sc
		m.state.SizeClassWillChange(sc)
	}

	m.refreshContent()
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	logKeyPress(m.log, msg)

	if key.Matches(msg, m.keys.Abort) {
		m.sess.result.Aborted = true
		return m, tea.Quit
	}
	if !m.appeared || m.leaving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Primary):
		m.state.OnPrimaryButtonActivated(panel.TapEvent{Source: "key"})
		return m.afterTap()
	case key.Matches(msg, m.keys.Secondary):
		m.state.OnSecondaryButtonActivated(panel.TapEvent{Source: "key"})
		return m.afterTap()
	case key.Matches(msg, m.keys.Close):
		if m.state.OnCloseActivated() {
			return m.dismiss("close")
		}
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.clipboard, panelText(m.state.Content(), m.state.Visibility()))
	case key.Matches(msg, m.keys.Theme):
		current := theme.DefaultName
		if m.theme != nil {
			current = m.theme.Name
		}
		return m, loadThemeCmd(theme.Next(current))
	}
	return m, nil
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.appeared || m.leaving {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.LineUp(3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.viewport.LineDown(3)
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	rect := m.overlay.Place(m.width, m.height, m.renderCard())
	inCard := rect.Contains(msg.X, msg.Y)
	logMouse(m.log, msg, inCard)

	if inCard {
		if row, ok := m.rowAt(msg.X-rect.X-cardInsetX, msg.Y-rect.Y-cardInsetY); ok {
			switch row {
			case panel.RowPrimary:
				m.state.OnPrimaryButtonActivated(panel.TapEvent{Source: "mouse"})
				return m.afterTap()
			case panel.RowSecondary:
				m.state.OnSecondaryButtonActivated(panel.TapEvent{Source: "mouse"})
				return m.afterTap()
			case panel.RowClose:
				if m.state.OnCloseActivated() {
					return m.dismiss("close")
				}
			}
		}
	}

	if m.state.OnOverlayTapped(!inCard) {
		return m.dismiss("overlay")
	}
	return m, nil
}

// rowAt maps a cell relative to the visible body to the row drawn there.
func (m Model) rowAt(x, y int) (panel.Row, bool) {
	if y < 0 || y >= m.viewport.Height || x < 0 || x >= m.viewport.Width {
		return 0, false
	}
	y += m.viewport.YOffset
	for _, span := range m.rowSpans {
		if span.Contains(x, y) {
			return span.Row, true
		}
	}
	return 0, false
}

// afterTap starts dismissal when a button handler asked for it.
func (m Model) afterTap() (tea.Model, tea.Cmd) {
	if m.sess.takeDismiss() {
		return m.dismiss("button")
	}
	m.refreshContent()
	return m, nil
}

// dismiss runs WillDisappear now and DidDisappear once the transition ends.
func (m Model) dismiss(reason string) (tea.Model, tea.Cmd) {
	if m.leaving {
		return m, nil
	}
	m.leaving = true
	m.log.WithField("reason", reason).Debug("panel will disappear")
	m.state.WillDisappear()
	return m, tea.Tick(dismissTransition, func(time.Time) tea.Msg {
		return disappearedMsg{}
	})
}

// refreshContent lays the panel out again if needed and resizes the
// viewport to the card.
func (m *Model) refreshContent() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	if m.state.NeedsLayout() {
		m.state.Layout(m.sizeClass)
	}
	vis := m.state.Visibility()
	m.keys.syncWithVisibility(vis)

	innerW := m.innerWidth()
	body, spans := view.LayoutPanelRows(view.PanelModel{
		Content:       m.state.Content(),
		Visibility:    vis,
		CloseHint:     m.keys.Close.Help().Key,
		PrimaryHint:   m.keys.Primary.Help().Key,
		SecondaryHint: m.keys.Secondary.Help().Key,
	}, m.styles.Panel, innerW)
	m.rowSpans = spans

	bodyH := lipgloss.Height(body)
	maxBodyH := max(m.height-2-cardFrameH-footerLines, 1)
	vpH := min(max(bodyH, 1), maxBodyH)

	m.viewport.Width = innerW
	m.viewport.Height = vpH
	m.viewport.Style = lipgloss.NewStyle().Background(m.styles.colorCardBg)
	m.viewport.SetContent(body)
	m.keys.syncScroll(bodyH > vpH)
	m.help.Width = innerW
}

func (m Model) innerWidth() int {
	cardW := min(m.cfg.Layout.MaxWidth, m.width-2)
	return max(cardW-cardFrameW, 1)
}

// panelText is the visible text of the panel, one paragraph per row.
func panelText(c panel.Content, v panel.Visibility) string {
	var parts []string
	for _, r := range []panel.Row{panel.RowHeading, panel.RowSubheading, panel.RowFooter} {
		if !v.Visible(r) {
			continue
		}
		switch r {
		case panel.RowHeading:
			parts = append(parts, strings.TrimSpace(c.Heading))
		case panel.RowSubheading:
			parts = append(parts, strings.TrimSpace(c.Subheading))
		case panel.RowFooter:
			parts = append(parts, strings.TrimSpace(c.Footer))
		}
	}
	return strings.Join(parts, "\n\n")
}

func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return statusMsg("nothing to copy")
		}
		if err := write(text); err != nil {
			return statusMsg("copy failed: " + err.Error())
		}
		return statusMsg("copied to clipboard")
	}
}

func loadThemeCmd(name string) tea.Cmd {
	return func() tea.Msg {
		t, err := theme.Load(name)
		if err != nil {
			return statusMsg("theme: " + err.Error())
		}
		return themeChangedMsg{theme: t}
	}
}
