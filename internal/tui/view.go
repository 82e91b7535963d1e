package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/edupanel/internal/config"
	"github.com/javiermolinar/edupanel/internal/panel"
	"github.com/javiermolinar/edupanel/internal/tui/view"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.appeared || m.width <= 0 || m.height <= 0 {
		return ""
	}
	return m.overlay.Render(m.width, m.height, m.renderCard())
}

func (m Model) renderCard() string {
	return view.RenderModalFrame("", m.viewport.View(), m.renderFooter(), m.styles.Modal)
}

func (m Model) renderFooter() string {
	innerW := m.innerWidth()
	var lines []string

	status := m.status
	if status == "" && m.keys.Down.Enabled() {
		status = view.ScrollIndicator(m.viewport.AtTop(), m.viewport.AtBottom(), m.viewport.ScrollPercent())
	}
	if status != "" {
		lines = append(lines, m.styles.StatusStyle.MaxWidth(innerW).Render(status))
	}
	if h := m.help.View(m.keys); h != "" {
		lines = append(lines, h)
	}
	return strings.Join(lines, "\n")
}

// Run presents the panel and blocks until it has disappeared or the
// program is interrupted.
func Run(ctx context.Context, cfg *config.Config, content panel.Content, opts ...Option) (Result, error) {
	m := New(cfg, content, opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return finishRun(m.sess, err)
}

// finishRun treats a cancelled context like ctrl+c: the presentation is
// aborted and the outcomes recorded so far are kept.
func finishRun(sess *session, err error) (Result, error) {
	if errors.Is(err, tea.ErrProgramKilled) {
		sess.result.Aborted = true
		err = nil
	}
	return sess.result, err
}
