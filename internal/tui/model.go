package tui

import (
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/javiermolinar/edupanel/internal/config"
	"github.com/javiermolinar/edupanel/internal/history"
	"github.com/javiermolinar/edupanel/internal/panel"
	"github.com/javiermolinar/edupanel/internal/tui/theme"
	"github.com/javiermolinar/edupanel/internal/tui/view"
)

// dismissTransition stands in for the fade-out between WillDisappear and
// DidDisappear.
const dismissTransition = 120 * time.Millisecond

// Event is one fired panel callback.
type Event struct {
	Outcome history.Outcome
	At      time.Time
}

// Result is what happened during one presentation.
type Result struct {
	PanelID string
	Events  []Event
	// Aborted is set when the program was interrupted before the panel
	// finished disappearing.
	Aborted bool
}

// Outcomes lists the recorded outcomes in order.
func (r Result) Outcomes() []history.Outcome {
	out := make([]history.Outcome, len(r.Events))
	for i, ev := range r.Events {
		out[i] = ev.Outcome
	}
	return out
}

// session is shared by the Model copies bubbletea passes around and by the
// panel callbacks, which cannot return commands.
type session struct {
	result           Result
	dismissRequested bool
	now              func() time.Time
}

func (s *session) record(o history.Outcome) {
	s.result.Events = append(s.result.Events, Event{Outcome: o, At: s.now()})
}

func (s *session) takeDismiss() bool {
	d := s.dismissRequested
	s.dismissRequested = false
	return d
}

type disappearedMsg struct{}

type themeChangedMsg struct {
	theme *theme.Theme
}

type statusMsg string

// ContentMsg replaces the panel content while it is shown. The panel lays
// itself out again before the next frame.
type ContentMsg struct {
	Content panel.Content
}

// Model is the panel host.
type Model struct {
	cfg   *config.Config
	state *panel.State
	sess  *session

	theme   *theme.Theme
	palette *theme.Palette
	styles  *Styles

	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	overlay  OverlayModel
	rowSpans []view.RowSpan

	log       logrus.FieldLogger
	clipboard func(string) error

	width     int
	height    int
	sizeClass panel.SizeClass
	appeared  bool
	leaving   bool
	status    string
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for lifecycle and input events.
func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		m.clipboard = write
	}
}

// WithClock sets the time source used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.sess.now = now
	}
}

// New creates the host for one panel presentation.
func New(cfg *config.Config, content panel.Content, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	m := Model{
		cfg:       cfg,
		sess:      &session{result: Result{PanelID: cfg.Panel.ID}, now: time.Now},
		keys:      DefaultKeyMap(),
		help:      help.New(),
		viewport:  viewport.New(0, 0),
		overlay:   NewOverlayModel(),
		log:       discard,
		clipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.log = m.log.WithField("panel", cfg.Panel.ID)

	sess := m.sess
	m.state = panel.New(cfg.Panel.ShowCloseButton, panel.Options{
		OnPrimaryTap: func(panel.TapEvent) {
			sess.record(history.OutcomePrimary)
			sess.dismissRequested = true
		},
		OnSecondaryTap: func(panel.TapEvent) {
			sess.record(history.OutcomeSecondary)
			sess.dismissRequested = true
		},
		OnDismiss: func() {
			sess.record(history.OutcomeDismissed)
		},
		DiscardDismissOnPrimaryTap: cfg.Panel.DiscardDismissOnPrimary,
		Logger:                     m.log,
	})
	m.state.SetContent(content)

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		m.log.WithError(err).Warn("theme load failed, using defaults")
	}
	m.applyTheme(t)

	return m
}

// State exposes the panel state.
func (m Model) State() *panel.State {
	return m.state
}

// Result returns the events recorded so far.
func (m Model) Result() Result {
	return m.sess.result
}

// Init implements tea.Model. The panel appears on the first WindowSizeMsg,
// once the vertical size class is known.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) applyTheme(t *theme.Theme) {
	m.theme = t
	m.palette = theme.NewPalette(t)
	m.styles = NewStyles(m.palette)
	view.MustCollapsible(m.styles.Panel)

	if t != nil {
		m.state.ApplyTheme(t)
	}
	if tint := m.state.Tint(); tint != "" {
		m.styles.Panel.Tint = lipgloss.Color(tint)
	}
	m.overlay.SetBackground(m.styles.colorBackdrop)
	m.overlay.SetCardBackground(m.styles.colorCardBg)
	m.help.Styles = m.styles.Help
	m.refreshContent()
}

// sizeClassFor maps a terminal height to a vertical size class.
func (m Model) sizeClassFor(height int) panel.SizeClass {
	if height < m.cfg.Layout.CompactHeight {
		return panel.SizeCompact
	}
	return panel.SizeRegular
}
