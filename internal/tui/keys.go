package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/javiermolinar/edupanel/internal/panel"
)

// KeyMap holds the panel key bindings.
type KeyMap struct {
	Primary   key.Binding
	Secondary key.Binding
	Close     key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Copy      key.Binding
	Theme     key.Binding
	Abort     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Primary: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter", "primary"),
		),
		Secondary: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "secondary"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Primary, k.Secondary, k.Close, k.Down, k.Copy}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Primary, k.Secondary, k.Close},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Copy, k.Theme, k.Abort},
	}
}

// syncWithVisibility enables the button and close bindings only while their
// rows are shown.
func (k *KeyMap) syncWithVisibility(v panel.Visibility) {
	k.Primary.SetEnabled(v.Visible(panel.RowPrimary))
	k.Secondary.SetEnabled(v.Visible(panel.RowSecondary))
	k.Close.SetEnabled(v.Visible(panel.RowClose))
}

// syncScroll enables scroll bindings only when the body overflows.
func (k *KeyMap) syncScroll(scrollable bool) {
	for _, b := range []*key.Binding{&k.Up, &k.Down, &k.PageUp, &k.PageDown, &k.Top, &k.Bottom} {
		b.SetEnabled(scrollable)
	}
}
