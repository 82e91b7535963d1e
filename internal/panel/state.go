// Package panel holds the state of an education panel: its content, which
// rows are visible, and the callbacks fired by button taps and dismissal.
//
// State does no rendering. A host (see internal/tui) owns the terminal and
// calls into State for visibility and callback decisions.
package panel

import (
	"io"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

// Image is a block of text art shown above the heading.
type Image struct {
	Lines []string
}

// NewImage splits art into lines, dropping trailing blank lines.
func NewImage(art string) *Image {
	lines := strings.Split(strings.ReplaceAll(art, "\r\n", "\n"), "\n")
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	return &Image{Lines: lines}
}

// Empty reports whether the image has nothing to draw.
func (img *Image) Empty() bool {
	if img == nil {
		return true
	}
	for _, line := range img.Lines {
		if !isBlank(line) {
			return false
		}
	}
	return true
}

// Content is the text and image shown by a panel.
type Content struct {
	Image          *Image
	Heading        string
	Subheading     string
	PrimaryTitle   string
	SecondaryTitle string
	Footer         string
}

// TapEvent describes a button activation.
type TapEvent struct {
	Row    Row
	Source string // "key" or "mouse"
}

// Options are fixed when the panel is created.
type Options struct {
	OnPrimaryTap   func(TapEvent)
	OnSecondaryTap func(TapEvent)
	OnDismiss      func()

	// DiscardDismissOnPrimaryTap suppresses OnDismiss for a presentation in
	// which the primary button was tapped.
	DiscardDismissOnPrimaryTap bool

	Logger logrus.FieldLogger
}

// Themer supplies the link color used to tint buttons.
type Themer interface {
	LinkColor() string
}

type phase int

const (
	phaseHidden phase = iota
	phaseVisible
	phaseDisappearing
)

func (p phase) String() string {
	switch p {
	case phaseVisible:
		return "visible"
	case phaseDisappearing:
		return "disappearing"
	default:
		return "hidden"
	}
}

// State is the UI state of one panel. It is not safe for concurrent use;
// all calls are expected on the host's event loop.
type State struct {
	content         Content
	showCloseButton bool
	opts            Options
	log             logrus.FieldLogger

	tint string

	sizeClass  SizeClass
	visibility Visibility
	dirty      bool

	primaryTapped bool
	phase         phase
}

// New creates a panel with empty content.
func New(showCloseButton bool, opts Options) *State {
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	s := &State{
		showCloseButton: showCloseButton,
		opts:            opts,
		log:             log.WithField("component", "panel"),
		dirty:           true,
	}
	s.visibility = s.ComputeVisibility(false)
	return s
}

// Content returns a copy of the current content.
func (s *State) Content() Content {
	return s.content
}

// ShowCloseButton reports whether the close row is enabled.
func (s *State) ShowCloseButton() bool {
	return s.showCloseButton
}

// SetContent replaces every content field.
func (s *State) SetContent(c Content) {
	s.SetImage(c.Image)
	s.SetHeading(c.Heading)
	s.SetSubheading(c.Subheading)
	s.SetPrimaryTitle(c.PrimaryTitle)
	s.SetSecondaryTitle(c.SecondaryTitle)
	s.SetFooter(c.Footer)
}

// SetImage replaces the image. A nil image clears it.
func (s *State) SetImage(img *Image) {
	s.content.Image = img
	s.dirty = true
}

// SetHeading replaces the heading text.
func (s *State) SetHeading(text string) {
	s.content.Heading = text
	s.dirty = true
}

// SetSubheading replaces the subheading text.
func (s *State) SetSubheading(text string) {
	s.content.Subheading = text
	s.dirty = true
}

// SetPrimaryTitle replaces the primary button title.
func (s *State) SetPrimaryTitle(text string) {
	s.content.PrimaryTitle = text
	s.dirty = true
}

// SetSecondaryTitle replaces the secondary button title.
func (s *State) SetSecondaryTitle(text string) {
	s.content.SecondaryTitle = text
	s.dirty = true
}

// SetFooter replaces the footer text.
func (s *State) SetFooter(text string) {
	s.content.Footer = text
	s.dirty = true
}

// ComputeVisibility derives row visibility from the current content. It has
// no side effects.
func (s *State) ComputeVisibility(compactVertical bool) Visibility {
	var v Visibility
	v.set(RowClose, !s.showCloseButton)
	v.set(RowImage, s.content.Image.Empty() || compactVertical)
	v.set(RowHeading, isBlank(s.content.Heading))
	v.set(RowSubheading, isBlank(s.content.Subheading))
	v.set(RowPrimary, isBlank(s.content.PrimaryTitle))
	v.set(RowSecondary, isBlank(s.content.SecondaryTitle))
	v.set(RowFooter, isBlank(s.content.Footer))
	return v
}

// NeedsLayout reports whether content changed since the last Layout.
func (s *State) NeedsLayout() bool {
	return s.dirty
}

// Layout recomputes visibility for the given size class and caches it.
func (s *State) Layout(sc SizeClass) Visibility {
	s.sizeClass = sc
	s.visibility = s.ComputeVisibility(sc == SizeCompact)
	s.dirty = false
	return s.visibility
}

// Visibility returns the visibility computed by the last Layout.
func (s *State) Visibility() Visibility {
	return s.visibility
}

// SizeClass returns the vertical size class last reported by the host.
func (s *State) SizeClass() SizeClass {
	return s.sizeClass
}

// WillAppear starts a presentation and recomputes every row.
func (s *State) WillAppear(sc SizeClass) Visibility {
	s.phase = phaseVisible
	v := s.Layout(sc)
	s.log.WithFields(logrus.Fields{
		"size_class": sc.String(),
		"rows":       v.String(),
	}).Debug("panel will appear")
	return v
}

// SizeClassWillChange recomputes visibility for a new vertical size class.
func (s *State) SizeClassWillChange(sc SizeClass) Visibility {
	if sc != s.sizeClass {
		s.log.WithFields(logrus.Fields{
			"from": s.sizeClass.String(),
			"to":   sc.String(),
		}).Debug("size class changing")
	}
	return s.Layout(sc)
}

// OnPrimaryButtonActivated records the tap and runs the primary handler.
// The flag is set before the handler runs so a handler that dismisses the
// panel synchronously sees it.
func (s *State) OnPrimaryButtonActivated(ev TapEvent) {
	if s.opts.OnPrimaryTap == nil {
		return
	}
	s.primaryTapped = true
	ev.Row = RowPrimary
	s.opts.OnPrimaryTap(ev)
}

// OnSecondaryButtonActivated runs the secondary handler.
func (s *State) OnSecondaryButtonActivated(ev TapEvent) {
	if s.opts.OnSecondaryTap == nil {
		return
	}
	ev.Row = RowSecondary
	s.opts.OnSecondaryTap(ev)
}

// OnCloseActivated reports that the panel should be dismissed.
func (s *State) OnCloseActivated() bool {
	return true
}

// OnOverlayTapped reports whether a tap should dismiss the panel. Only taps
// on the backdrop count, and only when the close button is enabled.
func (s *State) OnOverlayTapped(targetIsRootOverlay bool) bool {
	return s.showCloseButton && targetIsRootOverlay
}

// WillDisappear runs the dismiss handler unless it is suppressed by a
// primary tap.
func (s *State) WillDisappear() {
	s.phase = phaseDisappearing
	if s.opts.OnDismiss == nil {
		return
	}
	if s.opts.DiscardDismissOnPrimaryTap && s.primaryTapped {
		s.log.Debug("dismiss handler discarded after primary tap")
		return
	}
	s.opts.OnDismiss()
}

// DidDisappear ends the presentation and clears the primary tap flag.
func (s *State) DidDisappear() {
	if s.phase != phaseDisappearing {
		s.log.WithField("phase", s.phase.String()).Warn("did disappear without will disappear")
	}
	s.primaryTapped = false
	s.phase = phaseHidden
}

// PrimaryTapped reports whether the primary button fired during the current
// presentation.
func (s *State) PrimaryTapped() bool {
	return s.primaryTapped
}

// ApplyTheme tints the buttons with the theme's link color.
func (s *State) ApplyTheme(t Themer) {
	if t == nil {
		return
	}
	s.tint = t.LinkColor()
}

// Tint returns the button tint color set by ApplyTheme.
func (s *State) Tint() string {
	return s.tint
}

func isBlank(text string) bool {
	return strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
