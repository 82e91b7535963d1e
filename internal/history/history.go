// Package history records how each panel presentation ended.
package history

import (
	"errors"
	"fmt"
	"time"
)

// Outcome is the callback a presentation fired.
type Outcome string

const (
	OutcomePrimary   Outcome = "primary"
	OutcomeSecondary Outcome = "secondary"
	OutcomeDismissed Outcome = "dismissed"
)

// ErrNotFound is returned when a panel has no recorded entries.
var ErrNotFound = errors.New("no history for panel")

// ErrInvalidOutcome is returned when recording an unknown outcome.
var ErrInvalidOutcome = errors.New("invalid outcome")

// IsValid reports whether o is a known outcome.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomePrimary, OutcomeSecondary, OutcomeDismissed:
		return true
	}
	return false
}

// ParseOutcome converts a string to an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	o := Outcome(s)
	if !o.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOutcome, s)
	}
	return o, nil
}

// Entry is one recorded outcome.
type Entry struct {
	ID      int64
	PanelID string
	Outcome Outcome
	At      time.Time
}
