package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/edupanel/internal/history"
)

const historyTimeLayout = "2006-01-02 15:04"

// formatOutcome colors an outcome by kind.
func formatOutcome(o history.Outcome) string {
	switch o {
	case history.OutcomePrimary:
		return colorPrimary.Sprint(string(o))
	case history.OutcomeSecondary:
		return colorSecondary.Sprint(string(o))
	default:
		return colorDismissed.Sprint(string(o))
	}
}

// formatHistory renders entries as aligned rows, newest first.
func formatHistory(entries []history.Entry, width int, loc *time.Location) string {
	if len(entries) == 0 {
		return "No outcomes recorded.\n"
	}

	idW := len("PANEL")
	for _, e := range entries {
		idW = max(idW, len(e.PanelID))
	}
	// Leave room for the time and outcome columns.
	idW = min(idW, max(width-len(historyTimeLayout)-len("dismissed")-4, 8))

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s  %-*s  %s\n", len(historyTimeLayout), "TIME", idW, "PANEL", "OUTCOME")
	sb.WriteString(formatMuted(strings.Repeat("─", min(width, len(historyTimeLayout)+idW+len("dismissed")+4))))
	sb.WriteString("\n")
	for _, e := range entries {
		id := e.PanelID
		if len(id) > idW {
			id = id[:idW-1] + "…"
		}
		fmt.Fprintf(&sb, "%s  %s  %s\n",
			e.At.In(loc).Format(historyTimeLayout),
			formatHeader(fmt.Sprintf("%-*s", idW, id)),
			formatOutcome(e.Outcome),
		)
	}
	return sb.String()
}
