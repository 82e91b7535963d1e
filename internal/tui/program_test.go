package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/javiermolinar/edupanel/internal/config"
	"github.com/javiermolinar/edupanel/internal/history"
)

func startProgram(t *testing.T, m Model) *teatest.TestModel {
	t.Helper()
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 40))
	teatest.WaitFor(t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Reading lists"))
		},
		teatest.WithCheckInterval(50*time.Millisecond),
		teatest.WithDuration(3*time.Second),
	)
	return tm
}

func finalModel(t *testing.T, tm *teatest.TestModel) Model {
	t.Helper()
	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	if !ok {
		t.Fatal("final model is not a Model")
	}
	return final
}

func TestProgramPrimaryTap(t *testing.T) {
	tm := startProgram(t, newTestModel(t, nil, testContent()))

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	m := finalModel(t, tm)
	assertOutcomes(t, m, history.OutcomePrimary, history.OutcomeDismissed)
	if m.State().PrimaryTapped() {
		t.Fatal("primary flag should be reset once the panel has disappeared")
	}
}

func TestProgramDiscardDismissOnPrimary(t *testing.T) {
	m := newTestModel(t, func(c *config.Config) { c.Panel.DiscardDismissOnPrimary = true }, testContent())
	tm := startProgram(t, m)

	tm.Type("p")
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	assertOutcomes(t, finalModel(t, tm), history.OutcomePrimary)
}

func TestProgramBackdropClick(t *testing.T) {
	tm := startProgram(t, newTestModel(t, nil, testContent()))

	tm.Send(tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	assertOutcomes(t, finalModel(t, tm), history.OutcomeDismissed)
}

func TestFinishRun(t *testing.T) {
	boom := errors.New("tty gone")
	tests := []struct {
		name        string
		err         error
		wantErr     error
		wantAborted bool
	}{
		{"clean exit", nil, nil, false},
		{"context cancelled", fmt.Errorf("%w: %w", tea.ErrProgramKilled, context.Canceled), nil, true},
		{"killed", tea.ErrProgramKilled, nil, true},
		{"other failure", boom, boom, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := &session{now: time.Now}
			sess.record(history.OutcomePrimary)

			res, err := finishRun(sess, tt.err)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if res.Aborted != tt.wantAborted {
				t.Fatalf("aborted = %v, want %v", res.Aborted, tt.wantAborted)
			}
			if got := res.Outcomes(); len(got) != 1 || got[0] != history.OutcomePrimary {
				t.Fatalf("outcomes = %v, want [primary]", got)
			}
		})
	}
}
