package integration

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/edupanel/internal/config"
	"github.com/javiermolinar/edupanel/internal/history"
	"github.com/javiermolinar/edupanel/internal/panel"
	"github.com/javiermolinar/edupanel/internal/tui"
)

// openStore creates a fresh history store for each test with automatic cleanup.
func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testConfig(t *testing.T, mutate func(*config.Config)) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Panel.ID = "reading-lists"
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return cfg
}

func testContent() panel.Content {
	return panel.Content{
		Image:          panel.NewImage("[ reading list ]"),
		Heading:        "Reading lists",
		Subheading:     "Save articles to read later",
		PrimaryTitle:   "Got it",
		SecondaryTitle: "Learn more",
		Footer:         "Synced across devices",
	}
}

// present runs one presentation, sends input once the panel is drawn and
// records the outcome the way the CLI does.
func present(t *testing.T, store *history.Store, cfg *config.Config, input tea.Msg) tui.Result {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	tm := teatest.NewTestModel(t, tui.New(cfg, testContent()), teatest.WithInitialTermSize(80, 40))
	teatest.WaitFor(t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Reading lists"))
		},
		teatest.WithCheckInterval(50*time.Millisecond),
		teatest.WithDuration(3*time.Second),
	)
	tm.Send(input)

	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(tui.Model)
	if !ok {
		t.Fatal("final model is not a tui.Model")
	}
	res := final.Result()

	ctx := context.Background()
	for _, ev := range res.Events {
		if err := store.Record(ctx, &history.Entry{PanelID: res.PanelID, Outcome: ev.Outcome, At: ev.At}); err != nil {
			t.Fatalf("failed to record outcome: %v", err)
		}
	}
	return res
}

func TestFullWorkflow(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	cfg := testConfig(t, func(c *config.Config) { c.Panel.DiscardDismissOnPrimary = true })

	// 1. First presentation: the user asks to learn more.
	present(t, store, cfg, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	acked, err := store.Acknowledged(ctx, cfg.Panel.ID)
	if err != nil {
		t.Fatalf("Acknowledged failed: %v", err)
	}
	if acked {
		t.Fatal("a secondary tap must not acknowledge the panel")
	}

	// 2. Second presentation: the user acknowledges it. The dismiss
	// outcome is discarded.
	present(t, store, cfg, tea.KeyMsg{Type: tea.KeyEnter})

	acked, err = store.Acknowledged(ctx, cfg.Panel.ID)
	if err != nil {
		t.Fatalf("Acknowledged failed: %v", err)
	}
	if !acked {
		t.Fatal("a primary tap should acknowledge the panel")
	}

	// 3. History reads newest first.
	entries, err := store.List(ctx, cfg.Panel.ID, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []history.Outcome{history.OutcomePrimary, history.OutcomeDismissed, history.OutcomeSecondary}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Outcome != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Outcome, want[i])
		}
	}

	last, err := store.Last(ctx, cfg.Panel.ID)
	if err != nil {
		t.Fatalf("Last failed: %v", err)
	}
	if last.Outcome != history.OutcomePrimary {
		t.Errorf("last outcome = %q, want primary", last.Outcome)
	}
}

func TestBackdropClickWithoutCloseButton(t *testing.T) {
	store := openStore(t)
	cfg := testConfig(t, func(c *config.Config) { c.Panel.ShowCloseButton = false })

	// The backdrop click is ignored, so only the follow-up key ends the run.
	lipgloss.SetColorProfile(termenv.Ascii)
	tm := teatest.NewTestModel(t, tui.New(cfg, testContent()), teatest.WithInitialTermSize(80, 40))
	teatest.WaitFor(t, tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte("Reading lists")) },
		teatest.WithCheckInterval(50*time.Millisecond),
		teatest.WithDuration(3*time.Second),
	)
	tm.Send(tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(tui.Model)
	got := final.Result().Outcomes()
	want := []history.Outcome{history.OutcomeSecondary, history.OutcomeDismissed}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("outcomes = %v, want %v", got, want)
	}

	if _, err := store.Last(context.Background(), cfg.Panel.ID); !errors.Is(err, history.ErrNotFound) {
		t.Fatalf("Last err = %v, want ErrNotFound", err)
	}
}

func TestAbortRecordsNothing(t *testing.T) {
	store := openStore(t)
	cfg := testConfig(t, nil)

	res := present(t, store, cfg, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !res.Aborted {
		t.Fatal("expected aborted result")
	}

	entries, err := store.List(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("got %d entries, want 0", len(entries))
	}
}
