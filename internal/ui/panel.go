package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/edupanel/internal/config"
	"github.com/javiermolinar/edupanel/internal/history"
	"github.com/javiermolinar/edupanel/internal/tui"
)

// panelFlags override the [panel] and [ui] config sections for one run.
type panelFlags struct {
	heading                 string
	subheading              string
	primary                 string
	secondary               string
	footer                  string
	imageFile               string
	panelID                 string
	theme                   string
	noClose                 bool
	discardDismissOnPrimary bool
	once                    bool
}

func (f *panelFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.heading, "heading", "", "Heading text")
	fs.StringVar(&f.subheading, "subheading", "", "Subheading text")
	fs.StringVar(&f.primary, "primary", "", "Primary button title")
	fs.StringVar(&f.secondary, "secondary", "", "Secondary button title")
	fs.StringVar(&f.footer, "footer", "", "Footer text")
	fs.StringVar(&f.imageFile, "image-file", "", "Read the panel image from a text file")
	fs.StringVar(&f.panelID, "id", "", "Panel id used for history")
	fs.StringVar(&f.theme, "theme", "", "Color theme")
	fs.BoolVar(&f.noClose, "no-close", false, "Hide the close button (overlay taps then do nothing)")
	fs.BoolVar(&f.discardDismissOnPrimary, "discard-dismiss-on-primary", false, "Skip the dismissed outcome after a primary tap")
	fs.BoolVar(&f.once, "once", false, "Skip the panel if its primary button was tapped before")
}

// apply copies the flags the user set onto cfg.
func (f *panelFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("heading", &cfg.Panel.Heading, f.heading)
	set("subheading", &cfg.Panel.Subheading, f.subheading)
	set("primary", &cfg.Panel.PrimaryTitle, f.primary)
	set("secondary", &cfg.Panel.SecondaryTitle, f.secondary)
	set("footer", &cfg.Panel.Footer, f.footer)
	set("image-file", &cfg.Panel.ImageFile, f.imageFile)
	set("id", &cfg.Panel.ID, f.panelID)
	set("theme", &cfg.UI.Theme, f.theme)
	if fs.Changed("no-close") {
		cfg.Panel.ShowCloseButton = !f.noClose
	}
	if fs.Changed("discard-dismiss-on-primary") {
		cfg.Panel.DiscardDismissOnPrimary = f.discardDismissOnPrimary
	}
}

func (a *App) runPanel(cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg := *a.config
	a.flags.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	content, err := cfg.Panel.Content()
	if err != nil {
		return fmt.Errorf("loading panel content: %w", err)
	}

	logger, closeLog, err := tui.NewDebugLogger(a.debug, tui.DebugLogPath)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logger.WithField("panel", cfg.Panel.ID)

	store, err := history.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer func() { _ = store.Close() }()

	if a.flags.once {
		acked, err := store.Acknowledged(ctx, cfg.Panel.ID)
		if err != nil {
			return err
		}
		if acked {
			log.Debug("panel already acknowledged, skipping")
			fmt.Fprintf(out, "%s already acknowledged\n", formatHeader(cfg.Panel.ID))
			return nil
		}
	}

	res, presentErr := a.present(ctx, &cfg, content, tui.WithLogger(logger))

	// Outcomes that fired before a failure still count. The store gets a
	// fresh context since ctx may be the one that ended the presentation.
	recordCtx := context.WithoutCancel(ctx)
	for _, ev := range res.Events {
		entry := &history.Entry{PanelID: res.PanelID, Outcome: ev.Outcome, At: ev.At}
		if err := store.Record(recordCtx, entry); err != nil {
			return fmt.Errorf("recording outcome: %w", err)
		}
		log.WithField("outcome", ev.Outcome).Debug("outcome recorded")
	}
	if presentErr != nil {
		return fmt.Errorf("presenting panel: %w", presentErr)
	}

	printResult(out, res)
	return nil
}

func printResult(w io.Writer, res tui.Result) {
	if res.Aborted && len(res.Events) == 0 {
		fmt.Fprintln(w, formatMuted("aborted"))
		return
	}
	if len(res.Events) == 0 {
		fmt.Fprintln(w, formatMuted("no outcome"))
		return
	}
	for _, ev := range res.Events {
		fmt.Fprintf(w, "%s %s\n", formatHeader(res.PanelID), formatOutcome(ev.Outcome))
	}
}
