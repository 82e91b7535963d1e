package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/edupanel/internal/config"
	"github.com/javiermolinar/edupanel/internal/panel"
	"github.com/javiermolinar/edupanel/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// PresentFunc shows a panel and reports what happened.
type PresentFunc func(ctx context.Context, cfg *config.Config, content panel.Content, opts ...tui.Option) (tui.Result, error)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	root    *cobra.Command
	present PresentFunc
	debug   bool // Enable debug logging
	noColor bool
	flags   panelFlags
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{config: cfg, present: tui.Run}

	a.root = &cobra.Command{
		Use:   "edupanel",
		Short: "Present an education panel in the terminal",
		Long: `Edupanel shows a modal education panel: an optional image, a heading,
a subheading, up to two buttons and a footer, centered over the terminal.

Rows with nothing to show collapse. On short terminals the image is hidden.
Each outcome (primary, secondary, dismissed) is recorded in the history
database.`,
		Example: `  edupanel
  edupanel --heading "Reading lists" --primary "Got it" --no-close
  edupanel --once --discard-dismiss-on-primary`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPanel(cmd)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+tui.DebugLogPath+")")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	a.flags.register(a.root)

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.themesCmd())
	a.root.AddCommand(a.historyCmd())

	return a
}

// SetPresenter replaces the function that shows the panel.
func (a *App) SetPresenter(fn PresentFunc) {
	a.present = fn
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "edupanel %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}
