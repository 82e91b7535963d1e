package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/edupanel/internal/history"
)

func (a *App) historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [panel-id]",
		Short: "List recorded panel outcomes",
		Long: `List recorded outcomes, newest first.

Without a panel id, outcomes of every panel are listed.`,
		Example: `  edupanel history
  edupanel history welcome --limit 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			panelID := ""
			if len(args) == 1 {
				panelID = args[0]
			}

			store, err := history.Open(a.config.Storage.DBPath)
			if err != nil {
				return fmt.Errorf("opening history: %w", err)
			}
			defer func() { _ = store.Close() }()

			entries, err := store.List(cmd.Context(), panelID, limit)
			if err != nil {
				return fmt.Errorf("listing history: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatHistory(entries, termWidth(), time.Local))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of outcomes to list (0 for all)")
	return cmd
}
