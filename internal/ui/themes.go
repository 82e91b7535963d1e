package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/edupanel/internal/tui/theme"
)

func (a *App) themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range theme.Available() {
				t, err := theme.Load(name)
				if err != nil {
					return fmt.Errorf("loading theme %s: %w", name, err)
				}
				marker := " "
				if name == a.config.UI.Theme {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-10s %s\n", marker, name, swatch(t.LinkColor()))
			}
			return nil
		},
	}
}

// swatch prints the hex value in its own color.
func swatch(hex string) string {
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return hex
	}
	return color.RGB(r, g, b).Sprint(hex)
}
