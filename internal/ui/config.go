package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/edupanel/internal/config"
	"github.com/javiermolinar/edupanel/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  edupanel config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(config.DefaultConfigPath(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.Layout.CompactHeight = promptInt(reader, out, "Compact height (rows)", cfg.Layout.CompactHeight)
	cfg.Layout.MaxWidth = promptInt(reader, out, "Max card width", cfg.Layout.MaxWidth)
	cfg.Panel.ID = promptValue(reader, out, "Panel id", cfg.Panel.ID)
	cfg.Panel.Heading = promptValue(reader, out, "Heading", cfg.Panel.Heading)
	cfg.Panel.Subheading = promptValue(reader, out, "Subheading", cfg.Panel.Subheading)
	cfg.Panel.PrimaryTitle = promptValue(reader, out, "Primary button (empty to hide)", cfg.Panel.PrimaryTitle)
	cfg.Panel.SecondaryTitle = promptValue(reader, out, "Secondary button (empty to hide)", cfg.Panel.SecondaryTitle)
	cfg.Panel.Footer = promptValue(reader, out, "Footer", cfg.Panel.Footer)
	cfg.Panel.ImageFile = promptValue(reader, out, "Image file (empty for inline art)", cfg.Panel.ImageFile)
	cfg.Panel.ShowCloseButton = promptBool(reader, out, "Show close button", cfg.Panel.ShowCloseButton)
	cfg.Panel.DiscardDismissOnPrimary = promptBool(reader, out, "Discard dismiss after primary", cfg.Panel.DiscardDismissOnPrimary)
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[ui]")
	fmt.Fprintf(out, "  theme                      = %s\n", cfg.UI.Theme)
	fmt.Fprintln(out, "\n[layout]")
	fmt.Fprintf(out, "  compact_height             = %d\n", cfg.Layout.CompactHeight)
	fmt.Fprintf(out, "  max_width                  = %d\n", cfg.Layout.MaxWidth)
	fmt.Fprintln(out, "\n[panel]")
	fmt.Fprintf(out, "  id                         = %s\n", cfg.Panel.ID)
	fmt.Fprintf(out, "  heading                    = %s\n", cfg.Panel.Heading)
	fmt.Fprintf(out, "  subheading                 = %s\n", cfg.Panel.Subheading)
	fmt.Fprintf(out, "  primary_title              = %s\n", cfg.Panel.PrimaryTitle)
	fmt.Fprintf(out, "  secondary_title            = %s\n", cfg.Panel.SecondaryTitle)
	fmt.Fprintf(out, "  footer                     = %s\n", cfg.Panel.Footer)
	if cfg.Panel.ImageFile != "" {
		fmt.Fprintf(out, "  image_file                 = %s\n", cfg.Panel.ImageFile)
	}
	fmt.Fprintf(out, "  show_close_button          = %t\n", cfg.Panel.ShowCloseButton)
	fmt.Fprintf(out, "  discard_dismiss_on_primary = %t\n", cfg.Panel.DiscardDismissOnPrimary)
	fmt.Fprintln(out, "\n[storage]")
	fmt.Fprintf(out, "  db_path                    = %s\n", cfg.Storage.DBPath)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q.\n", value)
	}
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	def := "n"
	if current {
		def = "y"
	}
	switch strings.ToLower(promptValue(reader, out, label+" (y/n)", def)) {
	case "y", "yes", "true":
		return true
	case "n", "no", "false":
		return false
	}
	return current
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
