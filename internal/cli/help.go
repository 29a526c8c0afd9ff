// Package cli provides the command-line interface for the watchlist
// alert application.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// addHelpCommands adds help and documentation commands.
func addHelpCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newExamplesCmd(app))
}

func newExamplesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show common workflow examples",
		Long:  "Display examples of common kabualert workflows.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			output.Bold("Common Workflow Examples")
			output.Println()

			examples := []struct {
				title    string
				commands []string
			}{
				{
					title: "First run",
					commands: []string{
						"kabualert config init          # Write starter config and sample watchlists",
						"kabualert watchlist show       # Review the loaded lists",
						"kabualert check --dry-run      # Print the message without posting",
					},
				},
				{
					title: "Scheduled delivery",
					commands: []string{
						"export SLACK_WEBHOOK_URL=https://hooks.slack.com/services/...",
						"kabualert check                # Scan and post one consolidated message",
						"*/15 0-6 * * 1-5 kabualert check   # Crontab entry (UTC; 9:00-15:30 JST)",
					},
				},
				{
					title: "Custom watchlists",
					commands: []string{
						"KABUALERT_PORTFOLIO_CSV=./my_portfolio.csv kabualert check --dry-run",
						"kabualert watchlist lint       # Flag thresholds that fire every day",
					},
				},
				{
					title: "Scripting",
					commands: []string{
						"kabualert check --dry-run --json   # Machine-readable report, nothing posted",
						"kabualert config validate      # Verify config.toml before deploying",
						"kabualert config path          # Locate the config directory",
					},
				},
			}

			for _, ex := range examples {
				output.Bold(ex.title)
				for _, c := range ex.commands {
					parts := strings.SplitN(c, "#", 2)
					if len(parts) == 2 {
						cmdText := PadRight(strings.TrimSpace(parts[0]), 34)
						output.Printf("  %s %s\n", output.Cyan(cmdText), output.DimText("# "+strings.TrimSpace(parts[1])))
					} else {
						output.Printf("  %s\n", output.Cyan(c))
					}
				}
				output.Println()
			}

			return nil
		},
	}
}
