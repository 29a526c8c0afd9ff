// Package cli provides the command-line interface for the watchlist
// alert application.
package cli

import (
	"github.com/spf13/cobra"

	"kabuka-alert/internal/watchlist"
)

func newWatchlistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Inspect the configured watchlists",
		Long:  "Show and sanity-check the portfolio and other watchlists.",
	}

	cmd.AddCommand(newWatchlistShowCmd(app))
	cmd.AddCommand(newWatchlistLintCmd(app))

	return cmd
}

func newWatchlistShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show both watchlists",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			lists := loadLists(app)

			if output.IsJSON() {
				return output.JSON(lists)
			}

			output.Bold("Portfolio (%d)", len(lists.Portfolio))
			if len(lists.Portfolio) == 0 {
				output.Dim("  (empty)")
			} else {
				table := NewTable(output, "TICKER", "COMPANY")
				for _, entry := range lists.Portfolio {
					table.AddRow(entry.Ticker, entry.CompanyName)
				}
				table.Render()
			}
			output.Println()

			output.Bold("Other (%d)", len(lists.Other))
			if len(lists.Other) == 0 {
				output.Dim("  (empty)")
			} else {
				table := NewTable(output, "TICKER", "COMPANY", "THRESHOLDS")
				for _, entry := range lists.Other {
					table.AddRow(entry.Ticker, entry.CompanyName, FormatThresholds(entry.UpThreshold, entry.DownThreshold))
				}
				table.Render()
			}

			return nil
		},
	}
}

func newWatchlistLintCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Flag watchlist entries that look like mistakes",
		Long: `Check both watchlists for duplicate tickers, blank company names and
threshold bands that fire on every trading day. Findings are advisory;
they never block a check run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			lists := loadLists(app)

			issues := watchlist.Lint(lists)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"issues": issues,
					"count":  len(issues),
				})
			}

			if len(issues) == 0 {
				output.Success("No findings.")
				return nil
			}
			for _, issue := range issues {
				output.Warning("%s", issue.String())
			}
			output.Dim("%d finding(s); none of these block a run.", len(issues))
			return nil
		},
	}
}

// loadLists loads both watchlists with the same soft failure handling
// the check command uses.
func loadLists(app *App) watchlist.Lists {
	return watchlist.Lists{
		Portfolio: loadEntries(app.Logger, app.Config.Watchlists.PortfolioCSV, "portfolio", watchlist.LoadPortfolio),
		Other:     loadEntries(app.Logger, app.Config.Watchlists.OtherCSV, "other", watchlist.LoadOther),
	}
}
