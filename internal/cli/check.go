// Package cli provides the command-line interface for the watchlist
// alert application.
package cli

import (
	"errors"
	"io/fs"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"kabuka-alert/internal/logging"
	"kabuka-alert/internal/models"
	"kabuka-alert/internal/notify"
	"kabuka-alert/internal/render"
	"kabuka-alert/internal/scan"
	"kabuka-alert/internal/watchlist"
	"kabuka-alert/pkg/utils"
)

// checkReport is the machine-readable result of one check run.
type checkReport struct {
	Checked   int                     `json:"checked"`
	Skipped   int                     `json:"skipped"`
	Events    int                     `json:"events"`
	DryRun    bool                    `json:"dry_run"`
	Sent      bool                    `json:"sent"`
	Message   string                  `json:"message,omitempty"`
	Error     string                  `json:"error,omitempty"`
	Portfolio []models.PortfolioEvent `json:"portfolio"`
	Other     []models.ThresholdEvent `json:"other"`
}

func newCheckCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Scan the watchlists and deliver one consolidated alert",
		Long: `Scan both watchlists, compute each ticker's change against the previous
close, and deliver a single consolidated message to the configured Slack
webhook. Portfolio tickers are always included; other tickers appear
only when a threshold is crossed. Nothing is posted when there is
nothing to report.

With --dry-run the message is printed instead of posted, which is the
safest way to preview a new watchlist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, app, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the message instead of posting it")

	return cmd
}

func runCheck(cmd *cobra.Command, app *App, dryRun bool) error {
	output := NewOutput(cmd)
	ctx := cmd.Context()

	// Fail on a missing webhook before spending time on quotes.
	if !dryRun && app.Notifier == nil {
		if err := app.Config.RequireWebhook(); err != nil {
			return err
		}
	}

	portfolio := loadEntries(app.Logger, app.Config.Watchlists.PortfolioCSV, "portfolio", watchlist.LoadPortfolio)
	other := loadEntries(app.Logger, app.Config.Watchlists.OtherCSV, "other", watchlist.LoadOther)

	status := utils.GetMarketStatus()
	if status != models.MarketOpen {
		app.Logger.Info().
			Str("market", string(status)).
			Time("next_open", utils.GetNextMarketOpen()).
			Msg("Tokyo market is not in a trading session; prices may be stale")
	}
	if !output.IsJSON() {
		output.Printf("Market: %s  %s\n", output.MarketStatus(status), output.DimText(FormatTime(time.Now())))
	}

	scanner := scan.NewScanner(app.Source, app.Logger)
	result := scanner.Run(ctx, portfolio, other)

	message, ok := render.Message(result.Portfolio, result.Other)

	report := checkReport{
		Checked:   result.Checked,
		Skipped:   result.Skipped,
		Events:    result.EventCount(),
		DryRun:    dryRun,
		Message:   message,
		Portfolio: result.Portfolio,
		Other:     result.Other,
	}

	if !ok {
		app.Logger.Info().
			Int("checked", result.Checked).
			Int("skipped", result.Skipped).
			Msg("No alerts to deliver")
		if output.IsJSON() {
			return output.JSON(report)
		}
		output.Info("No alerts to deliver (%d checked, %d skipped).", result.Checked, result.Skipped)
		return nil
	}

	notifier, destination, err := app.resolveNotifier(cmd, dryRun)
	if err != nil {
		return err
	}

	if err := notifier.Send(ctx, message); err != nil {
		// A delivery failure must not fail the scheduled run; the scan
		// itself succeeded and the next run will try again.
		report.Error = err.Error()
		logging.LogDispatch(app.Logger, destination, result.EventCount(), err)
		if !output.IsJSON() {
			output.Error("Delivery failed: %v", err)
		}
	} else {
		report.Sent = !dryRun
		logging.LogDispatch(app.Logger, destination, result.EventCount(), nil)
		switch {
		case output.IsJSON():
		case dryRun:
			output.Dim("Dry run: nothing was posted.")
		default:
			output.Success("Alert delivered (%d events).", result.EventCount())
		}
	}

	app.Logger.Info().
		Int("checked", result.Checked).
		Int("skipped", result.Skipped).
		Int("events", result.EventCount()).
		Bool("sent", report.Sent).
		Msg("Run complete")

	if output.IsJSON() {
		return output.JSON(report)
	}
	return nil
}

// resolveNotifier picks the delivery target for this run. An injected
// notifier wins, then dry-run modes, then the configured webhook.
func (a *App) resolveNotifier(cmd *cobra.Command, dryRun bool) (notify.Notifier, string, error) {
	if a.Notifier != nil {
		return a.Notifier, "custom", nil
	}
	if dryRun {
		output := NewOutput(cmd)
		if output.IsJSON() {
			// The JSON report already carries the message text.
			return notify.NewNoOpNotifier(), "dry-run", nil
		}
		return notify.NewTerminalNotifier(cmd.OutOrStdout()), "terminal", nil
	}
	if err := a.Config.RequireWebhook(); err != nil {
		return nil, "", err
	}
	return notify.NewSlackNotifier(a.Config.Webhook.URL, a.Config.Webhook.Timeout), "slack", nil
}

// loadEntries reads one watchlist, downgrading a missing or unreadable
// file to a warning so the scan still covers the other list.
func loadEntries(logger zerolog.Logger, path, list string, load func(string) ([]models.Entry, error)) []models.Entry {
	entries, err := load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn().
				Str("list", list).
				Str("path", path).
				Msg("Watchlist file not found, skipping")
		} else {
			logger.Warn().
				Str("list", list).
				Str("path", path).
				Err(err).
				Msg("Watchlist unreadable, skipping")
		}
		return nil
	}
	logger.Debug().
		Str("list", list).
		Str("path", path).
		Int("entries", len(entries)).
		Msg("Watchlist loaded")
	return entries
}
