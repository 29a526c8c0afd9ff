// Package cli provides the command-line interface for the watchlist
// alert application.
package cli

import (
	"net/url"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"kabuka-alert/internal/config"
	"kabuka-alert/internal/logging"
	"kabuka-alert/internal/notify"
	"kabuka-alert/internal/quote"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-08-01"
)

// App holds the application dependencies. Source and Notifier are
// swappable so tests can run the commands against fakes.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Source   quote.Source
	Notifier notify.Notifier
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
		Source: quote.NewYahooSource(cfg.Quote.LookbackDays, cfg.Quote.RequestTimeout),
	}
	logger.Debug().
		Int("lookback_days", cfg.Quote.LookbackDays).
		Dur("request_timeout", cfg.Quote.RequestTimeout).
		Msg("Yahoo Finance quote source initialized")

	return newRootCmd(app)
}

// newRootCmd assembles the command tree around an existing App, which
// lets tests swap in fake sources and notifiers.
func newRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kabualert",
		Short: "Watchlist price alerts for Tokyo-listed stocks, delivered to Slack",
		Long: `kabualert scans two CSV watchlists of Tokyo-listed tickers, fetches
near-real-time prices from Yahoo Finance, and posts one consolidated
Japanese-language message to a Slack incoming webhook.

Portfolio tickers are always reported; other tickers appear only when
their daily change crosses a per-ticker threshold. The tool runs once
and exits, which makes it a good fit for cron or a CI schedule.

Use 'kabualert help <command>' for more information about a command.
Use 'kabualert examples' to see common workflows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/kabualert)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addCoreCommands(rootCmd, app)
	rootCmd.AddCommand(newCheckCmd(app))
	rootCmd.AddCommand(newWatchlistCmd(app))
	addHelpCommands(rootCmd, app)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("kabualert v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				shown := *app.Config
				if shown.Webhook.URL != "" {
					shown.Webhook.URL = maskWebhookURL(shown.Webhook.URL)
				}
				return output.JSON(shown)
			}
			return showConfig(output, app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			dir, _ := cmd.Flags().GetString("config")
			if dir == "" {
				dir = config.DefaultConfigDir()
			}
			if output.IsJSON() {
				output.JSON(map[string]string{"path": dir})
			} else {
				output.Println(dir)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the loaded configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a starter config and sample watchlists",
		Long: `Write config.toml plus sample portfolio and other watchlists into the
config directory. Existing files are never overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			dir, _ := cmd.Flags().GetString("config")
			created, err := config.Init(dir)
			if err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]interface{}{"created": created})
			}
			if len(created) == 0 {
				output.Info("Nothing to do; all files already exist.")
				return nil
			}
			for _, path := range created {
				output.Success("Created %s", path)
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) error {
	output.Bold("Watchlists")
	output.Printf("  Portfolio CSV: %s\n", cfg.Watchlists.PortfolioCSV)
	output.Printf("  Other CSV:     %s\n", cfg.Watchlists.OtherCSV)
	output.Println()

	output.Bold("Quote Provider")
	output.Printf("  Lookback Days:   %d\n", cfg.Quote.LookbackDays)
	output.Printf("  Request Timeout: %s\n", cfg.Quote.RequestTimeout)
	output.Println()

	output.Bold("Webhook")
	if cfg.Webhook.URL == "" {
		output.Printf("  URL:     (not set)\n")
	} else {
		output.Printf("  URL:     %s\n", maskWebhookURL(cfg.Webhook.URL))
	}
	output.Printf("  Timeout: %s\n", cfg.Webhook.Timeout)
	output.Println()

	output.Bold("Logging")
	output.Printf("  Level: %s\n", cfg.Logging.Level)
	output.Printf("  File:  %v\n", cfg.Logging.File)

	return nil
}

// maskWebhookURL hides the secret path of a webhook URL, leaving enough
// to recognize which service it points at.
func maskWebhookURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "(set)"
	}
	return u.Scheme + "://" + u.Host + "/..."
}
