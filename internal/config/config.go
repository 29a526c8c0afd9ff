// Package config provides configuration management for the watchlist
// alert application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Watchlists WatchlistConfig `mapstructure:"watchlists" json:"watchlists"`
	Quote      QuoteConfig     `mapstructure:"quote" json:"quote"`
	Webhook    WebhookConfig   `mapstructure:"webhook" json:"webhook"`
	Logging    LoggingConfig   `mapstructure:"logging" json:"logging"`
}

// WatchlistConfig locates the CSV watchlists. Relative paths resolve
// against the working directory of the run.
type WatchlistConfig struct {
	PortfolioCSV string `mapstructure:"portfolio_csv" json:"portfolio_csv"`
	OtherCSV     string `mapstructure:"other_csv" json:"other_csv"`
}

// QuoteConfig tunes the price provider.
type QuoteConfig struct {
	LookbackDays   int           `mapstructure:"lookback_days" json:"lookback_days"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" json:"request_timeout"`
}

// WebhookConfig holds Slack webhook delivery configuration. The URL is
// normally supplied through the SLACK_WEBHOOK_URL environment variable
// rather than the config file.
type WebhookConfig struct {
	URL     string        `mapstructure:"url" json:"url"`
	Timeout time.Duration `mapstructure:"timeout" json:"timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level    string `mapstructure:"level" json:"level"`
	File     bool   `mapstructure:"file" json:"file"`
	FilePath string `mapstructure:"file_path" json:"file_path,omitempty"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/kabualert"
	}
	return filepath.Join(home, ".config", "kabualert")
}

// Load loads configuration from the specified directory. If configDir is
// empty, the default config directory is used. A missing config file is
// not an error; defaults plus environment overrides apply, which keeps
// scheduled runs working without any setup beyond SLACK_WEBHOOK_URL.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	// A .env in the working directory feeds the overrides below; a
	// missing one is the normal case.
	_ = godotenv.Load()

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir string, cfg *Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		// No config file: run on defaults. `config init` writes a starter.
	}

	return v.Unmarshal(cfg)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("watchlists.portfolio_csv", "portfolio_tickers.csv")
	v.SetDefault("watchlists.other_csv", "other_tickers.csv")
	v.SetDefault("quote.lookback_days", 5)
	v.SetDefault("quote.request_timeout", 15*time.Second)
	v.SetDefault("webhook.timeout", 10*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", false)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SLACK_WEBHOOK_URL"); v != "" {
		cfg.Webhook.URL = v
	}
	if v := os.Getenv("KABUALERT_PORTFOLIO_CSV"); v != "" {
		cfg.Watchlists.PortfolioCSV = v
	}
	if v := os.Getenv("KABUALERT_OTHER_CSV"); v != "" {
		cfg.Watchlists.OtherCSV = v
	}
	if v := os.Getenv("KABUALERT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks for values that would make a run misbehave in
// confusing ways. The webhook URL is deliberately not required here;
// only commands that deliver remotely need it.
func (c *Config) Validate() error {
	if c.Watchlists.PortfolioCSV == "" {
		return fmt.Errorf("watchlists.portfolio_csv must not be empty")
	}
	if c.Watchlists.OtherCSV == "" {
		return fmt.Errorf("watchlists.other_csv must not be empty")
	}
	if c.Quote.LookbackDays < 2 {
		return fmt.Errorf("quote.lookback_days must be at least 2 to cover a previous close")
	}
	if c.Quote.RequestTimeout <= 0 {
		return fmt.Errorf("quote.request_timeout must be positive")
	}
	if c.Webhook.Timeout <= 0 {
		return fmt.Errorf("webhook.timeout must be positive")
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn or error)", c.Logging.Level)
	}

	return nil
}

// RequireWebhook returns an error when no Slack webhook URL is
// configured. Commands that deliver remotely call it before building a
// notifier.
func (c *Config) RequireWebhook() error {
	if c.Webhook.URL == "" {
		return fmt.Errorf("SLACK_WEBHOOK_URL is not set (or webhook.url in config.toml)")
	}
	return nil
}
