package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnvOverrides pins the override variables to empty so ambient
// environment cannot leak into assertions.
func clearEnvOverrides(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SLACK_WEBHOOK_URL",
		"KABUALERT_PORTFOLIO_CSV",
		"KABUALERT_OTHER_CSV",
		"KABUALERT_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnvOverrides(t)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Watchlists.PortfolioCSV != "portfolio_tickers.csv" {
		t.Errorf("portfolio csv = %s, want portfolio_tickers.csv", cfg.Watchlists.PortfolioCSV)
	}
	if cfg.Watchlists.OtherCSV != "other_tickers.csv" {
		t.Errorf("other csv = %s, want other_tickers.csv", cfg.Watchlists.OtherCSV)
	}
	if cfg.Quote.LookbackDays != 5 {
		t.Errorf("lookback days = %d, want 5", cfg.Quote.LookbackDays)
	}
	if cfg.Quote.RequestTimeout != 15*time.Second {
		t.Errorf("request timeout = %s, want 15s", cfg.Quote.RequestTimeout)
	}
	if cfg.Webhook.URL != "" {
		t.Errorf("webhook url = %s, want empty", cfg.Webhook.URL)
	}
	if cfg.Webhook.Timeout != 10*time.Second {
		t.Errorf("webhook timeout = %s, want 10s", cfg.Webhook.Timeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %s, want info", cfg.Logging.Level)
	}
	if cfg.Logging.File {
		t.Error("file logging enabled by default, want disabled")
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnvOverrides(t)

	dir := t.TempDir()
	content := `
[watchlists]
portfolio_csv = "/data/portfolio.csv"
other_csv = "/data/other.csv"

[quote]
lookback_days = 7
request_timeout = "20s"

[webhook]
url = "https://hooks.slack.com/services/T000/B000/XXXX"
timeout = "5s"

[logging]
level = "debug"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Watchlists.PortfolioCSV != "/data/portfolio.csv" {
		t.Errorf("portfolio csv = %s, want /data/portfolio.csv", cfg.Watchlists.PortfolioCSV)
	}
	if cfg.Quote.LookbackDays != 7 {
		t.Errorf("lookback days = %d, want 7", cfg.Quote.LookbackDays)
	}
	if cfg.Quote.RequestTimeout != 20*time.Second {
		t.Errorf("request timeout = %s, want 20s", cfg.Quote.RequestTimeout)
	}
	if cfg.Webhook.URL != "https://hooks.slack.com/services/T000/B000/XXXX" {
		t.Errorf("webhook url = %s, want value from file", cfg.Webhook.URL)
	}
	if cfg.Webhook.Timeout != 5*time.Second {
		t.Errorf("webhook timeout = %s, want 5s", cfg.Webhook.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %s, want debug", cfg.Logging.Level)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnvOverrides(t)
	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.com/services/T0/B0/abc")
	t.Setenv("KABUALERT_PORTFOLIO_CSV", "/tmp/portfolio.csv")
	t.Setenv("KABUALERT_OTHER_CSV", "/tmp/other.csv")
	t.Setenv("KABUALERT_LOG_LEVEL", "warn")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Webhook.URL != "https://hooks.slack.com/services/T0/B0/abc" {
		t.Errorf("webhook url = %s, want env value", cfg.Webhook.URL)
	}
	if cfg.Watchlists.PortfolioCSV != "/tmp/portfolio.csv" {
		t.Errorf("portfolio csv = %s, want /tmp/portfolio.csv", cfg.Watchlists.PortfolioCSV)
	}
	if cfg.Watchlists.OtherCSV != "/tmp/other.csv" {
		t.Errorf("other csv = %s, want /tmp/other.csv", cfg.Watchlists.OtherCSV)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level = %s, want warn", cfg.Logging.Level)
	}
}

func TestLoadInvalidLevel(t *testing.T) {
	clearEnvOverrides(t)
	t.Setenv("KABUALERT_LOG_LEVEL", "verbose")

	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("Load accepted an invalid log level")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Watchlists: WatchlistConfig{PortfolioCSV: "p.csv", OtherCSV: "o.csv"},
			Quote:      QuoteConfig{LookbackDays: 5, RequestTimeout: 15 * time.Second},
			Webhook:    WebhookConfig{Timeout: 10 * time.Second},
			Logging:    LoggingConfig{Level: "info"},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty level allowed", func(c *Config) { c.Logging.Level = "" }, false},
		{"empty portfolio path", func(c *Config) { c.Watchlists.PortfolioCSV = "" }, true},
		{"empty other path", func(c *Config) { c.Watchlists.OtherCSV = "" }, true},
		{"lookback too small", func(c *Config) { c.Quote.LookbackDays = 1 }, true},
		{"zero request timeout", func(c *Config) { c.Quote.RequestTimeout = 0 }, true},
		{"zero webhook timeout", func(c *Config) { c.Webhook.Timeout = 0 }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRequireWebhook(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireWebhook(); err == nil {
		t.Fatal("RequireWebhook returned nil with no URL configured")
	}

	cfg.Webhook.URL = "https://hooks.slack.com/services/T0/B0/abc"
	if err := cfg.RequireWebhook(); err != nil {
		t.Errorf("RequireWebhook returned %v with a URL configured", err)
	}
}

func TestInit(t *testing.T) {
	clearEnvOverrides(t)
	dir := t.TempDir()

	created, err := Init(dir)
	if err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("Init created %d files, want 3: %v", len(created), created)
	}

	for _, name := range []string{"config.toml", "portfolio_tickers.csv", "other_tickers.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing generated file %s: %v", name, err)
		}
	}

	// The generated config must load cleanly and point at the samples.
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load after Init returned error: %v", err)
	}
	if want := filepath.Join(dir, "portfolio_tickers.csv"); cfg.Watchlists.PortfolioCSV != want {
		t.Errorf("portfolio csv = %s, want %s", cfg.Watchlists.PortfolioCSV, want)
	}
	if want := filepath.Join(dir, "other_tickers.csv"); cfg.Watchlists.OtherCSV != want {
		t.Errorf("other csv = %s, want %s", cfg.Watchlists.OtherCSV, want)
	}

	// A second run must leave the existing files alone.
	created, err = Init(dir)
	if err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	if len(created) != 0 {
		t.Errorf("second Init created %v, want nothing", created)
	}
}
