package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# kabualert configuration

[watchlists]
# CSV watchlists. Relative paths resolve against the working directory.
portfolio_csv = %q
other_csv = %q

[quote]
# Calendar days of daily history fetched for the previous-close fallback.
lookback_days = 5
# Per-symbol time limit for price provider calls.
request_timeout = "15s"

[webhook]
# Slack incoming webhook URL. SLACK_WEBHOOK_URL takes precedence when set,
# which keeps the secret out of this file.
url = ""
# Delivery timeout for one message.
timeout = "10s"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Also write logs to a rotating file.
file = false
# file_path = "~/.config/kabualert/logs/kabualert.log"
`

const samplePortfolioCSV = `ticker,company_name
7203.T,トヨタ自動車
9984.T,ソフトバンクグループ
`

const sampleOtherCSV = `ticker,company_name,up_threshold,down_threshold
6361.T,荏原製作所,5.0,3.0
8035.T,東京エレクトロン,4.0,4.0
`

// Init writes a starter config.toml and sample watchlists into
// configDir, creating the directory if needed. Files that already exist
// are left untouched. It returns the paths it created.
func Init(configDir string) ([]string, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	portfolioCSV := filepath.Join(configDir, "portfolio_tickers.csv")
	otherCSV := filepath.Join(configDir, "other_tickers.csv")

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(configDir, "config.toml"), fmt.Sprintf(configTemplate, portfolioCSV, otherCSV)},
		{portfolioCSV, samplePortfolioCSV},
		{otherCSV, sampleOtherCSV},
	}

	var created []string
	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			continue
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return created, fmt.Errorf("writing %s: %w", f.path, err)
		}
		created = append(created, f.path)
	}

	return created, nil
}
