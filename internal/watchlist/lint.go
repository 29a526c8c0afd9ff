package watchlist

import (
	"fmt"
	"strings"

	"kabuka-alert/internal/models"
)

// Issue is a single finding from Lint.
type Issue struct {
	List    string `json:"list"`
	Ticker  string `json:"ticker"`
	Problem string `json:"problem"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.List, i.Ticker, i.Problem)
}

// Lint checks loaded watchlists for entries that load fine but are
// probably unintended: duplicate tickers, blank company names, negative
// thresholds, and bound pairs that turn every evaluated day into an
// alert. Findings never block a run; the check command evaluates the
// lists as written.
func Lint(lists Lists) []Issue {
	var issues []Issue

	issues = append(issues, lintEntries("portfolio", lists.Portfolio)...)
	issues = append(issues, lintEntries("other", lists.Other)...)

	for _, entry := range lists.Other {
		if entry.UpThreshold < 0 {
			issues = append(issues, Issue{
				List:    "other",
				Ticker:  entry.Ticker,
				Problem: fmt.Sprintf("negative up threshold %.1f", entry.UpThreshold),
			})
		}
		if entry.DownThreshold < 0 {
			issues = append(issues, Issue{
				List:    "other",
				Ticker:  entry.Ticker,
				Problem: fmt.Sprintf("negative down threshold %.1f", entry.DownThreshold),
			})
		}
		// The rule fires on change >= up or change <= -down, so once the
		// bounds overlap there is no quiet range left. Ties go up.
		if entry.UpThreshold+entry.DownThreshold <= 0 {
			issues = append(issues, Issue{
				List:    "other",
				Ticker:  entry.Ticker,
				Problem: "bounds overlap: every evaluated day raises an alert",
			})
		}
	}

	return issues
}

// lintEntries reports duplicate tickers and blank company names, in
// watchlist order.
func lintEntries(list string, entries []models.Entry) []Issue {
	var issues []Issue
	counts := make(map[string]int, len(entries))

	for _, entry := range entries {
		counts[entry.Ticker]++
		if counts[entry.Ticker] == 2 {
			issues = append(issues, Issue{
				List:    list,
				Ticker:  entry.Ticker,
				Problem: "duplicate ticker",
			})
		}
		if strings.TrimSpace(entry.CompanyName) == "" {
			issues = append(issues, Issue{
				List:    list,
				Ticker:  entry.Ticker,
				Problem: "blank company name",
			})
		}
	}
	return issues
}
