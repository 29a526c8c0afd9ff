// Package watchlist loads the CSV watchlists that drive an evaluation
// pass.
//
// Two files feed the checker: a portfolio list (ticker and company name)
// whose entries are always reported, and an "other" list that adds an up
// and a down threshold per ticker. Rows with an empty ticker cell are
// skipped, tickers are trimmed, and everything else is preserved as
// written, including duplicates and ordering.
package watchlist

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"kabuka-alert/internal/models"
)

// portfolioRow mirrors one record of the portfolio CSV.
type portfolioRow struct {
	Ticker      string `csv:"ticker"`
	CompanyName string `csv:"company_name"`
}

// otherRow mirrors one record of the threshold-watchlist CSV.
type otherRow struct {
	Ticker        string  `csv:"ticker"`
	CompanyName   string  `csv:"company_name"`
	UpThreshold   float64 `csv:"up_threshold"`
	DownThreshold float64 `csv:"down_threshold"`
}

// Lists bundles both watchlists for one pass.
type Lists struct {
	Portfolio []models.Entry
	Other     []models.Entry
}

// LoadPortfolio reads the always-report watchlist.
func LoadPortfolio(path string) ([]models.Entry, error) {
	var rows []portfolioRow
	if err := readCSV(path, &rows); err != nil {
		return nil, err
	}

	entries := make([]models.Entry, 0, len(rows))
	for _, row := range rows {
		ticker := strings.TrimSpace(row.Ticker)
		if ticker == "" {
			continue
		}
		entries = append(entries, models.NewPortfolioEntry(ticker, row.CompanyName))
	}
	return entries, nil
}

// LoadOther reads the threshold-gated watchlist with the same row
// handling as LoadPortfolio.
func LoadOther(path string) ([]models.Entry, error) {
	var rows []otherRow
	if err := readCSV(path, &rows); err != nil {
		return nil, err
	}

	entries := make([]models.Entry, 0, len(rows))
	for _, row := range rows {
		ticker := strings.TrimSpace(row.Ticker)
		if ticker == "" {
			continue
		}
		entries = append(entries, models.NewOtherEntry(ticker, row.CompanyName, row.UpThreshold, row.DownThreshold))
	}
	return entries, nil
}

// readCSV opens path and unmarshals its records into out. A missing file
// surfaces with fs.ErrNotExist in the chain so callers can treat it as a
// soft condition.
func readCSV(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening watchlist: %w", err)
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		return fmt.Errorf("parsing watchlist %s: %w", path, err)
	}
	return nil
}
