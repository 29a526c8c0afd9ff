// Package models provides domain models for the watchlist alert application.
package models

import (
	"time"
)

// Category identifies which watchlist an entry belongs to.
type Category string

const (
	CategoryPortfolio Category = "portfolio"
	CategoryOther     Category = "other"
)

// MarketStatus represents a Tokyo Stock Exchange session status.
type MarketStatus string

const (
	MarketOpen       MarketStatus = "OPEN"
	MarketPreOpen    MarketStatus = "PRE_OPEN"
	MarketLunchBreak MarketStatus = "LUNCH_BREAK"
	MarketClosed     MarketStatus = "CLOSED"
)

// Entry is a single watchlist row: one ticker to evaluate.
//
// Portfolio entries are always reported. Other entries carry a pair of
// alert thresholds and are reported only when the daily change crosses
// one of them.
type Entry struct {
	Ticker        string   `json:"ticker"`
	CompanyName   string   `json:"company_name"`
	Category      Category `json:"category"`
	UpThreshold   float64  `json:"up_threshold,omitempty"`
	DownThreshold float64  `json:"down_threshold,omitempty"`
}

// NewPortfolioEntry builds an always-report watchlist entry.
func NewPortfolioEntry(ticker, companyName string) Entry {
	return Entry{
		Ticker:      ticker,
		CompanyName: companyName,
		Category:    CategoryPortfolio,
	}
}

// NewOtherEntry builds a threshold-gated watchlist entry. Thresholds are
// absolute percentages: up fires at +up% and above, down fires at -down%
// and below.
func NewOtherEntry(ticker, companyName string, up, down float64) Entry {
	return Entry{
		Ticker:        ticker,
		CompanyName:   companyName,
		Category:      CategoryOther,
		UpThreshold:   up,
		DownThreshold: down,
	}
}

// IsPortfolio reports whether the entry belongs to the portfolio list.
func (e Entry) IsPortfolio() bool {
	return e.Category == CategoryPortfolio
}

// Snapshot is one resolved price observation for a ticker: the latest
// intraday trade paired with the previous trading day's close.
type Snapshot struct {
	Ticker        string    `json:"ticker"`
	CurrentPrice  float64   `json:"current_price"`
	PreviousClose float64   `json:"previous_close"`
	MarketState   string    `json:"market_state,omitempty"`
	AsOf          time.Time `json:"as_of"`
}

// ChangePct returns the percent change of the current price against the
// previous close: (current - previous) / previous * 100.
func (s Snapshot) ChangePct() float64 {
	return (s.CurrentPrice - s.PreviousClose) / s.PreviousClose * 100
}
