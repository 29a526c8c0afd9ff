// Package scan evaluates watchlist entries against live price snapshots.
//
// The evaluation rules are pure functions so they can be tested without a
// provider; Scanner drives them over whole watchlists with per-ticker
// failure isolation.
package scan

import (
	"context"

	"github.com/rs/zerolog"

	"kabuka-alert/internal/logging"
	"kabuka-alert/internal/models"
	"kabuka-alert/internal/quote"
)

// Result collects the outcome of one watchlist pass. Event slices keep
// the order of the underlying watchlists.
type Result struct {
	Portfolio []models.PortfolioEvent `json:"portfolio"`
	Other     []models.ThresholdEvent `json:"other"`
	Checked   int                     `json:"checked"`
	Skipped   int                     `json:"skipped"`
}

// EventCount returns the total number of notification events.
func (r Result) EventCount() int {
	return len(r.Portfolio) + len(r.Other)
}

// HasEvents reports whether the pass produced anything to notify.
func (r Result) HasEvents() bool {
	return r.EventCount() > 0
}

// EvaluatePortfolio builds the always-report event for a portfolio entry.
func EvaluatePortfolio(entry models.Entry, snap models.Snapshot) models.PortfolioEvent {
	return models.PortfolioEvent{PriceMove: priceMove(entry, snap)}
}

// EvaluateOther applies the threshold rule to a watched entry. The up
// bound is checked first, so when both bounds are crossed at once the
// event reports an upward move.
func EvaluateOther(entry models.Entry, snap models.Snapshot) (models.ThresholdEvent, bool) {
	change := snap.ChangePct()
	switch {
	case change >= entry.UpThreshold:
		return models.ThresholdEvent{
			PriceMove: priceMove(entry, snap),
			Direction: models.DirectionUp,
			Threshold: entry.UpThreshold,
		}, true
	case change <= -entry.DownThreshold:
		return models.ThresholdEvent{
			PriceMove: priceMove(entry, snap),
			Direction: models.DirectionDown,
			Threshold: entry.DownThreshold,
		}, true
	default:
		return models.ThresholdEvent{}, false
	}
}

func priceMove(entry models.Entry, snap models.Snapshot) models.PriceMove {
	return models.PriceMove{
		Ticker:        entry.Ticker,
		CompanyName:   entry.CompanyName,
		CurrentPrice:  snap.CurrentPrice,
		PreviousClose: snap.PreviousClose,
		ChangePct:     snap.ChangePct(),
	}
}

// Scanner runs evaluation passes over watchlists using a quote source.
type Scanner struct {
	source quote.Source
	logger zerolog.Logger
}

// NewScanner creates a scanner backed by the given quote source.
func NewScanner(source quote.Source, logger zerolog.Logger) *Scanner {
	return &Scanner{source: source, logger: logger}
}

// Run evaluates both watchlists sequentially, portfolio first, preserving
// input order in the result. A failed ticker is logged and skipped; it
// never aborts the pass.
func (s *Scanner) Run(ctx context.Context, portfolio, other []models.Entry) Result {
	var res Result

	for _, entry := range portfolio {
		res.Checked++
		snap, ok := s.fetch(ctx, entry)
		if !ok {
			res.Skipped++
			continue
		}
		ev := EvaluatePortfolio(entry, snap)
		logging.LogTickerStatus(s.logger, entry.Ticker, snap.CurrentPrice, snap.PreviousClose, ev.ChangePct, snap.MarketState)
		res.Portfolio = append(res.Portfolio, ev)
	}

	for _, entry := range other {
		res.Checked++
		snap, ok := s.fetch(ctx, entry)
		if !ok {
			res.Skipped++
			continue
		}
		logging.LogTickerStatus(s.logger, entry.Ticker, snap.CurrentPrice, snap.PreviousClose, snap.ChangePct(), snap.MarketState)
		ev, fired := EvaluateOther(entry, snap)
		if !fired {
			continue
		}
		logging.LogThresholdCrossing(s.logger, entry.Ticker, string(ev.Direction), ev.Threshold, ev.ChangePct)
		res.Other = append(res.Other, ev)
	}

	return res
}

// fetch resolves one snapshot, logging and absorbing any failure.
func (s *Scanner) fetch(ctx context.Context, entry models.Entry) (models.Snapshot, bool) {
	snap, err := s.source.Snapshot(ctx, entry.Ticker)
	if err == nil {
		return snap, true
	}
	if quote.IsNoData(err) {
		s.logger.Info().
			Str("ticker", entry.Ticker).
			Str("reason", err.Error()).
			Msg("No price data, skipping")
	} else {
		s.logger.Warn().
			Err(err).
			Str("ticker", entry.Ticker).
			Msg("Quote fetch failed, skipping")
	}
	return models.Snapshot{}, false
}
