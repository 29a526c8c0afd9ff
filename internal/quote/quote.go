// Package quote resolves price snapshots for stock tickers.
//
// A snapshot pairs the latest intraday trade with the previous trading
// day's close, which is all the evaluation layer needs to compute a
// daily change. The package ships a Yahoo Finance backed source; the
// Source interface keeps evaluators independent of the provider.
package quote

import (
	"context"

	"kabuka-alert/internal/models"
)

// Source resolves a price snapshot for a single ticker symbol.
type Source interface {
	// Snapshot returns the latest intraday price and previous close for
	// symbol. Implementations return an error wrapping ErrNoIntradayData
	// or ErrNoPreviousClose when the provider has no usable data for the
	// symbol, and a plain transport error otherwise.
	Snapshot(ctx context.Context, symbol string) (models.Snapshot, error)
}
