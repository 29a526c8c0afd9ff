package quote

import (
	"errors"
	"fmt"
)

// Sentinel errors for data-availability misses. Sources wrap them in a
// SymbolError so callers can match the condition and still see which
// symbol produced it.
var (
	// ErrNoIntradayData means the intraday chart returned no usable bars,
	// typically outside trading hours for a ticker with no recent session.
	ErrNoIntradayData = errors.New("no intraday price data")

	// ErrNoPreviousClose means no prior trading day close could be
	// resolved from either the quote endpoint or daily history.
	ErrNoPreviousClose = errors.New("previous close unavailable")
)

// SymbolError wraps a quote failure with the symbol that caused it.
type SymbolError struct {
	Symbol string
	Err    error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("quote failed for %s: %v", e.Symbol, e.Err)
}

func (e *SymbolError) Unwrap() error {
	return e.Err
}

// IsNoData reports whether err is a data-availability miss rather than a
// transport or provider failure. Missing data is an expected condition
// and logged quietly; everything else deserves a warning.
func IsNoData(err error) bool {
	return errors.Is(err, ErrNoIntradayData) || errors.Is(err, ErrNoPreviousClose)
}
