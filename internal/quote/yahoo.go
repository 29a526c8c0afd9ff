package quote

import (
	"context"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	yquote "github.com/piquette/finance-go/quote"

	"kabuka-alert/internal/models"
)

// DefaultLookbackDays is how many calendar days of daily history the
// previous-close fallback scans. Five days spans at least two trading
// sessions across a weekend plus a single holiday.
const DefaultLookbackDays = 5

// DefaultRequestTimeout bounds the combined provider calls for one symbol.
const DefaultRequestTimeout = 15 * time.Second

// YahooSource resolves snapshots from Yahoo Finance.
//
// The current price is the most recent positive one-minute close of the
// last trading day, so outside market hours the snapshot degrades to the
// final price of the previous session rather than failing. The previous
// close comes from the quote endpoint, with daily bars as a fallback when
// the quote carries no usable value.
type YahooSource struct {
	lookbackDays int
	timeout      time.Duration
}

// NewYahooSource returns a source with the given daily-history lookback
// and per-symbol timeout. Zero or negative arguments select defaults.
func NewYahooSource(lookbackDays int, timeout time.Duration) *YahooSource {
	if lookbackDays < 2 {
		lookbackDays = DefaultLookbackDays
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &YahooSource{lookbackDays: lookbackDays, timeout: timeout}
}

// Snapshot implements Source.
func (s *YahooSource) Snapshot(ctx context.Context, symbol string) (models.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	current, asOf, err := s.intradayPrice(ctx, symbol)
	if err != nil {
		return models.Snapshot{}, &SymbolError{Symbol: symbol, Err: err}
	}

	prevClose, state, err := s.previousClose(ctx, symbol)
	if err != nil {
		return models.Snapshot{}, &SymbolError{Symbol: symbol, Err: err}
	}

	return models.Snapshot{
		Ticker:        symbol,
		CurrentPrice:  current,
		PreviousClose: prevClose,
		MarketState:   state,
		AsOf:          asOf,
	}, nil
}

// intradayPrice returns the last positive one-minute close and its bar
// time. The window is padded a day on each side because chart parameters
// carry date precision only.
func (s *YahooSource) intradayPrice(ctx context.Context, symbol string) (float64, time.Time, error) {
	start := time.Now().Add(-24 * time.Hour)
	end := time.Now().Add(24 * time.Hour)

	bar, err := lastPositiveBar(ctx, symbol, start, end, datetime.OneMin)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to fetch intraday chart: %w", err)
	}
	if bar == nil {
		return 0, time.Time{}, ErrNoIntradayData
	}

	price, _ := bar.Close.Float64()
	return price, time.Unix(int64(bar.Timestamp), 0), nil
}

// previousClose resolves the prior trading day's close. The quote
// endpoint is authoritative; daily history covers symbols whose quote is
// missing or carries no close.
func (s *YahooSource) previousClose(ctx context.Context, symbol string) (float64, string, error) {
	var state string
	q, qerr := yquote.Get(symbol)
	if q != nil {
		state = string(q.MarketState)
		if qerr == nil && q.RegularMarketPreviousClose > 0 {
			return q.RegularMarketPreviousClose, state, nil
		}
	}

	prev, err := s.dailyPreviousClose(ctx, symbol)
	if err != nil {
		return 0, "", err
	}
	return prev, state, nil
}

// dailyPreviousClose returns the second-to-last daily close within the
// lookback window. The last daily bar belongs to the in-progress (or just
// finished) session, so the one before it is the previous close.
func (s *YahooSource) dailyPreviousClose(ctx context.Context, symbol string) (float64, error) {
	start := time.Now().AddDate(0, 0, -s.lookbackDays)
	end := time.Now().Add(24 * time.Hour)

	params := &chart.Params{
		Params:   finance.Params{Context: &ctx},
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	var closes []float64
	iter := chart.Get(params)
	for iter.Next() {
		bar := iter.Bar()
		if bar == nil || !bar.Close.IsPositive() {
			continue
		}
		price, _ := bar.Close.Float64()
		closes = append(closes, price)
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to fetch daily history: %w", err)
	}
	if len(closes) < 2 {
		return 0, ErrNoPreviousClose
	}
	return closes[len(closes)-2], nil
}

// lastPositiveBar walks a chart and keeps the most recent bar with a
// positive close, or nil when the window has no usable bars.
func lastPositiveBar(ctx context.Context, symbol string, start, end time.Time, interval datetime.Interval) (*finance.ChartBar, error) {
	params := &chart.Params{
		Params:   finance.Params{Context: &ctx},
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: interval,
	}

	var last *finance.ChartBar
	iter := chart.Get(params)
	for iter.Next() {
		if bar := iter.Bar(); bar != nil && bar.Close.IsPositive() {
			last = bar
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return last, nil
}
