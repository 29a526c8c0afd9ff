package utils

import (
	"testing"
	"time"

	"kabuka-alert/internal/models"
)

func TestMarketStatusAt(t *testing.T) {
	// 2026-08-24 is a Monday.
	jst := func(hour, min int) time.Time {
		return time.Date(2026, 8, 24, hour, min, 0, 0, TokyoLocation)
	}

	testCases := []struct {
		name string
		at   time.Time
		want models.MarketStatus
	}{
		{"early morning", jst(7, 59), models.MarketClosed},
		{"pre-open start", jst(8, 0), models.MarketPreOpen},
		{"pre-open end", jst(8, 59), models.MarketPreOpen},
		{"morning session start", jst(9, 0), models.MarketOpen},
		{"morning session end", jst(11, 29), models.MarketOpen},
		{"lunch break start", jst(11, 30), models.MarketLunchBreak},
		{"lunch break end", jst(12, 29), models.MarketLunchBreak},
		{"afternoon session start", jst(12, 30), models.MarketOpen},
		{"afternoon session end", jst(15, 29), models.MarketOpen},
		{"after close", jst(15, 30), models.MarketClosed},
		{"late night", jst(23, 0), models.MarketClosed},
		{"saturday", time.Date(2026, 8, 22, 10, 0, 0, 0, TokyoLocation), models.MarketClosed},
		{"sunday", time.Date(2026, 8, 23, 10, 0, 0, 0, TokyoLocation), models.MarketClosed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MarketStatusAt(tc.at); got != tc.want {
				t.Errorf("MarketStatusAt(%s) = %s, want %s", tc.at, got, tc.want)
			}
		})
	}
}

func TestMarketStatusAtConvertsZones(t *testing.T) {
	// 00:30 UTC is 09:30 JST, inside the morning session.
	at := time.Date(2026, 8, 24, 0, 30, 0, 0, time.UTC)
	if got := MarketStatusAt(at); got != models.MarketOpen {
		t.Errorf("MarketStatusAt(00:30 UTC) = %s, want %s", got, models.MarketOpen)
	}
}
