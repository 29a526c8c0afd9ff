// Package utils provides shared utility functions.
package utils

import (
	"time"

	"kabuka-alert/internal/models"
)

// TokyoLocation is the timezone of the Tokyo Stock Exchange.
var TokyoLocation *time.Location

func init() {
	var err error
	TokyoLocation, err = time.LoadLocation("Asia/Tokyo")
	if err != nil {
		// Fallback to UTC+9
		TokyoLocation = time.FixedZone("JST", 9*60*60)
	}
}

// GetMarketStatus returns the current Tokyo Stock Exchange session status.
func GetMarketStatus() models.MarketStatus {
	return MarketStatusAt(time.Now())
}

// MarketStatusAt returns the session status at the given instant.
// Sessions in JST: pre-open 8:00-9:00, morning 9:00-11:30, lunch break
// 11:30-12:30, afternoon 12:30-15:30. Weekends are closed; public
// holidays are not tracked.
func MarketStatusAt(t time.Time) models.MarketStatus {
	now := t.In(TokyoLocation)

	if now.Weekday() == time.Saturday || now.Weekday() == time.Sunday {
		return models.MarketClosed
	}

	timeMinutes := now.Hour()*60 + now.Minute()

	switch {
	case timeMinutes >= 480 && timeMinutes < 540: // 8:00 - 9:00
		return models.MarketPreOpen
	case timeMinutes >= 540 && timeMinutes < 690: // 9:00 - 11:30
		return models.MarketOpen
	case timeMinutes >= 690 && timeMinutes < 750: // 11:30 - 12:30
		return models.MarketLunchBreak
	case timeMinutes >= 750 && timeMinutes < 930: // 12:30 - 15:30
		return models.MarketOpen
	default:
		return models.MarketClosed
	}
}

// IsMarketOpen returns true while either trading session is running.
func IsMarketOpen() bool {
	return GetMarketStatus() == models.MarketOpen
}

// GetNextMarketOpen returns the next morning-session opening time.
func GetNextMarketOpen() time.Time {
	now := time.Now().In(TokyoLocation)

	next := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, TokyoLocation)
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
