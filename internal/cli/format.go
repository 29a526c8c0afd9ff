// Package cli provides the command-line interface for the watchlist
// alert application.
package cli

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/width"

	"kabuka-alert/pkg/utils"
)

// FormatThresholds renders an alert band as "+up% / -down%".
func FormatThresholds(up, down float64) string {
	return fmt.Sprintf("+%.1f%% / -%.1f%%", up, down)
}

// FormatTime formats a time of day in Japan Standard Time.
func FormatTime(t time.Time) string {
	return t.In(utils.TokyoLocation).Format("15:04:05 MST")
}

// DisplayWidth returns the terminal column width of s. East Asian wide
// and fullwidth runes occupy two columns, everything else one, so
// Japanese company names line up with ASCII ticker codes.
func DisplayWidth(s string) int {
	total := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			total += 2
		default:
			total++
		}
	}
	return total
}

// PadRight pads s with spaces to the given display width. Strings
// already at or beyond the width are returned unchanged.
func PadRight(s string, w int) string {
	gap := w - DisplayWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
