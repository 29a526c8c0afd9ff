// Package render formats notification events into the consolidated Slack
// message.
//
// The layout is fixed: a portfolio section, a `===` divider when both
// sections are present, and an other-tickers section. Every event takes
// two lines, a linked headline with the signed daily change and a price
// line with the previous close and current price in yen.
package render

import (
	"fmt"
	"strings"

	"kabuka-alert/internal/models"
)

const (
	portfolioHeader = "ポートフォリオ銘柄"
	otherHeader     = "その他銘柄"
	sectionDivider  = "==="

	upGlyph   = ":chart_with_upwards_trend:"
	downGlyph = ":chart_with_downwards_trend:"
)

// tradingViewBase is the chart page linked from every headline.
const tradingViewBase = "https://jp.tradingview.com/symbols/TSE-"

// Message renders the consolidated notification for one pass. It returns
// false when there are no events, in which case nothing should be sent.
// The message carries no trailing newline.
func Message(portfolio []models.PortfolioEvent, other []models.ThresholdEvent) (string, bool) {
	if len(portfolio) == 0 && len(other) == 0 {
		return "", false
	}

	var lines []string

	if len(portfolio) > 0 {
		lines = append(lines, portfolioHeader)
		for _, ev := range portfolio {
			lines = append(lines, headline(ev.PriceMove, ""), priceLine(ev.PriceMove))
		}
	}

	if len(other) > 0 {
		if len(portfolio) > 0 {
			lines = append(lines, sectionDivider)
		}
		lines = append(lines, otherHeader)
		for _, ev := range other {
			suffix := fmt.Sprintf(" (閾値: %.1f%%)", ev.Threshold)
			lines = append(lines, headline(ev.PriceMove, suffix), priceLine(ev.PriceMove))
		}
	}

	return strings.Join(lines, "\n"), true
}

// headline is the first line of an event: trend glyph, linked company
// name with ticker, and the signed daily change. Threshold events pass
// the fired bound as a suffix.
func headline(mv models.PriceMove, suffix string) string {
	return fmt.Sprintf("%s <%s|%s (%s)> 前日比: %+.2f%%%s",
		glyph(mv.ChangePct), ChartURL(mv.Ticker), mv.CompanyName, mv.Ticker, mv.ChangePct, suffix)
}

// priceLine is the second line of an event: previous close and current
// price, one decimal place each.
func priceLine(mv models.PriceMove) string {
	return fmt.Sprintf("前日終値: %.1f円 -> 現在値: %.1f円", mv.PreviousClose, mv.CurrentPrice)
}

// glyph picks the trend emoji. Only a strictly positive change gets the
// upward glyph; a flat day renders as downward.
func glyph(changePct float64) string {
	if changePct > 0 {
		return upGlyph
	}
	return downGlyph
}

// ChartURL returns the TradingView page for a Tokyo Stock Exchange
// ticker: 6361.T maps to .../symbols/TSE-6361/. The exchange suffix is
// trimmed only at the end of the symbol so security codes that happen to
// contain the same characters stay intact.
func ChartURL(ticker string) string {
	code := strings.TrimSuffix(ticker, ".T")
	return tradingViewBase + code + "/"
}
