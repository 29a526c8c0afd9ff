package models

// Direction indicates which alert bound a threshold crossing hit.
type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
)

// PriceMove is the price context shared by every notification event.
type PriceMove struct {
	Ticker        string  `json:"ticker"`
	CompanyName   string  `json:"company_name"`
	CurrentPrice  float64 `json:"current_price"`
	PreviousClose float64 `json:"previous_close"`
	ChangePct     float64 `json:"change_pct"`
}

// PortfolioEvent reports a portfolio ticker. One is produced on every
// successful evaluation regardless of how far the price moved.
type PortfolioEvent struct {
	PriceMove
}

// ThresholdEvent reports a watched ticker whose daily change crossed one
// of its alert bounds. Threshold holds the bound that fired, as a
// positive percentage for both directions.
type ThresholdEvent struct {
	PriceMove
	Direction Direction `json:"direction"`
	Threshold float64   `json:"threshold"`
}
