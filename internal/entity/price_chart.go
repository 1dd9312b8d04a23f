package entity

import "time"

// PricePoint is one close price in a chart series.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Close     float64   `json:"close"`
}

// PriceChart holds a ticker's price history over a period plus the derived
// figures the dashboard displays.
type PriceChart struct {
	Ticker       string       `json:"ticker"`
	Period       string       `json:"period"`
	Points       []PricePoint `json:"points"`
	CurrentPrice float64      `json:"current_price"`
	Change       float64      `json:"change"`
	ChangePct    float64      `json:"change_pct"`
	High         float64      `json:"high"`
	Low          float64      `json:"low"`
	DataPoints   int          `json:"data_points"`
}
