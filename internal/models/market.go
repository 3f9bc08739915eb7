package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// PricePoint represents one daily close for the tracked symbol
type PricePoint struct {
	Date  time.Time       `json:"date"`
	Close decimal.Decimal `json:"close"`
}

// MarketSummary is the latest-bar snapshot served at /market/summary.
// ChangePct is already multiplied by 100; the frontend renders it as-is.
type MarketSummary struct {
	Symbol    string  `json:"symbol"`
	Date      string  `json:"date"`
	Close     float64 `json:"close"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_pct"`
}

// HistoryPoint is one entry of the /market/history response
type HistoryPoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}
