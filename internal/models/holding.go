package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding represents a portfolio position entered at a buy price
type Holding struct {
	ID        int             `json:"id"`
	Symbol    string          `json:"symbol"`
	Quantity  decimal.Decimal `json:"quantity"`
	BuyPrice  decimal.Decimal `json:"buy_price"`
	CreatedAt time.Time       `json:"created_at"`
}

// PortfolioSummary is the aggregate valuation of all holdings.
// It is recomputed from the ledger on every request, never stored.
// ProfitLossPct is a percentage (×100), matching the frontend contract.
type PortfolioSummary struct {
	TotalInvested decimal.Decimal `json:"total_invested"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	ProfitLoss    decimal.Decimal `json:"profit_loss"`
	ProfitLossPct decimal.Decimal `json:"profit_loss_pct"`
}
