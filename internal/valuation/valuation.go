package valuation

import (
	"errors"
	"fmt"

	"github.com/quantdesk/market-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// ErrUnknownSymbol indicates a holding references a symbol with no
// current price.
var ErrUnknownSymbol = errors.New("unknown symbol")

// Summarize values the given holdings against current prices. The price
// lookup is a symbol-to-price map even though the service currently
// tracks a single symbol, so multi-symbol portfolios need no interface
// change later.
//
// An empty portfolio yields a zeroed summary, and a zero invested total
// yields a 0 P/L percentage; neither is an error.
func Summarize(holdings []*models.Holding, priceBySymbol map[string]decimal.Decimal) (*models.PortfolioSummary, error) {
	summary := &models.PortfolioSummary{
		TotalInvested: decimal.Zero,
		CurrentValue:  decimal.Zero,
		ProfitLoss:    decimal.Zero,
		ProfitLossPct: decimal.Zero,
	}
	if len(holdings) == 0 {
		return summary, nil
	}

	for _, h := range holdings {
		price, ok := priceBySymbol[h.Symbol]
		if !ok {
			return nil, fmt.Errorf("%w: no current price for %s", ErrUnknownSymbol, h.Symbol)
		}
		summary.TotalInvested = summary.TotalInvested.Add(h.Quantity.Mul(h.BuyPrice))
		summary.CurrentValue = summary.CurrentValue.Add(h.Quantity.Mul(price))
	}

	summary.ProfitLoss = summary.CurrentValue.Sub(summary.TotalInvested)
	if !summary.TotalInvested.IsZero() {
		summary.ProfitLossPct = summary.ProfitLoss.
			Div(summary.TotalInvested).
			Mul(decimal.NewFromInt(100))
	}
	return summary, nil
}
