package marketdata

import (
	"fmt"

	"github.com/quantdesk/market-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// SummaryService exposes the latest-bar snapshot of a price series
type SummaryService struct {
	series *Series
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(series *Series) *SummaryService {
	return &SummaryService{series: series}
}

// LatestSummary returns the most recent bar with its day-over-day change.
// At least two points are required; change_pct is reported already
// multiplied by 100.
func (s *SummaryService) LatestSummary() (*models.MarketSummary, error) {
	points := s.series.Points()
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need 2 closes for a change, have %d",
			ErrInsufficientData, len(points))
	}

	latest := points[len(points)-1]
	prev := points[len(points)-2]

	if prev.Close.IsZero() {
		return nil, fmt.Errorf("%w: previous close is zero on %s",
			ErrInvalidPrice, prev.Date.Format(models.DateLayout))
	}

	change := latest.Close.Sub(prev.Close)
	changePct := change.Div(prev.Close).Mul(decimal.NewFromInt(100))

	return &models.MarketSummary{
		Symbol:    s.series.Symbol(),
		Date:      latest.Date.Format(models.DateLayout),
		Close:     latest.Close.InexactFloat64(),
		Change:    change.InexactFloat64(),
		ChangePct: changePct.InexactFloat64(),
	}, nil
}
