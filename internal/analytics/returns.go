package analytics

import (
	"errors"
	"fmt"

	"github.com/quantdesk/market-analytics/internal/models"
)

// ErrInsufficientData indicates there is not enough history for the
// requested statistic. It is surfaced rather than masked: returning a
// fabricated zero volatility or VaR would be misleading.
var ErrInsufficientData = errors.New("insufficient data")

// DailyReturns computes day-over-day simple returns from an ordered
// close-price series: r[i] = close[i+1]/close[i] - 1. The result always
// has len(points)-1 entries. Pure and deterministic.
func DailyReturns(points []models.PricePoint) ([]float64, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need 2 closes for a return, have %d",
			ErrInsufficientData, len(points))
	}

	returns := make([]float64, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		if !points[i].Close.IsPositive() {
			return nil, fmt.Errorf("non-positive close %s on %s",
				points[i].Close, points[i].Date.Format(models.DateLayout))
		}
		returns[i] = points[i+1].Close.Div(points[i].Close).InexactFloat64() - 1
	}
	return returns, nil
}
