package marketdata

import (
	"errors"
	"fmt"
	"sort"

	"github.com/quantdesk/market-analytics/internal/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientData indicates the series is too short for the
	// requested computation.
	ErrInsufficientData = errors.New("insufficient price history")

	// ErrInvalidPrice indicates a degenerate close price (zero or negative)
	// where a valid denominator is required.
	ErrInvalidPrice = errors.New("invalid price")
)

// Series is an ordered daily close-price history for a single symbol.
// It is immutable after construction, so concurrent readers need no
// locking.
type Series struct {
	symbol string
	points []models.PricePoint
}

// NewSeries builds a validated series from raw points. Points are sorted
// by date; duplicate dates and non-positive closes are rejected. At least
// one point is required.
func NewSeries(symbol string, points []models.PricePoint) (*Series, error) {
	if symbol == "" {
		return nil, errors.New("symbol is required")
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: series for %s is empty", ErrInsufficientData, symbol)
	}

	sorted := make([]models.PricePoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	for i, p := range sorted {
		if !p.Close.IsPositive() {
			return nil, fmt.Errorf("%w: close %s on %s", ErrInvalidPrice,
				p.Close, p.Date.Format(models.DateLayout))
		}
		if i > 0 && !sorted[i-1].Date.Before(p.Date) {
			return nil, fmt.Errorf("duplicate date in series: %s", p.Date.Format(models.DateLayout))
		}
	}

	return &Series{symbol: symbol, points: sorted}, nil
}

// Symbol returns the tracked symbol.
func (s *Series) Symbol() string {
	return s.symbol
}

// Len returns the number of daily points.
func (s *Series) Len() int {
	return len(s.points)
}

// Points returns the ordered points. Callers must treat the slice as
// read-only.
func (s *Series) Points() []models.PricePoint {
	return s.points
}

// LatestClose returns the most recent close price.
func (s *Series) LatestClose() decimal.Decimal {
	return s.points[len(s.points)-1].Close
}

// History returns the full series in the wire format served at
// /market/history.
func (s *Series) History() []models.HistoryPoint {
	history := make([]models.HistoryPoint, len(s.points))
	for i, p := range s.points {
		history[i] = models.HistoryPoint{
			Date:  p.Date.Format(models.DateLayout),
			Close: p.Close.InexactFloat64(),
		}
	}
	return history
}
