package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/quantdesk/market-analytics/internal/models"
)

// DefaultTradingDays is the conventional number of trading days per year
// used to annualize daily volatility.
const DefaultTradingDays = 252

// RiskEngine computes risk statistics over an immutable price series.
// All methods are pure and deterministic, so an engine is safe for
// concurrent use.
type RiskEngine struct {
	tradingDays int
}

// NewRiskEngine creates a RiskEngine. A non-positive tradingDays falls
// back to DefaultTradingDays.
func NewRiskEngine(tradingDays int) *RiskEngine {
	if tradingDays <= 0 {
		tradingDays = DefaultTradingDays
	}
	return &RiskEngine{tradingDays: tradingDays}
}

// AnnualizedVolatility returns the sample standard deviation of daily
// returns scaled by sqrt(trading days per year). At least two returns
// are required, since a sample standard deviation is undefined below
// that.
func (e *RiskEngine) AnnualizedVolatility(returns []float64) (float64, error) {
	n := len(returns)
	if n < 2 {
		return 0, fmt.Errorf("%w: need 2 returns for a standard deviation, have %d",
			ErrInsufficientData, n)
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(n)

	sumSq := 0.0
	for _, r := range returns {
		d := r - mean
		sumSq += d * d
	}
	daily := math.Sqrt(sumSq / float64(n-1))

	return daily * math.Sqrt(float64(e.tradingDays)), nil
}

// MaxDrawdown returns the deepest peak-to-trough decline as a fraction
// of the running peak. The result is never positive: it is exactly 0
// for a monotonically non-decreasing series or a single point.
func (e *RiskEngine) MaxDrawdown(points []models.PricePoint) (float64, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("%w: empty series", ErrInsufficientData)
	}

	peak := points[0].Close.InexactFloat64()
	if peak <= 0 {
		return 0, fmt.Errorf("non-positive close %s on %s",
			points[0].Close, points[0].Date.Format(models.DateLayout))
	}
	maxDD := 0.0
	for _, p := range points {
		close := p.Close.InexactFloat64()
		if close > peak {
			peak = close
		}
		if dd := (close - peak) / peak; dd < maxDD {
			maxDD = dd
		}
	}
	return maxDD, nil
}

// ValueAtRisk95 returns the 1-day historical VaR at 95% confidence with
// the nearest-rank method: returns are sorted ascending and the value at
// index floor(0.05*n) is taken, using the lower index when the
// computation lands exactly on a boundary. The raw percentile return is
// reported, typically a negative fraction.
func (e *RiskEngine) ValueAtRisk95(returns []float64) (float64, error) {
	n := len(returns)
	if n == 0 {
		return 0, fmt.Errorf("%w: no returns", ErrInsufficientData)
	}

	sorted := make([]float64, n)
	copy(sorted, returns)
	sort.Float64s(sorted)

	idx := int(math.Floor(0.05 * float64(n)))
	return sorted[idx], nil
}

// EquityCurve returns the normalized cumulative-return trajectory: the
// first point is pinned at 1.0 on the series start date and each
// subsequent value multiplies in (1 + daily return).
func (e *RiskEngine) EquityCurve(points []models.PricePoint) ([]models.EquityPoint, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInsufficientData)
	}

	curve := make([]models.EquityPoint, len(points))
	curve[0] = models.EquityPoint{
		Date:  points[0].Date.Format(models.DateLayout),
		Value: 1.0,
	}

	value := 1.0
	for i := 1; i < len(points); i++ {
		if !points[i-1].Close.IsPositive() {
			return nil, fmt.Errorf("non-positive close %s on %s",
				points[i-1].Close, points[i-1].Date.Format(models.DateLayout))
		}
		ratio := points[i].Close.Div(points[i-1].Close).InexactFloat64()
		value *= ratio
		curve[i] = models.EquityPoint{
			Date:  points[i].Date.Format(models.DateLayout),
			Value: value,
		}
	}
	return curve, nil
}

// ComputeMetrics bundles all risk statistics for the /risk/metrics
// endpoint. It needs at least three points so the volatility sample is
// defined.
func (e *RiskEngine) ComputeMetrics(points []models.PricePoint) (*models.RiskMetrics, error) {
	returns, err := DailyReturns(points)
	if err != nil {
		return nil, err
	}

	vol, err := e.AnnualizedVolatility(returns)
	if err != nil {
		return nil, err
	}

	mdd, err := e.MaxDrawdown(points)
	if err != nil {
		return nil, err
	}

	varRisk, err := e.ValueAtRisk95(returns)
	if err != nil {
		return nil, err
	}

	curve, err := e.EquityCurve(points)
	if err != nil {
		return nil, err
	}

	return &models.RiskMetrics{
		VolatilityAnnual: vol,
		MaxDrawdown:      mdd,
		Var95:            varRisk,
		EquityCurve:      curve,
	}, nil
}
