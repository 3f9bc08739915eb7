package models

// EquityPoint is one entry of the normalized equity curve
type EquityPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// RiskMetrics is the /risk/metrics response. VolatilityAnnual,
// MaxDrawdown and Var95 are raw fractions (not ×100); the frontend
// multiplies them by 100 before display.
type RiskMetrics struct {
	VolatilityAnnual float64       `json:"volatility_annual"`
	MaxDrawdown      float64       `json:"max_drawdown"`
	Var95            float64       `json:"var_95"`
	EquityCurve      []EquityPoint `json:"equity_curve"`
}
