package domain

// SensitivityInput describes a sweep around a base pricing input. Deltas
// are integer percentage points on each side of the base rate.
type SensitivityInput struct {
	PricingInput
	ProfitDelta   int
	InterestDelta int
}

// AnnualSweepRow is one candidate profit rate and the sale price it yields.
type AnnualSweepRow struct {
	ProfitRatePct int     `json:"profit_rate_pct"`
	SalePrice     float64 `json:"sale_price"`
}

// MonthlySweepGrid is the profit-rate × interest-rate sale price grid.
// SalePrices[i][j] corresponds to ProfitRatesPct[i] and InterestRatesPct[j];
// a nil cell marks an infeasible combination.
type MonthlySweepGrid struct {
	ProfitRatesPct   []int        `json:"profit_rates_pct"`
	InterestRatesPct []int        `json:"interest_rates_pct"`
	SalePrices       [][]*float64 `json:"sale_prices"`
}

// SensitivityResult holds the sweep for the requested horizon: rows for
// annual quotes, the two-axis grid for monthly ones.
type SensitivityResult struct {
	Horizon SaleHorizon       `json:"sale_horizon"`
	Annual  []AnnualSweepRow  `json:"annual,omitempty"`
	Monthly *MonthlySweepGrid `json:"monthly,omitempty"`
}
