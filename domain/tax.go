package domain

// EffectiveTaxRate is the combined 17.43% effective rate the calculator
// applies by default. EffectiveTaxBreakdown lists its components.
const EffectiveTaxRate = 0.1743

type TaxComponent struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	RatePct     float64 `json:"rate_pct"`
}

type TaxBreakdown struct {
	Components []TaxComponent `json:"components"`
	TotalPct   float64        `json:"total_pct"`
}

// EffectiveTaxBreakdown returns the static decomposition of the effective
// rate, as charged on gross revenue under the presumed-profit regime.
func EffectiveTaxBreakdown() TaxBreakdown {
	return TaxBreakdown{
		Components: []TaxComponent{
			{Name: "PIS", Description: "cumulative, on gross revenue", RatePct: 0.65},
			{Name: "COFINS", Description: "cumulative, on gross revenue", RatePct: 3.00},
			{Name: "IRPJ", Description: "15% on the 32% presumed-profit base", RatePct: 4.80},
			{Name: "IRPJ surcharge", Description: "10% on the presumed base above R$ 20,000/month", RatePct: 3.20},
			{Name: "CSLL", Description: "on the presumed-profit base", RatePct: 2.88},
			{Name: "ISS", Description: "SP, software/services", RatePct: 2.90},
		},
		TotalPct: 17.43,
	}
}
