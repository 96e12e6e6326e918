package domain

// SaleHorizon selects whether the quoted price is a single annual figure or
// an annual total divided into a monthly one.
type SaleHorizon string

const (
	HorizonAnnual  SaleHorizon = "annual"
	HorizonMonthly SaleHorizon = "monthly"
)

// ParseSaleHorizon reports whether s names a known sale horizon.
func ParseSaleHorizon(s string) (SaleHorizon, bool) {
	switch SaleHorizon(s) {
	case HorizonAnnual, HorizonMonthly:
		return SaleHorizon(s), true
	}
	return "", false
}

// ProfitPlacement selects where the desired margin enters the formula:
// as a markup on the purchase cost, or as a share carved out of the final
// sale price together with the tax line.
type ProfitPlacement string

const (
	PlacementAtCost ProfitPlacement = "at_cost"
	PlacementAtSale ProfitPlacement = "at_sale"
)

// ParseProfitPlacement reports whether s names a known profit placement.
func ParseProfitPlacement(s string) (ProfitPlacement, bool) {
	switch ProfitPlacement(s) {
	case PlacementAtCost, PlacementAtSale:
		return ProfitPlacement(s), true
	}
	return "", false
}

// PricingInput carries one pricing calculation. Rates are decimals
// (0.1743 = 17.43%).
type PricingInput struct {
	Horizon       SaleHorizon     `json:"sale_horizon"`
	Placement     ProfitPlacement `json:"profit_placement"`
	PurchasePrice float64         `json:"purchase_price"`
	TaxRate       float64         `json:"tax_rate"`
	ProfitRate    float64         `json:"profit_rate"`
	InterestRate  float64         `json:"interest_rate"`
}

// DerivationStep is one labeled intermediate quantity of a pricing
// calculation, formatted for display.
type DerivationStep struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type PricingResult struct {
	SalePrice  float64          `json:"sale_price"`
	NetProfit  float64          `json:"net_profit"`
	Derivation []DerivationStep `json:"derivation"`
}
