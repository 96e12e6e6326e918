package service

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"pricing-agent/domain"
	"pricing-agent/repository"
)

// roundTo2Decimals rounds a float64 to 2 decimals.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

func money(value float64) string {
	return fmt.Sprintf("R$ %.2f", value)
}

type PricingService struct {
	quotes repository.QuoteRepository
	log    *logrus.Logger
}

// NewPricingService creates a new PricingService with the given quote
// history repository.
func NewPricingService(quotes repository.QuoteRepository, log *logrus.Logger) *PricingService {
	return &PricingService{quotes: quotes, log: log}
}

// ComputeSalePrice calculates the resale price and net margin for the given
// input and records the quote. A history save failure is logged and never
// fails the calculation.
func (s *PricingService) ComputeSalePrice(
	input domain.PricingInput,
) (domain.PricingResult, error) {

	result, err := s.compute(input)
	if err != nil {
		return domain.PricingResult{}, err
	}

	if err := s.quotes.Save(input, result); err != nil {
		s.log.WithError(err).Warn("failed to save quote")
	}

	return result, nil
}

// SellerMarginAmount returns the seller's share of a net profit.
func (s *PricingService) SellerMarginAmount(netProfit, margin float64) (float64, error) {
	if margin < 0 || margin >= 1 {
		return 0, &domain.InvalidInputError{
			Field:  "seller_margin",
			Reason: "must be in range [0, 1)",
		}
	}
	return roundTo2Decimals(netProfit * margin), nil
}

// compute runs one calculation without touching the quote history. Sweeps
// call it directly so candidate grid points are not recorded.
func (s *PricingService) compute(
	input domain.PricingInput,
) (domain.PricingResult, error) {

	if err := validatePricingInput(input); err != nil {
		return domain.PricingResult{}, err
	}

	netDenominator := 1 - input.TaxRate
	if netDenominator <= 0 {
		return domain.PricingResult{}, &domain.InfeasiblePricingError{
			Condition: "tax rate reaches 100%",
		}
	}
	netMultiplier := 1 / netDenominator

	switch {
	case input.Horizon == domain.HorizonAnnual && input.Placement == domain.PlacementAtCost:
		return annualAtCost(input, netMultiplier), nil

	case input.Horizon == domain.HorizonAnnual && input.Placement == domain.PlacementAtSale:
		saleDenominator := 1 - input.ProfitRate - input.TaxRate
		if saleDenominator <= 0 {
			return domain.PricingResult{}, &domain.InfeasiblePricingError{
				Condition: "profit rate plus tax rate reaches 100%",
			}
		}
		return annualAtSale(input, saleDenominator), nil

	case input.Horizon == domain.HorizonMonthly && input.Placement == domain.PlacementAtCost:
		return monthlyAtCost(input, netMultiplier), nil

	default: // Monthly × AtSale, the only pair left after validation.
		saleDenominator := 1 - input.ProfitRate - input.TaxRate
		if saleDenominator <= 0 {
			return domain.PricingResult{}, &domain.InfeasiblePricingError{
				Condition: "profit rate plus tax rate reaches 100%",
			}
		}
		return monthlyAtSale(input, saleDenominator, netMultiplier), nil
	}
}

func validatePricingInput(input domain.PricingInput) error {
	if _, ok := domain.ParseSaleHorizon(string(input.Horizon)); !ok {
		return &domain.InvalidInputError{
			Field:  "sale_horizon",
			Reason: fmt.Sprintf("unknown value %q", string(input.Horizon)),
		}
	}
	if _, ok := domain.ParseProfitPlacement(string(input.Placement)); !ok {
		return &domain.InvalidInputError{
			Field:  "profit_placement",
			Reason: fmt.Sprintf("unknown value %q", string(input.Placement)),
		}
	}
	if input.PurchasePrice <= 0 {
		return &domain.InvalidInputError{
			Field:  "purchase_price",
			Reason: "must be greater than zero",
		}
	}
	if input.PurchasePrice > MaxPurchasePrice {
		return &domain.InvalidInputError{
			Field:  "purchase_price",
			Reason: fmt.Sprintf("exceeds the maximum of %.2f", MaxPurchasePrice),
		}
	}
	if input.TaxRate < 0 || input.TaxRate >= 1 {
		return &domain.InvalidInputError{
			Field:  "tax_rate",
			Reason: "must be in range [0, 1)",
		}
	}
	if input.ProfitRate < 0 || input.ProfitRate >= 1 {
		return &domain.InvalidInputError{
			Field:  "profit_rate",
			Reason: "must be in range [0, 1)",
		}
	}
	if input.InterestRate < 0 {
		return &domain.InvalidInputError{
			Field:  "interest_rate",
			Reason: "must not be negative",
		}
	}
	if input.InterestRate > MaxInterestRate {
		return &domain.InvalidInputError{
			Field:  "interest_rate",
			Reason: fmt.Sprintf("exceeds the maximum of %.2f", MaxInterestRate),
		}
	}
	return nil
}

func annualAtCost(input domain.PricingInput, netMultiplier float64) domain.PricingResult {
	salePrice := input.PurchasePrice * netMultiplier * (1 + input.ProfitRate)
	netProfit := salePrice - salePrice*input.TaxRate - input.PurchasePrice

	return domain.PricingResult{
		SalePrice: roundTo2Decimals(salePrice),
		NetProfit: roundTo2Decimals(netProfit),
		Derivation: []domain.DerivationStep{
			{Label: "net multiplier", Value: fmt.Sprintf("%.5f", netMultiplier)},
			{Label: "sale price", Value: money(salePrice)},
			{Label: "taxes", Value: money(salePrice * input.TaxRate)},
			{Label: "gross margin", Value: money(netProfit)},
		},
	}
}

func annualAtSale(input domain.PricingInput, saleDenominator float64) domain.PricingResult {
	salePrice := input.PurchasePrice / saleDenominator
	netProfit := salePrice - salePrice*input.TaxRate - input.PurchasePrice

	return domain.PricingResult{
		SalePrice: roundTo2Decimals(salePrice),
		NetProfit: roundTo2Decimals(netProfit),
		Derivation: []domain.DerivationStep{
			{Label: "sale denominator", Value: fmt.Sprintf("%.2f%%", saleDenominator*100)},
			{Label: "sale price", Value: money(salePrice)},
			{Label: "taxes", Value: money(salePrice * input.TaxRate)},
			{Label: "gross margin", Value: money(netProfit)},
		},
	}
}

func monthlyAtCost(input domain.PricingInput, netMultiplier float64) domain.PricingResult {
	// Both the margin and the capital cost are markups subject to the same
	// tax gross-up.
	annualSalePrice := input.PurchasePrice * netMultiplier *
		(1 + input.ProfitRate + input.InterestRate)
	salePrice := annualSalePrice / AnnualMonths
	netProfit := annualSalePrice - annualSalePrice*input.TaxRate -
		input.PurchasePrice*input.InterestRate - input.PurchasePrice

	return domain.PricingResult{
		SalePrice: roundTo2Decimals(salePrice),
		NetProfit: roundTo2Decimals(netProfit),
		Derivation: []domain.DerivationStep{
			{Label: "net multiplier", Value: fmt.Sprintf("%.5f", netMultiplier)},
			{Label: "annual sale price", Value: money(annualSalePrice)},
			{Label: "monthly sale price", Value: money(salePrice)},
			{Label: "taxes", Value: money(annualSalePrice * input.TaxRate)},
			{Label: "interest", Value: money(input.PurchasePrice * input.InterestRate)},
			{Label: "gross margin", Value: money(netProfit)},
		},
	}
}

func monthlyAtSale(input domain.PricingInput, saleDenominator, netMultiplier float64) domain.PricingResult {
	// The interest term is grossed up by the tax-only multiplier while the
	// sale portion uses the combined profit+tax denominator. The asymmetry
	// is intentional and matches the published formula.
	annualSalePrice := input.PurchasePrice/saleDenominator +
		input.PurchasePrice*input.InterestRate*netMultiplier
	salePrice := annualSalePrice / AnnualMonths
	netProfit := annualSalePrice - annualSalePrice*input.TaxRate -
		input.PurchasePrice*input.InterestRate - input.PurchasePrice

	return domain.PricingResult{
		SalePrice: roundTo2Decimals(salePrice),
		NetProfit: roundTo2Decimals(netProfit),
		Derivation: []domain.DerivationStep{
			{Label: "sale denominator", Value: fmt.Sprintf("%.2f%%", saleDenominator*100)},
			{Label: "net multiplier", Value: fmt.Sprintf("%.5f", netMultiplier)},
			{Label: "annual sale price", Value: money(annualSalePrice)},
			{Label: "monthly sale price", Value: money(salePrice)},
			{Label: "taxes", Value: money(annualSalePrice * input.TaxRate)},
			{Label: "interest", Value: money(input.PurchasePrice * input.InterestRate)},
			{Label: "gross margin", Value: money(netProfit)},
		},
	}
}
