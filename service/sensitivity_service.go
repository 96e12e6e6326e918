package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"pricing-agent/domain"
)

type SensitivityService struct {
	pricing *PricingService
	log     *logrus.Logger
}

func NewSensitivityService(pricing *PricingService, log *logrus.Logger) *SensitivityService {
	return &SensitivityService{pricing: pricing, log: log}
}

// Sweep prices a grid of candidate rates around the base input: for annual
// quotes the profit rate varies by ±ProfitDelta percentage points, for
// monthly quotes profit and interest vary independently. Individual
// infeasible or out-of-range candidates are skipped; the sweep itself never
// aborts on them.
func (s *SensitivityService) Sweep(
	input domain.SensitivityInput,
) (domain.SensitivityResult, error) {

	if input.ProfitDelta < 1 {
		return domain.SensitivityResult{}, &domain.InvalidInputError{
			Field:  "profit_delta",
			Reason: "must be at least 1",
		}
	}
	if input.ProfitDelta > MaxSweepDelta {
		return domain.SensitivityResult{}, &domain.InvalidInputError{
			Field:  "profit_delta",
			Reason: fmt.Sprintf("exceeds the maximum of %d", MaxSweepDelta),
		}
	}

	switch input.Horizon {
	case domain.HorizonAnnual:
		rows, err := s.annualSweep(input)
		if err != nil {
			return domain.SensitivityResult{}, err
		}
		return domain.SensitivityResult{
			Horizon: domain.HorizonAnnual,
			Annual:  rows,
		}, nil

	case domain.HorizonMonthly:
		if input.InterestDelta < 1 {
			return domain.SensitivityResult{}, &domain.InvalidInputError{
				Field:  "interest_delta",
				Reason: "must be at least 1",
			}
		}
		if input.InterestDelta > MaxSweepDelta {
			return domain.SensitivityResult{}, &domain.InvalidInputError{
				Field:  "interest_delta",
				Reason: fmt.Sprintf("exceeds the maximum of %d", MaxSweepDelta),
			}
		}
		grid, err := s.monthlySweep(input)
		if err != nil {
			return domain.SensitivityResult{}, err
		}
		return domain.SensitivityResult{
			Horizon: domain.HorizonMonthly,
			Monthly: grid,
		}, nil

	default:
		return domain.SensitivityResult{}, &domain.InvalidInputError{
			Field:  "sale_horizon",
			Reason: fmt.Sprintf("unknown value %q", string(input.Horizon)),
		}
	}
}

func (s *SensitivityService) annualSweep(
	input domain.SensitivityInput,
) ([]domain.AnnualSweepRow, error) {

	basePct := int(math.Round(input.ProfitRate * 100))
	rows := []domain.AnnualSweepRow{}

	for pct := basePct - input.ProfitDelta; pct <= basePct+input.ProfitDelta; pct++ {
		candidate := input.PricingInput
		candidate.Horizon = domain.HorizonAnnual
		candidate.ProfitRate = float64(pct) / 100

		result, err := s.pricing.compute(candidate)
		if err != nil {
			if isCalculationError(err) {
				continue
			}
			return nil, err
		}

		rows = append(rows, domain.AnnualSweepRow{
			ProfitRatePct: pct,
			SalePrice:     result.SalePrice,
		})
	}
	return rows, nil
}

func (s *SensitivityService) monthlySweep(
	input domain.SensitivityInput,
) (*domain.MonthlySweepGrid, error) {

	baseProfitPct := int(math.Round(input.ProfitRate * 100))
	baseInterestPct := int(math.Round(input.InterestRate * 100))

	profitPcts := pctRange(baseProfitPct, input.ProfitDelta)
	interestPcts := pctRange(baseInterestPct, input.InterestDelta)

	grid := &domain.MonthlySweepGrid{
		ProfitRatesPct:   profitPcts,
		InterestRatesPct: interestPcts,
		SalePrices:       make([][]*float64, len(profitPcts)),
	}

	for i, profitPct := range profitPcts {
		row := make([]*float64, len(interestPcts))
		for j, interestPct := range interestPcts {
			candidate := input.PricingInput
			candidate.Horizon = domain.HorizonMonthly
			candidate.ProfitRate = float64(profitPct) / 100
			candidate.InterestRate = float64(interestPct) / 100

			result, err := s.pricing.compute(candidate)
			if err != nil {
				if isCalculationError(err) {
					continue // cell stays nil
				}
				return nil, err
			}

			price := result.SalePrice
			row[j] = &price
		}
		grid.SalePrices[i] = row
	}
	return grid, nil
}

func pctRange(base, delta int) []int {
	pcts := make([]int, 0, 2*delta+1)
	for pct := base - delta; pct <= base+delta; pct++ {
		pcts = append(pcts, pct)
	}
	return pcts
}

// isCalculationError reports whether err is one of the two terminal
// calculation error kinds, which a sweep tolerates per point.
func isCalculationError(err error) bool {
	var invalid *domain.InvalidInputError
	var infeasible *domain.InfeasiblePricingError
	return errors.As(err, &invalid) || errors.As(err, &infeasible)
}
