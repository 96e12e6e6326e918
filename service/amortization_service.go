package service

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"

	"pricing-agent/domain"
	"pricing-agent/repository"
)

type AmortizationService struct {
	cache repository.CacheRepository
	log   *logrus.Logger
}

// NewAmortizationService creates a new AmortizationService using the given
// cache for break-even rate memoization.
func NewAmortizationService(cache repository.CacheRepository, log *logrus.Logger) *AmortizationService {
	return &AmortizationService{cache: cache, log: log}
}

// Schedule simulates the monthly capital cost of carrying purchasePrice
// over totalMonths under straight-line amortization. The annual rate is
// converted to its compounding-equivalent monthly rate, and each month's
// interest is charged on the opening balance.
func (s *AmortizationService) Schedule(
	purchasePrice, annualRate float64,
	totalMonths int,
) ([]domain.AmortizationStep, error) {

	if purchasePrice <= 0 {
		return nil, &domain.InvalidInputError{
			Field:  "purchase_price",
			Reason: "must be greater than zero",
		}
	}
	if purchasePrice > MaxPurchasePrice {
		return nil, &domain.InvalidInputError{
			Field:  "purchase_price",
			Reason: fmt.Sprintf("exceeds the maximum of %.2f", MaxPurchasePrice),
		}
	}
	if totalMonths < 1 {
		return nil, &domain.InvalidInputError{
			Field:  "total_months",
			Reason: "must be at least 1",
		}
	}
	if totalMonths > MaxScheduleMonths {
		return nil, &domain.InvalidInputError{
			Field:  "total_months",
			Reason: fmt.Sprintf("exceeds the maximum of %d months", MaxScheduleMonths),
		}
	}
	if annualRate < 0 {
		return nil, &domain.InvalidInputError{
			Field:  "annual_rate",
			Reason: "must not be negative",
		}
	}

	monthlyRate := math.Pow(1+annualRate, 1.0/AnnualMonths) - 1
	balance := purchasePrice
	installment := purchasePrice / float64(totalMonths)
	cumulative := 0.0

	steps := make([]domain.AmortizationStep, 0, totalMonths)
	for month := 1; month <= totalMonths; month++ {
		interest := balance * monthlyRate
		cumulative += interest

		steps = append(steps, domain.AmortizationStep{
			Month:              month,
			OutstandingBalance: balance,
			MonthlyInterest:    interest,
			CumulativeInterest: cumulative,
		})

		balance -= installment
	}
	return steps, nil
}

// MinimumBreakEvenRate returns the markup percentage over totalMonths that
// exactly recovers the simulated capital cost. Results are memoized by the
// exact input triple; a cache miss or unreadable entry falls through to
// recomputation.
func (s *AmortizationService) MinimumBreakEvenRate(
	purchasePrice, annualRate float64,
	totalMonths int,
) (float64, error) {

	key := breakEvenKey(purchasePrice, annualRate, totalMonths)
	if cached, ok := s.cache.Get(key); ok {
		if rate, err := strconv.ParseFloat(cached, 64); err == nil {
			return rate, nil
		}
	}

	steps, err := s.Schedule(purchasePrice, annualRate, totalMonths)
	if err != nil {
		return 0, err
	}

	last := steps[len(steps)-1]
	rate := last.CumulativeInterest / purchasePrice * 100

	if err := s.cache.Set(key, strconv.FormatFloat(rate, 'g', -1, 64)); err != nil {
		s.log.WithError(err).Warn("failed to cache break-even rate")
	}
	return rate, nil
}

// SuggestedInterestRate returns the 12-month break-even rate together with
// the default interest rate floored by it, both as percentages. The
// presentation layer uses the pair to bound and pre-fill its interest input.
func (s *AmortizationService) SuggestedInterestRate(
	purchasePrice, annualRate float64,
) (minimum, suggested float64, err error) {

	minimum, err = s.MinimumBreakEvenRate(purchasePrice, annualRate, AnnualMonths)
	if err != nil {
		return 0, 0, err
	}
	return minimum, math.Max(DefaultInterestRatePct, minimum), nil
}

func breakEvenKey(purchasePrice, annualRate float64, totalMonths int) string {
	return fmt.Sprintf("breakeven:%s:%s:%d",
		strconv.FormatFloat(purchasePrice, 'g', -1, 64),
		strconv.FormatFloat(annualRate, 'g', -1, 64),
		totalMonths,
	)
}
