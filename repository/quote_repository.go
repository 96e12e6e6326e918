package repository

import "pricing-agent/domain"

type QuoteRepository interface {
	Save(input domain.PricingInput, result domain.PricingResult) error
}
