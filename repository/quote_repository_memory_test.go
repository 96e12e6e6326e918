package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricing-agent/domain"
)

func TestQuoteRepositoryMemory_Save(t *testing.T) {
	repo := NewQuoteRepositoryMemory()

	input := domain.PricingInput{
		Horizon:       domain.HorizonAnnual,
		Placement:     domain.PlacementAtCost,
		PurchasePrice: 100,
		TaxRate:       0.1743,
		ProfitRate:    0.20,
	}
	result := domain.PricingResult{SalePrice: 145.33, NetProfit: 20.00}

	require.NoError(t, repo.Save(input, result))
	require.NoError(t, repo.Save(input, result))

	records := repo.List()
	require.Len(t, records, 2)
	assert.NotEqual(t, records[0].ID, records[1].ID)
	assert.Equal(t, input, records[0].Input)
	assert.Equal(t, result, records[0].Result)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestQuoteRepositoryMemory_ListReturnsCopy(t *testing.T) {
	repo := NewQuoteRepositoryMemory()

	require.NoError(t, repo.Save(domain.PricingInput{}, domain.PricingResult{SalePrice: 1}))

	records := repo.List()
	records[0].Result.SalePrice = 999

	assert.Equal(t, 1.0, repo.List()[0].Result.SalePrice)
}
