package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"pricing-agent/domain"
)

// QuoteRecord is one computed quote kept in the in-memory history.
type QuoteRecord struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Input     domain.PricingInput
	Result    domain.PricingResult
}

// QuoteRepositoryMemory is an in-memory implementation of QuoteRepository.
// History is lost on restart; the service has no persistence layer.
type QuoteRepositoryMemory struct {
	mu   sync.Mutex
	data []QuoteRecord
}

// NewQuoteRepositoryMemory creates a new in-memory quote repository.
func NewQuoteRepositoryMemory() *QuoteRepositoryMemory {
	return &QuoteRepositoryMemory{
		data: []QuoteRecord{},
	}
}

// Save stores the quote in memory.
func (r *QuoteRepositoryMemory) Save(
	input domain.PricingInput,
	result domain.PricingResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, QuoteRecord{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Input:     input,
		Result:    result,
	})
	return nil
}

// List returns a copy of the stored quotes in insertion order.
func (r *QuoteRepositoryMemory) List() []QuoteRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]QuoteRecord, len(r.data))
	copy(out, r.data)
	return out
}
