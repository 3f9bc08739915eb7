package ledger

import (
	"sync"
	"time"

	"github.com/quantdesk/market-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// MemoryStore is an in-memory Store guarded by a reader-writer mutex.
// Identifier assignment and the append happen under the write lock, so
// concurrent adds get unique monotonically increasing ids.
type MemoryStore struct {
	mu       sync.RWMutex
	holdings []*models.Holding
	nextID   int
}

// NewMemoryStore creates an empty in-memory holdings store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Add validates and appends a new holding, returning the created record.
func (s *MemoryStore) Add(symbol string, quantity, buyPrice decimal.Decimal) (*models.Holding, error) {
	normalized, err := ValidateNewHolding(symbol, quantity, buyPrice)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h := &models.Holding{
		ID:        s.nextID,
		Symbol:    normalized,
		Quantity:  quantity,
		BuyPrice:  buyPrice,
		CreatedAt: time.Now().UTC(),
	}
	s.nextID++
	s.holdings = append(s.holdings, h)

	return h, nil
}

// List returns all holdings in insertion order. The returned slice is a
// copy, so callers cannot disturb the ledger.
func (s *MemoryStore) List() ([]*models.Holding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Holding, len(s.holdings))
	copy(out, s.holdings)
	return out, nil
}
