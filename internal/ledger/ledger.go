// Package ledger defines the holdings store. The external boundary is
// intentionally narrow: holdings can be added and listed, but not
// updated or removed. That asymmetry mirrors the consuming client and
// is a flagged contract gap, not an oversight to paper over here.
package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quantdesk/market-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput indicates a malformed or out-of-range holding field on
// the write path. It is always surfaced to the caller, never coerced.
var ErrInvalidInput = errors.New("invalid input")

// Store is the interface for holdings persistence. Implementations must
// serialize writes so concurrent adds cannot produce duplicate ids, and
// must return holdings from List in insertion order.
type Store interface {
	Add(symbol string, quantity, buyPrice decimal.Decimal) (*models.Holding, error)
	List() ([]*models.Holding, error)
}

// ValidateNewHolding checks the add-holding fields and returns the
// normalized (upper-cased) symbol.
func ValidateNewHolding(symbol string, quantity, buyPrice decimal.Decimal) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", fmt.Errorf("%w: symbol is required", ErrInvalidInput)
	}
	if !quantity.IsPositive() {
		return "", fmt.Errorf("%w: quantity must be positive, got %s", ErrInvalidInput, quantity)
	}
	if !buyPrice.IsPositive() {
		return "", fmt.Errorf("%w: buy_price must be positive, got %s", ErrInvalidInput, buyPrice)
	}
	return symbol, nil
}
