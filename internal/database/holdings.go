package database

import (
	"fmt"
	"time"

	"github.com/quantdesk/market-analytics/internal/ledger"
	"github.com/quantdesk/market-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// Add validates and inserts a new holding, returning the created record.
// The serial primary key gives monotonically increasing ids and the
// database serializes concurrent inserts, satisfying the single-writer
// discipline of ledger.Store.
func (db *DB) Add(symbol string, quantity, buyPrice decimal.Decimal) (*models.Holding, error) {
	normalized, err := ledger.ValidateNewHolding(symbol, quantity, buyPrice)
	if err != nil {
		return nil, err
	}

	h := &models.Holding{
		Symbol:    normalized,
		Quantity:  quantity,
		BuyPrice:  buyPrice,
		CreatedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO holdings (symbol, quantity, buy_price, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err = db.conn.QueryRow(query, h.Symbol, h.Quantity, h.BuyPrice, h.CreatedAt).Scan(&h.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create holding: %w", err)
	}
	return h, nil
}

// List retrieves all holdings in insertion order
func (db *DB) List() ([]*models.Holding, error) {
	query := `
		SELECT id, symbol, quantity, buy_price, created_at
		FROM holdings
		ORDER BY id ASC
	`
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	defer rows.Close()

	var holdings []*models.Holding
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.ID, &h.Symbol, &h.Quantity, &h.BuyPrice, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		holdings = append(holdings, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holdings: %w", err)
	}

	return holdings, nil
}
