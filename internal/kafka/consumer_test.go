package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/quantdesk/market-analytics/internal/models"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockStore implements HoldingWriter for testing
type MockStore struct {
	holdings []*models.Holding
	nextID   int
	AddCalls int
}

func NewMockStore() *MockStore {
	return &MockStore{nextID: 1}
}

func (m *MockStore) Add(symbol string, quantity, buyPrice decimal.Decimal) (*models.Holding, error) {
	m.AddCalls++
	h := &models.Holding{
		ID:        m.nextID,
		Symbol:    symbol,
		Quantity:  quantity,
		BuyPrice:  buyPrice,
		CreatedAt: time.Now(),
	}
	m.nextID++
	m.holdings = append(m.holdings, h)
	return h, nil
}

func holdingMessage(t *testing.T, event models.HoldingEvent) kafkago.Message {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return kafkago.Message{Key: []byte(event.Symbol), Value: data}
}

func TestProcessMessage(t *testing.T) {
	t.Run("ingests a holding added event", func(t *testing.T) {
		store := NewMockStore()
		consumer := &Consumer{store: store}

		msg := holdingMessage(t, models.HoldingEvent{
			EventType: models.EventHoldingAdded,
			Symbol:    "NIFTY",
			Holding: &models.Holding{
				Symbol:   "NIFTY",
				Quantity: decimal.NewFromInt(10),
				BuyPrice: decimal.NewFromFloat(21500.50),
			},
			Timestamp: time.Now(),
		})

		err := consumer.processMessage(msg)
		require.NoError(t, err)

		assert.Equal(t, 1, store.AddCalls)
		require.Len(t, store.holdings, 1)
		assert.Equal(t, "NIFTY", store.holdings[0].Symbol)
		assert.True(t, store.holdings[0].Quantity.Equal(decimal.NewFromInt(10)))
	})

	t.Run("ignores other event types", func(t *testing.T) {
		store := NewMockStore()
		consumer := &Consumer{store: store}

		msg := holdingMessage(t, models.HoldingEvent{
			EventType: "HOLDING_REMOVED",
			Symbol:    "NIFTY",
		})

		err := consumer.processMessage(msg)
		require.NoError(t, err)
		assert.Zero(t, store.AddCalls)
	})

	t.Run("errors on an event without a payload", func(t *testing.T) {
		store := NewMockStore()
		consumer := &Consumer{store: store}

		msg := holdingMessage(t, models.HoldingEvent{
			EventType: models.EventHoldingAdded,
			Symbol:    "NIFTY",
		})

		err := consumer.processMessage(msg)
		require.Error(t, err)
		assert.Zero(t, store.AddCalls)
	})

	t.Run("errors on malformed JSON", func(t *testing.T) {
		store := NewMockStore()
		consumer := &Consumer{store: store}

		err := consumer.processMessage(kafkago.Message{Value: []byte("{not json")})
		require.Error(t, err)
		assert.Zero(t, store.AddCalls)
	})
}
