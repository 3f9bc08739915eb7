package database

import (
	"testing"

	"github.com/quantdesk/market-analytics/internal/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldingsRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	t.Run("Add creates a holding with an assigned id", func(t *testing.T) {
		testDB.TruncateHoldings(t)

		h, err := testDB.Add("nifty", decimal.NewFromInt(10), decimal.NewFromFloat(21500.50))
		require.NoError(t, err)

		assert.Equal(t, 1, h.ID)
		assert.Equal(t, "NIFTY", h.Symbol)
		assert.True(t, h.Quantity.Equal(decimal.NewFromInt(10)))
		assert.True(t, h.BuyPrice.Equal(decimal.NewFromFloat(21500.50)))
		assert.False(t, h.CreatedAt.IsZero())
	})

	t.Run("ids increase monotonically", func(t *testing.T) {
		testDB.TruncateHoldings(t)

		first, err := testDB.Add("NIFTY", decimal.NewFromInt(10), decimal.NewFromInt(100))
		require.NoError(t, err)
		second, err := testDB.Add("NIFTY", decimal.NewFromInt(5), decimal.NewFromInt(110))
		require.NoError(t, err)

		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("Add rejects invalid input without touching the table", func(t *testing.T) {
		testDB.TruncateHoldings(t)

		_, err := testDB.Add("NIFTY", decimal.NewFromInt(-1), decimal.NewFromInt(100))
		require.Error(t, err)
		assert.ErrorIs(t, err, ledger.ErrInvalidInput)

		holdings, err := testDB.List()
		require.NoError(t, err)
		assert.Empty(t, holdings)
	})

	t.Run("List returns holdings in insertion order", func(t *testing.T) {
		testDB.TruncateHoldings(t)

		symbols := []string{"NIFTY", "BANKNIFTY", "NIFTY"}
		for _, s := range symbols {
			_, err := testDB.Add(s, decimal.NewFromInt(1), decimal.NewFromInt(100))
			require.NoError(t, err)
		}

		holdings, err := testDB.List()
		require.NoError(t, err)
		require.Len(t, holdings, 3)
		for i, h := range holdings {
			assert.Equal(t, i+1, h.ID)
			assert.Equal(t, symbols[i], h.Symbol)
		}
	})

	t.Run("decimal fields round-trip exactly", func(t *testing.T) {
		testDB.TruncateHoldings(t)

		_, err := testDB.Add("NIFTY", decimal.RequireFromString("2.5"), decimal.RequireFromString("21741.95"))
		require.NoError(t, err)

		holdings, err := testDB.List()
		require.NoError(t, err)
		require.Len(t, holdings, 1)
		assert.True(t, holdings[0].Quantity.Equal(decimal.RequireFromString("2.5")))
		assert.True(t, holdings[0].BuyPrice.Equal(decimal.RequireFromString("21741.95")))
	})
}
