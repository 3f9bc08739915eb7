package marketdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestSummary(t *testing.T) {
	t.Run("reports the last bar with its change", func(t *testing.T) {
		series, err := NewSeries("NIFTY", samplePoints(100, 102, 101, 105))
		require.NoError(t, err)

		summary, err := NewSummaryService(series).LatestSummary()
		require.NoError(t, err)

		assert.Equal(t, "NIFTY", summary.Symbol)
		assert.Equal(t, "2024-03-04", summary.Date)
		assert.Equal(t, 105.0, summary.Close)
		assert.InDelta(t, 4.0, summary.Change, 1e-9)
		assert.InDelta(t, 4.0/101.0*100, summary.ChangePct, 1e-9)
	})

	t.Run("reports a negative change", func(t *testing.T) {
		series, err := NewSeries("NIFTY", samplePoints(100, 95))
		require.NoError(t, err)

		summary, err := NewSummaryService(series).LatestSummary()
		require.NoError(t, err)
		assert.InDelta(t, -5.0, summary.Change, 1e-9)
		assert.InDelta(t, -5.0, summary.ChangePct, 1e-9)
	})

	t.Run("fails with a single point", func(t *testing.T) {
		series, err := NewSeries("NIFTY", samplePoints(100))
		require.NoError(t, err)

		_, err = NewSummaryService(series).LatestSummary()
		assert.ErrorIs(t, err, ErrInsufficientData)
	})
}
