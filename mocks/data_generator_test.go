package mocks

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataGenerator_Generate(t *testing.T) {
	config := DefaultConfig()
	config.Days = 100

	series := NewDataGenerator(42).Generate(config)
	require.Equal(t, 100, series.Len())
	assert.Equal(t, config.Symbol, series.Symbol)

	for i, q := range series.Quotes {
		assert.Positive(t, q.Low, "index %d", i)
		assert.GreaterOrEqual(t, q.High, q.Low, "index %d", i)
		assert.True(t, q.Volume.IsSome(), "index %d", i)
		assert.NotEqual(t, time.Saturday, q.Date.Weekday())
		assert.NotEqual(t, time.Sunday, q.Date.Weekday())

		if i > 0 {
			assert.True(t, q.Date.After(series.Quotes[i-1].Date), "index %d", i)
		}
	}
}

func TestDataGenerator_Reproducibility(t *testing.T) {
	config := DefaultConfig()
	config.Days = 20

	a := NewDataGenerator(7).Generate(config)
	b := NewDataGenerator(7).Generate(config)
	assert.Equal(t, a, b)

	c := NewDataGenerator(8).Generate(config)
	assert.NotEqual(t, a.Quotes, c.Quotes)
}

func TestDataGenerator_Forex(t *testing.T) {
	series := GenerateYear("USD/RUB", types.AssetKindForex)

	assert.False(t, series.HasColumn(types.ColumnVolume))
	assert.True(t, series.First().Volume.IsNone())
}

func TestDataGenerator_CryptoEveryDay(t *testing.T) {
	config := DefaultConfig()
	config.Kind = types.AssetKindCrypto
	config.SkipWeekends = false
	config.Days = 14

	series := NewDataGenerator(1).Generate(config)
	assert.Equal(t, 13*24*time.Hour, series.Last().Date.Sub(series.First().Date))
}
