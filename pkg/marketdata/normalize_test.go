package marketdata

import (
	"encoding/json"
	"testing"

	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldKey(t *testing.T) {
	tests := []struct {
		key     string
		n       int
		variant string
		ok      bool
	}{
		{"1. open", 1, "", true},
		{"1a. open (USD)", 1, "a", true},
		{"4b. close (EUR)", 4, "b", true},
		{"10. change percent", 10, "", true},
		{"open", 0, "", false},
		{"a. open", 0, "", false},
		{". open", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			n, variant, ok := parseFieldKey(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.n, n)
			assert.Equal(t, tt.variant, variant)
		})
	}
}

func TestNormalizeRowPrefersPlainThenA(t *testing.T) {
	values, err := normalizeRow(map[string]string{
		"1b. open (USD)":  "2",
		"1a. open (EUR)":  "1",
		"4. close":        "9",
		"4a. close (EUR)": "8",
		"6. market cap":   "100",
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, values[types.ColumnOpen])
	assert.Equal(t, 9.0, values[types.ColumnClose])
	assert.Len(t, values, 2)
}

func TestNormalizeRowRejectsNonNumeric(t *testing.T) {
	_, err := normalizeRow(map[string]string{"1. open": "n/a"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeMarketDataParseFailed))
}

func TestNormalizeSeriesSortsAscending(t *testing.T) {
	var envelope Envelope
	require.NoError(t, json.Unmarshal([]byte(stockDailyBody), &envelope))

	raw, err := envelope.TimeSeries()
	require.NoError(t, err)

	quotes, err := normalizeSeries(raw, types.AssetKindStock)
	require.NoError(t, err)
	require.Len(t, quotes, 4)

	for i := 1; i < len(quotes); i++ {
		assert.True(t, quotes[i-1].Date.Before(quotes[i].Date))
	}

	assert.Equal(t, 500.0, quotes[0].Volume.Unwrap())
}

func TestNormalizeSeriesDropsVolumeForForex(t *testing.T) {
	raw := json.RawMessage(`{"2024-03-01": {"1. open": "1", "2. high": "2", "3. low": "0.5", "4. close": "1.5", "5. volume": "10"}}`)

	quotes, err := normalizeSeries(raw, types.AssetKindForex)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.True(t, quotes[0].Volume.IsNone())
}

func TestNormalizeSeriesRequiresClose(t *testing.T) {
	raw := json.RawMessage(`{"2024-03-01": {"1. open": "1", "2. high": "2", "3. low": "0.5"}}`)

	_, err := normalizeSeries(raw, types.AssetKindStock)
	assert.True(t, errors.HasCode(err, errors.ErrCodeMarketDataParseFailed))
}

func TestNormalizeSeriesInvalidDate(t *testing.T) {
	raw := json.RawMessage(`{"03/01/2024": {"1. open": "1", "2. high": "2", "3. low": "0.5", "4. close": "1"}}`)

	_, err := normalizeSeries(raw, types.AssetKindStock)
	assert.True(t, errors.HasCode(err, errors.ErrCodeMarketDataParseFailed))
}
