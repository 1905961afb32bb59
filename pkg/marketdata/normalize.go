package marketdata

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
)

// field positions by numeric key prefix
var fieldColumns = map[int]string{
	1: types.ColumnOpen,
	2: types.ColumnHigh,
	3: types.ColumnLow,
	4: types.ColumnClose,
	5: types.ColumnVolume,
}

// parseFieldKey splits "1. open" into (1, "") and "1a. open (USD)" into (1, "a").
func parseFieldKey(key string) (int, string, bool) {
	prefix, _, found := strings.Cut(key, ".")
	if !found || prefix == "" {
		return 0, "", false
	}

	end := 0
	for end < len(prefix) && prefix[end] >= '0' && prefix[end] <= '9' {
		end++
	}

	if end == 0 {
		return 0, "", false
	}

	n, err := strconv.Atoi(prefix[:end])
	if err != nil {
		return 0, "", false
	}

	return n, prefix[end:], true
}

// normalizeRow maps one date's fields onto column values. When a column has
// several variants ("1a", "1b") the plain or "a" variant wins.
func normalizeRow(fields map[string]string) (map[string]float64, error) {
	values := make(map[string]float64, len(fieldColumns))
	rank := make(map[string]string, len(fieldColumns))

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	for _, key := range keys {
		n, variant, ok := parseFieldKey(key)
		if !ok {
			continue
		}

		column, known := fieldColumns[n]
		if !known || (variant != "" && variant != "a") {
			continue
		}

		if prev, seen := rank[column]; seen && prev <= variant {
			continue
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(fields[key]), 64)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "field %q", key)
		}

		values[column] = v
		rank[column] = variant
	}

	return values, nil
}

// normalizeSeries converts the provider's date-keyed object into quotes sorted
// ascending by date. Volume is only kept for kinds whose columns include it.
func normalizeSeries(raw json.RawMessage, kind types.AssetKind) ([]types.Quote, error) {
	var byDate map[string]map[string]string
	if err := json.Unmarshal(raw, &byDate); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMarketDataParseFailed, "time series is not a date-keyed object", err)
	}

	withVolume := slices.Contains(types.ColumnsFor(kind), types.ColumnVolume)
	quotes := make([]types.Quote, 0, len(byDate))

	for day, fields := range byDate {
		date, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(day), time.UTC)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "invalid date %q", day)
		}

		values, err := normalizeRow(fields)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "row %s", day)
		}

		for _, column := range []string{types.ColumnOpen, types.ColumnHigh, types.ColumnLow, types.ColumnClose} {
			if _, ok := values[column]; !ok {
				return nil, errors.Newf(errors.ErrCodeMarketDataParseFailed, "row %s has no %s", day, column)
			}
		}

		q := types.Quote{
			Date:   date,
			Open:   values[types.ColumnOpen],
			High:   values[types.ColumnHigh],
			Low:    values[types.ColumnLow],
			Close:  values[types.ColumnClose],
			Volume: optional.None[float64](),
		}

		if v, ok := values[types.ColumnVolume]; ok && withVolume {
			q.Volume = optional.Some(v)
		}

		quotes = append(quotes, q)
	}

	slices.SortFunc(quotes, func(a, b types.Quote) int {
		return a.Date.Compare(b.Date)
	})

	return quotes, nil
}
