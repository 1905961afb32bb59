package types

import (
	"slices"
	"time"

	"github.com/moznion/go-optional"
)

// AssetKind identifies the asset class a series or source belongs to.
type AssetKind string

const (
	AssetKindStock  AssetKind = "stock"
	AssetKindForex  AssetKind = "forex"
	AssetKindCrypto AssetKind = "crypto"
)

// Label returns the heading used in chart titles for the asset kind.
func (k AssetKind) Label() string {
	switch k {
	case AssetKindForex:
		return "FOREX"
	case AssetKindCrypto:
		return "CRYPTO"
	default:
		return "TICKER"
	}
}

// Column names of a quote series.
const (
	ColumnOpen   = "Open"
	ColumnHigh   = "High"
	ColumnLow    = "Low"
	ColumnClose  = "Close"
	ColumnVolume = "Volume"
)

// ColumnsFor returns the columns a series of the given kind carries. Forex
// quotes have no volume.
func ColumnsFor(kind AssetKind) []string {
	if kind == AssetKindForex {
		return []string{ColumnOpen, ColumnHigh, ColumnLow, ColumnClose}
	}

	return []string{ColumnOpen, ColumnHigh, ColumnLow, ColumnClose, ColumnVolume}
}

// Quote is one daily OHLC(V) row.
type Quote struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume optional.Option[float64]
}

// QuoteSeries is an ordered-by-date sequence of quotes for one symbol.
// Dates are unique and ascending. Columns is populated even when Quotes is empty.
type QuoteSeries struct {
	Symbol  string
	Kind    AssetKind
	Columns []string
	Quotes  []Quote
	// Notice holds the provider message when the series was emptied by an
	// error envelope.
	Notice string
}

// NewEmptySeries returns a series with the columns of the given kind and no rows.
func NewEmptySeries(symbol string, kind AssetKind) QuoteSeries {
	return QuoteSeries{
		Symbol:  symbol,
		Kind:    kind,
		Columns: ColumnsFor(kind),
		Quotes:  []Quote{},
	}
}

// Len returns the number of rows.
func (s QuoteSeries) Len() int {
	return len(s.Quotes)
}

// IsEmpty reports whether the series has no rows.
func (s QuoteSeries) IsEmpty() bool {
	return len(s.Quotes) == 0
}

// HasColumn reports whether the series carries the named column.
func (s QuoteSeries) HasColumn(name string) bool {
	return slices.Contains(s.Columns, name)
}

// First returns the earliest quote. It panics on an empty series.
func (s QuoteSeries) First() Quote {
	return s.Quotes[0]
}

// Last returns the latest quote. It panics on an empty series.
func (s QuoteSeries) Last() Quote {
	return s.Quotes[len(s.Quotes)-1]
}

// MinClose returns the lowest closing price, or 0 for an empty series.
func (s QuoteSeries) MinClose() float64 {
	if s.IsEmpty() {
		return 0
	}

	lowest := s.Quotes[0].Close
	for _, q := range s.Quotes[1:] {
		lowest = min(lowest, q.Close)
	}

	return lowest
}

// MaxClose returns the highest closing price, or 0 for an empty series.
func (s QuoteSeries) MaxClose() float64 {
	if s.IsEmpty() {
		return 0
	}

	highest := s.Quotes[0].Close
	for _, q := range s.Quotes[1:] {
		highest = max(highest, q.Close)
	}

	return highest
}

// Span returns the first and last dates of the series. Both are zero for an
// empty series.
func (s QuoteSeries) Span() (time.Time, time.Time) {
	if s.IsEmpty() {
		return time.Time{}, time.Time{}
	}

	return s.First().Date, s.Last().Date
}
