package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTableKeepsColumns(t *testing.T) {
	table := NewTable(CurrencyColumns...)

	assert.Equal(t, []string{"currency code", "currency name"}, table.Columns)
	assert.NotNil(t, table.Rows)
	assert.True(t, table.IsEmpty())
	assert.Equal(t, 0, table.Len())
}

func TestTableColumn(t *testing.T) {
	table := NewTable(SymbolMatchColumns...)
	table.Rows = append(table.Rows,
		SymbolMatch{Symbol: "AAPL", Name: "Apple Inc"}.Row(),
		SymbolMatch{Symbol: "APLE", Name: "Apple Hospitality REIT Inc"}.Row(),
	)

	assert.Equal(t, []string{"AAPL", "APLE"}, table.Column("Symbol"))
	assert.Equal(t, []string{"Apple Inc", "Apple Hospitality REIT Inc"}, table.Column("Name"))
	assert.Nil(t, table.Column("Missing"))
}

func TestCurrencyRow(t *testing.T) {
	assert.Equal(t, []string{"USD", "UNITED STATES DOLLAR"}, Currency{Code: "USD", Name: "UNITED STATES DOLLAR"}.Row())
}
