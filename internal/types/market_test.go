package types

import (
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"
)

type MarketTestSuite struct {
	suite.Suite
}

func TestMarketSuite(t *testing.T) {
	suite.Run(t, new(MarketTestSuite))
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func (suite *MarketTestSuite) TestColumnsFor() {
	suite.Equal([]string{"Open", "High", "Low", "Close"}, ColumnsFor(AssetKindForex))
	suite.Equal([]string{"Open", "High", "Low", "Close", "Volume"}, ColumnsFor(AssetKindStock))
	suite.Equal([]string{"Open", "High", "Low", "Close", "Volume"}, ColumnsFor(AssetKindCrypto))
}

func (suite *MarketTestSuite) TestNewEmptySeries() {
	series := NewEmptySeries("USD/RUB", AssetKindForex)
	suite.NotNil(series.Quotes)
	suite.True(series.IsEmpty())
	suite.Equal(0, series.Len())
	suite.True(series.HasColumn(ColumnClose))
	suite.False(series.HasColumn(ColumnVolume))

	first, last := series.Span()
	suite.True(first.IsZero())
	suite.True(last.IsZero())
	suite.Equal(0.0, series.MinClose())
	suite.Equal(0.0, series.MaxClose())
}

func (suite *MarketTestSuite) TestSeriesStatistics() {
	series := NewEmptySeries("AAPL", AssetKindStock)
	series.Quotes = []Quote{
		{Date: day(2), Close: 10, Volume: optional.Some(100.0)},
		{Date: day(3), Close: 7},
		{Date: day(4), Close: 12},
	}

	suite.Equal(3, series.Len())
	suite.Equal(7.0, series.MinClose())
	suite.Equal(12.0, series.MaxClose())
	suite.Equal(day(2), series.First().Date)
	suite.Equal(day(4), series.Last().Date)

	first, last := series.Span()
	suite.Equal(day(2), first)
	suite.Equal(day(4), last)

	suite.True(series.Quotes[0].Volume.IsSome())
	suite.True(series.Quotes[1].Volume.IsNone())
}

func (suite *MarketTestSuite) TestAssetKindLabel() {
	suite.Equal("TICKER", AssetKindStock.Label())
	suite.Equal("FOREX", AssetKindForex.Label())
	suite.Equal("CRYPTO", AssetKindCrypto.Label())
}
