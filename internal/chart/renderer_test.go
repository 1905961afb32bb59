package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

type RendererTestSuite struct {
	suite.Suite
	dir      string
	renderer *Renderer
}

func TestRendererSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}

func (suite *RendererTestSuite) SetupTest() {
	suite.dir = filepath.Join(suite.T().TempDir(), "charts")
	suite.renderer = NewRenderer(suite.dir, logger.NewNop(),
		WithSize(4*vg.Inch, 3*vg.Inch),
		WithEvents([]types.Event{{Name: "Inside", Date: time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)}}))
}

func series(n int, kind types.AssetKind) types.QuoteSeries {
	s := types.NewEmptySeries("USD/RUB", kind)
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i := range n {
		price := 90 + float64(i%7)
		s.Quotes = append(s.Quotes, types.Quote{
			Date:   start.AddDate(0, 0, i),
			Open:   price - 0.5,
			High:   price + 1,
			Low:    price - 1,
			Close:  price,
			Volume: optional.None[float64](),
		})
	}

	return s
}

func (suite *RendererTestSuite) TestLineRejectsEmptySeries() {
	empty := types.NewEmptySeries("IBM", types.AssetKindStock)
	empty.Notice = "Invalid API call"

	_, err := suite.renderer.Line(empty, false)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeEmptySeries))
	suite.Contains(err.Error(), "Invalid API call")
}

func (suite *RendererTestSuite) TestLineRejectsMissingClose() {
	s := series(5, types.AssetKindForex)
	s.Columns = []string{types.ColumnOpen, types.ColumnHigh}

	_, err := suite.renderer.Line(s, false)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingColumn))

	_, err = suite.renderer.Candle(s)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingColumn))
}

func (suite *RendererTestSuite) TestLineTitleAndTicks() {
	p, err := suite.renderer.Line(series(10, types.AssetKindForex), true)
	suite.Require().NoError(err)

	suite.Contains(p.Title.Text, "FOREX : USD/RUB")
	suite.Contains(p.Title.Text, "2024-01-01 to 2024-01-10")
	suite.Equal(plot.TimeTicks{Format: "2006-01-02"}, p.X.Tick.Marker)

	dense, err := suite.renderer.Line(series(DenseThreshold+1, types.AssetKindStock), false)
	suite.Require().NoError(err)
	suite.Equal(plot.TimeTicks{Format: "2006-01"}, dense.X.Tick.Marker)
	suite.Contains(dense.Title.Text, "TICKER : USD/RUB")
}

func (suite *RendererTestSuite) TestTickFormatThreshold() {
	suite.Equal("2006-01-02", TickFormat(DenseThreshold))
	suite.Equal("2006-01", TickFormat(DenseThreshold+1))
}

func (suite *RendererTestSuite) TestSaveLineAndCandle() {
	s := series(30, types.AssetKindForex)

	line, err := suite.renderer.Line(s, true)
	suite.Require().NoError(err)

	path, err := suite.renderer.Save(line, "USD/RUB line")
	suite.Require().NoError(err)
	suite.Equal(filepath.Join(suite.dir, "USD-RUB_line.png"), path)
	suite.fileNotEmpty(path)

	candle, err := suite.renderer.Candle(s)
	suite.Require().NoError(err)

	path, err = suite.renderer.Save(candle, "USD/RUB ohlc")
	suite.Require().NoError(err)
	suite.fileNotEmpty(path)
}

func (suite *RendererTestSuite) TestFundamentals() {
	report := func(year int, assets, liabilities, equity int64) types.BalanceSheetReport {
		return types.BalanceSheetReport{
			FiscalDateEnding:       time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
			Period:                 types.ReportPeriodAnnual,
			TotalAssets:            decimal.NewFromInt(assets),
			TotalLiabilities:       decimal.NewFromInt(liabilities),
			TotalShareholderEquity: decimal.NewFromInt(equity),
		}
	}

	sheet := types.BalanceSheet{
		Symbol: "IBM",
		Annual: []types.BalanceSheetReport{
			report(2022, 127_000_000_000, 105_000_000_000, 22_000_000_000),
			report(2023, 135_000_000_000, 112_000_000_000, 23_000_000_000),
		},
	}

	plots, err := suite.renderer.Fundamentals(sheet)
	suite.Require().NoError(err)
	suite.Require().Len(plots, 2)
	suite.Contains(plots[0].Title.Text, "Liabilities/Equity (2022 to 2023)")

	path, err := suite.renderer.SaveStack(plots, "IBM fundamentals")
	suite.Require().NoError(err)
	suite.fileNotEmpty(path)

	_, err = suite.renderer.Fundamentals(types.BalanceSheet{Symbol: "IBM"})
	suite.True(errors.HasCode(err, errors.ErrCodeEmptySeries))
}

func (suite *RendererTestSuite) TestHumanAmount() {
	suite.Equal("0", HumanAmount(0))
	suite.Equal("950", HumanAmount(950))
	suite.Equal("1.5K", HumanAmount(1500))
	suite.Equal("135.2B", HumanAmount(135_241_000_000))
	suite.Equal("-2M", HumanAmount(-2_000_000))
}

func (suite *RendererTestSuite) TestFileName() {
	suite.Equal("chart.png", FileName("  "))
	suite.Equal("BTC-USD_line.png", FileName("BTC/USD line"))
}

func (suite *RendererTestSuite) fileNotEmpty(path string) {
	info, err := os.Stat(path)
	suite.Require().NoError(err)
	suite.Positive(info.Size())
}
