package marketdata

import (
	"context"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"github.com/shopspring/decimal"
)

// StockSource loads TIME_SERIES_DAILY for one ticker.
type StockSource struct {
	dailyLoader
}

// NewStockSource returns a source for ticker. An empty ticker gives a source
// that can only search.
func NewStockSource(client *Client, resolver Resolver, ticker string) *StockSource {
	s := &StockSource{dailyLoader{
		client:   client,
		resolver: resolver,
		symbol:   strings.ToUpper(strings.TrimSpace(ticker)),
		kind:     types.AssetKindStock,
	}}

	s.request = func() seriesRequest {
		return seriesRequest{
			function: FunctionTimeSeriesDaily,
			params: url.Values{
				"symbol":     {s.symbol},
				"outputsize": {string(client.OutputSize())},
				"datatype":   {"json"},
			},
		}
	}

	return s
}

type balanceSheetReport struct {
	FiscalDateEnding       string `json:"fiscalDateEnding"`
	ReportedCurrency       string `json:"reportedCurrency"`
	TotalAssets            string `json:"totalAssets"`
	TotalLiabilities       string `json:"totalLiabilities"`
	TotalShareholderEquity string `json:"totalShareholderEquity"`
}

// BalanceSheet returns the quarterly and annual balance sheet reports of the
// ticker, each sorted ascending by fiscal date.
func (s *StockSource) BalanceSheet(ctx context.Context) (types.BalanceSheet, error) {
	if s.symbol == "" {
		return types.BalanceSheet{}, errors.New(errors.ErrCodeSymbolNotResolved, "no stock symbol loaded")
	}

	envelope, err := s.client.Query(ctx, FunctionBalanceSheet, url.Values{"symbol": {s.symbol}})
	if err != nil {
		return types.BalanceSheet{}, err
	}

	if notice, ok := envelope.Notice(); ok {
		return types.BalanceSheet{}, errors.New(errors.ErrCodeProviderError, notice.Message)
	}

	sheet := types.BalanceSheet{Symbol: s.symbol}

	for key, period := range map[string]types.ReportPeriod{
		"quarterlyReports": types.ReportPeriodQuarterly,
		"annualReports":    types.ReportPeriodAnnual,
	} {
		var raw []balanceSheetReport
		if _, err := envelope.Decode(key, &raw); err != nil {
			return types.BalanceSheet{}, err
		}

		reports, err := convertReports(raw, period)
		if err != nil {
			return types.BalanceSheet{}, err
		}

		if period == types.ReportPeriodQuarterly {
			sheet.Quarterly = reports
		} else {
			sheet.Annual = reports
		}
	}

	return sheet, nil
}

func convertReports(raw []balanceSheetReport, period types.ReportPeriod) ([]types.BalanceSheetReport, error) {
	reports := make([]types.BalanceSheetReport, 0, len(raw))

	for _, r := range raw {
		date, err := time.ParseInLocation(time.DateOnly, r.FiscalDateEnding, time.UTC)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "invalid fiscal date %q", r.FiscalDateEnding)
		}

		reports = append(reports, types.BalanceSheetReport{
			FiscalDateEnding:       date,
			Period:                 period,
			ReportedCurrency:       r.ReportedCurrency,
			TotalAssets:            reportedAmount(r.TotalAssets),
			TotalLiabilities:       reportedAmount(r.TotalLiabilities),
			TotalShareholderEquity: reportedAmount(r.TotalShareholderEquity),
		})
	}

	slices.SortFunc(reports, func(a, b types.BalanceSheetReport) int {
		return a.FiscalDateEnding.Compare(b.FiscalDateEnding)
	})

	return reports, nil
}

// reportedAmount parses a reported figure. Alpha Vantage writes "None" for
// figures a filing does not report; those become zero.
func reportedAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}

	return d
}
