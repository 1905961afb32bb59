package marketdata

import (
	"context"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"go.uber.org/zap"
)

// Source loads daily series for one resolved symbol of one asset class.
type Source interface {
	// LoadDaily returns the quotes dated within [start, end], ascending.
	// A provider error envelope yields an empty series, not an error.
	LoadDaily(ctx context.Context, start, end time.Time) (types.QuoteSeries, error)
	// Find searches the asset class for symbols similar to query.
	Find(ctx context.Context, query string) (types.Table, error)
	// CheckSymbolExists reports whether symbol is known to the asset class.
	CheckSymbolExists(ctx context.Context, symbol string) (bool, error)
	Symbol() string
	Kind() types.AssetKind
}

// FundamentalsSource is implemented by sources that can report balance sheets.
type FundamentalsSource interface {
	Source
	BalanceSheet(ctx context.Context) (types.BalanceSheet, error)
}

// LoadParams holds the date window of a LoadDaily call.
type LoadParams struct {
	Start time.Time `validate:"required"`
	End   time.Time `validate:"required,gtfield=Start"`
}

var paramsValidator = validator.New()

// Validate checks that the window is non-empty.
func (p LoadParams) Validate() error {
	if err := paramsValidator.Struct(p); err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidDateRange, err,
			"start date %s must be before end date %s", p.Start.Format(time.DateOnly), p.End.Format(time.DateOnly))
	}

	return nil
}

// seriesRequest is what distinguishes one asset class's daily query from another.
type seriesRequest struct {
	function Function
	params   url.Values
}

// dailyLoader implements the shared part of LoadDaily: precondition checks,
// the query, envelope handling, normalization and the quote table round trip.
type dailyLoader struct {
	client   *Client
	resolver Resolver
	symbol   string
	kind     types.AssetKind
	request  func() seriesRequest
}

func (l *dailyLoader) Symbol() string {
	return l.symbol
}

func (l *dailyLoader) Kind() types.AssetKind {
	return l.kind
}

func (l *dailyLoader) Find(ctx context.Context, query string) (types.Table, error) {
	return l.resolver.Find(ctx, query)
}

func (l *dailyLoader) CheckSymbolExists(ctx context.Context, symbol string) (bool, error) {
	return l.resolver.Exists(ctx, symbol)
}

func (l *dailyLoader) LoadDaily(ctx context.Context, start, end time.Time) (types.QuoteSeries, error) {
	if l.symbol == "" {
		return types.QuoteSeries{}, errors.Newf(errors.ErrCodeSymbolNotResolved, "no %s symbol loaded", l.kind)
	}

	params := LoadParams{Start: start, End: end}
	if err := params.Validate(); err != nil {
		return types.QuoteSeries{}, err
	}

	series := types.NewEmptySeries(l.symbol, l.kind)
	req := l.request()

	envelope, err := l.client.Query(ctx, req.function, req.params)
	if err != nil {
		return types.QuoteSeries{}, err
	}

	if notice, ok := envelope.Notice(); ok {
		fields := []zap.Field{zap.String("symbol", l.symbol), zap.String("message", notice.Message)}
		if notice.RateLimited {
			l.client.logger.Warn("Provider returned a notice instead of data", fields...)
		} else {
			l.client.logger.Info("Provider returned an error message", fields...)
		}

		series.Notice = notice.Message

		return series, nil
	}

	raw, err := envelope.TimeSeries()
	if err != nil {
		return types.QuoteSeries{}, err
	}

	quotes, err := normalizeSeries(raw, l.kind)
	if err != nil {
		return types.QuoteSeries{}, err
	}

	if err := l.client.quotes.Replace(ctx, l.symbol, quotes); err != nil {
		return types.QuoteSeries{}, err
	}

	window, err := l.client.quotes.Window(ctx, l.symbol, start, end)
	if err != nil {
		return types.QuoteSeries{}, err
	}

	series.Quotes = window

	l.client.logger.Debug("Loaded daily series",
		zap.String("symbol", l.symbol),
		zap.String("kind", string(l.kind)),
		zap.Int("fetched", len(quotes)),
		zap.Int("rows", len(window)))

	return series, nil
}
