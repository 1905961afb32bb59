package terminal

import (
	"context"
	"time"

	"github.com/rxtech-lab/argo-terminal/internal/directory"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"github.com/rxtech-lab/argo-terminal/pkg/marketdata"
	"gonum.org/v1/plot"
)

// SourceFactory builds market data sources for the loop.
type SourceFactory interface {
	// Load resolves args against provider and returns a source holding the symbol.
	Load(ctx context.Context, kind types.AssetKind, provider string, args marketdata.SourceArgs) (marketdata.Source, error)
	// Search returns a source of kind that can only Find.
	Search(kind types.AssetKind) (marketdata.Source, error)
}

// Renderer builds and saves charts.
type Renderer interface {
	Line(series types.QuoteSeries, withEvents bool) (*plot.Plot, error)
	Candle(series types.QuoteSeries) (*plot.Plot, error)
	Fundamentals(sheet types.BalanceSheet) ([]*plot.Plot, error)
	Save(p *plot.Plot, name string) (string, error)
	SaveStack(plots []*plot.Plot, name string) (string, error)
}

// AlphaVantageSources builds sources on one shared Alpha Vantage client.
// When the client could not be created, for instance without an API key,
// every operation that needs it returns that error while forex search keeps
// working from the currency directory.
type AlphaVantageSources struct {
	client    *marketdata.Client
	clientErr error
	quotes    marketdata.Resolver
	currency  marketdata.Resolver
}

// NewAlphaVantageSources wraps client, or the error that prevented creating it.
func NewAlphaVantageSources(client *marketdata.Client, clientErr error, dir *directory.Directory) *AlphaVantageSources {
	s := &AlphaVantageSources{
		client:    client,
		clientErr: clientErr,
		currency:  marketdata.NewDirectoryResolver(dir),
	}

	if client != nil {
		s.quotes = marketdata.NewQuoteResolver(client)
	}

	return s
}

func (s *AlphaVantageSources) resolver(kind types.AssetKind) marketdata.Resolver {
	if kind == types.AssetKindForex {
		return s.currency
	}

	return s.quotes
}

// Load implements SourceFactory.
func (s *AlphaVantageSources) Load(ctx context.Context, kind types.AssetKind, provider string, args marketdata.SourceArgs) (marketdata.Source, error) {
	if _, err := marketdata.GetProviderInfo(provider); err != nil {
		return nil, err
	}

	if s.client == nil {
		return nil, s.unavailable()
	}

	return marketdata.NewSource(ctx, kind, s.client, s.resolver(kind), args)
}

// Search implements SourceFactory.
func (s *AlphaVantageSources) Search(kind types.AssetKind) (marketdata.Source, error) {
	if s.client == nil && kind != types.AssetKindForex {
		return nil, s.unavailable()
	}

	return marketdata.NewSearchSource(kind, s.client, s.resolver(kind))
}

func (s *AlphaVantageSources) unavailable() error {
	if s.clientErr != nil {
		return s.clientErr
	}

	return errors.New(errors.ErrCodeMissingAPIKey, "market data client is not configured")
}

// dateRange returns the default plotting window: the 365 days up to today.
func dateRange(now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return end.AddDate(0, 0, -365), end
}
