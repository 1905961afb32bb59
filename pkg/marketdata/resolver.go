package marketdata

import (
	"context"
	"net/url"
	"strings"

	"github.com/rxtech-lab/argo-terminal/internal/directory"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"go.uber.org/zap"
)

// Resolver validates and searches symbols of one asset class.
type Resolver interface {
	Exists(ctx context.Context, symbol string) (bool, error)
	Find(ctx context.Context, query string) (types.Table, error)
}

// QuoteResolver resolves stock and crypto symbols against the provider.
type QuoteResolver struct {
	client *Client
}

// NewQuoteResolver returns a resolver backed by GLOBAL_QUOTE and SYMBOL_SEARCH.
func NewQuoteResolver(client *Client) *QuoteResolver {
	return &QuoteResolver{client: client}
}

// Exists reports whether GLOBAL_QUOTE returns a non-empty quote for symbol.
// A rate limit notice says nothing about the symbol and is returned as an
// ErrCodeProviderError.
func (r *QuoteResolver) Exists(ctx context.Context, symbol string) (bool, error) {
	envelope, err := r.client.Query(ctx, FunctionGlobalQuote, url.Values{"symbol": {strings.TrimSpace(symbol)}})
	if err != nil {
		return false, err
	}

	if notice, ok := envelope.Notice(); ok {
		r.client.logger.Warn("Symbol check returned a notice",
			zap.String("symbol", symbol),
			zap.String("message", notice.Message))

		if notice.RateLimited {
			return false, errors.New(errors.ErrCodeProviderError, notice.Message)
		}

		return false, nil
	}

	var quote map[string]string
	if _, err := envelope.Decode("Global Quote", &quote); err != nil {
		return false, err
	}

	return len(quote) > 0, nil
}

// Find returns the provider's best matches for query. No match yields an empty
// table with the symbol search columns; a rate limit notice is an error.
func (r *QuoteResolver) Find(ctx context.Context, query string) (types.Table, error) {
	table := types.NewTable(types.SymbolMatchColumns...)

	envelope, err := r.client.Query(ctx, FunctionSymbolSearch, url.Values{"keywords": {strings.TrimSpace(query)}})
	if err != nil {
		return types.Table{}, err
	}

	if notice, ok := envelope.Notice(); ok {
		r.client.logger.Warn("Symbol search returned a notice",
			zap.String("query", query),
			zap.String("message", notice.Message))

		if notice.RateLimited {
			return types.Table{}, errors.New(errors.ErrCodeProviderError, notice.Message)
		}

		return table, nil
	}

	var matches []types.SymbolMatch
	if _, err := envelope.Decode("bestMatches", &matches); err != nil {
		return types.Table{}, err
	}

	for _, m := range matches {
		table.Rows = append(table.Rows, m.Row())
	}

	return table, nil
}

// DirectoryResolver resolves currency codes against the physical currency
// directory. It never touches the network.
type DirectoryResolver struct {
	dir *directory.Directory
}

// NewDirectoryResolver returns a resolver backed by dir.
func NewDirectoryResolver(dir *directory.Directory) *DirectoryResolver {
	return &DirectoryResolver{dir: dir}
}

// Exists reports whether code is a known physical currency.
func (r *DirectoryResolver) Exists(_ context.Context, code string) (bool, error) {
	return r.dir.Contains(code), nil
}

// Find fuzzy-matches query against currency codes and names.
func (r *DirectoryResolver) Find(_ context.Context, query string) (types.Table, error) {
	return r.dir.Find(query), nil
}
