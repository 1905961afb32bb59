package marketdata

import (
	"context"
	"strings"

	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
)

// maxCandidates bounds the close matches reported for an unknown symbol.
const maxCandidates = 5

// SourceArgs names the symbol a new source should load. Only the fields of
// the requested asset kind are read.
type SourceArgs struct {
	Ticker string
	From   string
	To     string
	Coin   string
	Market string
}

// NewSource resolves args with resolver and builds the source of kind. It
// fails without building anything when the symbol is unknown.
func NewSource(ctx context.Context, kind types.AssetKind, client *Client, resolver Resolver, args SourceArgs) (Source, error) {
	switch kind {
	case types.AssetKindStock:
		if err := requireSymbol(ctx, resolver, args.Ticker, "ticker"); err != nil {
			return nil, err
		}

		return NewStockSource(client, resolver, args.Ticker), nil
	case types.AssetKindForex:
		for _, code := range []struct{ value, name string }{{args.From, "fromCurrency"}, {args.To, "toCurrency"}} {
			if err := requireSymbol(ctx, resolver, code.value, code.name); err != nil {
				return nil, err
			}
		}

		return NewForexSource(client, resolver, args.From, args.To), nil
	case types.AssetKindCrypto:
		if err := requireSymbol(ctx, resolver, args.Coin, "symbol"); err != nil {
			return nil, err
		}

		return NewCryptoSource(client, resolver, args.Coin, args.Market), nil
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidAssetKind, "unknown asset kind %q", kind)
	}
}

// NewSearchSource builds a source of kind with no symbol, usable only for Find.
func NewSearchSource(kind types.AssetKind, client *Client, resolver Resolver) (Source, error) {
	switch kind {
	case types.AssetKindStock:
		return NewStockSource(client, resolver, ""), nil
	case types.AssetKindForex:
		return NewForexSource(client, resolver, "", ""), nil
	case types.AssetKindCrypto:
		return NewCryptoSource(client, resolver, "", ""), nil
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidAssetKind, "unknown asset kind %q", kind)
	}
}

func requireSymbol(ctx context.Context, resolver Resolver, symbol, flag string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return errors.Newf(errors.ErrCodeMissingParameter, "--%s is required", flag)
	}

	exists, err := resolver.Exists(ctx, symbol)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	return errors.NewSymbolNotFoundError(symbol, candidates(ctx, resolver, symbol))
}

// candidates lists the first column of the resolver's matches for symbol.
// Search failures only cost the hint, so they are ignored.
func candidates(ctx context.Context, resolver Resolver, symbol string) []string {
	matches, err := resolver.Find(ctx, symbol)
	if err != nil || matches.IsEmpty() {
		return nil
	}

	names := matches.Column(matches.Columns[0])
	if len(names) > maxCandidates {
		names = names[:maxCandidates]
	}

	return names
}
