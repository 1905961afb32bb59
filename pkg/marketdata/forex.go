package marketdata

import (
	"net/url"
	"strings"

	"github.com/rxtech-lab/argo-terminal/internal/types"
)

// ForexSource loads FX_DAILY for one currency pair. Its symbol is "FROM/TO".
type ForexSource struct {
	dailyLoader
	from string
	to   string
}

// NewForexSource returns a source for the pair from/to. Empty currencies give
// a source that can only search.
func NewForexSource(client *Client, resolver Resolver, from, to string) *ForexSource {
	s := &ForexSource{
		from: strings.ToUpper(strings.TrimSpace(from)),
		to:   strings.ToUpper(strings.TrimSpace(to)),
	}

	s.dailyLoader = dailyLoader{
		client:   client,
		resolver: resolver,
		kind:     types.AssetKindForex,
	}

	if s.from != "" && s.to != "" {
		s.symbol = s.from + "/" + s.to
	}

	s.request = func() seriesRequest {
		return seriesRequest{
			function: FunctionFXDaily,
			params: url.Values{
				"from_symbol": {s.from},
				"to_symbol":   {s.to},
				"outputsize":  {string(client.OutputSize())},
				"datatype":    {"json"},
			},
		}
	}

	return s
}

// Pair returns the base and quote currencies.
func (s *ForexSource) Pair() (string, string) {
	return s.from, s.to
}
