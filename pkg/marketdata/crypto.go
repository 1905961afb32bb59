package marketdata

import (
	"net/url"
	"strings"

	"github.com/rxtech-lab/argo-terminal/internal/types"
)

// DefaultMarket is the quote currency of crypto series when none is given.
const DefaultMarket = "USD"

// CryptoSource loads DIGITAL_CURRENCY_DAILY for one coin priced in a market
// currency. Its symbol is "COIN/MARKET".
type CryptoSource struct {
	dailyLoader
	coin   string
	market string
}

// NewCryptoSource returns a source for coin priced in market. An empty market
// selects DefaultMarket; an empty coin gives a source that can only search.
func NewCryptoSource(client *Client, resolver Resolver, coin, market string) *CryptoSource {
	s := &CryptoSource{
		coin:   strings.ToUpper(strings.TrimSpace(coin)),
		market: strings.ToUpper(strings.TrimSpace(market)),
	}

	if s.market == "" {
		s.market = DefaultMarket
	}

	s.dailyLoader = dailyLoader{
		client:   client,
		resolver: resolver,
		kind:     types.AssetKindCrypto,
	}

	if s.coin != "" {
		s.symbol = s.coin + "/" + s.market
	}

	s.request = func() seriesRequest {
		return seriesRequest{
			function: FunctionDigitalCurrencyDaily,
			params: url.Values{
				"symbol": {s.coin},
				"market": {s.market},
			},
		}
	}

	return s
}

// Market returns the quote currency.
func (s *CryptoSource) Market() string {
	return s.market
}
