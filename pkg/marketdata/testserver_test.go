package marketdata

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"github.com/rxtech-lab/argo-terminal/pkg/marketdata/table"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

// fakeAlphaVantage serves canned bodies keyed by the function query parameter.
type fakeAlphaVantage struct {
	server   *httptest.Server
	bodies   map[Function]string
	requests atomic.Int32
	last     atomic.Pointer[http.Request]
}

func newFakeAlphaVantage(t *testing.T) *fakeAlphaVantage {
	t.Helper()

	fake := &fakeAlphaVantage{bodies: map[Function]string{}}
	fake.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.requests.Add(1)
		fake.last.Store(r)

		if r.URL.Path != "/query" || r.URL.Query().Get("apikey") != testAPIKey {
			w.WriteHeader(http.StatusForbidden)

			return
		}

		body, ok := fake.bodies[Function(r.URL.Query().Get("function"))]
		if !ok {
			w.WriteHeader(http.StatusNotFound)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))

	t.Cleanup(fake.server.Close)

	return fake
}

func (f *fakeAlphaVantage) lastQuery(key string) string {
	r := f.last.Load()
	if r == nil {
		return ""
	}

	return r.URL.Query().Get(key)
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	quotes, err := table.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = quotes.Close() })

	client, err := NewClient(ClientConfig{
		APIKey:     testAPIKey,
		BaseURL:    baseURL,
		OutputSize: OutputSizeCompact,
	}, quotes, logger.NewNop())
	require.NoError(t, err)

	return client
}

const stockDailyBody = `{
  "Meta Data": {"1. Information": "Daily Prices", "2. Symbol": "IBM"},
  "Time Series (Daily)": {
    "2024-03-05": {"1. open": "190.0", "2. high": "192.0", "3. low": "189.0", "4. close": "191.5", "5. volume": "4000"},
    "2024-03-01": {"1. open": "185.0", "2. high": "187.0", "3. low": "184.0", "4. close": "186.0", "5. volume": "1000"},
    "2024-03-04": {"1. open": "188.0", "2. high": "190.0", "3. low": "187.0", "4. close": "189.0", "5. volume": "3000"},
    "2024-02-28": {"1. open": "180.0", "2. high": "182.0", "3. low": "179.0", "4. close": "181.0", "5. volume": "500"}
  }
}`

const forexDailyBody = `{
  "Meta Data": {"1. Information": "Forex Daily Prices", "2. From Symbol": "USD", "3. To Symbol": "RUB"},
  "Time Series FX (Daily)": {
    "2024-03-04": {"1. open": "91.10", "2. high": "91.80", "3. low": "90.90", "4. close": "91.50"},
    "2024-03-01": {"1. open": "90.50", "2. high": "91.20", "3. low": "90.10", "4. close": "91.00"}
  }
}`

const cryptoDailyBody = `{
  "Meta Data": {"2. Digital Currency Code": "BTC", "4. Market Code": "EUR"},
  "Time Series (Digital Currency Daily)": {
    "2024-03-02": {
      "1a. open (EUR)": "56000.0", "1b. open (USD)": "61000.0",
      "2a. high (EUR)": "57000.0", "2b. high (USD)": "62000.0",
      "3a. low (EUR)": "55000.0", "3b. low (USD)": "60000.0",
      "4a. close (EUR)": "56500.0", "4b. close (USD)": "61500.0",
      "5. volume": "1234.5", "6. market cap (USD)": "1234.5"
    },
    "2024-03-01": {
      "1a. open (EUR)": "55000.0", "1b. open (USD)": "60000.0",
      "2a. high (EUR)": "56000.0", "2b. high (USD)": "61000.0",
      "3a. low (EUR)": "54000.0", "3b. low (USD)": "59000.0",
      "4a. close (EUR)": "55500.0", "4b. close (USD)": "60500.0",
      "5. volume": "999.0", "6. market cap (USD)": "999.0"
    }
  }
}`

const errorMessageBody = `{"Error Message": "Invalid API call. Please retry or visit the documentation for TIME_SERIES_DAILY."}`

const rateLimitBody = `{"Note": "Thank you for using Alpha Vantage! Our standard API call frequency is 5 calls per minute."}`
