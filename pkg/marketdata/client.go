package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"github.com/rxtech-lab/argo-terminal/pkg/marketdata/table"
	"go.uber.org/zap"
)

// Function is an Alpha Vantage query function.
type Function string

const (
	FunctionTimeSeriesDaily      Function = "TIME_SERIES_DAILY"
	FunctionFXDaily              Function = "FX_DAILY"
	FunctionDigitalCurrencyDaily Function = "DIGITAL_CURRENCY_DAILY"
	FunctionGlobalQuote          Function = "GLOBAL_QUOTE"
	FunctionSymbolSearch         Function = "SYMBOL_SEARCH"
	FunctionBalanceSheet         Function = "BALANCE_SHEET"
)

// OutputSize selects how much history a time series query returns.
type OutputSize string

const (
	OutputSizeFull    OutputSize = "full"
	OutputSizeCompact OutputSize = "compact"
)

// ClientConfig holds the configuration for the market data client.
type ClientConfig struct {
	APIKey     string        `validate:"required"`
	BaseURL    string        `validate:"required,url"`
	OutputSize OutputSize    `validate:"required,oneof=full compact"`
	Timeout    time.Duration `validate:"gte=0"`
}

// Client wraps the Alpha Vantage query endpoint. Every Source shares one Client.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	validate   *validator.Validate
	quotes     *table.QuoteTable
	logger     *logger.Logger
}

// NewClient creates a new market data client. A missing API key is reported as
// ErrCodeMissingAPIKey before any request is made.
func NewClient(config ClientConfig, quotes *table.QuoteTable, log *logger.Logger) (*Client, error) {
	if strings.TrimSpace(config.APIKey) == "" {
		return nil, errors.New(errors.ErrCodeMissingAPIKey, "ALPHA_VANTAGE_API_KEY is not set")
	}

	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid client configuration", err)
	}

	if quotes == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "quote table is required")
	}

	if log == nil {
		log = logger.NewNop()
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
		validate:   validate,
		quotes:     quotes,
		logger:     log,
	}, nil
}

// Query issues one GET for function with params and decodes the JSON body.
// Provider error envelopes are returned as a successful Envelope; callers
// decide how to surface them.
func (c *Client) Query(ctx context.Context, function Function, params url.Values) (Envelope, error) {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}

	query.Set("function", string(function))
	query.Set("apikey", c.config.APIKey)

	endpoint := strings.TrimRight(c.config.BaseURL, "/") + "/query?" + query.Encode()

	c.logger.Debug("Querying Alpha Vantage",
		zap.String("function", string(function)),
		zap.String("url", strings.ReplaceAll(endpoint, url.QueryEscape(c.config.APIKey), "****")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMarketDataFetchFailed, "failed to build request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err, "%s request failed", function)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.ErrCodeMarketDataFetchFailed, "%s request failed with status %s", function, resp.Status)
	}

	var envelope Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "failed to decode %s response", function)
	}

	return envelope, nil
}

// OutputSize returns the configured history size.
func (c *Client) OutputSize() OutputSize {
	return c.config.OutputSize
}

// Quotes returns the session quote table.
func (c *Client) Quotes() *table.QuoteTable {
	return c.quotes
}

func (c *Client) String() string {
	return fmt.Sprintf("alphavantage(%s)", c.config.BaseURL)
}
