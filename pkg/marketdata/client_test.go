package marketdata

import (
	"context"
	"net/url"
	"testing"

	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"github.com/rxtech-lab/argo-terminal/pkg/marketdata/table"
	"github.com/stretchr/testify/suite"
)

// ClientTestSuite is a test suite for the Client implementation
type ClientTestSuite struct {
	suite.Suite
	fake   *fakeAlphaVantage
	client *Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (suite *ClientTestSuite) SetupTest() {
	suite.fake = newFakeAlphaVantage(suite.T())
	suite.client = newTestClient(suite.T(), suite.fake.server.URL)
}

func (suite *ClientTestSuite) TestNewClientValidation() {
	quotes, err := table.New()
	suite.Require().NoError(err)
	defer quotes.Close()

	testCases := []struct {
		name   string
		config ClientConfig
		code   errors.ErrorCode
	}{
		{
			name:   "missing api key",
			config: ClientConfig{BaseURL: "https://www.alphavantage.co", OutputSize: OutputSizeFull},
			code:   errors.ErrCodeMissingAPIKey,
		},
		{
			name:   "blank api key",
			config: ClientConfig{APIKey: "  ", BaseURL: "https://www.alphavantage.co", OutputSize: OutputSizeFull},
			code:   errors.ErrCodeMissingAPIKey,
		},
		{
			name:   "invalid base url",
			config: ClientConfig{APIKey: "k", BaseURL: "not a url", OutputSize: OutputSizeFull},
			code:   errors.ErrCodeInvalidConfiguration,
		},
		{
			name:   "invalid output size",
			config: ClientConfig{APIKey: "k", BaseURL: "https://www.alphavantage.co", OutputSize: "huge"},
			code:   errors.ErrCodeInvalidConfiguration,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			client, err := NewClient(tc.config, quotes, logger.NewNop())
			suite.Nil(client)
			suite.Error(err)
			suite.True(errors.HasCode(err, tc.code), err.Error())
		})
	}
}

func (suite *ClientTestSuite) TestMissingAPIKeyIsFatal() {
	_, err := NewClient(ClientConfig{}, nil, nil)
	suite.True(errors.IsFatal(err))
}

func (suite *ClientTestSuite) TestQuerySendsFunctionAndKey() {
	suite.fake.bodies[FunctionGlobalQuote] = `{"Global Quote": {"01. symbol": "IBM"}}`

	envelope, err := suite.client.Query(context.Background(), FunctionGlobalQuote, url.Values{"symbol": {"IBM"}})
	suite.Require().NoError(err)
	suite.Contains(envelope, "Global Quote")

	suite.Equal("GLOBAL_QUOTE", suite.fake.lastQuery("function"))
	suite.Equal("IBM", suite.fake.lastQuery("symbol"))
	suite.Equal(testAPIKey, suite.fake.lastQuery("apikey"))
}

func (suite *ClientTestSuite) TestQueryNon200() {
	_, err := suite.client.Query(context.Background(), FunctionBalanceSheet, nil)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMarketDataFetchFailed))
}

func (suite *ClientTestSuite) TestQueryTransportFailure() {
	client := newTestClient(suite.T(), "http://127.0.0.1:1")

	_, err := client.Query(context.Background(), FunctionGlobalQuote, nil)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMarketDataFetchFailed))
}

func (suite *ClientTestSuite) TestQueryMalformedBody() {
	suite.fake.bodies[FunctionGlobalQuote] = `{"Global Quote":`

	_, err := suite.client.Query(context.Background(), FunctionGlobalQuote, nil)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMarketDataParseFailed))
}

func (suite *ClientTestSuite) TestEnvelopeNotice() {
	testCases := []struct {
		name        string
		envelope    Envelope
		found       bool
		rateLimited bool
	}{
		{"error message", Envelope{"Error Message": []byte(`"bad symbol"`)}, true, false},
		{"note", Envelope{"Note": []byte(`"slow down"`)}, true, true},
		{"information", Envelope{"Information": []byte(`"premium"`)}, true, true},
		{"data", Envelope{"Time Series (Daily)": []byte(`{}`)}, false, false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			notice, ok := tc.envelope.Notice()
			suite.Equal(tc.found, ok)
			suite.Equal(tc.rateLimited, notice.RateLimited)

			if ok {
				suite.NotEmpty(notice.Message)
			}
		})
	}
}
