package marketdata

import (
	"testing"

	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ProviderRegistryTestSuite struct {
	suite.Suite
}

func TestProviderRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(ProviderRegistryTestSuite))
}

func (suite *ProviderRegistryTestSuite) TestGetSupportedProviders() {
	suite.Equal([]string{"av"}, GetSupportedProviders())
}

func (suite *ProviderRegistryTestSuite) TestGetProviderInfo_AlphaVantage() {
	info, err := GetProviderInfo("av")

	suite.NoError(err)
	suite.Equal("av", info.Name)
	suite.Equal("Alpha Vantage", info.DisplayName)
	suite.True(info.RequiresAuth)
	suite.NotEmpty(info.Description)
}

func (suite *ProviderRegistryTestSuite) TestGetProviderInfo_InvalidProvider() {
	for _, name := range []string{"yahoo", "AV", ""} {
		_, err := GetProviderInfo(name)

		suite.Error(err, name)
		suite.True(errors.HasCode(err, errors.ErrCodeUnknownSource))
		suite.Contains(err.Error(), "unsupported source")
	}
}

func (suite *ProviderRegistryTestSuite) TestDefaultProviderIsRegistered() {
	_, err := GetProviderInfo(string(DefaultProvider))
	suite.NoError(err)
}
