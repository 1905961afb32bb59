package marketdata

import (
	"slices"

	"github.com/rxtech-lab/argo-terminal/pkg/errors"
)

// ProviderType identifies a market data provider accepted by --source.
type ProviderType string

const (
	ProviderAlphaVantage ProviderType = "av"
)

// DefaultProvider is used when --source is omitted.
const DefaultProvider = ProviderAlphaVantage

// ProviderInfo contains metadata about a market data provider.
type ProviderInfo struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	Description  string `json:"description"`
	RequiresAuth bool   `json:"requiresAuth"`
}

// providerRegistry holds metadata about all supported providers.
var providerRegistry = map[ProviderType]ProviderInfo{
	ProviderAlphaVantage: {
		Name:         string(ProviderAlphaVantage),
		DisplayName:  "Alpha Vantage",
		Description:  "Daily stock, forex and crypto series from the Alpha Vantage query API",
		RequiresAuth: true,
	},
}

// GetSupportedProviders returns a sorted list of all supported provider names.
func GetSupportedProviders() []string {
	providers := make([]string, 0, len(providerRegistry))
	for providerType := range providerRegistry {
		providers = append(providers, string(providerType))
	}

	slices.Sort(providers)

	return providers
}

// GetProviderInfo returns metadata for a specific provider.
func GetProviderInfo(providerName string) (ProviderInfo, error) {
	info, exists := providerRegistry[ProviderType(providerName)]
	if !exists {
		return ProviderInfo{}, errors.Newf(errors.ErrCodeUnknownSource,
			"unsupported source %q, supported sources: %v", providerName, GetSupportedProviders())
	}

	return info, nil
}
