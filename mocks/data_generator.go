package mocks

import (
	"math"
	"math/rand"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-terminal/internal/types"
)

// DataGenerator generates realistic daily quote series for tests.
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a new DataGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how a series is generated.
type GeneratorConfig struct {
	Symbol string
	Kind   types.AssetKind
	// StartDate is the first trading day
	StartDate time.Time
	// Days is the number of trading days to generate
	Days int
	// SkipWeekends leaves Saturdays and Sundays out, as stock and forex
	// markets do. Crypto trades every day.
	SkipWeekends bool
	InitialPrice float64
	// Volatility controls price movement (0.01 = 1% typical daily volatility)
	Volatility float64
	// Trend is the drift factor (-0.01 to 0.01 for bearish to bullish)
	Trend      float64
	VolumeBase float64
}

// DefaultConfig returns a one-year stock series configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Symbol:       "TEST",
		Kind:         types.AssetKindStock,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Days:         252,
		SkipWeekends: true,
		InitialPrice: 100.0,
		Volatility:   0.02,
		Trend:        0.0,
		VolumeBase:   1_000_000,
	}
}

// Generate creates a series following a geometric Brownian motion.
// Volume is only filled for kinds whose columns carry it.
func (g *DataGenerator) Generate(config GeneratorConfig) types.QuoteSeries {
	series := types.NewEmptySeries(config.Symbol, config.Kind)
	withVolume := series.HasColumn(types.ColumnVolume)

	currentPrice := config.InitialPrice
	day := config.StartDate

	for len(series.Quotes) < config.Days {
		if config.SkipWeekends && (day.Weekday() == time.Saturday || day.Weekday() == time.Sunday) {
			day = day.AddDate(0, 0, 1)

			continue
		}

		open := currentPrice

		// Box-Muller transform for a normal draw
		u1 := 1 - g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		closePrice := open * (1 + config.Volatility*z + config.Trend/float64(config.Days))
		if closePrice <= 0 {
			closePrice = open * 0.99
		}

		high := math.Max(open, closePrice) + math.Abs(g.rng.Float64()*config.Volatility*open*0.5)
		low := math.Min(open, closePrice) - math.Abs(g.rng.Float64()*config.Volatility*open*0.5)
		if low <= 0 {
			low = math.Min(open, closePrice) * 0.99
		}

		q := types.Quote{
			Date:   day,
			Open:   roundToDecimals(open, 4),
			High:   roundToDecimals(high, 4),
			Low:    roundToDecimals(low, 4),
			Close:  roundToDecimals(closePrice, 4),
			Volume: optional.None[float64](),
		}

		if withVolume {
			q.Volume = optional.Some(roundToDecimals(config.VolumeBase*(0.7+g.rng.Float64()*0.6), 0))
		}

		series.Quotes = append(series.Quotes, q)

		currentPrice = closePrice
		day = day.AddDate(0, 0, 1)
	}

	return series
}

// GenerateYear returns one year of weekday quotes for symbol.
func GenerateYear(symbol string, kind types.AssetKind) types.QuoteSeries {
	config := DefaultConfig()
	config.Symbol = symbol
	config.Kind = kind

	return NewDataGenerator(42).Generate(config)
}

// roundToDecimals rounds a float64 to the specified number of decimal places.
func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))

	return math.Round(val*pow) / pow
}
