package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rxtech-lab/argo-terminal/internal/version"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvAPIKey      = "ALPHA_VANTAGE_API_KEY"
	EnvBaseURL     = "ALPHA_VANTAGE_URL"
	EnvLogLevel    = "ARGO_LOG_LEVEL"
	EnvChartDir    = "ARGO_CHART_DIR"
	EnvHistoryFile = "ARGO_HISTORY_FILE"
)

// DefaultBaseURL is the Alpha Vantage endpoint root.
const DefaultBaseURL = "https://www.alphavantage.co"

// Config holds all terminal configuration.
type Config struct {
	Version      string             `yaml:"version"`
	AlphaVantage AlphaVantageConfig `yaml:"alpha_vantage"`
	Terminal     TerminalConfig     `yaml:"terminal"`
	Log          LogConfig          `yaml:"log"`
}

// AlphaVantageConfig configures the market data provider. The API key is not
// required here: its absence only becomes fatal when a client is constructed.
type AlphaVantageConfig struct {
	APIKey     string        `yaml:"api_key"`
	BaseURL    string        `yaml:"base_url" validate:"required,url"`
	OutputSize string        `yaml:"output_size" validate:"required,oneof=full compact"`
	Timeout    time.Duration `yaml:"timeout" validate:"gte=0"`
}

// TerminalConfig configures the interactive loop.
type TerminalConfig struct {
	HistoryFile  string `yaml:"history_file"`
	CurrencyList string `yaml:"currency_list"`
	ChartDir     string `yaml:"chart_dir" validate:"required"`
	Section      string `yaml:"section" validate:"omitempty,oneof=stock forex crypto"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string   `yaml:"level" validate:"oneof=debug info warn error"`
	OutputPaths []string `yaml:"output_paths"`
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		AlphaVantage: AlphaVantageConfig{
			BaseURL:    DefaultBaseURL,
			OutputSize: "full",
			Timeout:    30 * time.Second,
		},
		Terminal: TerminalConfig{
			HistoryFile: ".session_history",
			ChartDir:    "charts",
		},
		Log: LogConfig{
			Level:       "info",
			OutputPaths: []string{"stderr"},
		},
	}
}

// Load reads the optional YAML file at path, loads envFile into the process
// environment, applies environment overrides and validates the result.
// A missing envFile is not an error; a missing config file is only an error
// when path was given explicitly.
func Load(path string, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeConfigFileFailed, err, "read config %s", path)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(errors.ErrCodeConfigFileFailed, err, "parse config %s", path)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrCodeConfigFileFailed, err, "load env file %s", envFile)
		}
	}

	cfg.applyEnv()

	if err := version.CheckConfigCompatibility(version.GetVersion(), cfg.Version); err != nil {
		return nil, errors.Wrap(errors.ErrCodeVersionMismatch, "incompatible config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.AlphaVantage.APIKey = v
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		c.AlphaVantage.BaseURL = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}

	if v := os.Getenv(EnvChartDir); v != "" {
		c.Terminal.ChartDir = v
	}

	if v := os.Getenv(EnvHistoryFile); v != "" {
		c.Terminal.HistoryFile = v
	}
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid configuration", err)
	}

	return nil
}

// String renders the configuration with the API key redacted.
func (c *Config) String() string {
	redacted := *c
	if redacted.AlphaVantage.APIKey != "" {
		redacted.AlphaVantage.APIKey = "****"
	}

	out, err := yaml.Marshal(redacted)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}

	return string(out)
}
