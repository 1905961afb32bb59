package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rxtech-lab/argo-terminal/internal/chart"
	"github.com/rxtech-lab/argo-terminal/internal/config"
	"github.com/rxtech-lab/argo-terminal/internal/directory"
	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"github.com/rxtech-lab/argo-terminal/internal/prompt"
	"github.com/rxtech-lab/argo-terminal/internal/terminal"
	"github.com/rxtech-lab/argo-terminal/internal/version"
	"github.com/rxtech-lab/argo-terminal/pkg/marketdata"
	"github.com/rxtech-lab/argo-terminal/pkg/marketdata/table"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// runAction wires the configuration, the market data client and the chart
// renderer into a command loop and runs it until quit or end of input.
func runAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"), cmd.String("env-file"))
	if err != nil {
		return err
	}

	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}

	if cmd.IsSet("chart-dir") {
		cfg.Terminal.ChartDir = cmd.String("chart-dir")
	}

	if cmd.IsSet("section") {
		cfg.Terminal.Section = cmd.String("section")
	}

	section, err := terminal.ParseSection(cfg.Terminal.Section)
	if err != nil {
		return err
	}

	log, err := logger.NewLoggerWithOptions(logger.Options{
		Level:       cfg.Log.Level,
		OutputPaths: cfg.Log.OutputPaths,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Debug("Loaded configuration", zap.Stringer("config", cfg))

	dir, err := directory.Load(cfg.Terminal.CurrencyList)
	if err != nil {
		return err
	}

	quotes, err := table.New()
	if err != nil {
		return err
	}
	defer quotes.Close()

	console := terminal.NewConsole(os.Stdout)

	// Without a key the terminal still starts; loads report the error.
	client, clientErr := marketdata.NewClient(marketdata.ClientConfig{
		APIKey:     cfg.AlphaVantage.APIKey,
		BaseURL:    cfg.AlphaVantage.BaseURL,
		OutputSize: marketdata.OutputSize(cfg.AlphaVantage.OutputSize),
		Timeout:    cfg.AlphaVantage.Timeout,
	}, quotes, log)
	if clientErr != nil {
		log.Warn("Market data client unavailable", zap.Error(clientErr))
		console.Warn("%v", clientErr)
	}

	history, err := prompt.LoadHistory(cfg.Terminal.HistoryFile)
	if err != nil {
		return err
	}

	deps := terminal.Deps{
		Console:  console,
		Reader:   prompt.New(os.Stdin, os.Stdout, history, log),
		Logger:   log,
		Sources:  terminal.NewAlphaVantageSources(client, clientErr, dir),
		Renderer: chart.NewRenderer(cfg.Terminal.ChartDir, log),
	}

	console.Title("Argo terminal %s", version.GetVersion())
	console.Help("Type help to list commands and quit to leave")

	return terminal.NewLoop(section, deps).Run(ctx)
}

func main() {
	cmd := &cli.Command{
		Name:    "argo",
		Usage:   "Interactive terminal for stock, forex and crypto market data",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Path to a .env file holding " + config.EnvAPIKey,
				Value: ".env",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "chart-dir",
				Usage: "Directory charts are written to",
			},
			&cli.StringFlag{
				Name:  "section",
				Usage: "Start in a section (stock, forex, crypto)",
			},
		},
		Action: runAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
