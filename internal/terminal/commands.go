package terminal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rxtech-lab/argo-terminal/internal/chart"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"github.com/rxtech-lab/argo-terminal/pkg/marketdata"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
)

// Chart types accepted by --type.
const (
	ChartLine = "line"
	ChartOHLC = "ohlc"
)

func plotFlags() []cli.Flag {
	dateConfig := cli.TimestampConfig{Layouts: []string{time.DateOnly}, Timezone: time.UTC}

	return []cli.Flag{
		&cli.TimestampFlag{
			Name:    "startDate",
			Aliases: []string{"s"},
			Usage:   "first day in `YYYY-MM-DD` format, defaults to one year ago",
			Config:  dateConfig,
		},
		&cli.TimestampFlag{
			Name:    "endDate",
			Aliases: []string{"e"},
			Usage:   "last day in `YYYY-MM-DD` format, defaults to today",
			Config:  dateConfig,
		},
		&cli.StringFlag{
			Name:  "type",
			Value: ChartLine,
			Usage: fmt.Sprintf("chart type, %s or %s", ChartLine, ChartOHLC),
		},
		&cli.BoolFlag{
			Name:  "events",
			Value: true,
			Usage: "mark global events on a line chart, --events=false to leave them out",
		},
	}
}

func keywordFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "keyword",
		Aliases:  []string{"k"},
		Usage:    "search text",
		Required: true,
	}
}

func sourceFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "source",
		Value: string(marketdata.DefaultProvider),
		Usage: fmt.Sprintf("market data provider, one of %v", marketdata.GetSupportedProviders()),
	}
}

func (l *Loop) commonCommands() []*Command {
	return []*Command{
		{
			Name:    "help",
			Aliases: []string{"h"},
			Usage:   "list commands",
			Action: func(context.Context, *cli.Command) error {
				l.deps.Console.Table(l.registry.Help())

				return nil
			},
		},
		{
			Name:    "clear",
			Aliases: []string{"cls"},
			Usage:   "clear the screen",
			Action: func(context.Context, *cli.Command) error {
				l.deps.Console.Clear()

				return nil
			},
		},
		{
			Name:    "quit",
			Aliases: []string{"q"},
			Usage:   "leave this section",
			Action: func(context.Context, *cli.Command) error {
				l.state = StateTerminated

				return nil
			},
		},
	}
}

func (l *Loop) topCommands() *Registry {
	enter := func(section Section) cli.ActionFunc {
		return func(ctx context.Context, _ *cli.Command) error {
			l.deps.Console.Help("Entering %s section, type help to list commands and quit to return", section)

			return NewLoop(section, l.deps).Run(ctx)
		}
	}

	commands := []*Command{
		{Name: "stock", Aliases: []string{"st"}, Usage: "work with stock tickers", Action: enter(SectionStock)},
		{Name: "forex", Aliases: []string{"fx"}, Usage: "work with currency pairs", Action: enter(SectionForex)},
		{Name: "crypto", Aliases: []string{"cr"}, Usage: "work with digital currencies", Action: enter(SectionCrypto)},
		{
			Name:  "plot",
			Usage: "plot a stock ticker: plot --ticker IBM [--startDate --endDate --type line|ohlc --events=false]",
			Flags: func() []cli.Flag {
				return append([]cli.Flag{
					&cli.StringFlag{Name: "ticker", Aliases: []string{"t"}, Usage: "stock ticker", Required: true},
				}, plotFlags()...)
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				source, err := l.deps.Sources.Load(ctx, types.AssetKindStock, string(marketdata.DefaultProvider),
					marketdata.SourceArgs{Ticker: cmd.String("ticker")})
				if err != nil {
					return err
				}

				return l.plot(ctx, cmd, source)
			},
		},
		{
			Name:  "find",
			Usage: "search symbols: find --keyword tesco [--kind stock|forex|crypto]",
			Flags: func() []cli.Flag {
				return []cli.Flag{
					keywordFlag(),
					&cli.StringFlag{Name: "kind", Value: string(types.AssetKindStock), Usage: "asset kind to search"},
				}
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				kind := types.AssetKind(strings.ToLower(cmd.String("kind")))

				return l.find(ctx, kind, cmd.String("keyword"))
			},
		},
	}

	return NewRegistry(append(commands, l.commonCommands()...)...)
}

func (l *Loop) assetCommands() *Registry {
	kind := l.section.Kind()

	commands := []*Command{
		l.loadCommand(kind),
		{
			Name:    "find",
			Aliases: []string{"fi"},
			Usage:   "search symbols: find --keyword <text>",
			Flags:   func() []cli.Flag { return []cli.Flag{keywordFlag()} },
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return l.find(ctx, kind, cmd.String("keyword"))
			},
		},
		{
			Name:    "plotLine",
			Aliases: []string{"pl"},
			Usage:   "plot the loaded symbol: plotLine [--startDate --endDate --type line|ohlc --events=false]",
			Flags:   plotFlags,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				if l.active.IsNone() {
					l.deps.Console.Warn("%s not loaded. Use load command", loadHint(kind))

					return nil
				}

				return l.plot(ctx, cmd, l.active.Unwrap())
			},
		},
	}

	if kind == types.AssetKindStock {
		commands = append(commands, &Command{
			Name:    "fundamentals",
			Aliases: []string{"fd"},
			Usage:   "balance sheet of the loaded ticker",
			Action:  l.fundamentals,
		})
	}

	return NewRegistry(append(commands, l.commonCommands()...)...)
}

func loadHint(kind types.AssetKind) string {
	switch kind {
	case types.AssetKindForex:
		return "currency pair"
	case types.AssetKindCrypto:
		return "digital currency"
	default:
		return "ticker"
	}
}

func (l *Loop) loadCommand(kind types.AssetKind) *Command {
	c := &Command{
		Name:  "load",
		Usage: "load a symbol",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := marketdata.SourceArgs{
				Ticker: cmd.String("ticker"),
				From:   cmd.String("fromCurrency"),
				To:     cmd.String("toCurrency"),
				Coin:   cmd.String("symbol"),
				Market: cmd.String("market"),
			}

			source, err := l.deps.Sources.Load(ctx, kind, cmd.String("source"), args)
			if err != nil {
				return err
			}

			l.setActive(source)
			l.deps.Logger.Info("Loaded symbol", zap.String("symbol", source.Symbol()), zap.String("kind", string(kind)))
			l.deps.Console.Success("%s loaded", source.Symbol())

			return nil
		},
	}

	switch kind {
	case types.AssetKindForex:
		c.Usage = "load a currency pair: load --fromCurrency USD --toCurrency RUB"
		c.Flags = func() []cli.Flag {
			return []cli.Flag{
				&cli.StringFlag{Name: "fromCurrency", Aliases: []string{"f"}, Usage: "base currency code", Required: true},
				&cli.StringFlag{Name: "toCurrency", Aliases: []string{"t"}, Usage: "quote currency code", Required: true},
				sourceFlag(),
			}
		}
	case types.AssetKindCrypto:
		c.Usage = "load a digital currency: load --symbol BTC [--market USD]"
		c.Flags = func() []cli.Flag {
			return []cli.Flag{
				&cli.StringFlag{Name: "symbol", Aliases: []string{"s"}, Usage: "digital currency code", Required: true},
				&cli.StringFlag{Name: "market", Aliases: []string{"m"}, Usage: "quote currency", Value: marketdata.DefaultMarket},
				sourceFlag(),
			}
		}
	default:
		c.Usage = "load a stock ticker: load --ticker IBM"
		c.Flags = func() []cli.Flag {
			return []cli.Flag{
				&cli.StringFlag{Name: "ticker", Aliases: []string{"t"}, Usage: "stock ticker", Required: true},
				sourceFlag(),
			}
		}
	}

	return c
}

func (l *Loop) find(ctx context.Context, kind types.AssetKind, keyword string) error {
	source, err := l.deps.Sources.Search(kind)
	if err != nil {
		return err
	}

	table, err := source.Find(ctx, keyword)
	if err != nil {
		return err
	}

	l.deps.Console.Table(table)

	if table.IsEmpty() {
		l.deps.Console.Warn("no match for %q", keyword)
	}

	return nil
}

// plot loads the window selected by cmd's date flags and saves the chart.
func (l *Loop) plot(ctx context.Context, cmd *cli.Command, source marketdata.Source) error {
	chartType := strings.ToLower(cmd.String("type"))
	if chartType != ChartLine && chartType != ChartOHLC {
		return errors.Newf(errors.ErrCodeInvalidParameter, "unknown chart type %q, use %s or %s", chartType, ChartLine, ChartOHLC)
	}

	start, end := dateRange(l.deps.Now())
	if cmd.IsSet("startDate") {
		start = cmd.Timestamp("startDate")
	}

	if cmd.IsSet("endDate") {
		end = cmd.Timestamp("endDate")
	}

	series, err := source.LoadDaily(ctx, start, end)
	if err != nil {
		return err
	}

	if series.Notice != "" {
		l.deps.Console.Warn("%s: %s", series.Symbol, series.Notice)
	}

	var p *plot.Plot

	if chartType == ChartOHLC {
		p, err = l.deps.Renderer.Candle(series)
	} else {
		p, err = l.deps.Renderer.Line(series, cmd.Bool("events"))
	}

	if err != nil {
		return err
	}

	name := fmt.Sprintf("%s %s %s %s", series.Symbol, chartType, start.Format(time.DateOnly), end.Format(time.DateOnly))

	path, err := l.deps.Renderer.Save(p, name)
	if err != nil {
		return err
	}

	l.deps.Console.Success("%s %s chart, %d days, saved to %s", series.Symbol, chartType, series.Len(), path)

	return nil
}

func (l *Loop) fundamentals(ctx context.Context, _ *cli.Command) error {
	if l.active.IsNone() {
		l.deps.Console.Warn("%s not loaded. Use load command", loadHint(types.AssetKindStock))

		return nil
	}

	source, ok := l.active.Unwrap().(marketdata.FundamentalsSource)
	if !ok {
		return errors.Newf(errors.ErrCodeInvalidAssetKind, "%s has no balance sheet", l.active.Unwrap().Symbol())
	}

	sheet, err := source.BalanceSheet(ctx)
	if err != nil {
		return err
	}

	reports := sheet.Quarterly
	if len(reports) == 0 {
		reports = sheet.Annual
	}

	table := types.NewTable("fiscal", "total assets", "total liabilities", "equity", "liabilities/equity")
	for _, r := range reports {
		table.Rows = append(table.Rows, []string{
			r.FiscalLabel(),
			chart.HumanAmount(r.TotalAssets.InexactFloat64()),
			chart.HumanAmount(r.TotalLiabilities.InexactFloat64()),
			chart.HumanAmount(r.TotalShareholderEquity.InexactFloat64()),
			r.LiabilitiesToEquity().StringFixed(2),
		})
	}

	l.deps.Console.Title("%s balance sheet", sheet.Symbol)
	l.deps.Console.Table(table)

	plots, err := l.deps.Renderer.Fundamentals(sheet)
	if err != nil {
		return err
	}

	path, err := l.deps.Renderer.SaveStack(plots, sheet.Symbol+" fundamentals")
	if err != nil {
		return err
	}

	l.deps.Console.Success("fundamentals chart saved to %s", path)

	return nil
}
