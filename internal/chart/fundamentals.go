package chart

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Fundamentals plots the liabilities to equity ratio above total assets.
// Quarterly reports are used when present, annual ones otherwise.
func (r *Renderer) Fundamentals(sheet types.BalanceSheet) ([]*plot.Plot, error) {
	reports := sheet.Quarterly
	if len(reports) == 0 {
		reports = sheet.Annual
	}

	if len(reports) == 0 {
		return nil, errors.Newf(errors.ErrCodeEmptySeries, "%s has no balance sheet reports", sheet.Symbol)
	}

	ratio := make(plotter.XYs, len(reports))
	assets := make(plotter.XYs, len(reports))

	for i, rep := range reports {
		x := float64(rep.FiscalDateEnding.Unix())
		ratio[i] = plotter.XY{X: x, Y: rep.LiabilitiesToEquity().InexactFloat64()}
		assets[i] = plotter.XY{X: x, Y: rep.TotalAssets.InexactFloat64()}
	}

	first, last := reports[0], reports[len(reports)-1]
	span := fmt.Sprintf("%s to %s", first.FiscalLabel(), last.FiscalLabel())

	ratioPlot, err := fundamentalsPanel(ratio, fmt.Sprintf("%s : Liabilities/Equity (%s)", sheet.Symbol, span), "Ratio", closeColor)
	if err != nil {
		return nil, err
	}

	assetsPlot, err := fundamentalsPanel(assets, fmt.Sprintf("%s : Total Assets (%s)", sheet.Symbol, span), "Assets", assetsColor)
	if err != nil {
		return nil, err
	}

	assetsPlot.Y.Tick.Marker = humanTicks{}

	return []*plot.Plot{ratioPlot, assetsPlot}, nil
}

func fundamentalsPanel(xys plotter.XYs, title, ylabel string, clr color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel
	p.X.Tick.Marker = plot.TimeTicks{Format: dayFormat}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, "failed to build fundamentals line", err)
	}

	line.LineStyle.Color = clr
	line.LineStyle.Width = vg.Points(1.2)
	points.GlyphStyle.Color = clr

	p.Add(plotter.NewGrid(), line, points)

	return p, nil
}

// humanTicks labels large amounts as 1.2K, 3.4M, 5.6B or 7.8T.
type humanTicks struct{}

// Ticks implements plot.Ticker.
func (humanTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = HumanAmount(ticks[i].Value)
		}
	}

	return ticks
}

// HumanAmount formats v with a thousands suffix and at most one decimal.
func HumanAmount(v float64) string {
	suffixes := []string{"", "K", "M", "B", "T"}

	magnitude := 0
	for math.Abs(v) >= 1000 && magnitude < len(suffixes)-1 {
		v /= 1000
		magnitude++
	}

	out := strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")

	return out + suffixes[magnitude]
}
