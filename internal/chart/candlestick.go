package chart

import (
	"math"

	"github.com/rxtech-lab/argo-terminal/internal/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// candlesticks draws one OHLC candle per quote: a wick from low to high and a
// body from open to close, green when the close is at or above the open.
type candlesticks struct {
	quotes    []types.Quote
	bodyRatio float64
}

func newCandlesticks(quotes []types.Quote) *candlesticks {
	return &candlesticks{quotes: quotes, bodyRatio: 0.7}
}

// Plot implements plot.Plotter.
func (c *candlesticks) Plot(canvas draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&canvas)
	half := c.halfWidth(trX)

	for _, q := range c.quotes {
		clr := upColor
		if q.Close < q.Open {
			clr = downColor
		}

		x := trX(float64(q.Date.Unix()))
		wick := draw.LineStyle{Color: clr, Width: vg.Points(0.8)}
		canvas.StrokeLine2(wick, x, trY(q.Low), x, trY(q.High))

		top := trY(max(q.Open, q.Close))
		bottom := trY(min(q.Open, q.Close))

		if top-bottom < vg.Points(0.5) {
			canvas.StrokeLine2(wick, x-half, top, x+half, top)

			continue
		}

		canvas.FillPolygon(clr, []vg.Point{
			{X: x - half, Y: bottom},
			{X: x + half, Y: bottom},
			{X: x + half, Y: top},
			{X: x - half, Y: top},
		})
	}
}

// halfWidth is half the body width: a share of the narrowest gap between
// neighbouring candles.
func (c *candlesticks) halfWidth(trX func(float64) vg.Length) vg.Length {
	if len(c.quotes) < 2 {
		return vg.Points(3)
	}

	gap := vg.Length(math.Inf(1))
	for i := 1; i < len(c.quotes); i++ {
		d := trX(float64(c.quotes[i].Date.Unix())) - trX(float64(c.quotes[i-1].Date.Unix()))
		gap = min(gap, d)
	}

	return gap * vg.Length(c.bodyRatio) / 2
}

// DataRange implements plot.DataRanger.
func (c *candlesticks) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)

	for _, q := range c.quotes {
		x := float64(q.Date.Unix())
		xmin = min(xmin, x)
		xmax = max(xmax, x)
		ymin = min(ymin, q.Low)
		ymax = max(ymax, q.High)
	}

	return xmin, xmax, ymin, ymax
}
