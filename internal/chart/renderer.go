// Package chart renders quote series and balance sheets to PNG files with gonum/plot.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/rxtech-lab/argo-terminal/internal/events"
	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DenseThreshold is the row count above which time ticks switch to months.
const DenseThreshold = 200

const (
	dayFormat   = "2006-01-02"
	monthFormat = "2006-01"
)

var (
	closeColor  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	upColor     = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	downColor   = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	assetsColor = color.RGBA{R: 148, G: 103, B: 189, A: 255}
	markColors  = map[types.MarkColor]color.Color{
		types.MarkColorRed:    color.RGBA{R: 214, G: 39, B: 40, A: 255},
		types.MarkColorGreen:  upColor,
		types.MarkColorBlue:   closeColor,
		types.MarkColorYellow: color.RGBA{R: 188, G: 189, B: 34, A: 255},
		types.MarkColorPurple: assetsColor,
		types.MarkColorOrange: color.RGBA{R: 255, G: 127, B: 14, A: 255},
	}
)

// Renderer builds charts and writes them under a chart directory.
type Renderer struct {
	dir    string
	width  vg.Length
	height vg.Length
	events []types.Event
	logger *logger.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSize sets the image size.
func WithSize(width, height vg.Length) Option {
	return func(r *Renderer) {
		r.width = width
		r.height = height
	}
}

// WithEvents replaces the global event table used for annotations.
func WithEvents(evs []types.Event) Option {
	return func(r *Renderer) {
		r.events = evs
	}
}

// NewRenderer returns a renderer writing into dir.
func NewRenderer(dir string, log *logger.Logger, opts ...Option) *Renderer {
	if log == nil {
		log = logger.NewNop()
	}

	r := &Renderer{
		dir:    dir,
		width:  12 * vg.Inch,
		height: 6 * vg.Inch,
		events: events.Global(),
		logger: log,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Dir returns the directory charts are written to.
func (r *Renderer) Dir() string {
	return r.dir
}

func requireColumns(series types.QuoteSeries, columns ...string) error {
	for _, column := range columns {
		if !series.HasColumn(column) {
			return errors.Newf(errors.ErrCodeMissingColumn, "%s has no %s column", series.Symbol, column)
		}
	}

	if series.IsEmpty() {
		msg := fmt.Sprintf("%s has no rows to plot", series.Symbol)
		if series.Notice != "" {
			msg += ": " + series.Notice
		}

		return errors.New(errors.ErrCodeEmptySeries, msg)
	}

	return nil
}

// Line plots the closing price of series. With withEvents, the global events
// inside the series span are drawn as labelled markers on the line.
func (r *Renderer) Line(series types.QuoteSeries, withEvents bool) (*plot.Plot, error) {
	if err := requireColumns(series, types.ColumnClose); err != nil {
		return nil, err
	}

	p := r.newSeriesPlot(series)

	closes := make(plotter.XYs, series.Len())
	for i, q := range series.Quotes {
		closes[i] = plotter.XY{X: float64(q.Date.Unix()), Y: q.Close}
	}

	line, err := plotter.NewLine(closes)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, "failed to build close line", err)
	}

	line.LineStyle.Color = closeColor
	line.LineStyle.Width = vg.Points(1.2)

	p.Add(plotter.NewGrid(), line)
	p.Legend.Add(types.ColumnClose, line)

	if withEvents {
		marks := events.Annotate(series, r.events)
		if err := addMarks(p, marks); err != nil {
			return nil, err
		}

		r.logger.Debug("Annotated chart", zap.String("symbol", series.Symbol), zap.Int("marks", len(marks)))
	}

	return p, nil
}

// Candle plots series as OHLC candlesticks.
func (r *Renderer) Candle(series types.QuoteSeries) (*plot.Plot, error) {
	if err := requireColumns(series, types.ColumnOpen, types.ColumnHigh, types.ColumnLow, types.ColumnClose); err != nil {
		return nil, err
	}

	p := r.newSeriesPlot(series)
	p.Add(plotter.NewGrid(), newCandlesticks(series.Quotes))

	return p, nil
}

func (r *Renderer) newSeriesPlot(series types.QuoteSeries) *plot.Plot {
	p := plot.New()

	first, last := series.Span()
	p.Title.Text = fmt.Sprintf("%s : %s\n%s to %s   Min %.4g   Max %.4g   Last %.4g",
		series.Kind.Label(), series.Symbol,
		first.Format(dayFormat), last.Format(dayFormat),
		series.MinClose(), series.MaxClose(), series.Last().Close)
	p.Y.Label.Text = "Price"
	p.X.Tick.Marker = plot.TimeTicks{Format: TickFormat(series.Len())}
	p.Legend.Top = true

	return p
}

// TickFormat returns the time tick layout for a series of n rows.
func TickFormat(n int) string {
	if n > DenseThreshold {
		return monthFormat
	}

	return dayFormat
}

func addMarks(p *plot.Plot, marks []types.Mark) error {
	if len(marks) == 0 {
		return nil
	}

	xys := make(plotter.XYs, len(marks))
	labels := make([]string, len(marks))

	for i, m := range marks {
		xys[i] = plotter.XY{X: float64(m.Date.Unix()), Y: m.Price}
		labels[i] = m.Title
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, "failed to build event markers", err)
	}

	scatter.GlyphStyle.Shape = glyphFor(marks[0].Shape)
	scatter.GlyphStyle.Radius = vg.Points(4)
	scatter.GlyphStyle.Color = markColors[marks[0].Color]

	text, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, "failed to build event labels", err)
	}

	text.Offset = vg.Point{X: vg.Points(5), Y: vg.Points(5)}

	p.Add(scatter, text)
	p.Legend.Add("Events", scatter)

	return nil
}

func glyphFor(shape types.MarkShape) draw.GlyphDrawer {
	switch shape {
	case types.MarkShapeSquare:
		return draw.BoxGlyph{}
	case types.MarkShapeTriangle:
		return draw.TriangleGlyph{}
	default:
		return draw.CircleGlyph{}
	}
}

// Save writes p as a PNG named after name under the chart directory and
// returns the file path.
func (r *Renderer) Save(p *plot.Plot, name string) (string, error) {
	path, err := r.prepare(name)
	if err != nil {
		return "", err
	}

	if err := p.Save(r.width, r.height, path); err != nil {
		return "", errors.Wrapf(errors.ErrCodeRenderFailed, err, "failed to write %s", path)
	}

	r.logger.Info("Chart saved", zap.String("path", path))

	return path, nil
}

// SaveStack writes plots as vertically stacked panels sharing one image.
func (r *Renderer) SaveStack(plots []*plot.Plot, name string) (string, error) {
	if len(plots) == 0 {
		return "", errors.New(errors.ErrCodeRenderFailed, "nothing to save")
	}

	path, err := r.prepare(name)
	if err != nil {
		return "", err
	}

	img := vgimg.New(r.width, r.height*vg.Length(len(plots))/2)
	dc := draw.New(img)

	grid := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		grid[i] = []*plot.Plot{p}
	}

	canvases := plot.Align(grid, draw.Tiles{Rows: len(plots), Cols: 1}, dc)
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(errors.ErrCodeRenderFailed, err, "failed to create %s", path)
	}
	defer f.Close()

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return "", errors.Wrapf(errors.ErrCodeRenderFailed, err, "failed to write %s", path)
	}

	r.logger.Info("Chart saved", zap.String("path", path))

	return path, nil
}

func (r *Renderer) prepare(name string) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", errors.Wrapf(errors.ErrCodeRenderFailed, err, "failed to create chart directory %s", r.dir)
	}

	return filepath.Join(r.dir, FileName(name)), nil
}

// FileName turns a chart name such as "USD/RUB line" into "USD-RUB_line.png".
func FileName(name string) string {
	cleaned := strings.Map(func(c rune) rune {
		switch {
		case c == '/' || c == '\\' || c == ':':
			return '-'
		case c == ' ':
			return '_'
		default:
			return c
		}
	}, strings.TrimSpace(name))

	if cleaned == "" {
		cleaned = "chart"
	}

	return cleaned + ".png"
}
