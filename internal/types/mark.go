package types

import "time"

type MarkShape string

const (
	MarkShapeCircle   MarkShape = "circle"
	MarkShapeSquare   MarkShape = "square"
	MarkShapeTriangle MarkShape = "triangle"
)

type MarkColor string

const (
	MarkColorRed    MarkColor = "red"
	MarkColorGreen  MarkColor = "green"
	MarkColorBlue   MarkColor = "blue"
	MarkColorYellow MarkColor = "yellow"
	MarkColorPurple MarkColor = "purple"
	MarkColorOrange MarkColor = "orange"
)

// Event is a dated global event used to annotate charts.
type Event struct {
	Name string
	Date time.Time
}

// Mark is a chart annotation placed at Date with the y value Price.
// Interpolated is set when the market was closed on Date and Price was
// derived from the neighbouring closes.
type Mark struct {
	Date         time.Time
	Price        float64
	Title        string
	Color        MarkColor
	Shape        MarkShape
	Interpolated bool
}
