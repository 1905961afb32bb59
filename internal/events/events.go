// Package events holds the static table of dated global events and places
// them on a price series.
package events

import (
	"slices"
	"time"

	"github.com/rxtech-lab/argo-terminal/internal/types"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var global = []types.Event{
	{Name: "Black Monday", Date: day(1987, time.October, 19)},
	{Name: "Asian financial crisis", Date: day(1997, time.July, 2)},
	{Name: "Russian default", Date: day(1998, time.August, 17)},
	{Name: "Euro introduced", Date: day(1999, time.January, 1)},
	{Name: "Dot-com peak", Date: day(2000, time.March, 10)},
	{Name: "September 11 attacks", Date: day(2001, time.September, 11)},
	{Name: "Lehman Brothers bankruptcy", Date: day(2008, time.September, 15)},
	{Name: "Flash crash", Date: day(2010, time.May, 6)},
	{Name: "US credit downgrade", Date: day(2011, time.August, 5)},
	{Name: "Crimea annexation", Date: day(2014, time.March, 18)},
	{Name: "Swiss franc unpegged", Date: day(2015, time.January, 15)},
	{Name: "Brexit referendum", Date: day(2016, time.June, 23)},
	{Name: "COVID-19 pandemic declared", Date: day(2020, time.March, 11)},
	{Name: "Invasion of Ukraine", Date: day(2022, time.February, 24)},
	{Name: "SVB collapse", Date: day(2023, time.March, 10)},
	{Name: "Bitcoin ETF approval", Date: day(2024, time.January, 10)},
}

// Global returns a copy of the global event table ordered by date.
func Global() []types.Event {
	return slices.Clone(global)
}

// Annotate places every event dated within the series' own span on the
// closing price line. An event on a trading day takes that day's close; an
// event on a closed day takes the close interpolated in time between the
// neighbouring trading days. Each surviving event yields exactly one mark.
func Annotate(series types.QuoteSeries, events []types.Event) []types.Mark {
	if series.IsEmpty() {
		return nil
	}

	first, last := series.Span()

	var marks []types.Mark

	for _, ev := range events {
		at := truncateDay(ev.Date)
		if at.Before(first) || at.After(last) {
			continue
		}

		price, interpolated := closeAt(series.Quotes, at)

		marks = append(marks, types.Mark{
			Date:         at,
			Price:        price,
			Title:        ev.Name,
			Color:        types.MarkColorRed,
			Shape:        types.MarkShapeCircle,
			Interpolated: interpolated,
		})
	}

	slices.SortStableFunc(marks, func(a, b types.Mark) int {
		return a.Date.Compare(b.Date)
	})

	return marks
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// closeAt returns the close at t, which must lie within the quotes' span.
func closeAt(quotes []types.Quote, t time.Time) (float64, bool) {
	i, found := slices.BinarySearchFunc(quotes, t, func(q types.Quote, target time.Time) int {
		return q.Date.Compare(target)
	})
	if found {
		return quotes[i].Close, false
	}

	before, after := quotes[i-1], quotes[i]
	span := after.Date.Sub(before.Date).Seconds()
	frac := t.Sub(before.Date).Seconds() / span

	return before.Close + (after.Close-before.Close)*frac, true
}
