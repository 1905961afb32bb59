// Package directory holds the physical currency list used to validate and
// search forex symbols.
package directory

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
)

// MatchThreshold is the minimum similarity ratio, exclusive, for a currency
// to be reported by Find.
const MatchThreshold = 0.7

//go:embed physical_currency_list.csv
var embeddedList []byte

// Directory is the read-only set of known physical currencies.
type Directory struct {
	currencies []types.Currency
	codes      map[string]struct{}
}

// Load reads the currency list at path. An empty path selects the embedded list.
func Load(path string) (*Directory, error) {
	if path == "" {
		return Parse(bytes.NewReader(embeddedList))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDirectoryLoadFailed, err, "open currency list %s", path)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads a "currency code,currency name" CSV. Codes and names are upper-cased.
func Parse(r io.Reader) (*Directory, error) {
	var rows []types.Currency
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDirectoryLoadFailed, "parse currency list", err)
	}

	d := &Directory{
		currencies: make([]types.Currency, 0, len(rows)),
		codes:      make(map[string]struct{}, len(rows)),
	}

	for _, row := range rows {
		c := types.Currency{
			Code: strings.ToUpper(strings.TrimSpace(row.Code)),
			Name: strings.ToUpper(strings.TrimSpace(row.Name)),
		}
		if c.Code == "" {
			continue
		}

		d.currencies = append(d.currencies, c)
		d.codes[c.Code] = struct{}{}
	}

	return d, nil
}

// Len returns the number of currencies.
func (d *Directory) Len() int {
	return len(d.currencies)
}

// Codes returns every currency code in directory order.
func (d *Directory) Codes() []string {
	codes := make([]string, len(d.currencies))
	for i, c := range d.currencies {
		codes[i] = c.Code
	}

	return codes
}

// Contains reports whether code is a known currency, ignoring case.
func (d *Directory) Contains(code string) bool {
	_, ok := d.codes[strings.ToUpper(strings.TrimSpace(code))]

	return ok
}

type scored struct {
	index int
	ratio float64
}

// Find returns the currencies whose code or name is similar to query, so a
// name finds its currency even when no code resembles it. An
// entry is kept when its best ratio is strictly above MatchThreshold. Results
// are ranked by ratio, ties keep directory order. No match yields an empty
// table that still carries the currency columns.
func (d *Directory) Find(query string) types.Table {
	table := types.NewTable(types.CurrencyColumns...)

	needle := strings.ToUpper(strings.TrimSpace(query))
	if needle == "" {
		return table
	}

	var hits []scored

	for i, c := range d.currencies {
		best := max(Ratio(needle, c.Code), Ratio(needle, c.Name))
		if best > MatchThreshold {
			hits = append(hits, scored{index: i, ratio: best})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		switch {
		case a.ratio > b.ratio:
			return -1
		case a.ratio < b.ratio:
			return 1
		default:
			return 0
		}
	})

	for _, h := range hits {
		table.Rows = append(table.Rows, d.currencies[h.index].Row())
	}

	return table
}

// Ratio returns the character-level SequenceMatcher similarity of a and b in [0, 1].
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}
