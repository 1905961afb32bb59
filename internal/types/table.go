package types

// Table is the uniform tabular result of a symbol search. Columns is always
// populated, so an empty result still describes its shape.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable returns an empty table with the given columns.
func NewTable(columns ...string) Table {
	return Table{
		Columns: columns,
		Rows:    [][]string{},
	}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// IsEmpty reports whether the table has no rows.
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// Column returns every value of the named column, or nil when the table has
// no such column.
func (t Table) Column(name string) []string {
	idx := -1

	for i, c := range t.Columns {
		if c == name {
			idx = i

			break
		}
	}

	if idx < 0 {
		return nil
	}

	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			values = append(values, row[idx])
		}
	}

	return values
}
