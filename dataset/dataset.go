package dataset

import (
	"sort"

	"github.com/google/uuid"
)

// ============================================================================
// DATASET — Untyped tabular data as delivered by an external parser
// ============================================================================
// A Dataset owns nothing about types: every cell is a raw string and the
// behavioral role of a column (measure, grouping key, axis, region key) is
// derived fresh by ClassifyColumns. The ID ties derived structures (role
// maps, selections) to one load; a re-upload produces a new Dataset with a
// new ID, never a mutation of the old one.
// ============================================================================

// Row is one record: column name → raw cell value. A missing cell is the
// empty string.
type Row map[string]string

// Dataset is an ordered sequence of rows plus the ordered column list.
type Dataset struct {
	ID      uuid.UUID
	Columns []string
	Rows    []Row
}

// New builds a Dataset from an ordered column list and rows, assigning a
// fresh identity. When columns is empty the column set is derived from the
// keys of the first row, sorted for determinism — parsers that know the
// header order should always pass it explicitly.
func New(columns []string, rows []Row) *Dataset {
	if len(columns) == 0 && len(rows) > 0 {
		for k := range rows[0] {
			columns = append(columns, k)
		}
		sort.Strings(columns)
	}
	return &Dataset{
		ID:      uuid.New(),
		Columns: columns,
		Rows:    rows,
	}
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Rows) }

// Value returns the raw cell at row i, or "" when out of range or missing.
func (d *Dataset) Value(i int, column string) string {
	if i < 0 || i >= len(d.Rows) {
		return ""
	}
	return d.Rows[i][column]
}

// Distinct returns the distinct raw values of a column in first-seen order.
// The empty string counts as a value when present.
func (d *Dataset) Distinct(column string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range d.Rows {
		v := r[column]
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
