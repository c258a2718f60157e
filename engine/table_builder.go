package engine

import (
	"fmt"

	"github.com/plotkit-org/plotkit/dataset"
)

// ============================================================================
// TABLE BUILDER — Dataset projected for table display
// ============================================================================

// BuildTable projects a dataset into rows in column order and totals the
// columns classified Numeric. Pagination and search are the renderer's
// concern, not the engine's.
func BuildTable(ds *dataset.Dataset, roles dataset.RoleMap) (*TableData, error) {
	if len(ds.Columns) == 0 {
		return nil, ErrInsufficientColumns
	}
	if ds.Len() == 0 {
		return nil, ErrNoRenderableData
	}

	rows := make([][]string, ds.Len())
	for i, r := range ds.Rows {
		cells := make([]string, len(ds.Columns))
		for j, col := range ds.Columns {
			cells[j] = r[col]
		}
		rows[i] = cells
	}

	var totals map[string]string
	for _, col := range ds.Columns {
		if !roles[col].Numeric {
			continue
		}
		var sum float64
		for _, r := range ds.Rows {
			if v := r[col]; dataset.IsNumeric(v) {
				sum += dataset.ToNumber(v)
			}
		}
		if totals == nil {
			totals = make(map[string]string)
		}
		totals[col] = formatNumber(sum)
	}

	return &TableData{
		Columns: append([]string(nil), ds.Columns...),
		Rows:    rows,
		Totals:  totals,
	}, nil
}

// formatNumber renders whole values without decimals, others with two.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
