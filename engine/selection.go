package engine

import (
	"github.com/plotkit-org/plotkit/dataset"
)

// ============================================================================
// SELECTION DEFAULTS — Derived from inferred column roles
// ============================================================================
// Defaults:
//   x / label  — first Categorical or Sequential column, else first column
//   y / value  — first Numeric column, else second column, else first
//   group      — first GeographicKey column, else absent
// A new dataset load replaces the Selection wholesale via this function;
// stale column references never survive a reload.
// ============================================================================

// DefaultSelection derives the initial column bindings for a dataset.
func DefaultSelection(ds *dataset.Dataset, roles dataset.RoleMap) Selection {
	var sel Selection
	if len(ds.Columns) == 0 {
		return sel
	}

	sel.X = ds.Columns[0]
	for _, col := range ds.Columns {
		rs := roles[col]
		if rs.Categorical || rs.Sequential {
			sel.X = col
			break
		}
	}

	sel.Y = ds.Columns[0]
	if len(ds.Columns) > 1 {
		sel.Y = ds.Columns[1]
	}
	for _, col := range ds.Columns {
		if roles[col].Numeric {
			sel.Y = col
			break
		}
	}

	sel.Label = sel.X
	sel.Value = sel.Y

	for _, col := range ds.Columns {
		if roles[col].GeographicKey {
			sel.Group = col
			break
		}
	}
	sel.ShowAllGroups = true

	return sel
}
