package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/plotkit-org/plotkit/dataset"
	"github.com/plotkit-org/plotkit/internal/log"
)

// ============================================================================
// EXECUTOR — Dispatch one view kind against a dataset
// ============================================================================
// Entry point: Build(ds, roles, sel, kind, opts...)
//
// Pipeline:
//   1. Validate the view kind
//   2. Dispatch to the matching builder (bar / line / pie / table)
//   3. Wrap the output in a Result
//
// Everything runs synchronously on the calling goroutine and recomputes
// from scratch — a Result is a pure function of its inputs.
// ============================================================================

// View kinds accepted by Build.
const (
	KindBar   = "bar"
	KindLine  = "line"
	KindPie   = "pie"
	KindTable = "table"
)

// Build dispatches a dataset, its role classification, and a selection to
// one view builder and returns the render-ready Result.
func Build(ds *dataset.Dataset, roles dataset.RoleMap, sel Selection, kind string, opts ...Option) (*Result, error) {
	log.Info("building view",
		zap.String("kind", kind),
		zap.Int("rows", ds.Len()),
		zap.Int("columns", len(ds.Columns)))

	result := &Result{Type: kind}
	var err error

	switch kind {
	case KindBar:
		result.Chart, err = BuildBarChart(ds, sel, opts...)
	case KindLine:
		result.Chart, err = BuildLineChart(ds, sel, opts...)
	case KindPie:
		result.Chart, err = BuildPieChart(ds, sel, opts...)
	case KindTable:
		result.Table, err = BuildTable(ds, roles)
	default:
		return nil, fmt.Errorf("unknown view kind %q", kind)
	}

	if err != nil {
		return nil, err
	}
	return result, nil
}
