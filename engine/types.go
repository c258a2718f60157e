package engine

import (
	"errors"
)

// ============================================================================
// ENGINE TYPES — Render-Ready Shapes
// ============================================================================
// The engine consumes a dataset.Dataset plus a Selection and produces the
// grouped, sorted, truncated, and colored structures a chart renderer
// needs. Every output here is rebuilt from scratch on each call — nothing
// is mutated in place, nothing survives a dataset reload.
// ============================================================================

// Sentinel conditions reported by every chart builder.
var (
	// ErrInsufficientColumns is returned when the dataset has fewer than
	// two columns — no axis pair can be selected.
	ErrInsufficientColumns = errors.New("insufficient columns: dataset needs at least two")

	// ErrNoRenderableData is returned when the dataset is empty or the
	// pipeline produced zero series rows.
	ErrNoRenderableData = errors.New("no renderable data")
)

// ============================================================================
// SELECTION — Column bindings chosen by the user (or defaulted)
// ============================================================================

// Selection binds dataset columns to chart axes and keys. It is created
// from inferred defaults when a dataset loads and replaced wholesale —
// never merged — when a new dataset arrives.
type Selection struct {
	X     string `json:"x"`     // bar/line x axis
	Y     string `json:"y"`     // bar/line y axis
	Label string `json:"label"` // pie slice label
	Value string `json:"value"` // pie slice value

	Group         string `json:"group,omitempty"`      // grouping-key column, "" = none
	GroupValue    string `json:"groupValue,omitempty"` // single selected group value
	ShowAllGroups bool   `json:"showAllGroups"`        // split into one series per group
}

// ============================================================================
// SERIES SHAPES
// ============================================================================

// SeriesPoint is one aggregated record: a label and its reduced value.
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TimePoint is one raw series record for ordered axes. Group carries the
// grouping-key column's raw value for downstream multi-series splitting.
type TimePoint struct {
	X     string  `json:"x"`
	Y     float64 `json:"y"`
	Group string  `json:"group,omitempty"`
}

// ============================================================================
// CHART SHAPES
// ============================================================================

// ChartData is the render-ready description of one chart.
type ChartData struct {
	Type   string        `json:"type"` // "bar", "line", "pie"
	Title  string        `json:"title,omitempty"`
	XAxis  string        `json:"xAxis,omitempty"`
	YAxis  string        `json:"yAxis,omitempty"`
	Series []ChartSeries `json:"series"`

	// Colors carries one palette slot per point for bar and pie charts;
	// line charts color per series instead.
	Colors []string `json:"colors,omitempty"`
}

// ChartSeries is one named run of points.
type ChartSeries struct {
	Name   string        `json:"name"`
	Color  string        `json:"color,omitempty"`
	Points []SeriesPoint `json:"points"`
}

// ============================================================================
// TABLE SHAPES
// ============================================================================

// TableData is the dataset projected for table display.
type TableData struct {
	Columns []string          `json:"columns"`
	Rows    [][]string        `json:"rows"`
	Totals  map[string]string `json:"totals,omitempty"` // numeric columns only
}

// ============================================================================
// RESULT — Dispatcher output
// ============================================================================

// Result wraps the output of Build for one view kind.
type Result struct {
	Type  string     `json:"type"` // "bar", "line", "pie", "table"
	Chart *ChartData `json:"chart,omitempty"`
	Table *TableData `json:"table,omitempty"`
}
