// Package plotkit turns untyped tabular data into render-ready charts.
//
// Usage:
//
//	import (
//	    "github.com/plotkit-org/plotkit/dataset"
//	    "github.com/plotkit-org/plotkit/engine"
//	)
//
//	ds, _ := helpers.ParseCSV(raw)
//	roles := dataset.ClassifyColumns(ds)
//	sel := engine.DefaultSelection(ds, roles)
//	chart, err := engine.BuildBarChart(ds, roles, sel)
//
// The dataset package classifies each column into behavioral roles
// (numeric measure, categorical key, ordered axis, geographic key)
// using column-wide statistics and name heuristics. The engine package
// groups, reduces, sorts, truncates, and colors rows into the series a
// chart renderer consumes. Rendering itself is left to the caller —
// plotkit computes shapes, never pixels.
package plotkit
