package engine

import (
	"sort"

	"github.com/plotkit-org/plotkit/dataset"
)

// ============================================================================
// AGGREGATORS — Group by key column, sum value column
// ============================================================================
// All variants share one core: rows are partitioned by the raw value of
// the key column and the value column is summed per partition. Missing or
// non-numeric values never error — a missing key groups under "Unknown"
// and a non-numeric value contributes zero to its group's sum.
// ============================================================================

// UnknownLabel stands in for a missing or empty grouping key.
const UnknownLabel = "Unknown"

// Truncation limits applied by the chart-specific variants.
const (
	maxBarGroups  = 20
	maxPieSlices  = 12
	maxLinePoints = 100
)

// Aggregate groups rows by keyColumn and sums valueColumn per group.
// Output order is the insertion order of first-seen group keys — no
// sorting, no truncation.
func Aggregate(rows []dataset.Row, keyColumn, valueColumn string) []SeriesPoint {
	totals := make(map[string]float64)
	var order []string

	for _, r := range rows {
		key := r[keyColumn]
		if key == "" {
			key = UnknownLabel
		}
		if _, seen := totals[key]; !seen {
			order = append(order, key)
			totals[key] = 0
		}
		if v := r[valueColumn]; dataset.IsNumeric(v) {
			totals[key] += dataset.ToNumber(v)
		}
	}

	points := make([]SeriesPoint, 0, len(order))
	for _, key := range order {
		points = append(points, SeriesPoint{Label: key, Value: totals[key]})
	}
	return points
}

// AggregateBar is the bar-chart variant: first-seen order, truncated to
// the first 20 groups. No sorting, no zero filtering.
func AggregateBar(rows []dataset.Row, keyColumn, valueColumn string, limit int) []SeriesPoint {
	if limit <= 0 {
		limit = maxBarGroups
	}
	points := Aggregate(rows, keyColumn, valueColumn)
	if len(points) > limit {
		points = points[:limit]
	}
	return points
}

// AggregatePie is the pie-chart variant: groups with a non-positive sum
// are dropped, the rest sort descending by value, and the first 12 remain.
func AggregatePie(rows []dataset.Row, keyColumn, valueColumn string, limit int) []SeriesPoint {
	if limit <= 0 {
		limit = maxPieSlices
	}
	points := Aggregate(rows, keyColumn, valueColumn)

	kept := points[:0:0]
	for _, p := range points {
		if p.Value > 0 {
			kept = append(kept, p)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Value > kept[j].Value })
	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}
