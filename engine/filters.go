package engine

import (
	"github.com/plotkit-org/plotkit/dataset"
)

// ============================================================================
// GROUPING FILTERS — Single-group selection and multi-series splitting
// ============================================================================
// Two modes exist when a grouping column is active:
//   filter one  — rows are pre-filtered to the selected group value
//                 before the rest of the pipeline runs
//   show all    — one series is built, then split into sub-series by
//                 group equality, in first-seen group order
// ============================================================================

// FilterByGroup returns the rows whose group column equals value.
func FilterByGroup(rows []dataset.Row, groupColumn, value string) []dataset.Row {
	var out []dataset.Row
	for _, r := range rows {
		if r[groupColumn] == value {
			out = append(out, r)
		}
	}
	return out
}

// SplitByGroup splits one built series into per-group sub-series.
// A point with no group value lands in the "Unknown" series. Colors are
// assigned by the caller.
func SplitByGroup(points []TimePoint) []ChartSeries {
	byGroup := make(map[string][]SeriesPoint)
	var order []string

	for _, p := range points {
		name := p.Group
		if name == "" {
			name = UnknownLabel
		}
		if _, seen := byGroup[name]; !seen {
			order = append(order, name)
		}
		byGroup[name] = append(byGroup[name], SeriesPoint{Label: p.X, Value: p.Y})
	}

	series := make([]ChartSeries, 0, len(order))
	for _, name := range order {
		series = append(series, ChartSeries{
			Name:   name,
			Points: byGroup[name],
		})
	}
	return series
}
