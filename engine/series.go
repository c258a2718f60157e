package engine

import (
	"sort"
	"time"

	"github.com/plotkit-org/plotkit/dataset"
)

// ============================================================================
// SERIES BUILDER — Ordered axes for line-style charts
// ============================================================================
// Ordering rule, checked in this order:
//   1. any x value parses as a date  → sort all rows ascending by date
//   2. any x value is numeric        → sort ascending by numeric value
//   3. otherwise                     → preserve input row order
// After sorting: drop rows with an empty x, coerce y to a number (0 when
// non-numeric), attach the grouping column's raw value, truncate to 100.
// The input row slice is never mutated.
// ============================================================================

// SeriesOptions tunes BuildSeries.
type SeriesOptions struct {
	GroupColumn string // attach this column's raw value to each point
	Limit       int    // max points, 0 = default (100)
}

var seriesDateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02/01/2006",
	"Jan-2006",
	"January 2006",
	"2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

func parseSeriesDate(v string) (time.Time, bool) {
	for _, layout := range seriesDateFormats {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BuildSeries shapes raw rows into an ordered point sequence for a line
// chart. Rows whose x value fails to parse under the winning ordering
// rule sort as zero (epoch / 0.0) rather than erroring.
func BuildSeries(rows []dataset.Row, xColumn, yColumn string, opts SeriesOptions) []TimePoint {
	limit := opts.Limit
	if limit <= 0 {
		limit = maxLinePoints
	}

	ordered := make([]dataset.Row, len(rows))
	copy(ordered, rows)

	switch {
	case anyDate(rows, xColumn):
		keys := dateKeys(ordered, xColumn)
		sort.SliceStable(ordered, func(i, j int) bool {
			return keys[ordered[i][xColumn]].Before(keys[ordered[j][xColumn]])
		})
	case anyNumeric(rows, xColumn):
		sort.SliceStable(ordered, func(i, j int) bool {
			return dataset.ToNumber(ordered[i][xColumn]) < dataset.ToNumber(ordered[j][xColumn])
		})
	}

	points := make([]TimePoint, 0, min(len(ordered), limit))
	for _, r := range ordered {
		x := r[xColumn]
		if x == "" {
			continue
		}
		p := TimePoint{X: x, Y: dataset.ToNumber(r[yColumn])}
		if opts.GroupColumn != "" {
			p.Group = r[opts.GroupColumn]
		}
		points = append(points, p)
		if len(points) == limit {
			break
		}
	}
	return points
}

func anyDate(rows []dataset.Row, column string) bool {
	for _, r := range rows {
		if v := r[column]; v != "" {
			if _, ok := parseSeriesDate(v); ok {
				return true
			}
		}
	}
	return false
}

func anyNumeric(rows []dataset.Row, column string) bool {
	for _, r := range rows {
		if dataset.IsNumeric(r[column]) {
			return true
		}
	}
	return false
}

// dateKeys parses every x value once so the sort comparator stays cheap.
// Unparseable values map to the zero time and sort first.
func dateKeys(rows []dataset.Row, column string) map[string]time.Time {
	keys := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		v := r[column]
		if _, done := keys[v]; done {
			continue
		}
		t, _ := parseSeriesDate(v)
		keys[v] = t
	}
	return keys
}

