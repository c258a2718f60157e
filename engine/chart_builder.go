package engine

import (
	"go.uber.org/zap"

	"github.com/plotkit-org/plotkit/dataset"
	"github.com/plotkit-org/plotkit/internal/log"
)

// ============================================================================
// CHART BUILDERS — Dataset + Selection → render-ready ChartData
// ============================================================================
// Pure functions: same dataset and selection, same output. Each builder
// validates the two reportable preconditions before shaping anything:
//   ErrInsufficientColumns — fewer than two columns, no axis pair exists
//   ErrNoRenderableData    — empty dataset or zero rows after the pipeline
// Malformed cells are handled below this layer and never surface as errors.
// ============================================================================

// BuildBarChart aggregates rows by the selection's x column, summing the
// y column, truncated to the first 20 groups in first-seen order.
func BuildBarChart(ds *dataset.Dataset, sel Selection, opts ...Option) (*ChartData, error) {
	cfg := applyOptions(opts)
	rows, err := chartRows(ds, sel)
	if err != nil {
		return nil, err
	}

	points := AggregateBar(rows, sel.X, sel.Y, cfg.Limit)
	if len(points) == 0 {
		return nil, ErrNoRenderableData
	}

	log.Debug("built bar chart",
		zap.String("x", sel.X), zap.String("y", sel.Y), zap.Int("groups", len(points)))

	return &ChartData{
		Type:   "bar",
		Title:  cfg.Title,
		XAxis:  sel.X,
		YAxis:  sel.Y,
		Series: []ChartSeries{{Name: sel.Y, Points: points}},
		Colors: seriesColors(cfg.palette(), len(points)),
	}, nil
}

// BuildPieChart aggregates rows by the selection's label column, summing
// the value column, keeping the 12 largest strictly positive slices in
// descending order.
func BuildPieChart(ds *dataset.Dataset, sel Selection, opts ...Option) (*ChartData, error) {
	cfg := applyOptions(opts)
	rows, err := chartRows(ds, sel)
	if err != nil {
		return nil, err
	}

	label, value := sel.Label, sel.Value
	if label == "" {
		label = sel.X
	}
	if value == "" {
		value = sel.Y
	}

	points := AggregatePie(rows, label, value, cfg.Limit)
	if len(points) == 0 {
		return nil, ErrNoRenderableData
	}

	log.Debug("built pie chart",
		zap.String("label", label), zap.String("value", value), zap.Int("slices", len(points)))

	return &ChartData{
		Type:   "pie",
		Title:  cfg.Title,
		Series: []ChartSeries{{Name: value, Points: points}},
		Colors: seriesColors(cfg.palette(), len(points)),
	}, nil
}

// BuildLineChart orders rows along the selection's x column (dates, then
// numbers, then input order) and truncates to the first 100 points. With
// an active grouping column and "show all groups", the single series is
// split into one sub-series per distinct group value.
func BuildLineChart(ds *dataset.Dataset, sel Selection, opts ...Option) (*ChartData, error) {
	cfg := applyOptions(opts)
	rows, err := chartRows(ds, sel)
	if err != nil {
		return nil, err
	}

	seriesOpts := SeriesOptions{Limit: cfg.Limit}
	if sel.Group != "" && sel.ShowAllGroups {
		seriesOpts.GroupColumn = sel.Group
	}

	points := BuildSeries(rows, sel.X, sel.Y, seriesOpts)
	if len(points) == 0 {
		return nil, ErrNoRenderableData
	}

	var series []ChartSeries
	if seriesOpts.GroupColumn != "" {
		series = SplitByGroup(points)
	} else {
		flat := make([]SeriesPoint, len(points))
		for i, p := range points {
			flat[i] = SeriesPoint{Label: p.X, Value: p.Y}
		}
		series = []ChartSeries{{Name: sel.Y, Points: flat}}
	}
	for i := range series {
		series[i].Color = paletteColor(cfg.palette(), i)
	}

	log.Debug("built line chart",
		zap.String("x", sel.X), zap.String("y", sel.Y), zap.Int("series", len(series)))

	return &ChartData{
		Type:   "line",
		Title:  cfg.Title,
		XAxis:  sel.X,
		YAxis:  sel.Y,
		Series: series,
	}, nil
}

// chartRows validates chart preconditions and applies the single-group
// pre-filter when one group value is selected.
func chartRows(ds *dataset.Dataset, sel Selection) ([]dataset.Row, error) {
	if len(ds.Columns) < 2 {
		return nil, ErrInsufficientColumns
	}
	if ds.Len() == 0 {
		return nil, ErrNoRenderableData
	}

	rows := ds.Rows
	if sel.Group != "" && !sel.ShowAllGroups && sel.GroupValue != "" {
		rows = FilterByGroup(rows, sel.Group, sel.GroupValue)
	}
	return rows, nil
}
