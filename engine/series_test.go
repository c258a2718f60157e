package engine

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotkit-org/plotkit/dataset"
)

func TestBuildSeriesDateSort(t *testing.T) {
	rows := []dataset.Row{
		{"date": "2023-01-02", "v": "2"},
		{"date": "2023-01-01", "v": "1"},
		{"date": "2023-01-03", "v": "3"},
	}

	points := BuildSeries(rows, "date", "v", SeriesOptions{})
	require.Len(t, points, 3)
	assert.Equal(t, "2023-01-01", points[0].X)
	assert.Equal(t, "2023-01-02", points[1].X)
	assert.Equal(t, "2023-01-03", points[2].X)
}

func TestBuildSeriesNumericSort(t *testing.T) {
	rows := []dataset.Row{
		{"x": "30", "v": "c"},
		{"x": "4", "v": "a"},
		{"x": "12", "v": "b"},
	}

	points := BuildSeries(rows, "x", "v", SeriesOptions{})
	require.Len(t, points, 3)
	assert.Equal(t, []string{"4", "12", "30"}, []string{points[0].X, points[1].X, points[2].X})
}

func TestBuildSeriesPreservesOrderForPlainStrings(t *testing.T) {
	rows := []dataset.Row{
		{"x": "gamma", "v": "1"},
		{"x": "alpha", "v": "2"},
		{"x": "beta", "v": "3"},
	}

	points := BuildSeries(rows, "x", "v", SeriesOptions{})
	require.Len(t, points, 3)
	assert.Equal(t, "gamma", points[0].X)
	assert.Equal(t, "alpha", points[1].X)
	assert.Equal(t, "beta", points[2].X)
}

func TestBuildSeriesDropsMissingXCoercesY(t *testing.T) {
	rows := []dataset.Row{
		{"x": "a", "v": "oops"},
		{"x": "", "v": "5"},
		{"x": "b", "v": "7"},
	}

	points := BuildSeries(rows, "x", "v", SeriesOptions{})
	require.Len(t, points, 2)
	assert.Equal(t, TimePoint{X: "a", Y: 0}, points[0])
	assert.Equal(t, TimePoint{X: "b", Y: 7}, points[1])
}

func TestBuildSeriesTruncates(t *testing.T) {
	rows := make([]dataset.Row, 150)
	for i := range rows {
		rows[i] = dataset.Row{"x": "p" + strconv.Itoa(i), "v": "1"}
	}

	points := BuildSeries(rows, "x", "v", SeriesOptions{})
	assert.Len(t, points, 100)

	points = BuildSeries(rows, "x", "v", SeriesOptions{Limit: 10})
	assert.Len(t, points, 10)
}

func TestBuildSeriesDoesNotMutateInput(t *testing.T) {
	rows := []dataset.Row{
		{"x": "9", "v": "1"},
		{"x": "1", "v": "2"},
	}

	BuildSeries(rows, "x", "v", SeriesOptions{})
	assert.Equal(t, "9", rows[0]["x"], "input order untouched")
}

func TestBuildSeriesAttachesGroup(t *testing.T) {
	rows := []dataset.Row{
		{"x": "a", "v": "1", "region": "CA"},
		{"x": "b", "v": "2", "region": "NY"},
	}

	points := BuildSeries(rows, "x", "v", SeriesOptions{GroupColumn: "region"})
	require.Len(t, points, 2)
	assert.Equal(t, "CA", points[0].Group)
	assert.Equal(t, "NY", points[1].Group)
}

func TestSplitByGroup(t *testing.T) {
	points := []TimePoint{
		{X: "a", Y: 1, Group: "CA"},
		{X: "b", Y: 2, Group: "NY"},
		{X: "c", Y: 3, Group: "CA"},
		{X: "d", Y: 4},
	}

	series := SplitByGroup(points)
	require.Len(t, series, 3)
	assert.Equal(t, "CA", series[0].Name)
	assert.Equal(t, "NY", series[1].Name)
	assert.Equal(t, UnknownLabel, series[2].Name)
	assert.Equal(t, []SeriesPoint{{Label: "a", Value: 1}, {Label: "c", Value: 3}}, series[0].Points)
}

func TestFilterByGroup(t *testing.T) {
	rows := []dataset.Row{
		{"region": "CA", "v": "1"},
		{"region": "NY", "v": "2"},
		{"region": "CA", "v": "3"},
	}

	got := FilterByGroup(rows, "region", "CA")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0]["v"])
	assert.Equal(t, "3", got[1]["v"])
}
