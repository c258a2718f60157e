package engine

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotkit-org/plotkit/dataset"
)

func TestAggregateSumsByFirstSeenKey(t *testing.T) {
	rows := []dataset.Row{
		{"category": "A", "amount": "10"},
		{"category": "B", "amount": "20"},
		{"category": "A", "amount": "5"},
	}

	points := Aggregate(rows, "category", "amount")
	require.Equal(t, []SeriesPoint{
		{Label: "A", Value: 15},
		{Label: "B", Value: 20},
	}, points)
}

func TestAggregateMissingKeyAndValue(t *testing.T) {
	rows := []dataset.Row{
		{"category": "", "amount": "10"},
		{"amount": "5"},
		{"category": "A", "amount": "oops"},
		{"category": "A", "amount": "3"},
	}

	points := Aggregate(rows, "category", "amount")
	require.Equal(t, []SeriesPoint{
		{Label: UnknownLabel, Value: 15},
		{Label: "A", Value: 3},
	}, points)
}

func TestAggregateOrderInsensitiveTotals(t *testing.T) {
	rows := []dataset.Row{
		{"k": "x", "v": "1"}, {"k": "y", "v": "2"}, {"k": "x", "v": "3"},
		{"k": "z", "v": "4"}, {"k": "y", "v": "5"}, {"k": "z", "v": "-1"},
	}

	want := map[string]float64{"x": 4, "y": 7, "z": 3}

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		shuffled := append([]dataset.Row(nil), rows...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := make(map[string]float64)
		for _, p := range Aggregate(shuffled, "k", "v") {
			got[p.Label] = p.Value
		}
		require.Equal(t, want, got, "trial %d", trial)
	}
}

func TestAggregatePie(t *testing.T) {
	rows := make([]dataset.Row, 0, 30)
	for i := 0; i < 15; i++ {
		rows = append(rows, dataset.Row{"k": string(rune('a' + i)), "v": "1"})
		rows = append(rows, dataset.Row{"k": string(rune('a' + i)), "v": strconv.Itoa(i - 3)})
	}
	rows = append(rows, dataset.Row{"k": "neg", "v": "-10"})
	rows = append(rows, dataset.Row{"k": "zero", "v": "-1"})

	points := AggregatePie(rows, "k", "v", 0)

	assert.LessOrEqual(t, len(points), 12)
	for i, p := range points {
		assert.Greater(t, p.Value, 0.0, "slice %d", i)
		if i > 0 {
			assert.GreaterOrEqual(t, points[i-1].Value, p.Value, "descending at %d", i)
		}
	}
}

func TestAggregateBarTruncatesUnsorted(t *testing.T) {
	rows := make([]dataset.Row, 0, 25)
	keys := make(map[string]bool)
	for i := 0; i < 25; i++ {
		k := "g" + strconv.Itoa(i)
		keys[k] = true
		rows = append(rows, dataset.Row{"k": k, "v": strconv.Itoa(25 - i)})
	}

	points := AggregateBar(rows, "k", "v", 0)
	require.Len(t, points, 20)

	// First-seen order preserved, keys drawn from the input.
	for i, p := range points {
		assert.Equal(t, "g"+strconv.Itoa(i), p.Label)
		assert.True(t, keys[p.Label])
	}
}
