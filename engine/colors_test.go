package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorForWrapsAroundPalette(t *testing.T) {
	n := len(defaultPalette)
	assert.Equal(t, defaultPalette[0], ColorFor(0))
	assert.Equal(t, defaultPalette[n-1], ColorFor(n-1))

	// Second cycle reuses slots at lower luminance — still deterministic.
	assert.Equal(t, ColorFor(n), ColorFor(n))
	assert.NotEqual(t, ColorFor(0), ColorFor(n))
}

func TestSeriesColors(t *testing.T) {
	colors := SeriesColors(3)
	require.Len(t, colors, 3)
	assert.Equal(t, defaultPalette[:3], colors)

	// More series than palette slots still yields unique colors.
	many := SeriesColors(len(defaultPalette) + 2)
	seen := make(map[string]bool)
	for _, c := range many {
		assert.False(t, seen[c], "duplicate color %s", c)
		seen[c] = true
	}
}

func TestPaletteOverride(t *testing.T) {
	palette := []string{"#000000", "#FFFFFF"}
	assert.Equal(t, "#000000", paletteColor(palette, 0))
	assert.Equal(t, "#FFFFFF", paletteColor(palette, 1))
	assert.Equal(t, []string{"#000000", "#FFFFFF"}, seriesColors(palette, 2))
}
