package engine

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ============================================================================
// COLOR ASSIGNER — Deterministic palette slots
// ============================================================================
// Identity maps to a slot by index mod palette size, for every chart
// type. Bars, slices, and series rendered twice from the same data get
// the same colors twice.
// ============================================================================

// defaultPalette holds the fixed palette slots.
var defaultPalette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444",
	"#8B5CF6", "#06B6D4", "#EC4899", "#84CC16",
}

// ColorFor returns the palette slot for a zero-based series or point index.
func ColorFor(index int) string {
	return paletteColor(defaultPalette, index)
}

func paletteColor(palette []string, index int) string {
	if len(palette) == 0 {
		palette = defaultPalette
	}
	if index < 0 {
		index = 0
	}

	base := palette[index%len(palette)]

	// Past the first cycle, darken the base so repeated slots stay
	// distinguishable. Each full cycle through the palette drops the
	// luminance another step.
	cycle := index / len(palette)
	if cycle == 0 {
		return base
	}
	c, err := colorful.Hex(base)
	if err != nil {
		return base
	}
	h, s, l := c.Hsl()
	for i := 0; i < cycle; i++ {
		l *= 0.7
	}
	return colorful.Hsl(h, s, l).Hex()
}

// SeriesColors returns n deterministic colors, one per index.
func SeriesColors(n int) []string {
	return seriesColors(defaultPalette, n)
}

func seriesColors(palette []string, n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = paletteColor(palette, i)
	}
	return colors
}
