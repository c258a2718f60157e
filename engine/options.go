package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for the chart builders
// ============================================================================

// Option configures chart building via the functional options pattern.
type Option func(*config)

type config struct {
	Title   string
	Limit   int      // per-chart truncation override, 0 = chart default
	Palette []string // palette override, nil = default palette
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.Title = title
	}
}

// WithLimit overrides the chart's truncation limit (20 groups for bar,
// 12 slices for pie, 100 points for line).
func WithLimit(limit int) Option {
	return func(c *config) {
		c.Limit = limit
	}
}

// WithPalette replaces the default color palette.
func WithPalette(palette []string) Option {
	return func(c *config) {
		if len(palette) > 0 {
			c.Palette = palette
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) palette() []string {
	if len(c.Palette) > 0 {
		return c.Palette
	}
	return defaultPalette
}
