// Package config loads the optional plotkit YAML configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI-level settings. Every field has a working default, so
// a missing config file is not an error condition for callers that use
// Default().
type Config struct {
	// Delimiter forces the input delimiter ("," ";" "\t"); empty = sniff.
	Delimiter string `yaml:"delimiter"`

	// Palette overrides the chart palette with hex colors.
	Palette []string `yaml:"palette"`

	// Limits override per-chart truncation.
	Limits struct {
		Bar  int `yaml:"bar"`  // max bar groups, default 20
		Pie  int `yaml:"pie"`  // max pie slices, default 12
		Line int `yaml:"line"` // max line points, default 100
	} `yaml:"limits"`
}

// Default returns a zero-value config: sniffed delimiter, built-in
// palette, built-in truncation limits.
func Default() *Config {
	return &Config{}
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Delimiter) > 1 && c.Delimiter != "\\t" {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	for _, color := range c.Palette {
		if len(color) != 7 || color[0] != '#' {
			return fmt.Errorf("palette color %q is not a #RRGGBB value", color)
		}
	}
	if c.Limits.Bar < 0 || c.Limits.Pie < 0 || c.Limits.Line < 0 {
		return fmt.Errorf("limits must be non-negative")
	}
	return nil
}

// DelimiterRune returns the configured delimiter as a rune, or 0 when the
// parser should sniff it.
func (c *Config) DelimiterRune() rune {
	switch c.Delimiter {
	case "":
		return 0
	case "\\t", "\t":
		return '\t'
	default:
		return rune(c.Delimiter[0])
	}
}
