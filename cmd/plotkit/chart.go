package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/plotkit-org/plotkit/dataset"
	"github.com/plotkit-org/plotkit/engine"
)

var chartFlags struct {
	file       string
	kind       string
	x          string
	y          string
	label      string
	value      string
	group      string
	groupValue string
	allGroups  bool
	title      string
	format     string
	out        string
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Build a bar, line, or pie series from a dataset",
	Long: `Builds the render-ready series for one chart type. Column bindings
default to the inferred selection (first categorical column on x, first
numeric on y, first geographic key as the grouping column) and any flag
overrides just that binding.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(chartFlags.file)
		if err != nil {
			return err
		}

		roles := dataset.ClassifyColumns(ds)
		sel := engine.DefaultSelection(ds, roles)
		applySelectionFlags(&sel)

		var opts []engine.Option
		if chartFlags.title != "" {
			opts = append(opts, engine.WithTitle(chartFlags.title))
		}
		if len(cfg.Palette) > 0 {
			opts = append(opts, engine.WithPalette(cfg.Palette))
		}
		if limit := configLimit(chartFlags.kind); limit > 0 {
			opts = append(opts, engine.WithLimit(limit))
		}

		result, err := engine.Build(ds, roles, sel, chartFlags.kind, opts...)
		if err != nil {
			return err
		}

		w, done, err := outputWriter(chartFlags.out)
		if err != nil {
			return err
		}
		defer done()

		switch chartFlags.format {
		case "csv":
			return writeChartCSV(w, result.Chart)
		case "pretty":
			return writeJSON(w, result, true)
		default:
			return writeJSON(w, result, false)
		}
	},
}

func init() {
	f := chartCmd.Flags()
	f.StringVar(&chartFlags.file, "file", "", "path to dataset file (required)")
	f.StringVar(&chartFlags.kind, "type", "bar", "chart type: bar, line, pie")
	f.StringVar(&chartFlags.x, "x", "", "x-axis column (default: inferred)")
	f.StringVar(&chartFlags.y, "y", "", "y-axis column (default: inferred)")
	f.StringVar(&chartFlags.label, "label", "", "pie label column (default: x)")
	f.StringVar(&chartFlags.value, "value", "", "pie value column (default: y)")
	f.StringVar(&chartFlags.group, "group", "", "grouping-key column (default: inferred)")
	f.StringVar(&chartFlags.groupValue, "group-value", "", "show only this group value")
	f.BoolVar(&chartFlags.allGroups, "all-groups", true, "one series per group value")
	f.StringVar(&chartFlags.title, "title", "", "chart title")
	f.StringVar(&chartFlags.format, "format", "json", "output format: json, pretty, csv")
	f.StringVar(&chartFlags.out, "out", "", "write output to file instead of stdout")
	chartCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(chartCmd)
}

func applySelectionFlags(sel *engine.Selection) {
	if chartFlags.x != "" {
		sel.X = chartFlags.x
		sel.Label = chartFlags.x
	}
	if chartFlags.y != "" {
		sel.Y = chartFlags.y
		sel.Value = chartFlags.y
	}
	if chartFlags.label != "" {
		sel.Label = chartFlags.label
	}
	if chartFlags.value != "" {
		sel.Value = chartFlags.value
	}
	if chartFlags.group != "" {
		sel.Group = chartFlags.group
	}
	if chartFlags.groupValue != "" {
		sel.GroupValue = chartFlags.groupValue
		sel.ShowAllGroups = false
	} else {
		sel.ShowAllGroups = chartFlags.allGroups
	}
}

func configLimit(kind string) int {
	switch kind {
	case engine.KindBar:
		return cfg.Limits.Bar
	case engine.KindPie:
		return cfg.Limits.Pie
	case engine.KindLine:
		return cfg.Limits.Line
	}
	return 0
}

// ============================================================================
// OUTPUT
// ============================================================================

func writeJSON(w io.Writer, v any, pretty bool) error {
	var out []byte
	var err error
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// writeChartCSV emits one label column plus one value column per series —
// ready for a spreadsheet.
func writeChartCSV(w io.Writer, chart *engine.ChartData) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	xLabel := chart.XAxis
	if xLabel == "" {
		xLabel = "label"
	}

	if len(chart.Series) == 1 {
		yLabel := chart.Series[0].Name
		if yLabel == "" {
			yLabel = "value"
		}
		cw.Write([]string{xLabel, yLabel})
		for _, p := range chart.Series[0].Points {
			cw.Write([]string{p.Label, formatValue(p.Value)})
		}
		return cw.Error()
	}

	header := []string{xLabel}
	for _, s := range chart.Series {
		header = append(header, s.Name)
	}
	cw.Write(header)

	// Multi-series points align by label within each series' own order;
	// iterate the first series' labels and look the rest up.
	byLabel := make([]map[string]float64, len(chart.Series))
	for i, s := range chart.Series {
		byLabel[i] = make(map[string]float64, len(s.Points))
		for _, p := range s.Points {
			byLabel[i][p.Label] = p.Value
		}
	}

	seen := make(map[string]bool)
	for _, s := range chart.Series {
		for _, p := range s.Points {
			if seen[p.Label] {
				continue
			}
			seen[p.Label] = true
			row := []string{p.Label}
			for i := range chart.Series {
				row = append(row, formatValue(byLabel[i][p.Label]))
			}
			cw.Write(row)
		}
	}
	return cw.Error()
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
