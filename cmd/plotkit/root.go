package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plotkit-org/plotkit/config"
	"github.com/plotkit-org/plotkit/dataset"
	"github.com/plotkit-org/plotkit/helpers"
	"github.com/plotkit-org/plotkit/internal/log"
)

// ============================================================================
// PLOTKIT CLI — Charts from any delimited dataset
// ============================================================================
//   plotkit inspect --file data.csv
//   plotkit chart   --file data.csv --type bar --x region --y amount
//   plotkit table   --file data.csv
// ============================================================================

var (
	cfgFile string
	verbose bool
	cfg     = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "plotkit",
	Short: "Charts from any delimited dataset",
	Long: `plotkit loads a delimited text or XLSX dataset, infers which columns
behave as measures, grouping keys, ordered axes, and region keys, and
shapes the rows into render-ready bar, line, or pie series.

Examples:
  plotkit inspect --file sales.csv
  plotkit chart --file sales.csv --type bar --x region --y amount --format csv
  plotkit chart --file sales.csv --type line --group region --out series.json
  plotkit table --file sales.csv`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetVerbose()
		}
		if cfgFile == "" {
			return nil
		}
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to plotkit YAML config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// loadDataset reads a dataset file, picking the parser by extension.
func loadDataset(path string) (*dataset.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return helpers.ParseXLSX(data)
	}
	return helpers.ParseCSV(data, helpers.ParseOptions{Delimiter: cfg.DelimiterRune()})
}

// outputWriter returns stdout or the --out file.
func outputWriter(outFile string) (*os.File, func(), error) {
	if outFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
