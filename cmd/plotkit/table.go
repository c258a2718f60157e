package main

import (
	"encoding/csv"

	"github.com/spf13/cobra"

	"github.com/plotkit-org/plotkit/dataset"
	"github.com/plotkit-org/plotkit/engine"
)

var tableFlags struct {
	file   string
	format string
	out    string
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Project a dataset as a table with numeric totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(tableFlags.file)
		if err != nil {
			return err
		}

		roles := dataset.ClassifyColumns(ds)
		table, err := engine.BuildTable(ds, roles)
		if err != nil {
			return err
		}

		w, done, err := outputWriter(tableFlags.out)
		if err != nil {
			return err
		}
		defer done()

		switch tableFlags.format {
		case "csv":
			cw := csv.NewWriter(w)
			defer cw.Flush()
			cw.Write(table.Columns)
			for _, row := range table.Rows {
				cw.Write(row)
			}
			return cw.Error()
		case "pretty":
			return writeJSON(w, table, true)
		default:
			return writeJSON(w, table, false)
		}
	},
}

func init() {
	tableCmd.Flags().StringVar(&tableFlags.file, "file", "", "path to dataset file (required)")
	tableCmd.Flags().StringVar(&tableFlags.format, "format", "json", "output format: json, pretty, csv")
	tableCmd.Flags().StringVar(&tableFlags.out, "out", "", "write output to file instead of stdout")
	tableCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(tableCmd)
}
