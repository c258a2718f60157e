package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plotkit-org/plotkit/dataset"
	"github.com/plotkit-org/plotkit/engine"
)

var inspectFile string

// inspectOutput lists every column with its inferred roles plus the
// default axis bindings derived from them, in dataset column order.
type inspectOutput struct {
	Rows      int              `json:"rows"`
	Columns   []inspectColumn  `json:"columns"`
	Selection engine.Selection `json:"defaultSelection"`
}

type inspectColumn struct {
	Name  string          `json:"name"`
	Roles dataset.RoleSet `json:"roles"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Classify a dataset's columns and show default selections",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(inspectFile)
		if err != nil {
			return err
		}

		roles := dataset.ClassifyColumns(ds)
		out := inspectOutput{
			Rows:      ds.Len(),
			Selection: engine.DefaultSelection(ds, roles),
		}
		for _, col := range ds.Columns {
			out.Columns = append(out.Columns, inspectColumn{Name: col, Roles: roles[col]})
		}

		pretty, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFile, "file", "", "path to dataset file (required)")
	inspectCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(inspectCmd)
}
