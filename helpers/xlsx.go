package helpers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/plotkit-org/plotkit/dataset"
	"github.com/plotkit-org/plotkit/internal/log"
)

// ============================================================================
// XLSX HELPER — Parses a spreadsheet into a dataset.Dataset
// ============================================================================

// ParseXLSX reads the first sheet of a workbook: first row → columns,
// remaining rows → Rows. Cell values arrive as excelize renders them, so
// every cell is a raw string like any other dataset — classification
// happens downstream.
func ParseXLSX(data []byte) (*dataset.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	columns := make([]string, len(all[0]))
	for i, h := range all[0] {
		columns[i] = strings.TrimSpace(h)
	}

	rows := make([]dataset.Row, 0, len(all)-1)
	for _, record := range all[1:] {
		row := make(dataset.Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	log.Info("parsed workbook",
		zap.String("sheet", sheets[0]),
		zap.Int("rows", len(rows)), zap.Int("columns", len(columns)))

	return dataset.New(columns, rows), nil
}
