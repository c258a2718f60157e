package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/plotkit-org/plotkit/dataset"
	"github.com/plotkit-org/plotkit/internal/log"
)

// ============================================================================
// CSV HELPER — Parses delimited text into a dataset.Dataset
// ============================================================================
// The engine treats parsing as an external collaborator: this helper is
// that collaborator for delimited text. It reports a terminal success or
// failure once; on success the Dataset is immutable for the session and a
// re-upload produces a whole new Dataset.
// ============================================================================

// ParseOptions controls delimited-text parsing.
type ParseOptions struct {
	Delimiter rune // 0 = sniff comma/semicolon/tab from the header line
}

// ParseCSV parses delimited text into a Dataset. The first row names the
// columns; every later row becomes a Row keyed by those names, missing
// trailing cells filled with "". Malformed rows are skipped, not fatal.
func ParseCSV(data []byte, opts ...ParseOptions) (*dataset.Dataset, error) {
	var opt ParseOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	text := string(data)
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(text)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delim
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	columns := make([]string, len(headers))
	for i, h := range headers {
		columns[i] = strings.TrimSpace(h)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("input has no columns")
	}

	var rows []dataset.Row
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

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

	if skipped > 0 {
		log.Warn("skipped malformed rows", zap.Int("count", skipped))
	}
	log.Info("parsed delimited text",
		zap.Int("rows", len(rows)), zap.Int("columns", len(columns)))

	return dataset.New(columns, rows), nil
}

// sniffDelimiter picks the delimiter whose count is highest on the first
// line. Comma wins ties.
func sniffDelimiter(text string) rune {
	line := text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	best := ','
	bestCount := strings.Count(line, ",")
	for _, c := range []rune{';', '\t'} {
		if n := strings.Count(line, string(c)); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}
