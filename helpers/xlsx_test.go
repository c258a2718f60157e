package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]interface{}{
		{"region", "amount"},
		{"CA", 10},
		{"NY", 20},
	}
	for i, row := range cells {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	ds, err := ParseXLSX(buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, []string{"region", "amount"}, ds.Columns)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "CA", ds.Rows[0]["region"])
	assert.Equal(t, "20", ds.Rows[1]["amount"])
}

func TestParseXLSXRejectsGarbage(t *testing.T) {
	_, err := ParseXLSX([]byte("not a workbook"))
	assert.Error(t, err)
}
