package xlsx_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"invex/internal/tabular/xlsx"
)

func workbookBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestReadTable(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"Serial Number", "Party Name", "Total Amount"},
		{"INV-1", "Acme", 118.5},
		{"INV-2", "Globex", 59},
	})

	table, err := xlsx.ReadTable(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Serial Number", "Party Name", "Total Amount"}, table.Columns)
	require.Len(t, table.Rows, 2)

	serial, ok := table.Rows[0].Cell("Serial Number")
	assert.True(t, ok)
	assert.Equal(t, "INV-1", serial)
	assert.Equal(t, 118.5, table.Rows[0].Number("Total Amount"))
}

func TestReadTable_SkipsLeadingAndBlankRows(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"", "", ""},
		{"Serial Number", "Party Name"},
		{"INV-1", "Acme"},
		{"", ""},
		{"INV-2", "Globex"},
	})

	table, err := xlsx.ReadTable(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Serial Number", "Party Name"}, table.Columns)
	require.Len(t, table.Rows, 2)
	serial, _ := table.Rows[1].Cell("Serial Number")
	assert.Equal(t, "INV-2", serial)
}

func TestReadTable_BlankHeaderCellsGetPlaceholders(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"Serial Number", "", "Total Amount"},
		{"INV-1", "extra", 100},
	})

	table, err := xlsx.ReadTable(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Serial Number", "Column 2", "Total Amount"}, table.Columns)
	v, ok := table.Rows[0].Cell("Column 2")
	assert.True(t, ok)
	assert.Equal(t, "extra", v)
}

func TestReadTable_ShortRowsLeaveCellsBlank(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"Serial Number", "Party Name", "Total Amount"},
		{"INV-1"},
	})

	table, err := xlsx.ReadTable(data)
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	_, ok := table.Rows[0].Cell("Party Name")
	assert.False(t, ok)
	assert.Equal(t, 0.0, table.Rows[0].Number("Total Amount"))
}

func TestReadTable_NotASpreadsheet(t *testing.T) {
	_, err := xlsx.ReadTable([]byte("definitely not a zip archive"))
	assert.Error(t, err)
}

func TestReadTable_EmptySheet(t *testing.T) {
	data := workbookBytes(t, nil)

	_, err := xlsx.ReadTable(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}
