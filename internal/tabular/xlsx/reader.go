// Package xlsx materializes spreadsheet bytes into a tabular.Table.
package xlsx

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"invex/internal/tabular"
)

// ReadTable opens spreadsheet bytes and materializes the first sheet into a
// Table. The first non-empty row is the header; rows before it are skipped.
// Cells beyond a row's length are blank (nil).
func ReadTable(data []byte) (*tabular.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	headerIdx := -1
	for i, row := range rows {
		if !rowEmpty(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	var columns []string
	for j, cell := range rows[headerIdx] {
		name := strings.TrimSpace(cell)
		if name == "" {
			name = fmt.Sprintf("Column %d", j+1)
		}
		columns = append(columns, name)
	}

	t := &tabular.Table{Columns: columns}
	for _, raw := range rows[headerIdx+1:] {
		if rowEmpty(raw) {
			continue
		}
		row := tabular.Row{}
		for j, name := range columns {
			if j < len(raw) && strings.TrimSpace(raw[j]) != "" {
				v := raw[j]
				row[name] = &v
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
