package tabular

import (
	"strconv"
	"strings"
)

// Table is a materialized spreadsheet: an ordered header row plus data rows.
// Cell values are pointers so a blank/absent cell (nil) is distinguishable
// from an empty string or zero.
type Table struct {
	Columns []string
	Rows    []Row
}

// Row maps an actual column name to its cell value. A missing key or nil
// value both mean the cell is blank.
type Row map[string]*string

// Cell returns the trimmed cell value for the given column, or "" with
// ok=false when the column is unmapped or the cell is blank.
func (r Row) Cell(column string) (string, bool) {
	if column == "" {
		return "", false
	}
	v, present := r[column]
	if !present || v == nil {
		return "", false
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return "", false
	}
	return s, true
}

// Number parses the cell as a float. A blank or unparseable cell yields 0.
func (r Row) Number(column string) float64 {
	s, ok := r.Cell(column)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return f
}
