package entities

import "strings"

// RawTable is an unconverted tabular input: a name for diagnostics, the
// header as read, and the data rows. Rows may be ragged; missing cells
// read as empty strings.
type RawTable struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Cell returns the trimmed cell at column index col, or "" when the row
// is shorter than the header.
func (t RawTable) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// Table is a structured output table: an ordered column list plus string
// rows, ready for any renderer.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}
