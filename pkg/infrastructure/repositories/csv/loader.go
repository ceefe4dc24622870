package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"bomcalc/pkg/domain/entities"
)

// Loader reads tabular input files into raw tables. Column
// identification happens later, in the engine, against its field alias
// configuration; the loader only deals in headers and cells.
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadTable reads a CSV file into a raw table. The first record is the
// header; rows may be ragged.
func (l *Loader) LoadTable(name, filename string) (entities.RawTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return entities.RawTable{}, fmt.Errorf("failed to open %s file %s: %w", name, filename, err)
	}
	defer file.Close()

	table, err := l.ReadTable(name, file)
	if err != nil {
		return entities.RawTable{}, fmt.Errorf("failed to read %s CSV %s: %w", name, filename, err)
	}
	return table, nil
}

// ReadTable reads CSV data from r into a raw table named name.
func (l *Loader) ReadTable(name string, r io.Reader) (entities.RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return entities.RawTable{}, err
	}
	if len(records) < 2 {
		return entities.RawTable{}, fmt.Errorf("%s must have a header and at least one data row", name)
	}

	columns := make([]string, len(records[0]))
	for i, col := range records[0] {
		columns[i] = strings.TrimSpace(col)
	}

	return entities.RawTable{
		Name:    name,
		Columns: columns,
		Rows:    records[1:],
	}, nil
}
