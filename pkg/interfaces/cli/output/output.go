package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bomcalc/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string // text, json, csv
	OutputDir string // when set, csv output is written to files here
}

// Write renders a table in the configured format. Text and JSON go to
// stdout; CSV goes to <OutputDir>/<table name>.csv, or stdout when no
// directory is configured.
func Write(table entities.Table, config Config) error {
	switch config.Format {
	case "", "text":
		return renderText(os.Stdout, table)
	case "json":
		return renderJSON(os.Stdout, table)
	case "csv":
		if config.OutputDir == "" {
			return renderCSV(os.Stdout, table)
		}
		return writeCSVFile(table, config.OutputDir)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// renderText writes a fixed-width table with a title and separator rule.
func renderText(w io.Writer, table entities.Table) error {
	widths := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		widths[i] = len(col)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	fmt.Fprintf(w, "%s (%d rows)\n", table.Name, len(table.Rows))

	var b strings.Builder
	for i, col := range table.Columns {
		fmt.Fprintf(&b, "%-*s  ", widths[i], col)
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))

	b.Reset()
	for i := range table.Columns {
		fmt.Fprintf(&b, "%s  ", strings.Repeat("-", widths[i]))
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))

	for _, row := range table.Rows {
		b.Reset()
		for i := range table.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			fmt.Fprintf(&b, "%-*s  ", widths[i], cell)
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
	fmt.Fprintln(w)
	return nil
}

// renderJSON writes the table as an array of objects keyed by column.
func renderJSON(w io.Writer, table entities.Table) error {
	rows := make([]map[string]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		obj := make(map[string]string, len(table.Columns))
		for i, col := range table.Columns {
			if i < len(row) {
				obj[col] = row[i]
			} else {
				obj[col] = ""
			}
		}
		rows = append(rows, obj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{
		"name":    table.Name,
		"columns": table.Columns,
		"rows":    rows,
	})
}

// renderCSV writes the header and rows through encoding/csv.
func renderCSV(w io.Writer, table entities.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Columns); err != nil {
		return err
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func writeCSVFile(table entities.Table, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	name := strings.ReplaceAll(strings.ToLower(table.Name), " ", "_") + ".csv"
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := renderCSV(file, table); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
