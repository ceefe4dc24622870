package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadTable(t *testing.T) {
	data := ` Parent Material ,Component,Component Quantity
3001,2001,2
2001,1001,500
`
	table, err := NewLoader().ReadTable("BOM", strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if table.Name != "BOM" {
		t.Errorf("Name = %q, want BOM", table.Name)
	}
	want := []string{"Parent Material", "Component", "Component Quantity"}
	if len(table.Columns) != len(want) {
		t.Fatalf("Columns = %v, want %v", table.Columns, want)
	}
	for i, col := range want {
		if table.Columns[i] != col {
			t.Errorf("Columns[%d] = %q, want trimmed %q", i, table.Columns[i], col)
		}
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Rows = %v, want 2 data rows", table.Rows)
	}
	if table.Rows[0][0] != "3001" {
		t.Errorf("Rows[0][0] = %q, want 3001", table.Rows[0][0])
	}
}

func TestReadTable_RaggedRows(t *testing.T) {
	data := `Material,Jan,Feb
3001,10,20
3002,5
`
	table, err := NewLoader().ReadTable("Plan", strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Rows = %v, want 2", table.Rows)
	}
	if len(table.Rows[1]) != 2 {
		t.Errorf("short row = %v, want it preserved as read", table.Rows[1])
	}
	if got := table.Cell(table.Rows[1], 2); got != "" {
		t.Errorf("Cell beyond short row = %q, want empty", got)
	}
}

func TestReadTable_HeaderOnly(t *testing.T) {
	if _, err := NewLoader().ReadTable("BOM", strings.NewReader("a,b,c\n")); err == nil {
		t.Fatal("expected error for header-only input")
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	content := "Parent Material,Component,Qty\nA,B,1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	table, err := NewLoader().LoadTable("BOM", path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Errorf("Rows = %v, want 1", table.Rows)
	}
}

func TestLoadTable_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadTable("BOM", filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatal("expected error for a missing file")
	}
	if !strings.Contains(err.Error(), "BOM") {
		t.Errorf("error %q does not name the table", err)
	}
}
