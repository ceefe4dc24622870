package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"bomcalc/pkg/domain/entities"
)

// bomTable builds a BOM raw table with the canonical header.
func bomTable(rows ...[]string) entities.RawTable {
	return entities.RawTable{
		Name:    "BOM",
		Columns: []string{"Parent Material", "Component", "Component Quantity", "Component Description", "Component UoM"},
		Rows:    rows,
	}
}

// planTable builds a plan raw table: first column is the code, the rest
// are periods.
func planTable(columns []string, rows ...[]string) entities.RawTable {
	return entities.RawTable{Name: "Plan", Columns: columns, Rows: rows}
}

// newTestEngine builds relations from the table and fails the test on
// any error.
func newTestEngine(t *testing.T, bom entities.RawTable) *Engine {
	t.Helper()
	engine := NewEngine(Config{})
	if err := engine.BuildRelations(bom); err != nil {
		t.Fatalf("BuildRelations failed: %v", err)
	}
	return engine
}

// dec parses a decimal literal, failing the test on bad input.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

// wantQty asserts one entry of an explosion or requirements map.
func wantQty(t *testing.T, m map[entities.MaterialCode]decimal.Decimal, code entities.MaterialCode, want string) {
	t.Helper()
	got, ok := m[code]
	if !ok {
		t.Fatalf("expected %s in result, got %v", code, m)
	}
	if !got.Equal(dec(t, want)) {
		t.Errorf("quantity for %s = %s, want %s", code, got, want)
	}
}
