package services

import (
	"testing"
)

func TestManufacturingRollup_FiltersToManufactured(t *testing.T) {
	engine := newTestEngine(t, bomTable(
		[]string{"3001", "2001", "2", "Chocolate mass", "EA"},
		[]string{"2001", "1001", "3", "", "KG"},
	))

	res, err := engine.AllLevels(planTable(
		[]string{"Material", "Jan"},
		[]string{"3001", "10"},
	))
	if err != nil {
		t.Fatalf("AllLevels failed: %v", err)
	}

	rollup := engine.ManufacturingRollup(res)
	if len(rollup) != 1 {
		t.Fatalf("rollup = %v, want only 2001", rollup)
	}
	if got := rollup["2001"]; !got.Equal(dec(t, "20")) {
		t.Errorf("rollup[2001] = %s, want 20", got)
	}
}

func TestManufacturingRollupFromPlan(t *testing.T) {
	engine := newTestEngine(t, bomTable(
		[]string{"2001", "1001", "1", "", "KG"},
	))

	rollup, err := engine.ManufacturingRollupFromPlan(planTable(
		[]string{"Material", "Jan", "Feb"},
		[]string{"2001", "5", "7"},
		[]string{"3001", "100", ""}, // finished goods stay out
		[]string{"2002", "0", "0"},  // zero demand stays out
	))
	if err != nil {
		t.Fatalf("ManufacturingRollupFromPlan failed: %v", err)
	}

	if len(rollup) != 1 {
		t.Fatalf("rollup = %v, want only 2001", rollup)
	}
	if got := rollup["2001"]; !got.Equal(dec(t, "12")) {
		t.Errorf("rollup[2001] = %s, want 12", got)
	}
}

func TestRollupTable(t *testing.T) {
	engine := newTestEngine(t, bomTable(
		[]string{"2001", "1001", "2", "", "KG"},
		[]string{"2002", "1001", "4", "", "KG"},
	))

	rollup, err := engine.ManufacturingRollupFromPlan(planTable(
		[]string{"Material", "Jan"},
		[]string{"2002", "1"},
		[]string{"2001", "3"},
	))
	if err != nil {
		t.Fatalf("ManufacturingRollupFromPlan failed: %v", err)
	}

	table := engine.RollupTable("Rollup", rollup)
	if len(table.Rows) != 2 {
		t.Fatalf("Rows = %v, want 2", table.Rows)
	}
	if table.Rows[0][0] != "2001" || table.Rows[1][0] != "2002" {
		t.Errorf("rows not sorted by code: %v", table.Rows)
	}
	if table.Rows[0][3] != "3" {
		t.Errorf("quantity for 2001 = %q, want 3", table.Rows[0][3])
	}
}
