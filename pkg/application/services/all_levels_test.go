package services

import (
	"testing"

	"bomcalc/pkg/domain/entities"
)

func TestAllLevels_TotalsAndLevels(t *testing.T) {
	engine := newTestEngine(t, bomTable(
		[]string{"3001", "2001", "2", "", "EA"},
		[]string{"2001", "1001", "3", "", "KG"},
	))

	res, err := engine.AllLevels(planTable(
		[]string{"Material", "Jan"},
		[]string{"3001", "10"},
	))
	if err != nil {
		t.Fatalf("AllLevels failed: %v", err)
	}

	if len(res.Totals) != 3 {
		t.Fatalf("Totals = %v, want 3001, 2001 and 1001", res.Totals)
	}
	if got := res.Totals["3001"]["Jan"]; !got.Equal(dec(t, "10")) {
		t.Errorf("Totals[3001][Jan] = %s, want 10", got)
	}
	if got := res.Totals["2001"]["Jan"]; !got.Equal(dec(t, "20")) {
		t.Errorf("Totals[2001][Jan] = %s, want 20", got)
	}
	if got := res.Totals["1001"]["Jan"]; !got.Equal(dec(t, "60")) {
		t.Errorf("Totals[1001][Jan] = %s, want 60", got)
	}

	wantLevels := map[entities.MaterialCode]int{"3001": 1, "2001": 2, "1001": 3}
	for code, want := range wantLevels {
		if got := res.Levels[code]; got != want {
			t.Errorf("Levels[%s] = %d, want %d", code, got, want)
		}
		if got := res.Materials[code].Level; got != want {
			t.Errorf("Materials[%s].Level = %d, want %d", code, got, want)
		}
	}
}

func TestAllLevels_SharedSubassembly(t *testing.T) {
	// 2001 sits under both plan items; the shallower chain wins the level.
	engine := newTestEngine(t, bomTable(
		[]string{"3001", "2001", "1", "", "EA"},
		[]string{"3002", "2002", "1", "", "EA"},
		[]string{"2002", "2001", "1", "", "EA"},
	))

	res, err := engine.AllLevels(planTable(
		[]string{"Material", "Jan"},
		[]string{"3001", "1"},
		[]string{"3002", "1"},
	))
	if err != nil {
		t.Fatalf("AllLevels failed: %v", err)
	}

	if got := res.Totals["2001"]["Jan"]; !got.Equal(dec(t, "2")) {
		t.Errorf("Totals[2001][Jan] = %s, want 2", got)
	}
	if got := res.Levels["2001"]; got != 2 {
		t.Errorf("Levels[2001] = %d, want the shorter chain's 2", got)
	}
}

func TestLevelOf_Unreachable(t *testing.T) {
	engine := newTestEngine(t, bomTable(
		[]string{"A", "B", "1", "", "EA"},
	))

	engine.mu.Lock()
	level := engine.levelOf("Z", map[entities.MaterialCode]bool{"A": true})
	engine.mu.Unlock()

	if level != entities.UnknownLevel {
		t.Errorf("levelOf(Z) = %d, want UnknownLevel", level)
	}
}

func TestAllLevelsResult_TableSortedByLevel(t *testing.T) {
	engine := newTestEngine(t, bomTable(
		[]string{"3001", "2001", "2", "", "EA"},
		[]string{"2001", "1001", "3", "", "EA"},
	))

	res, err := engine.AllLevels(planTable(
		[]string{"Material", "Jan"},
		[]string{"3001", "1"},
	))
	if err != nil {
		t.Fatalf("AllLevels failed: %v", err)
	}

	table := res.Table("All Levels")
	if table.Columns[4] != "Level" {
		t.Fatalf("Columns = %v, want Level in position 4", table.Columns)
	}
	wantOrder := []string{"3001", "2001", "1001"}
	if len(table.Rows) != len(wantOrder) {
		t.Fatalf("Rows = %v, want %d rows", table.Rows, len(wantOrder))
	}
	for i, code := range wantOrder {
		if table.Rows[i][0] != code {
			t.Errorf("Rows[%d] material = %q, want %q", i, table.Rows[i][0], code)
		}
	}
	if table.Rows[0][4] != "1" {
		t.Errorf("top-level row level = %q, want 1", table.Rows[0][4])
	}
}
