package services

import (
	"sort"
	"strconv"

	"bomcalc/pkg/domain/entities"
)

// AllLevelsResult adds per-material depth tags to the aggregate totals.
type AllLevelsResult struct {
	RequirementsResult
	Levels map[entities.MaterialCode]int
}

// Table renders the all-levels view: one row per material, sorted by
// level then code, with a Level column between the metadata and the
// period columns.
func (r *AllLevelsResult) Table(name string) entities.Table {
	columns := []string{"Material", "Description", "UoM", "Type", "Level"}
	for _, p := range r.Periods {
		columns = append(columns, string(p))
	}
	columns = append(columns, "Total")

	codes := r.Codes()
	sort.SliceStable(codes, func(i, j int) bool { return r.Levels[codes[i]] < r.Levels[codes[j]] })

	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		m := r.Materials[code]
		row := []string{
			string(code), m.Description, m.StandardizedUnit, m.Type.String(),
			levelString(r.Levels[code]),
		}
		for _, p := range r.Periods {
			row = append(row, r.Totals[code][p].String())
		}
		row = append(row, r.Total(code).String())
		rows = append(rows, row)
	}

	return entities.Table{Name: name, Columns: columns, Rows: rows}
}

func levelString(level int) string {
	if level == entities.UnknownLevel {
		return "?"
	}
	return strconv.Itoa(level)
}

// AllLevels pushes plan quantities through the relation graph without
// collapsing to leaves: every intermediate material accumulates the
// quantity required of it per period, and each material is tagged with
// its depth below the plan's top-level items.
func (e *Engine) AllLevels(plan entities.RawTable) (*AllLevelsResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rows, periods, err := e.parsePlan(plan)
	if err != nil {
		return nil, err
	}
	res, err := e.aggregate(rows, periods, false, false)
	if err != nil {
		return nil, err
	}

	tops := make(map[entities.MaterialCode]bool, len(rows))
	for _, row := range rows {
		tops[row.Code] = true
	}

	levels := make(map[entities.MaterialCode]int, len(res.Totals))
	for code := range res.Totals {
		level := e.levelOf(code, tops)
		levels[code] = level
		m := res.Materials[code]
		m.Level = level
		res.Materials[code] = m
		e.material(code).Level = level
	}

	return &AllLevelsResult{RequirementsResult: *res, Levels: levels}, nil
}

// levelOf searches upward through the relation graph for a parent chain
// from code to any plan top-level item, returning hop count + 1. The
// search is visited-set guarded, so cyclic relations cannot trap it;
// UnknownLevel is returned when no chain exists.
func (e *Engine) levelOf(code entities.MaterialCode, tops map[entities.MaterialCode]bool) int {
	type entry struct {
		code entities.MaterialCode
		hops int
	}
	visited := map[entities.MaterialCode]bool{code: true}
	queue := []entry{{code, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if tops[cur.code] {
			return cur.hops + 1
		}
		for _, parent := range e.parents[cur.code] {
			if !visited[parent] {
				visited[parent] = true
				queue = append(queue, entry{parent, cur.hops + 1})
			}
		}
	}
	return entities.UnknownLevel
}
