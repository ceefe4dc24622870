package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"bomcalc/pkg/domain/entities"
)

// planDescriptionAliases recognizes an optional description column in
// the second plan position; when present it is skipped, and every
// remaining column is a period.
var planDescriptionAliases = map[string]bool{
	"material description": true,
	"description":          true,
}

// RequirementsOptions adjusts the requirements computation.
type RequirementsOptions struct {
	// RawOnly restricts output to Raw-classified materials.
	RawOnly bool
}

// RequirementsResult holds the per-material, per-period requirement
// totals for one plan run, plus the metadata needed to render them.
type RequirementsResult struct {
	Periods   []entities.Period
	Totals    map[entities.MaterialCode]map[entities.Period]decimal.Decimal
	Materials map[entities.MaterialCode]entities.Material
}

// Total returns the sum across all periods for one material.
func (r *RequirementsResult) Total(code entities.MaterialCode) decimal.Decimal {
	var total decimal.Decimal
	for _, p := range r.Periods {
		total = total.Add(r.Totals[code][p])
	}
	return total
}

// Codes returns the material codes sorted for reproducible output.
func (r *RequirementsResult) Codes() []entities.MaterialCode {
	codes := make([]entities.MaterialCode, 0, len(r.Totals))
	for code := range r.Totals {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Table renders the result: one row per material, sorted by code, with
// description, standardized unit, classification, controller tag, one
// column per period, and a Total column.
func (r *RequirementsResult) Table(name string) entities.Table {
	columns := []string{"Material", "Description", "UoM", "Type", "Controller"}
	for _, p := range r.Periods {
		columns = append(columns, string(p))
	}
	columns = append(columns, "Total")

	rows := make([][]string, 0, len(r.Totals))
	for _, code := range r.Codes() {
		m := r.Materials[code]
		row := []string{string(code), m.Description, m.StandardizedUnit, m.Type.String(), m.ControllerTag}
		for _, p := range r.Periods {
			row = append(row, r.Totals[code][p].String())
		}
		row = append(row, r.Total(code).String())
		rows = append(rows, row)
	}

	return entities.Table{Name: name, Columns: columns, Rows: rows}
}

// Requirements walks the production plan, explodes each top-level item
// once, and accumulates period-scaled leaf quantities into a
// per-material, per-period total.
func (e *Engine) Requirements(plan entities.RawTable, opts RequirementsOptions) (*RequirementsResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	rows, periods, err := e.parsePlan(plan)
	if err != nil {
		return nil, err
	}
	return e.aggregate(rows, periods, true, opts.RawOnly)
}

// aggregate runs the unified traversal over every plan row. leavesOnly
// selects the collapsed-to-leaves view; with it off, quantities
// accumulate at every level of the BOM. rawOnly further restricts
// accumulation to raw-classified materials.
func (e *Engine) aggregate(rows []entities.PlanRow, periods []entities.Period, leavesOnly, rawOnly bool) (*RequirementsResult, error) {
	totals := make(map[entities.MaterialCode]map[entities.Period]decimal.Decimal)
	for i, row := range rows {
		var perUnit map[entities.MaterialCode]decimal.Decimal
		var err error
		if leavesOnly {
			perUnit, err = e.explodeLeaves(row.Code)
		} else {
			perUnit, err = e.explodeAll(row.Code, nil)
		}
		if err != nil {
			return nil, fmt.Errorf("exploding plan item %s: %w", row.Code, err)
		}

		for _, period := range periods {
			planned, ok := row.Periods[period]
			if !ok || planned.IsZero() {
				continue
			}
			for m, per := range perUnit {
				if rawOnly && e.classify(m) != entities.Raw {
					continue
				}
				mt, ok := totals[m]
				if !ok {
					mt = make(map[entities.Period]decimal.Decimal, len(periods))
					totals[m] = mt
				}
				mt[period] = mt[period].Add(planned.Mul(per))
			}
		}
		e.sink.Progress(i+1, len(rows))
	}

	materials := make(map[entities.MaterialCode]entities.Material, len(totals))
	for code := range totals {
		materials[code] = *e.material(code)
	}

	e.sink.Infof("processed %d plan rows into %d material requirements", len(rows), len(totals))
	return &RequirementsResult{Periods: periods, Totals: totals, Materials: materials}, nil
}

// parsePlan reads the production plan table: the first column is the
// top-level code, an optional description column is skipped, and every
// remaining column is a period. Rows with a blank code contribute
// nothing; cells that fail numeric parsing are treated as absent for
// that period only.
func (e *Engine) parsePlan(plan entities.RawTable) ([]entities.PlanRow, []entities.Period, error) {
	if len(plan.Columns) == 0 {
		return nil, nil, &entities.SchemaError{Table: plan.Name, Missing: []string{"top-level code", "period columns"}}
	}

	first := 1
	if len(plan.Columns) > 1 && planDescriptionAliases[strings.ToLower(strings.TrimSpace(plan.Columns[1]))] {
		first = 2
	}
	if len(plan.Columns) <= first {
		return nil, nil, &entities.SchemaError{Table: plan.Name, Missing: []string{"period columns"}}
	}

	periods := make([]entities.Period, 0, len(plan.Columns)-first)
	for _, col := range plan.Columns[first:] {
		periods = append(periods, entities.Period(strings.TrimSpace(col)))
	}

	rows := make([]entities.PlanRow, 0, len(plan.Rows))
	for _, rec := range plan.Rows {
		code := entities.MaterialCode(plan.Cell(rec, 0))
		if missing(string(code)) {
			continue
		}
		row := entities.PlanRow{Code: code, Periods: make(map[entities.Period]decimal.Decimal, len(periods))}
		for i, p := range periods {
			cell := plan.Cell(rec, first+i)
			if cell == "" {
				continue
			}
			qty, err := parseQuantity(cell)
			if err != nil {
				e.sink.Warnf("plan %s: unparsable value for period %s: %q", code, p, cell)
				continue
			}
			row.Periods[p] = qty
		}
		rows = append(rows, row)
	}

	return rows, periods, nil
}
