package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"bomcalc/pkg/domain/entities"
)

// Rollup maps a manufactured material to the total quantity that must be
// produced to satisfy the plan.
type Rollup map[entities.MaterialCode]decimal.Decimal

// ManufacturingRollup selects from the all-levels result every material
// classified as a manufactured intermediate whose total requirement is
// positive. A pure filter over the aggregate, not a new traversal.
func (e *Engine) ManufacturingRollup(res *AllLevelsResult) Rollup {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(Rollup)
	for code := range res.Totals {
		if e.classify(code) != entities.Manufactured {
			continue
		}
		if total := res.Total(code); total.IsPositive() {
			out[code] = total
		}
	}
	return out
}

// ManufacturingRollupFromPlan derives production quantities directly
// from plan rows whose top-level code classifies as manufactured.
func (e *Engine) ManufacturingRollupFromPlan(plan entities.RawTable) (Rollup, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rows, periods, err := e.parsePlan(plan)
	if err != nil {
		return nil, err
	}

	out := make(Rollup)
	for _, row := range rows {
		if e.classify(row.Code) != entities.Manufactured {
			continue
		}
		var total decimal.Decimal
		for _, p := range periods {
			total = total.Add(row.Periods[p])
		}
		if total.IsPositive() {
			out[row.Code] = out[row.Code].Add(total)
		}
	}
	return out, nil
}

// RollupTable renders a rollup with the engine's material metadata,
// sorted by code.
func (e *Engine) RollupTable(name string, rollup Rollup) entities.Table {
	e.mu.Lock()
	defer e.mu.Unlock()

	codes := make([]entities.MaterialCode, 0, len(rollup))
	for code := range rollup {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		m := e.material(code)
		rows = append(rows, []string{
			string(code), m.Description, m.StandardizedUnit, rollup[code].String(),
		})
	}

	return entities.Table{
		Name:    name,
		Columns: []string{"Material", "Description", "UoM", "Quantity To Produce"},
		Rows:    rows,
	}
}
