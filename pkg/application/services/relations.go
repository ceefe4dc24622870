package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"bomcalc/pkg/domain/entities"
	domainservices "bomcalc/pkg/domain/services"
)

// BuildRelations parses raw BOM rows into the deduplicated parent to
// component relation table and captures material metadata observed along
// the way. Any relations, metadata, and cached traversals derived from a
// previous BOM are discarded first.
func (e *Engine) BuildRelations(bom entities.RawTable) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cols, err := resolveColumns(bom, e.bomFields)
	if err != nil {
		return err
	}

	rows := extractRows(bom, cols)
	stats := BuildStats{RowsRead: len(rows)}
	rows = dedupe(rows, &stats)

	e.relations = make(entities.Relations)
	e.parents = make(map[entities.MaterialCode][]entities.MaterialCode)
	e.materials = make(map[entities.MaterialCode]*entities.Material)
	e.cache = make(map[entities.MaterialCode]map[entities.MaterialCode]decimal.Decimal)

	for _, row := range rows {
		e.captureMetadata(row)
	}

	for _, row := range rows {
		qty, err := parseQuantity(row.Quantity)
		if err != nil {
			stats.ParseWarnings++
			e.sink.Warnf("invalid quantity for %s -> %s: %q", row.Parent, row.Component, row.Quantity)
			continue
		}
		converted, _ := domainservices.ConvertQuantity(qty, row.Unit)
		if !converted.IsPositive() {
			stats.NonPositiveDropped++
			continue
		}
		e.relations[row.Parent] = append(e.relations[row.Parent], entities.Component{
			Code:     row.Component,
			Quantity: converted,
		})
		e.parents[row.Component] = append(e.parents[row.Component], row.Parent)
		stats.EdgesBuilt++
	}

	e.stats = stats
	e.sink.Infof("built relations for %d parent materials (%d edges, %d rows dropped)",
		len(e.relations), stats.EdgesBuilt, stats.RowsRead-stats.EdgesBuilt)
	return nil
}

// ApplyControllerTable layers the optional material master table on top
// of BOM-derived metadata. It is authoritative: its description always
// overrides, and the controller tag is recorded verbatim. Fails only
// when the material column cannot be identified.
func (e *Engine) ApplyControllerTable(table entities.RawTable) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cols, err := resolveColumns(table, DefaultControllerFields())
	if err != nil {
		return err
	}

	applied := 0
	for _, rec := range table.Rows {
		code := entities.MaterialCode(table.Cell(rec, cols[FieldMaterial]))
		if missing(string(code)) {
			continue
		}
		m := e.material(code)
		if idx, ok := cols[FieldDescription]; ok {
			if d := table.Cell(rec, idx); !missing(d) {
				m.Description = d
			}
		}
		if idx, ok := cols[FieldController]; ok {
			if c := table.Cell(rec, idx); !missing(c) {
				m.ControllerTag = c
			}
		}
		applied++
	}

	e.sink.Infof("applied controller data for %d materials", applied)
	return nil
}

// extractRows pulls the resolved columns out of each record. Cells are
// trimmed; cells beyond a short record read as empty.
func extractRows(bom entities.RawTable, cols map[string]int) []entities.BOMRow {
	get := func(rec []string, field string) string {
		idx, ok := cols[field]
		if !ok {
			return ""
		}
		return bom.Cell(rec, idx)
	}

	rows := make([]entities.BOMRow, 0, len(bom.Rows))
	for _, rec := range bom.Rows {
		rows = append(rows, entities.BOMRow{
			Parent:      entities.MaterialCode(get(rec, FieldParent)),
			Component:   entities.MaterialCode(get(rec, FieldComponent)),
			Quantity:    get(rec, FieldQuantity),
			Description: get(rec, FieldDescription),
			Unit:        get(rec, FieldUnit),
		})
	}
	return rows
}

// missing reports a cell that carries no usable value.
func missing(s string) bool {
	return s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "none")
}

// dedupe applies the four cleaning steps in order: drop rows empty in
// every observed column, drop rows missing an essential cell, drop exact
// duplicates of (parent, component, quantity, unit) keeping the first
// occurrence, then collapse (parent, component) duplicates keeping the
// last so a later BOM revision overrides an earlier one. Running it on
// its own output changes nothing.
func dedupe(rows []entities.BOMRow, stats *BuildStats) []entities.BOMRow {
	step1 := make([]entities.BOMRow, 0, len(rows))
	for _, r := range rows {
		if missing(string(r.Parent)) && missing(string(r.Component)) &&
			missing(r.Quantity) && missing(r.Description) && missing(r.Unit) {
			stats.EmptyDropped++
			continue
		}
		step1 = append(step1, r)
	}

	step2 := make([]entities.BOMRow, 0, len(step1))
	for _, r := range step1 {
		if missing(string(r.Parent)) || missing(string(r.Component)) || missing(r.Quantity) {
			stats.MissingDropped++
			continue
		}
		step2 = append(step2, r)
	}

	type exactKey struct {
		parent, component entities.MaterialCode
		quantity, unit    string
	}
	seen := make(map[exactKey]bool, len(step2))
	step3 := make([]entities.BOMRow, 0, len(step2))
	for _, r := range step2 {
		key := exactKey{r.Parent, r.Component, r.Quantity, r.Unit}
		if seen[key] {
			stats.ExactDupDropped++
			continue
		}
		seen[key] = true
		step3 = append(step3, r)
	}

	type edgeKey struct {
		parent, component entities.MaterialCode
	}
	last := make(map[edgeKey]int, len(step3))
	for i, r := range step3 {
		last[edgeKey{r.Parent, r.Component}] = i
	}
	step4 := make([]entities.BOMRow, 0, len(step3))
	for i, r := range step3 {
		if last[edgeKey{r.Parent, r.Component}] != i {
			stats.EdgeDupDropped++
			continue
		}
		step4 = append(step4, r)
	}

	return step4
}

// captureMetadata records description and units for both the component
// and parent roles on the row. First write wins; the controller table
// overrides later.
func (e *Engine) captureMetadata(row entities.BOMRow) {
	for _, code := range []entities.MaterialCode{row.Component, row.Parent} {
		if missing(string(code)) {
			continue
		}
		m := e.material(code)
		if m.Description == "" && !missing(row.Description) {
			m.Description = row.Description
		}
		if m.OriginalUnit == "" && !missing(row.Unit) {
			m.OriginalUnit = row.Unit
			m.StandardizedUnit = domainservices.NormalizeUnit(row.Unit)
		}
	}
}

// parseQuantity accepts ',' interchangeably with '.' as the decimal
// separator.
func parseQuantity(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}
