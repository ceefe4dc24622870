package entities

import (
	"fmt"
	"strings"
)

// SchemaError reports required logical columns that could not be
// identified in an input table. Fatal to everything downstream of that
// table.
type SchemaError struct {
	Table   string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %s: required column(s) not found: %s",
		e.Table, strings.Join(e.Missing, ", "))
}

// CyclicBOMError reports a component that transitively depends on itself.
// Chain holds the offending codes in traversal order, ending with the
// repeated code.
type CyclicBOMError struct {
	Chain []MaterialCode
}

func (e *CyclicBOMError) Error() string {
	parts := make([]string, len(e.Chain))
	for i, code := range e.Chain {
		parts[i] = string(code)
	}
	return fmt.Sprintf("cyclic BOM relation: %s", strings.Join(parts, " -> "))
}
