package entities

import "github.com/shopspring/decimal"

// BOMRow is one raw bill-of-materials row after column resolution but
// before quantity parsing. Quantity stays a string here because
// deduplication compares the cell text as loaded.
type BOMRow struct {
	Parent      MaterialCode
	Component   MaterialCode
	Quantity    string
	Description string
	Unit        string
}

// Component is one (component, quantity) pair in a parent's relation list.
// Quantity is per one unit of the parent, after unit conversion.
type Component struct {
	Code     MaterialCode
	Quantity decimal.Decimal
}

// Relations maps a parent code to its ordered component list. Insertion
// order reflects dedup-survivor order.
type Relations map[MaterialCode][]Component
