package entities

import "github.com/shopspring/decimal"

// Period is one time-bucket column label from the production plan,
// typically a month.
type Period string

// PlanRow is one production plan row: a top-level material and its
// planned build quantity per period. Periods whose cell failed to parse
// are absent from the map.
type PlanRow struct {
	Code    MaterialCode
	Periods map[Period]decimal.Decimal
}
