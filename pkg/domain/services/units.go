package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StandardMassUnit is the unit gram-family quantities are converted into.
const StandardMassUnit = "KG"

var gramToKg = decimal.New(1, -3) // 0.001

// gramUnits is the closed set of gram-family tokens, matched
// case-insensitively after trimming.
var gramUnits = map[string]bool{
	"G":     true,
	"GR":    true,
	"GRAM":  true,
	"GRAMS": true,
}

// NormalizeUnit returns the standardized unit for a raw unit string:
// "KG" for gram-family tokens, otherwise the trimmed uppercased form.
func NormalizeUnit(unit string) string {
	u := strings.ToUpper(strings.TrimSpace(unit))
	if gramUnits[u] {
		return StandardMassUnit
	}
	return u
}

// ConvertQuantity converts gram-family quantities to kilograms by a fixed
// factor of 0.001 and passes every other unit through unchanged.
func ConvertQuantity(qty decimal.Decimal, unit string) (decimal.Decimal, string) {
	u := strings.ToUpper(strings.TrimSpace(unit))
	if gramUnits[u] {
		return qty.Mul(gramToKg), StandardMassUnit
	}
	return qty, u
}
