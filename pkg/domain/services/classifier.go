package services

import (
	"strings"

	"bomcalc/pkg/domain/entities"
)

// Classifier assigns a Classification to a material code. The engine
// takes one as configuration so alternate coding schemes can be
// substituted without touching traversal logic.
type Classifier func(entities.MaterialCode) entities.Classification

// NewPrefixClassifier builds a classifier keyed on the leading digit of
// the material code. Codes with an unrecognized prefix classify as
// Unknown.
func NewPrefixClassifier(raw, manufactured, finished byte) Classifier {
	return func(code entities.MaterialCode) entities.Classification {
		c := strings.TrimSpace(string(code))
		if c == "" {
			return entities.Unknown
		}
		switch c[0] {
		case raw:
			return entities.Raw
		case manufactured:
			return entities.Manufactured
		case finished:
			return entities.Finished
		default:
			return entities.Unknown
		}
	}
}

// DefaultClassifier follows the plant coding convention: codes starting
// with '1' are raw materials, '2' manufactured intermediates, '3'
// finished goods.
var DefaultClassifier = NewPrefixClassifier('1', '2', '3')
