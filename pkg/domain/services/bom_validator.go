package services

import (
	"fmt"

	"bomcalc/pkg/domain/entities"
)

// BOMValidator provides structural validation for a relation table.
type BOMValidator struct{}

// NewBOMValidator creates a new BOM validator
func NewBOMValidator() *BOMValidator {
	return &BOMValidator{}
}

// ValidationResult contains the results of BOM validation
type ValidationResult struct {
	HasCycles  bool
	CyclePaths [][]entities.MaterialCode
	Errors     []string
}

// ValidateRelations checks a relation table for cycles. A cyclic BOM is
// a data-entry error: the explosion would never terminate without the
// traversal guard, so callers can reject the input up front.
func (v *BOMValidator) ValidateRelations(relations entities.Relations) *ValidationResult {
	result := &ValidationResult{
		CyclePaths: make([][]entities.MaterialCode, 0),
		Errors:     make([]string, 0),
	}

	cycles := v.detectCycles(relations)
	result.HasCycles = len(cycles) > 0
	result.CyclePaths = cycles

	for _, cycle := range cycles {
		result.Errors = append(result.Errors, fmt.Sprintf("BOM cycle detected: %v", cycle))
	}

	return result
}

// detectCycles uses DFS to find cycles in the relation graph
func (v *BOMValidator) detectCycles(relations entities.Relations) [][]entities.MaterialCode {
	visited := make(map[entities.MaterialCode]bool)
	recursionStack := make(map[entities.MaterialCode]bool)
	cycles := make([][]entities.MaterialCode, 0)

	for parent := range relations {
		if !visited[parent] {
			path := make([]entities.MaterialCode, 0)
			v.dfsDetectCycle(parent, relations, visited, recursionStack, path, &cycles)
		}
	}

	return cycles
}

// dfsDetectCycle performs depth-first search to detect cycles
func (v *BOMValidator) dfsDetectCycle(
	current entities.MaterialCode,
	relations entities.Relations,
	visited map[entities.MaterialCode]bool,
	recursionStack map[entities.MaterialCode]bool,
	path []entities.MaterialCode,
	cycles *[][]entities.MaterialCode,
) {
	visited[current] = true
	recursionStack[current] = true
	path = append(path, current)

	for _, comp := range relations[current] {
		child := comp.Code
		if !visited[child] {
			v.dfsDetectCycle(child, relations, visited, recursionStack, path, cycles)
		} else if recursionStack[child] {
			// Found a cycle - extract the cycle path
			cycleStart := -1
			for i, code := range path {
				if code == child {
					cycleStart = i
					break
				}
			}

			if cycleStart != -1 {
				cycle := make([]entities.MaterialCode, 0)
				cycle = append(cycle, path[cycleStart:]...)
				cycle = append(cycle, child) // Close the cycle
				*cycles = append(*cycles, cycle)
			}
		}
	}

	recursionStack[current] = false
}
