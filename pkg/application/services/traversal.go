package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"bomcalc/pkg/domain/entities"
)

// Explode returns the leaf-material quantities consumed per one unit of
// code. Results are memoized for the engine instance; the cache is
// dropped whenever relations are rebuilt.
func (e *Engine) Explode(code entities.MaterialCode) (map[entities.MaterialCode]decimal.Decimal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.explodeLeaves(code)
}

// explodeLeaves is the collapsed-to-leaves view of the unified
// traversal: every node the walk reaches, restricted to leaves.
func (e *Engine) explodeLeaves(code entities.MaterialCode) (map[entities.MaterialCode]decimal.Decimal, error) {
	all, err := e.explodeAll(code, nil)
	if err != nil {
		return nil, err
	}
	leaves := make(map[entities.MaterialCode]decimal.Decimal, len(all))
	for m, qty := range all {
		if e.isLeaf(m) {
			leaves[m] = qty
		}
	}
	return leaves, nil
}

// isLeaf reports whether a code terminates explosion. A raw-classified
// code is never exploded further even if it has BOM children; any other
// code with no (or an empty) relation list is a leaf.
func (e *Engine) isLeaf(code entities.MaterialCode) bool {
	if e.classify(code) == entities.Raw {
		return true
	}
	return len(e.relations[code]) == 0
}

// explodeAll walks the relation graph once per code, computing the
// per-unit required quantity of every reachable material, the code
// itself included. Quantities are additive across all paths reaching the
// same material. The path parameter guards against cycles: a revisit
// fails with CyclicBOMError instead of recursing forever.
func (e *Engine) explodeAll(code entities.MaterialCode, path []entities.MaterialCode) (map[entities.MaterialCode]decimal.Decimal, error) {
	code = entities.MaterialCode(strings.TrimSpace(string(code)))

	if cached, ok := e.cache[code]; ok {
		return cached, nil
	}
	for i, p := range path {
		if p == code {
			chain := append(append([]entities.MaterialCode{}, path[i:]...), code)
			return nil, &entities.CyclicBOMError{Chain: chain}
		}
	}

	total := map[entities.MaterialCode]decimal.Decimal{code: decimal.NewFromInt(1)}
	if !e.isLeaf(code) {
		path = append(path, code)
		for _, comp := range e.relations[code] {
			sub, err := e.explodeAll(comp.Code, path)
			if err != nil {
				return nil, err
			}
			for m, qty := range sub {
				total[m] = total[m].Add(qty.Mul(comp.Quantity))
			}
		}
	}

	e.cache[code] = total
	return total, nil
}
