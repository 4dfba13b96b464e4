// Package exprgen builds random expressions for benchmarks and
// stress tests.
package exprgen

import (
	"math/rand"

	"github.com/gradjit/gradjit/internal/dual"
)

// Generator produces random expression DAGs over a fixed set of
// variables. The same seed yields the same expression.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator with a deterministic seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Expr grows a random expression over vars; minDepth must not exceed
// maxDepth. Until minDepth levels have been consumed only operations
// are drawn; once maxDepth is exhausted only variables are. In
// between the draw is weighted toward multiplication, matching one
// add, one sub and two mul chances against five variable picks.
func (g *Generator) Expr(minDepth, maxDepth int, vars []*dual.Dual) *dual.Dual {
	lo, hi := 0, 3
	if maxDepth <= 0 {
		lo = 4
	}
	if minDepth <= 0 {
		hi = 8
	}
	switch g.rng.Intn(hi-lo+1) + lo {
	case 0:
		return g.Expr(minDepth-1, maxDepth-1, vars).Add(g.Expr(minDepth-1, maxDepth-1, vars))
	case 1:
		return g.Expr(minDepth-1, maxDepth-1, vars).Sub(g.Expr(minDepth-1, maxDepth-1, vars))
	case 2, 3:
		return g.Expr(minDepth-1, maxDepth-1, vars).Mul(g.Expr(minDepth-1, maxDepth-1, vars))
	default:
		return vars[g.rng.Intn(len(vars))]
	}
}
