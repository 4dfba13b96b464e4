package ops

import (
	"fmt"

	"github.com/gradjit/gradjit/internal/graph"
)

// DivOp is scalar division: y = l / r.
//
// Backward pass:
//   - d(l/r)/dl = 1/r
//   - d(l/r)/dr = -l/r²
type DivOp struct {
	binary
}

// NewDivOp creates a new DivOp over the operands [l, r].
func NewDivOp(l, r *graph.Node) *DivOp {
	return &DivOp{binary{parents: []*graph.Node{l, r}}}
}

// Forward computes l / r.
func (op *DivOp) Forward() float32 {
	return op.l().Value() / op.r().Value()
}

// Partial returns 1/r for the left operand, -l/r² for the right.
func (op *DivOp) Partial(i int) float32 {
	if i == 0 {
		return 1 / op.r().Value()
	}
	r := op.r().Value()
	return -op.l().Value() / (r * r)
}

// Precedence of division.
func (op *DivOp) Precedence() int { return 2 }

// Print formats "l/r".
func (op *DivOp) Print(l, r string) string { return l + "/" + r }

// EmitForward emits "L / R".
func (op *DivOp) EmitForward(*graph.Node) string {
	return fmt.Sprintf("%s / %s", graph.CRef(op.l()), graph.CRef(op.r()))
}

// EmitBackward emits "g/R" for the left operand and "-g*L/(R*R)" for
// the right.
func (op *DivOp) EmitBackward(_ *graph.Node, i int, g string) string {
	if i == 0 {
		return fmt.Sprintf("%s/%s", g, graph.CRef(op.r()))
	}
	return fmt.Sprintf("-%s*%s/(%s*%s)", g, graph.CRef(op.l()), graph.CRef(op.r()), graph.CRef(op.r()))
}
