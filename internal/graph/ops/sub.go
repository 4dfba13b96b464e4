package ops

import (
	"fmt"

	"github.com/gradjit/gradjit/internal/graph"
)

// SubOp is scalar subtraction: y = l - r.
//
// Backward pass:
//   - d(l-r)/dl = 1, d(l-r)/dr = -1
type SubOp struct {
	binary
}

// NewSubOp creates a new SubOp over the operands [l, r].
func NewSubOp(l, r *graph.Node) *SubOp {
	return &SubOp{binary{parents: []*graph.Node{l, r}}}
}

// Forward computes l - r.
func (op *SubOp) Forward() float32 {
	return op.l().Value() - op.r().Value()
}

// Partial returns 1 for the left operand, -1 for the right.
func (op *SubOp) Partial(i int) float32 {
	return float32(1 - 2*i)
}

// Precedence of subtraction.
func (op *SubOp) Precedence() int { return 1 }

// Print formats "l - r".
func (op *SubOp) Print(l, r string) string { return l + " - " + r }

// EmitForward emits "L - R".
func (op *SubOp) EmitForward(*graph.Node) string {
	return fmt.Sprintf("%s - %s", graph.CRef(op.l()), graph.CRef(op.r()))
}

// EmitBackward passes the gradient through for the left operand and
// negates it for the right.
func (op *SubOp) EmitBackward(_ *graph.Node, i int, g string) string {
	if i == 0 {
		return g
	}
	return "-" + g
}
