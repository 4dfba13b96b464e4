package ops

import (
	"fmt"

	"github.com/gradjit/gradjit/internal/graph"
)

// AddOp is scalar addition: y = l + r.
//
// Backward pass:
//   - d(l+r)/dl = 1, d(l+r)/dr = 1
type AddOp struct {
	binary
}

// NewAddOp creates a new AddOp over the operands [l, r].
func NewAddOp(l, r *graph.Node) *AddOp {
	return &AddOp{binary{parents: []*graph.Node{l, r}}}
}

// Forward computes l + r.
func (op *AddOp) Forward() float32 {
	return op.l().Value() + op.r().Value()
}

// Partial returns 1 for either operand.
func (op *AddOp) Partial(int) float32 { return 1 }

// Precedence of addition.
func (op *AddOp) Precedence() int { return 1 }

// Print formats "l + r".
func (op *AddOp) Print(l, r string) string { return l + " + " + r }

// EmitForward emits "L + R".
func (op *AddOp) EmitForward(*graph.Node) string {
	return fmt.Sprintf("%s + %s", graph.CRef(op.l()), graph.CRef(op.r()))
}

// EmitBackward passes the incoming gradient through unchanged.
func (op *AddOp) EmitBackward(_ *graph.Node, _ int, g string) string {
	return g
}
