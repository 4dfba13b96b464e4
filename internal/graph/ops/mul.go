package ops

import (
	"fmt"

	"github.com/gradjit/gradjit/internal/graph"
)

// MulOp is scalar multiplication: y = l * r.
//
// Backward pass:
//   - d(l*r)/dl = r, d(l*r)/dr = l
type MulOp struct {
	binary
}

// NewMulOp creates a new MulOp over the operands [l, r].
func NewMulOp(l, r *graph.Node) *MulOp {
	return &MulOp{binary{parents: []*graph.Node{l, r}}}
}

// Forward computes l * r.
func (op *MulOp) Forward() float32 {
	return op.l().Value() * op.r().Value()
}

// Partial returns the other operand's current value.
func (op *MulOp) Partial(i int) float32 {
	return op.parents[1-i].Value()
}

// Precedence of multiplication.
func (op *MulOp) Precedence() int { return 2 }

// Print formats "l*r".
func (op *MulOp) Print(l, r string) string { return l + "*" + r }

// EmitForward emits "L * R".
func (op *MulOp) EmitForward(*graph.Node) string {
	return fmt.Sprintf("%s * %s", graph.CRef(op.l()), graph.CRef(op.r()))
}

// EmitBackward scales the gradient by the other operand.
func (op *MulOp) EmitBackward(_ *graph.Node, i int, g string) string {
	return fmt.Sprintf("%s*%s", g, graph.CRef(op.parents[1-i]))
}
