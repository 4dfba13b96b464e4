package ops

import (
	"fmt"

	"github.com/gradjit/gradjit/internal/graph"
)

// ExpOp is the exponential: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
type ExpOp struct {
	unary
}

// NewExpOp creates a new ExpOp over the operand x.
func NewExpOp(x *graph.Node) *ExpOp {
	return &ExpOp{unary{parents: []*graph.Node{x}}}
}

// Forward computes exp(x).
func (op *ExpOp) Forward() float32 {
	return expf(op.x().Value())
}

// Partial returns exp(x), which equals the node's own value.
func (op *ExpOp) Partial(int) float32 {
	return expf(op.x().Value())
}

// Precedence of the function form.
func (op *ExpOp) Precedence() int { return 0 }

// Print formats "Exp[x]".
func (op *ExpOp) Print(l, _ string) string { return "Exp[" + l + "]" }

// EmitForward emits "exp(X)".
func (op *ExpOp) EmitForward(*graph.Node) string {
	return fmt.Sprintf("exp(%s)", graph.CRef(op.x()))
}

// EmitBackward reuses the already-computed result: "g*v(&self.value)".
func (op *ExpOp) EmitBackward(self *graph.Node, _ int, g string) string {
	return fmt.Sprintf("%s*%s", g, graph.CRef(self))
}
