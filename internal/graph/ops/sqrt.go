package ops

import (
	"fmt"

	"github.com/gradjit/gradjit/internal/graph"
)

// SqrtOp is the square root: y = sqrt(x).
//
// Backward pass:
//   - d(sqrt(x))/dx = 0.5 / sqrt(x)
type SqrtOp struct {
	unary
}

// NewSqrtOp creates a new SqrtOp over the operand x.
func NewSqrtOp(x *graph.Node) *SqrtOp {
	return &SqrtOp{unary{parents: []*graph.Node{x}}}
}

// Forward computes sqrt(x).
func (op *SqrtOp) Forward() float32 {
	return sqrtf(op.x().Value())
}

// Partial returns 0.5 / sqrt(x).
func (op *SqrtOp) Partial(int) float32 {
	return 0.5 / sqrtf(op.x().Value())
}

// Precedence of the function form.
func (op *SqrtOp) Precedence() int { return 0 }

// Print formats "sqrt(x)".
func (op *SqrtOp) Print(l, _ string) string { return "sqrt(" + l + ")" }

// EmitForward emits "sqrt(X)".
func (op *SqrtOp) EmitForward(*graph.Node) string {
	return fmt.Sprintf("sqrt(%s)", graph.CRef(op.x()))
}

// EmitBackward emits "0.5f*g/sqrt(X)".
func (op *SqrtOp) EmitBackward(_ *graph.Node, _ int, g string) string {
	return fmt.Sprintf("0.5f*%s/sqrt(%s)", g, graph.CRef(op.x()))
}
