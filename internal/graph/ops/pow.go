package ops

import (
	"fmt"

	"github.com/gradjit/gradjit/internal/graph"
)

// PowOp raises one node to the power of another: y = l^r.
//
// Backward pass:
//   - d(l^r)/dl = r * l^(r-1)
//   - d(l^r)/dr = l^r * ln(l)
type PowOp struct {
	binary
}

// NewPowOp creates a new PowOp over the operands [l, r].
func NewPowOp(l, r *graph.Node) *PowOp {
	return &PowOp{binary{parents: []*graph.Node{l, r}}}
}

// Forward computes l^r.
func (op *PowOp) Forward() float32 {
	return powf(op.l().Value(), op.r().Value())
}

// Partial returns r*l^(r-1) for the base, l^r*ln(l) for the exponent.
func (op *PowOp) Partial(i int) float32 {
	l, r := op.l().Value(), op.r().Value()
	if i == 0 {
		return r * powf(l, r-1)
	}
	return powf(l, r) * logf(l)
}

// Precedence of exponentiation.
func (op *PowOp) Precedence() int { return 3 }

// Print formats "l^r".
func (op *PowOp) Print(l, r string) string { return l + "^" + r }

// EmitForward emits "pow(L, R)".
func (op *PowOp) EmitForward(*graph.Node) string {
	return fmt.Sprintf("pow(%s,%s)", graph.CRef(op.l()), graph.CRef(op.r()))
}

// EmitBackward emits "g*R*pow(L, R - 1)" for the base and
// "g*pow(L, R) * log(L)" for the exponent.
func (op *PowOp) EmitBackward(_ *graph.Node, i int, g string) string {
	l, r := graph.CRef(op.l()), graph.CRef(op.r())
	if i == 0 {
		return fmt.Sprintf("%s*%s*pow(%s,%s - 1)", g, r, l, r)
	}
	return fmt.Sprintf("%s*pow(%s,%s) * log(%s)", g, l, r, l)
}
