package ops

import (
	"fmt"

	"github.com/gradjit/gradjit/internal/graph"
)

// PowConstOp raises the operand to a constant exponent: y = x^e.
//
// Backward pass:
//   - d(x^e)/dx = e * x^(e-1)
//
// Exponent 2 gets a fast path in generated code: x*x in the forward
// pass and 2*x in the backward pass, avoiding pow entirely.
type PowConstOp struct {
	unary
	exponent float32
}

// NewPowConstOp creates a new PowConstOp over the operand x with the
// given constant exponent.
func NewPowConstOp(x *graph.Node, exponent float32) *PowConstOp {
	return &PowConstOp{unary{parents: []*graph.Node{x}}, exponent}
}

// Exponent returns the constant exponent.
func (op *PowConstOp) Exponent() float32 { return op.exponent }

// Forward computes x^e.
func (op *PowConstOp) Forward() float32 {
	return powf(op.x().Value(), op.exponent)
}

// Partial returns e * x^(e-1).
func (op *PowConstOp) Partial(int) float32 {
	return op.exponent * powf(op.x().Value(), op.exponent-1)
}

// Precedence of exponentiation.
func (op *PowConstOp) Precedence() int { return 3 }

// Print formats "x^e" with a short decimal exponent.
func (op *PowConstOp) Print(l, _ string) string {
	return l + "^" + graph.FormatShort(op.exponent)
}

// EmitForward emits "X*X" for exponent 2, "pow(X, e)" otherwise with
// the exponent inlined as a hex-float literal.
func (op *PowConstOp) EmitForward(*graph.Node) string {
	if op.exponent == 2 {
		ref := graph.CRef(op.x())
		return fmt.Sprintf("%s*%s", ref, ref)
	}
	return fmt.Sprintf("pow(%s,%s)", graph.CRef(op.x()), graph.HexFloat32(op.exponent))
}

// EmitBackward emits "g*2*X" for exponent 2, "g*e*pow(X, e-1)"
// otherwise with e and e-1 inlined as hex-float literals.
func (op *PowConstOp) EmitBackward(_ *graph.Node, _ int, g string) string {
	if op.exponent == 2 {
		return fmt.Sprintf("%s*2*%s", g, graph.CRef(op.x()))
	}
	return fmt.Sprintf("%s*%s*pow(%s,%s)",
		g, graph.HexFloat32(op.exponent), graph.CRef(op.x()), graph.HexFloat32(op.exponent-1))
}
