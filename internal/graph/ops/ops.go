// Package ops implements the closed operation family of the
// expression DAG.
//
// Each operation implements graph.Operation, which covers:
//   - Forward: value from the operands' current values
//   - Partial: derivative with respect to one operand index
//   - Precedence/Print: infix pretty-printing
//   - EmitForward/EmitBackward: C fragments for the generated passes
//
// The family is fixed: AddOp, SubOp, MulOp, DivOp, SqrtOp, ExpOp,
// PowConstOp, PowOp. Nothing is guarded numerically; division by
// zero, sqrt of negatives and log of non-positives follow IEEE-754
// float32 semantics unchanged.
package ops

import "github.com/gradjit/gradjit/internal/graph"

// Compile-time interface checks.
var (
	_ graph.Operation = (*AddOp)(nil)
	_ graph.Operation = (*SubOp)(nil)
	_ graph.Operation = (*MulOp)(nil)
	_ graph.Operation = (*DivOp)(nil)
	_ graph.Operation = (*SqrtOp)(nil)
	_ graph.Operation = (*ExpOp)(nil)
	_ graph.Operation = (*PowConstOp)(nil)
	_ graph.Operation = (*PowOp)(nil)
)

// binary holds the ordered operands [l, r] of a two-operand op.
type binary struct {
	parents []*graph.Node
}

// Parents returns the operands [l, r].
func (b *binary) Parents() []*graph.Node { return b.parents }

func (b *binary) l() *graph.Node { return b.parents[0] }
func (b *binary) r() *graph.Node { return b.parents[1] }

// unary holds the single operand of a one-operand op.
type unary struct {
	parents []*graph.Node
}

// Parents returns the single operand [x].
func (u *unary) Parents() []*graph.Node { return u.parents }

func (u *unary) x() *graph.Node { return u.parents[0] }
