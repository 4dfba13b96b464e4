// Package dual implements the user-facing handle of the gradjit
// engine.
//
// A Dual wraps one node of the expression DAG. Arithmetic on handles
// builds new nodes; the handle whose expression you care about then
// drives interpreted evaluation (Forward/Backward) or, after Compile,
// the generated native passes (ForwardCompiled/BackwardCompiled).
// Both paths read and write the same float cells.
package dual

import (
	"runtime"

	"github.com/gradjit/gradjit/internal/graph"
	"github.com/gradjit/gradjit/internal/graph/ops"
	"github.com/gradjit/gradjit/internal/jit"
)

// Dual is a handle on one node of the expression DAG. Handles are
// cheap; the DAG below them is shared, not copied.
type Dual struct {
	node *graph.Node

	fwd    *jit.ForwardFunc
	bwd    *jit.BackwardFunc
	pinner *runtime.Pinner
}

func wrap(n *graph.Node) *Dual { return &Dual{node: n} }

// Const returns a constant leaf. Its value may be inlined into
// generated code, so updating it after Compile has no effect on the
// compiled passes.
func Const(v float32) *Dual { return wrap(graph.NewConst(v)) }

// Var returns a differentiable leaf; backward passes accumulate into
// its grad slot.
func Var(v float32) *Dual { return wrap(graph.NewVar(v)) }

// Leaf returns a plain input leaf: address-referenced in generated
// code (updates take effect), but not differentiated.
func Leaf(v float32) *Dual { return wrap(graph.NewLeaf(v)) }

// Node exposes the underlying graph node.
func (d *Dual) Node() *graph.Node { return d.node }

// Add returns a new handle on l + r.
func (d *Dual) Add(o *Dual) *Dual { return wrap(graph.Apply(ops.NewAddOp(d.node, o.node))) }

// Sub returns a new handle on l - r.
func (d *Dual) Sub(o *Dual) *Dual { return wrap(graph.Apply(ops.NewSubOp(d.node, o.node))) }

// Mul returns a new handle on l * r.
func (d *Dual) Mul(o *Dual) *Dual { return wrap(graph.Apply(ops.NewMulOp(d.node, o.node))) }

// Div returns a new handle on l / r.
func (d *Dual) Div(o *Dual) *Dual { return wrap(graph.Apply(ops.NewDivOp(d.node, o.node))) }

// Sqrt returns a new handle on sqrt(x).
func (d *Dual) Sqrt() *Dual { return wrap(graph.Apply(ops.NewSqrtOp(d.node))) }

// Exp returns a new handle on exp(x).
func (d *Dual) Exp() *Dual { return wrap(graph.Apply(ops.NewExpOp(d.node))) }

// PowConst returns a new handle on x^e for a constant exponent.
func (d *Dual) PowConst(e float32) *Dual {
	return wrap(graph.Apply(ops.NewPowConstOp(d.node, e)))
}

// Pow returns a new handle on l^r.
func (d *Dual) Pow(o *Dual) *Dual { return wrap(graph.Apply(ops.NewPowOp(d.node, o.node))) }

// Value returns the node's current value.
func (d *Dual) Value() float32 { return d.node.Value() }

// SetValue writes the node's value slot. On a leaf this feeds a new
// input; structure is untouched.
func (d *Dual) SetValue(v float32) { d.node.SetValue(v) }

// Grad returns the accumulated gradient.
func (d *Dual) Grad() float32 { return d.node.Grad() }

// SetGrad writes the gradient slot.
func (d *Dual) SetGrad(g float32) { d.node.SetGrad(g) }

// ZeroGrad zeroes the gradient slot. Gradients accumulate across
// backward passes; callers zero their variables between passes.
func (d *Dual) ZeroGrad() { d.node.SetGrad(0) }

// Name returns the pretty-print label, or "".
func (d *Dual) Name() string { return d.node.Name() }

// SetName labels the node for pretty-printing.
func (d *Dual) SetName(name string) { d.node.SetName(name) }

// RequiresGrad reports whether backward propagation reaches the node.
func (d *Dual) RequiresGrad() bool { return d.node.RequiresGrad() }

// SetRequiresGrad mutates the flag on this node only; it does not
// propagate into expressions already built from it. Rebuild the
// expression for the change to matter upstream.
func (d *Dual) SetRequiresGrad(rg bool) { d.node.SetRequiresGrad(rg) }

// Forward recomputes every node below the handle from the current
// leaf values and returns the root value.
func (d *Dual) Forward() float32 { return d.node.Forward() }

// Backward accumulates seed * d(root)/d(node) into every reachable
// requires-grad node, visiting every edge of the DAG. Nothing is
// zeroed first.
func (d *Dual) Backward(seed float32) { d.node.Backward(seed) }

// ExprString renders the expression as precedence-bracketed infix.
func (d *Dual) ExprString() string { return d.node.ExprString() }

// Counts summarises the DAG below the handle.
func (d *Dual) Counts() graph.Counts { return d.node.Counts() }

// Compile emits the forward and backward passes for this handle's
// DAG, registers them with the loader, and compiles and loads the
// shared object. Node storage is pinned first: the generated code
// addresses the value/grad cells by raw pointer, so they must not
// move while the library is loaded.
//
// On error the handle stays fully usable in interpreted mode.
func (d *Dual) Compile(l *jit.Loader) error {
	if d.pinner == nil {
		d.pinner = new(runtime.Pinner)
	}
	d.node.Pin(d.pinner)

	fwd := l.AddForward("forward", graph.ForwardSource(d.node))
	bwd := l.AddBackward("backward", graph.BackwardSource(d.node))

	if err := l.CompileAndLoad(); err != nil {
		return err
	}
	d.fwd, d.bwd = fwd, bwd
	return nil
}

// Compiled reports whether a successful Compile has installed the
// native passes.
func (d *Dual) Compiled() bool {
	return d.fwd != nil && *d.fwd != nil && d.bwd != nil && *d.bwd != nil
}

// ForwardCompiled runs the generated forward pass. It writes every
// non-leaf slot in place and returns the root value. Panics if the
// handle has not been compiled.
func (d *Dual) ForwardCompiled() float32 {
	if !d.Compiled() {
		panic("dual: ForwardCompiled called before a successful Compile")
	}
	v := (*d.fwd)()
	d.node.SetValue(v)
	return v
}

// BackwardCompiled runs the generated backward pass with the given
// seed gradient. Panics if the handle has not been compiled.
func (d *Dual) BackwardCompiled(seed float32) {
	if !d.Compiled() {
		panic("dual: BackwardCompiled called before a successful Compile")
	}
	(*d.bwd)(seed)
}

// Release drops the compiled entry points and unpins node storage.
// The loader that owns the library must be closed before or
// immediately after; compiled functions must not run once storage is
// unpinned.
func (d *Dual) Release() {
	d.fwd, d.bwd = nil, nil
	if d.pinner != nil {
		d.pinner.Unpin()
		d.pinner = nil
	}
}
