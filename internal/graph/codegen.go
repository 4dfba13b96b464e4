package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// The generator translates the DAG into two straight-line C function
// bodies. Every node's value/grad slot is addressed by its runtime
// memory address through the v(P) macro, so the generated code reads
// and writes the exact float cells the interpreter uses; there is no
// separate runtime state. Constant leaves are the one exception: they
// are inlined as exact hex-float literals.

// CRef returns the C spelling of a node's value: the hex-float
// literal for a constant leaf, v(0x…) on the value slot otherwise.
func CRef(n *Node) string {
	if n.constant {
		return HexFloat32(n.value)
	}
	return fmt.Sprintf("v(0x%x)", n.ValueAddr())
}

// HexFloat32 renders v as a C hex-float literal that round-trips the
// float32 bit-for-bit, e.g. 0x1.4p+02f.
func HexFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'x', -1, 32) + "f"
}

// ForwardSource emits the body of the forward pass: one assignment
// per non-leaf in post-order, each writing both the local running
// value and the node's own slot. A visited set keeps a shared node
// from being emitted more than once; re-emitting would still be
// correct (every write targets the node's own slot) but dedup bounds
// the output size on heavily shared DAGs. The last written value is
// the root's.
func ForwardSource(root *Node) string {
	var b strings.Builder
	b.WriteString("float value;\n")
	visited := make(map[*Node]bool)
	emitForward(&b, root, visited)
	if root.op == nil {
		// Degenerate single-leaf expression: nothing above wrote value.
		fmt.Fprintf(&b, "value = %s;\n", CRef(root))
	}
	b.WriteString("return value;\n")
	return b.String()
}

func emitForward(b *strings.Builder, n *Node, visited map[*Node]bool) {
	if n.op == nil || visited[n] {
		return
	}
	visited[n] = true
	for _, p := range n.op.Parents() {
		emitForward(b, p, visited)
	}
	fmt.Fprintf(b, "value = v(0x%x) = %s;\n", n.ValueAddr(), n.op.EmitForward(n))
}

// BackwardSource emits the body of the backward pass in pre-order
// from the root. Each visited node accumulates the running C
// `gradient` into its grad slot, saves it in a per-node local, and
// re-derives `gradient` for every requires-grad operand before
// recursing into it.
//
// Unlike the forward pass, a shared node is emitted once per incoming
// edge: the accumulation must run on every visit for the total
// derivative to be correct. Only the declaration of the per-node
// local is deduplicated (the `float` keyword appears on first
// encounter, plain assignment thereafter).
func BackwardSource(root *Node) string {
	var b strings.Builder
	declared := make(map[*Node]bool)
	emitBackward(&b, root, declared)
	return b.String()
}

func emitBackward(b *strings.Builder, n *Node, declared map[*Node]bool) {
	if !n.requiresGrad {
		return
	}
	fmt.Fprintf(b, "v(0x%x) += gradient;\n", n.GradAddr())
	if n.op == nil {
		return
	}
	g := fmt.Sprintf("g%x", n.addr())
	if declared[n] {
		fmt.Fprintf(b, "%s = gradient;\n", g)
	} else {
		declared[n] = true
		fmt.Fprintf(b, "float %s = gradient;\n", g)
	}
	for i, p := range n.op.Parents() {
		if !p.requiresGrad {
			continue
		}
		fmt.Fprintf(b, "gradient = %s;\n", n.op.EmitBackward(n, i, g))
		emitBackward(b, p, declared)
	}
}
