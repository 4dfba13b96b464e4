package graph

// Forward recomputes every non-leaf value reachable from n in
// post-order: operands first, then the node's own operation applied
// to their current values. Leaves keep whatever the user last
// assigned. There is no memoisation; a shared subgraph is legitimately
// re-traversed once per reference, which recomputes the same values.
func (n *Node) Forward() float32 {
	if n.op != nil {
		for _, p := range n.op.Parents() {
			p.Forward()
		}
		n.value = n.op.Forward()
	}
	return n.value
}

// Backward propagates gradient from n down every edge of the DAG.
//
// The incoming gradient is added to the node's grad slot, then scaled
// by each operand's partial derivative (at current values) and pushed
// into that operand. A node without requiresGrad terminates the
// recursion along that edge.
//
// Backward visits every edge, not every node: a node reachable via k
// paths has its grad incremented k times, which by linearity yields
// the correct total derivative. Deduplicating here would be a bug.
//
// Gradients accumulate across calls; callers zero variable grads
// between passes.
func (n *Node) Backward(gradient float32) {
	if !n.requiresGrad {
		return
	}
	n.grad += gradient
	if n.op != nil {
		for i, p := range n.op.Parents() {
			p.Backward(n.op.Partial(i) * gradient)
		}
	}
}
