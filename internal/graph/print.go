package graph

import "strconv"

// leafPrecedence outranks every operation so leaves are never
// bracketed.
const leafPrecedence = 999

// ExprString renders the DAG below n as a human-readable infix
// expression. A child is bracketed when its precedence is less than
// or equal to its parent's. Leaves print their name if set, otherwise
// a short decimal form of their current value.
func (n *Node) ExprString() string {
	if n.op == nil {
		if name := n.Name(); name != "" {
			return name
		}
		return FormatShort(n.value)
	}
	parents := n.op.Parents()
	l := parents[0].ExprString()
	if parents[0].precedence() <= n.precedence() {
		l = "(" + l + ")"
	}
	var r string
	if len(parents) > 1 {
		r = parents[1].ExprString()
		if parents[1].precedence() <= n.precedence() {
			r = "(" + r + ")"
		}
	}
	return n.op.Print(l, r)
}

func (n *Node) precedence() int {
	if n.op == nil {
		return leafPrecedence
	}
	return n.op.Precedence()
}

// FormatShort renders a float to three significant digits for
// pretty-printing, e.g. 5, 0.001, 1.23e+04.
func FormatShort(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', 3, 32)
}
