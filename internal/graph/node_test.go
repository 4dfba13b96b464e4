package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradjit/gradjit/internal/graph"
	"github.com/gradjit/gradjit/internal/graph/ops"
)

func TestLeafFlags(t *testing.T) {
	v := graph.NewVar(1)
	assert.True(t, v.RequiresGrad())
	assert.False(t, v.Constant())

	c := graph.NewConst(1)
	assert.False(t, c.RequiresGrad())
	assert.True(t, c.Constant())

	l := graph.NewLeaf(1)
	assert.False(t, l.RequiresGrad())
	assert.False(t, l.Constant())
}

func TestApplyPropagatesRequiresGrad(t *testing.T) {
	v := graph.NewVar(2)
	c := graph.NewConst(3)

	n := graph.Apply(ops.NewMulOp(v, c))
	assert.True(t, n.RequiresGrad(), "any differentiable operand makes the result differentiable")
	assert.False(t, n.Constant(), "a non-leaf is never constant")
	assert.Equal(t, float32(6), n.Value(), "Apply evaluates the forward value")

	m := graph.Apply(ops.NewAddOp(c, graph.NewConst(1)))
	assert.False(t, m.RequiresGrad(), "constants alone stay out of the backward pass")
}

func TestCountsDeduplicateSharing(t *testing.T) {
	x := graph.NewVar(3)
	c := graph.NewConst(5)
	sq := graph.Apply(ops.NewMulOp(x, x))
	root := graph.Apply(ops.NewAddOp(sq, c))

	counts := root.Counts()
	assert.Equal(t, graph.Counts{Total: 4, Constants: 1, RequiresGrad: 3}, counts)
}

func TestSetValueKeepsStructure(t *testing.T) {
	x := graph.NewVar(2)
	y := graph.Apply(ops.NewMulOp(x, x))
	require.Equal(t, float32(4), y.Value())

	x.SetValue(5)
	assert.Equal(t, float32(4), y.Value(), "only Forward recomputes non-leaf values")
	y.Forward()
	assert.Equal(t, float32(25), y.Value())
}

func TestNames(t *testing.T) {
	x := graph.NewVar(2)
	assert.Equal(t, "", x.Name())

	x.SetName("alpha")
	assert.Equal(t, "alpha", x.Name())

	x.SetName("")
	assert.Equal(t, "", x.Name())
}

func TestSetRequiresGradDoesNotPropagate(t *testing.T) {
	x := graph.NewLeaf(2)
	y := graph.Apply(ops.NewMulOp(x, x))
	require.False(t, y.RequiresGrad())

	// Flipping the flag on the leaf after construction does not reach
	// the expression already built from it.
	x.SetRequiresGrad(true)
	assert.False(t, y.RequiresGrad())

	y.Backward(1)
	assert.Equal(t, float32(0), x.Grad(), "backward stops at the unflagged root")
}
