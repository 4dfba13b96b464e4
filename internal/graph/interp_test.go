package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradjit/gradjit/internal/graph"
	"github.com/gradjit/gradjit/internal/graph/ops"
)

func TestForwardRecomputesPostOrder(t *testing.T) {
	a := graph.NewVar(2)
	b := graph.NewVar(3)
	sum := graph.Apply(ops.NewAddOp(a, b))
	root := graph.Apply(ops.NewMulOp(sum, b))

	assert.Equal(t, float32(15), root.Value())

	a.SetValue(1)
	b.SetValue(4)
	assert.Equal(t, float32(20), root.Forward())
	assert.Equal(t, float32(5), sum.Value(), "intermediate slots are rewritten")
}

func TestForwardIdempotent(t *testing.T) {
	a := graph.NewVar(1.5)
	root := graph.Apply(ops.NewMulOp(graph.Apply(ops.NewExpOp(a)), a))

	first := root.Forward()
	second := root.Forward()
	assert.Equal(t, first, second)
}

func TestBackwardVisitsEveryEdge(t *testing.T) {
	// y = x + x: two edges into x, grad accumulates twice.
	x := graph.NewVar(3)
	y := graph.Apply(ops.NewAddOp(x, x))
	y.Backward(1)
	assert.Equal(t, float32(2), x.Grad())

	// y = x * x: product rule via two edges, grad = 2x.
	x2 := graph.NewVar(3)
	y2 := graph.Apply(ops.NewMulOp(x2, x2))
	y2.Backward(1)
	assert.Equal(t, float32(6), x2.Grad())
}

func TestBackwardAccumulatesAcrossCalls(t *testing.T) {
	x := graph.NewVar(3)
	y := graph.Apply(ops.NewMulOp(x, x))

	y.Backward(1)
	y.Backward(1)
	assert.Equal(t, float32(12), x.Grad(), "no implicit zeroing between passes")

	x.SetGrad(0)
	y.Backward(1)
	assert.Equal(t, float32(6), x.Grad())
}

func TestBackwardStopsWithoutRequiresGrad(t *testing.T) {
	x := graph.NewVar(2)
	c := graph.NewConst(5)
	l := graph.NewLeaf(4)
	root := graph.Apply(ops.NewMulOp(graph.Apply(ops.NewMulOp(x, c)), l))

	root.Backward(1)
	assert.Equal(t, float32(20), x.Grad())
	assert.Equal(t, float32(0), c.Grad())
	assert.Equal(t, float32(0), l.Grad())
}

func TestBackwardSeedScalesLinearly(t *testing.T) {
	x := graph.NewVar(2)
	y := graph.Apply(ops.NewMulOp(x, x))

	y.Backward(1)
	base := x.Grad()

	x.SetGrad(0)
	y.Backward(2.5)
	assert.Equal(t, 2.5*base, x.Grad())
}
