package regress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradjit/gradjit/internal/regress"
)

// TestGradientDescentConverges trains the 10-parameter model for 100
// steps at learning rate 0.05. The targets are realizable, so the
// analytic minimum is zero; the run must land within 0.2 of it.
func TestGradientDescentConverges(t *testing.T) {
	weights := regress.NewWeights()
	loss := regress.BuildLoss(weights)

	first := regress.Step(loss, weights, 0.05)
	for i := 1; i < 100; i++ {
		regress.Step(loss, weights, 0.05)
	}
	final := loss.Forward()

	require.Less(t, final, first, "loss decreases")
	assert.Less(t, final, float32(0.2), "within 0.2 of the analytic minimum")
}

func TestLossIsDifferentiableInEveryWeight(t *testing.T) {
	weights := regress.NewWeights()
	loss := regress.BuildLoss(weights)

	// At w=0 the gradient is -2/n Σ y_i x_ij, nonzero for every
	// parameter of this data set.
	loss.Backward(1)
	for _, w := range weights {
		assert.NotZero(t, w.Grad(), "%s", w.Name())
	}
}

func TestModelShape(t *testing.T) {
	weights := regress.NewWeights()
	require.Len(t, weights, 10)

	loss := regress.BuildLoss(weights)
	counts := loss.Counts()

	// Per point: 10 feature constants, 10 products, 9 sums, target
	// constant, residual, square = 32 nodes; plus the 10 shared
	// weights, 6 joining sums, the divisor constant and the division.
	assert.Equal(t, 7*32+10+6+1+1, counts.Total)
	assert.Equal(t, 7*10+7+1, counts.Constants)
	assert.Equal(t, counts.Total-counts.Constants, counts.RequiresGrad,
		"everything that is not a constant depends on the weights")
}
