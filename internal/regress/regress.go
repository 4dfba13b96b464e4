// Package regress holds the linear-regression demonstration problem:
// a 10-parameter model fit to 7 fixed data points by gradient descent
// on mean-squared error. The targets are realizable, so the analytic
// minimum of the loss is zero.
package regress

import (
	"fmt"

	"github.com/gradjit/gradjit/internal/dual"
)

// features holds the 7 data points, 10 features each.
var features = [7][10]float32{
	{-0.176, -0.349, 0.151, -0.428, 0.036, -0.134, -0.442, 0.007, -0.463, -0.066},
	{-0.430, -0.409, -0.075, 0.327, -0.376, -0.277, 0.127, 0.448, 0.077, -0.103},
	{0.476, -0.453, 0.358, -0.210, -0.356, -0.382, -0.192, 0.316, -0.319, 0.082},
	{0.139, -0.128, 0.048, -0.437, -0.440, -0.294, 0.180, -0.072, -0.186, 0.086},
	{-0.047, -0.200, 0.294, 0.199, -0.256, 0.074, 0.025, 0.375, 0.229, -0.212},
	{0.480, -0.382, -0.082, 0.257, -0.348, -0.011, -0.461, 0.168, 0.265, 0.073},
	{0.375, -0.186, 0.195, 0.094, 0.080, -0.044, 0.340, 0.445, -0.026, 0.164},
}

// targets are the responses of a fixed weight vector on the features
// above, so a zero-loss fit exists.
var targets = [7]float32{
	0.267763, 0.44717404, -0.3187941, -0.64147705, -0.035090983, -0.66291493, -0.099438026,
}

// NewWeights returns the 10 model parameters, initialised to zero and
// named w0..w9.
func NewWeights() []*dual.Dual {
	weights := make([]*dual.Dual, len(features[0]))
	for j := range weights {
		weights[j] = dual.Var(0)
		weights[j].SetName(fmt.Sprintf("w%d", j))
	}
	return weights
}

// BuildLoss constructs the mean-squared-error expression over the
// fixed data set. Feature values and targets enter as constant
// leaves; the weights are shared across all 7 residuals.
func BuildLoss(weights []*dual.Dual) *dual.Dual {
	var total *dual.Dual
	for i := range features {
		pred := dual.Const(features[i][0]).Mul(weights[0])
		for j := 1; j < len(weights); j++ {
			pred = pred.Add(dual.Const(features[i][j]).Mul(weights[j]))
		}
		sq := pred.Sub(dual.Const(targets[i])).PowConst(2)
		if total == nil {
			total = sq
		} else {
			total = total.Add(sq)
		}
	}
	return total.Div(dual.Const(float32(len(features))))
}

// Step performs one gradient-descent step: zero the weight grads,
// recompute the loss, backpropagate and move every weight against its
// gradient. Returns the loss before the update.
func Step(loss *dual.Dual, weights []*dual.Dual, lr float32) float32 {
	for _, w := range weights {
		w.ZeroGrad()
	}
	value := loss.Forward()
	loss.Backward(1)
	for _, w := range weights {
		w.SetValue(w.Value() - lr*w.Grad())
	}
	return value
}

// StepCompiled is Step through the compiled passes; loss must have
// been compiled.
func StepCompiled(loss *dual.Dual, weights []*dual.Dual, lr float32) float32 {
	for _, w := range weights {
		w.ZeroGrad()
	}
	value := loss.ForwardCompiled()
	loss.BackwardCompiled(1)
	for _, w := range weights {
		w.SetValue(w.Value() - lr*w.Grad())
	}
	return value
}
