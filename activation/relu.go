package activation

import "github.com/b-io/io.barras-sub007/mat"

// ReLU is the (leaky) rectified linear activation, parameterized by a
// non-negative leak gradient; Gradient == 0 gives the pure ReLU.
//
// Unlike Tanh/Sigmoid/Softmax, Derive takes the pre-activation input, not
// the already-computed activation, and applies its x <= 0 branch test to
// that input.
type ReLU struct {
	Gradient float64
}

func (r ReLU) Name() string { return "relu" }

// Apply returns max(gradient*x, x), element-wise.
func (r ReLU) Apply(e *mat.Dense) *mat.Dense {
	return applyElementwise(e, func(x float64) float64 {
		gx := r.Gradient * x
		if gx > x {
			return gx
		}
		return x
	})
}

// Derive returns, for each element x of the pre-activation input,
// gradient if x <= 0, 1 otherwise. The x == 0 case is not separately
// documented in the source this package follows; its convention (fold
// x == 0 into the x <= 0 branch, returning gradient) is kept here — see
// TestReLUDerivativeAtZero.
func (r ReLU) Derive(e *mat.Dense) *mat.Dense {
	return applyElementwise(e, func(x float64) float64 {
		if x <= 0 {
			return r.Gradient
		}
		return 1
	})
}
