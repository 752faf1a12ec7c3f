package activation

import (
	"math"

	"github.com/b-io/io.barras-sub007/mat"
)

// Tanh is the hyperbolic tangent activation.
type Tanh struct{}

func (Tanh) Name() string { return "tanh" }

// Apply returns tanh(e), element-wise.
func (Tanh) Apply(e *mat.Dense) *mat.Dense {
	return applyElementwise(e, math.Tanh)
}

// Derive returns 1 − e·e, the tanh derivative written in terms of the
// already-computed activation e (not its pre-activation input).
func (Tanh) Derive(e *mat.Dense) *mat.Dense {
	return applyElementwise(e, func(v float64) float64 { return 1 - v*v })
}
