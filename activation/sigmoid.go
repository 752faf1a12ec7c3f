package activation

import (
	"math"

	"github.com/b-io/io.barras-sub007/mat"
)

// Sigmoid is the logistic activation, typically used as an output
// activation paired with binary cross-entropy cost.
type Sigmoid struct{}

func (Sigmoid) Name() string { return "sigmoid" }

// Apply returns 1/(1+exp(-e)), element-wise.
func (Sigmoid) Apply(e *mat.Dense) *mat.Dense {
	return applyElementwise(e, func(v float64) float64 { return 1 / (1 + math.Exp(-v)) })
}

// Derive returns e·(1−e), the sigmoid derivative written in terms of the
// already-computed activation e.
func (Sigmoid) Derive(e *mat.Dense) *mat.Dense {
	return applyElementwise(e, func(v float64) float64 { return v * (1 - v) })
}

// Cost returns the binary cross-entropy cost of predictions a against
// labels y over m training examples:
// cost = −(log(a)·yᵀ + log(1−a)·(1−yᵀ)) / m.
func (Sigmoid) Cost(a, y *mat.Dense, m float64) float64 {
	logA := a.Apply(math.Log)
	logOneMinusA := a.Apply(func(v float64) float64 { return math.Log(1 - v) })
	oneMinusY := y.Apply(func(v float64) float64 { return 1 - v })

	term1 := logA.Times(y.T())
	term2 := logOneMinusA.Times(oneMinusY.T())
	return -(term1.Plus(term2)).Trace() / m
}
