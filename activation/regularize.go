package activation

import "github.com/b-io/io.barras-sub007/mat"

// Regularizer computes a weight-decay cost and gradient over a layer's
// weight matrices.
type Regularizer interface {
	// Cost returns (λ/2m)·Σ sum(Wₗ ⊙ Wₗ) over the given weight matrices.
	Cost(m float64, weights []*mat.Dense) float64
	// Derive returns the regularization gradient for a single weight
	// matrix w: (λ/m)·w.
	Derive(m float64, w *mat.Dense) *mat.Dense
}

// L2 is L2 (ridge) weight regularization with hyper-parameter Lambda.
type L2 struct {
	Lambda float64
}

// Cost returns (λ/2m)·Σ sum(Wₗ ⊙ Wₗ) over weights.
func (r L2) Cost(m float64, weights []*mat.Dense) float64 {
	var sum float64
	for _, w := range weights {
		sum += w.ArrayTimes(w).Sum()
	}
	return (r.Lambda / (2 * m)) * sum
}

// Derive returns (λ/m)·w.
func (r L2) Derive(m float64, w *mat.Dense) *mat.Dense {
	return w.Scale(r.Lambda / m)
}

// None is the no-op regularizer: zero cost, zero gradient.
type None struct{}

// Cost always returns 0.
func (None) Cost(float64, []*mat.Dense) float64 { return 0 }

// Derive returns a zero matrix shaped like w.
func (None) Derive(_ float64, w *mat.Dense) *mat.Dense {
	r, c := w.Dims()
	return mat.NewDense(r, c)
}
