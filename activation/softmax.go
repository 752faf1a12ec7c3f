package activation

import (
	"math"

	"github.com/b-io/io.barras-sub007/mat"
)

// Softmax is the column-wise softmax activation: each column is treated as
// one training example's class scores. Per-column reductions over every
// row (the column max and column sum every element depends on) make Apply
// inherently column-dependent, unlike Tanh/Sigmoid/ReLU, so it is not
// dispatched through the row-parallel scheduler the way they are.
type Softmax struct{}

func (Softmax) Name() string { return "softmax" }

// Apply subtracts each column's max (for numerical stability), exponentiates,
// and divides by the column sum.
func (Softmax) Apply(e *mat.Dense) *mat.Dense {
	r, c := e.Dims()
	colMax := make([]float64, c)
	for j := 0; j < c; j++ {
		colMax[j] = math.Inf(-1)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := e.At(i, j); v > colMax[j] {
				colMax[j] = v
			}
		}
	}

	out := mat.NewDense(r, c)
	colSum := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := math.Exp(e.At(i, j) - colMax[j])
			out.Set(i, j, v)
			colSum[j] += v
		}
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, out.At(i, j)/colSum[j])
		}
	}
	return out
}

// Derive returns e·(1−e), the same simplified derivative form Sigmoid
// uses, written in terms of the already-computed activation.
func (Softmax) Derive(e *mat.Dense) *mat.Dense {
	return applyElementwise(e, func(v float64) float64 { return v * (1 - v) })
}

// Cost returns the cross-entropy cost of predictions a against one-hot
// labels y over m training examples: −sum(log(a) ⊙ y) / m.
func (Softmax) Cost(a, y *mat.Dense, m float64) float64 {
	logA := a.Apply(math.Log)
	return -logA.ArrayTimes(y).Sum() / m
}
