package activation

import (
	"math"
	"testing"

	"github.com/b-io/io.barras-sub007/mat"
	"github.com/stretchr/testify/assert"
)

func TestTanhDeriveIdentity(t *testing.T) {
	x := mat.NewDenseFromRowMajor(1, 3, []float64{-1, 0, 1})
	a := Tanh{}.Apply(x)
	got := Tanh{}.Derive(a)
	for i, v := range a.ToVector() {
		want := 1 - v*v
		assert.InDelta(t, want, got.ToVector()[i], 1e-9)
	}
}

func TestSigmoidDeriveIdentity(t *testing.T) {
	x := mat.NewDenseFromRowMajor(1, 3, []float64{-2, 0, 2})
	a := Sigmoid{}.Apply(x)
	got := Sigmoid{}.Derive(a)
	for i, v := range a.ToVector() {
		want := v * (1 - v)
		assert.InDelta(t, want, got.ToVector()[i], 1e-9)
	}
}

func TestReLUScenario(t *testing.T) {
	e := mat.NewDenseFromRowMajor(1, 3, []float64{-1, 0, 1})
	relu := ReLU{Gradient: 0}
	applied := relu.Apply(e)
	assert.Equal(t, []float64{0, 0, 1}, applied.ToVector())
}

// TestReLUDerivativeAtZero documents the kept, explicitly flagged
// convention: derive(0) folds into the x<=0 branch and returns gradient,
// not 1, even though a naive reading of an end-to-end scenario elsewhere
// suggests 1. See the open-question resolution this follows.
func TestReLUDerivativeAtZero(t *testing.T) {
	e := mat.NewDenseFromRowMajor(1, 3, []float64{-1, 0, 1})
	relu := ReLU{Gradient: 0.01}
	got := relu.Derive(e)
	assert.Equal(t, []float64{0.01, 0.01, 1}, got.ToVector())
}

func TestSoftmaxColumnsSumToOne(t *testing.T) {
	e := mat.NewDenseFromRowMajor(3, 2, []float64{1, 2, 3, 1, 0, 5})
	got := Softmax{}.Apply(e)
	r, c := got.Dims()
	for j := 0; j < c; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			sum += got.At(i, j)
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestSigmoidCostIsNonNegative(t *testing.T) {
	a := mat.NewDenseFromRowMajor(1, 4, []float64{0.9, 0.1, 0.8, 0.2})
	y := mat.NewDenseFromRowMajor(1, 4, []float64{1, 0, 1, 0})
	cost := Sigmoid{}.Cost(a, y, 4)
	assert.Greater(t, cost, 0.0)
	assert.False(t, math.IsNaN(cost))
}

func TestL2RegularizationGradient(t *testing.T) {
	w := mat.NewDenseFromRowMajor(1, 2, []float64{2, -4})
	reg := L2{Lambda: 0.1}
	got := reg.Derive(10, w)
	want := w.Scale(0.1 / 10)
	assert.True(t, got.EqualApprox(want, 1e-12))
}

func TestNoneRegularizerIsZero(t *testing.T) {
	w := mat.NewDenseFromRowMajor(1, 2, []float64{2, -4})
	none := None{}
	assert.Equal(t, 0.0, none.Cost(10, []*mat.Dense{w}))
	got := none.Derive(10, w)
	assert.Equal(t, []float64{0, 0}, got.ToVector())
}
