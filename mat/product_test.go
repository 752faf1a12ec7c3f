// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimesScenario(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{1, 2, 3, 4})
	b := NewDenseFromRowMajor(2, 2, []float64{5, 6, 7, 8})
	got := a.Times(b)
	want := NewDenseFromRowMajor(2, 2, []float64{19, 22, 43, 50})
	assert.True(t, got.Equal(want))
}

func TestTimesShapeMismatchPanics(t *testing.T) {
	a := NewDense(2, 3)
	b := NewDense(2, 3)
	err := Maybe(func() { a.Times(b) })
	assert.Error(t, err)
}

func TestForwardWithoutGPUBackendFallsBackToTimesPlus(t *testing.T) {
	SetGPUBackend(nil)
	w := NewDenseFromRowMajor(2, 2, []float64{1, 0, 0, 1})
	x := NewDenseFromRowMajor(2, 1, []float64{3, 4})
	bias := NewDenseFromRowMajor(2, 1, []float64{1, 1})
	got := w.Forward(x, bias)
	want := NewDenseFromRowMajor(2, 1, []float64{4, 5})
	assert.True(t, got.Equal(want))
}

type fakeGPUBackend struct{ used bool }

func (f *fakeGPUBackend) Test(int, int, int) bool { return true }
func (f *fakeGPUBackend) Forward(w, x, bias *Dense) *Dense {
	f.used = true
	return w.Times(x).Plus(bias)
}

func TestForwardDelegatesToGPUBackendWhenTestPasses(t *testing.T) {
	backend := &fakeGPUBackend{}
	SetGPUBackend(backend)
	defer SetGPUBackend(nil)

	w := Identity(2)
	x := NewDenseFromRowMajor(2, 1, []float64{1, 2})
	bias := NewDense(2, 1)
	w.Forward(x, bias)
	assert.True(t, backend.used)
}

func TestDiagonalTimes(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{1, 2, 3, 4})
	b := NewDenseFromRowMajor(2, 2, []float64{5, 6, 7, 8})
	diag := a.DiagonalTimes(b)
	full := a.Times(b)
	assert.InDelta(t, full.At(0, 0), diag.At(0, 0), 1e-9)
	assert.InDelta(t, full.At(1, 1), diag.At(1, 0), 1e-9)
}
