// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlusBroadcastScalar(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{1, 2, 3, 4})
	got := a.Plus(NewScalar(10))
	want := NewDenseFromRowMajor(2, 2, []float64{11, 12, 13, 14})
	assert.True(t, got.Equal(want))
}

func TestPlusBroadcastRowVector(t *testing.T) {
	a := NewDenseFromRowMajor(2, 3, []float64{1, 2, 3, 4, 5, 6})
	row := NewVector(3, []float64{10, 20, 30}, false)
	got := a.Plus(row)
	want := NewDenseFromRowMajor(2, 3, []float64{11, 22, 33, 14, 25, 36})
	assert.True(t, got.Equal(want))
}

func TestPlusBroadcastColVector(t *testing.T) {
	a := NewDenseFromRowMajor(2, 3, []float64{1, 2, 3, 4, 5, 6})
	col := NewVector(2, []float64{100, 200}, true)
	got := a.Plus(col)
	want := NewDenseFromRowMajor(2, 3, []float64{101, 102, 103, 204, 205, 206})
	assert.True(t, got.Equal(want))
}

func TestPlusShapeMismatchPanics(t *testing.T) {
	a := NewDense(2, 3)
	b := NewDense(3, 2)
	err := Maybe(func() { a.Plus(b) })
	assert.Error(t, err)
	var merr Error
	assert.ErrorAs(t, err, &merr)
	assert.Equal(t, ShapeMismatch, merr.Kind)
}

func TestArrayTimesIsHadamard(t *testing.T) {
	a := NewDenseFromRowMajor(1, 3, []float64{1, 2, 3})
	b := NewDenseFromRowMajor(1, 3, []float64{4, 5, 6})
	got := a.ArrayTimes(b)
	want := NewDenseFromRowMajor(1, 3, []float64{4, 10, 18})
	assert.True(t, got.Equal(want))
}

func TestDivisionByScalar(t *testing.T) {
	a := NewDenseFromRowMajor(1, 2, []float64{4, 8})
	got := a.Division(NewScalar(2))
	assert.InDelta(t, 2.0, got.At(0, 0), 1e-9)
	assert.InDelta(t, 4.0, got.At(0, 1), 1e-9)
}

func TestDivisionByMatrixUsesInverse(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{19, 22, 43, 50})
	b := NewDenseFromRowMajor(2, 2, []float64{5, 6, 7, 8})
	// a = c.Times(b) for c=[1 2; 3 4], so a.Division(b) should recover c.
	got := a.Division(b)
	want := NewDenseFromRowMajor(2, 2, []float64{1, 2, 3, 4})
	assert.True(t, got.EqualApprox(want, 1e-8))
}

func TestScaleAndNegate(t *testing.T) {
	a := NewDenseFromRowMajor(1, 2, []float64{1, -2})
	assert.True(t, a.Scale(2).Equal(NewDenseFromRowMajor(1, 2, []float64{2, -4})))
	assert.True(t, a.Negate().Equal(NewDenseFromRowMajor(1, 2, []float64{-1, 2})))
}

func TestSetTinyTolerance(t *testing.T) {
	defer SetTinyTolerance(0)
	SetTinyTolerance(1e-6)
	assert.Equal(t, 1e-6, TinyTolerance)

	SetTinyTolerance(0)
	assert.Equal(t, 1e-300, TinyTolerance)
}
