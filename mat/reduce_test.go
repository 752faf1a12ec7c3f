// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormF(t *testing.T) {
	a := NewDenseFromRowMajor(1, 2, []float64{3, 4})
	assert.InDelta(t, 5.0, a.NormF(), 1e-9)
}

func TestNorm1AndNormInf(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{1, -7, 2, 3})
	assert.InDelta(t, 10.0, a.Norm1(), 1e-9) // max abs column sum: col0=3, col1=10
	assert.InDelta(t, 8.0, a.NormInf(), 1e-9) // max abs row sum: row0=8, row1=5
}

func TestApplyByRowAndColumn(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{1, 2, 3, 4})
	rowSums := a.ApplyByRow(0, func(acc, v float64) float64 { return acc + v })
	assert.Equal(t, []float64{3, 7}, rowSums.ToVector())

	colSums := a.ApplyByColumn(0, func(acc, v float64) float64 { return acc + v })
	assert.Equal(t, []float64{4, 6}, colSums.ToVector())
}

func TestSum(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{1, 2, 3, 4})
	assert.Equal(t, 10.0, a.Sum())
}

func TestApplyAppliesElementwise(t *testing.T) {
	a := NewDenseFromRowMajor(1, 3, []float64{1, 4, 9})
	got := a.Apply(math.Sqrt)
	assert.Equal(t, []float64{1, 2, 3}, got.ToVector())
}
