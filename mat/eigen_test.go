// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymmetricEigenOrthonormalAndReconstructs(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{2, 1, 1, 2})
	eig := (&Eigen{}).Factorize(a)
	assert.True(t, eig.IsSymmetric())

	for _, im := range eig.ImagPart() {
		assert.Equal(t, 0.0, im)
	}

	v := eig.GetV()
	vtv := v.T().Times(v)
	assert.True(t, vtv.EqualApprox(Identity(2), 1e-9), "eigenvectors should be orthonormal; got %v", vtv)

	d := eig.GetD()
	got := a.Times(v)
	want := v.Times(d)
	assert.True(t, got.EqualApprox(want, 1e-8), "A*V should equal V*D; got %v want %v", got, want)
}

func TestSymmetricEigenKnownValues(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{2, 0, 0, 3})
	eig := (&Eigen{}).Factorize(a)
	re := eig.RealPart()
	assert.InDelta(t, 2.0, math.Min(re[0], re[1]), 1e-9)
	assert.InDelta(t, 3.0, math.Max(re[0], re[1]), 1e-9)
}

func TestUnsymmetricEigenReconstructs(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{1, 1, 0, 2})
	eig := (&Eigen{}).Factorize(a)
	assert.False(t, eig.IsSymmetric())

	v := eig.GetV()
	d := eig.GetD()
	got := a.Times(v)
	want := v.Times(d)
	assert.True(t, got.EqualApprox(want, 1e-8), "A*V should equal V*D; got %v want %v", got, want)
}
