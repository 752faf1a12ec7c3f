// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSVDReconstructsAndOrdersSingularValues(t *testing.T) {
	a := NewDenseFromRowMajor(3, 2, []float64{1, 0, 0, 1, 1, 1})
	svd := NewSVD(a)

	sv := svd.GetSingularValues()
	for i := 1; i < len(sv); i++ {
		assert.GreaterOrEqual(t, sv[i-1], sv[i])
	}
	for _, v := range sv {
		assert.GreaterOrEqual(t, v, 0.0)
	}

	u := svd.GetU()
	s := svd.GetS()
	v := svd.GetV()
	got := u.Times(s).Times(v.T())
	assert.True(t, got.EqualApprox(a, 1e-8), "U*S*Vᵀ should reconstruct A; got %v want %v", got, a)
}

func TestSVDNorm2MatchesLargestSingularValue(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{3, 0, 0, 4})
	assert.InDelta(t, 4.0, a.Norm2(), 1e-9)
}

func TestSVDRankOfSingularMatrix(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{1, 2, 2, 4})
	svd := NewSVD(a)
	assert.Equal(t, 1, svd.Rank(0))
}

func TestSVDCond(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{2, 0, 0, 1})
	svd := NewSVD(a)
	assert.InDelta(t, 2.0, svd.Cond(), 1e-9)
}
