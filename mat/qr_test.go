// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQRReconstructs(t *testing.T) {
	a := NewDenseFromRowMajor(3, 2, []float64{1, 1, 0, 1, 1, 0})
	qr := (&QR{}).Factorize(a)
	assert.True(t, qr.IsFullRank())

	q := qr.GetQ()
	r := qr.GetR()
	got := q.Times(r)
	assert.True(t, got.EqualApprox(a, 1e-9), "Q*R should reconstruct A; got %v want %v", got, a)

	qtq := q.T().Times(q)
	assert.True(t, qtq.EqualApprox(Identity(2), 1e-9), "Qᵀ*Q should be I; got %v", qtq)
}

func TestQRSolveLeastSquares(t *testing.T) {
	a := NewDenseFromRowMajor(3, 2, []float64{1, 1, 1, 2, 1, 3})
	b := NewDenseFromRowMajor(3, 1, []float64{6, 0, 0})
	x := (&QR{}).Factorize(a).Solve(b)
	r, c := x.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 1, c)
}

func TestQRRankDeficientSolvePanics(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{1, 2, 2, 4})
	qr := (&QR{}).Factorize(a)
	assert.False(t, qr.IsFullRank())

	err := Maybe(func() { qr.Solve(NewDense(2, 1)) })
	assert.Error(t, err)
	var merr Error
	assert.ErrorAs(t, err, &merr)
	assert.Equal(t, RankDeficient, merr.Kind)
}

func TestRankDeficientFactorizeWarns(t *testing.T) {
	fake := &fakeDiagnostics{}
	SetDiagnostics(fake)
	defer SetDiagnostics(nil)

	a := NewDenseFromRowMajor(2, 2, []float64{1, 2, 2, 4})
	(&QR{}).Factorize(a)
	assert.NotEmpty(t, fake.warnings, "Factorize should warn on a rank-deficient input rather than staying silent")
}
