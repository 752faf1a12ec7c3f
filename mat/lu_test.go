// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetScenario(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{4, 3, 6, 3})
	got := (&LU{}).Factorize(a).Det()
	assert.InDelta(t, -6.0, got, 1e-9)
}

func TestInverseScenario(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{1, 2, 3, 4})
	inv, err := (&LU{}).Factorize(a).Inverse()
	assert.NoError(t, err)
	want := NewDenseFromRowMajor(2, 2, []float64{-2, 1, 1.5, -0.5})
	assert.True(t, inv.EqualApprox(want, 1e-9))
}

func TestLUReconstructsWithPivot(t *testing.T) {
	a := NewDenseFromRowMajor(3, 3, []float64{0, 2, 1, 1, -2, -3, -1, 1, 2})
	lu := (&LU{}).Factorize(a)
	l := lu.GetUnpivotedL()
	u := lu.GetU()
	got := l.Times(u)
	assert.True(t, got.EqualApprox(a, 1e-9), "L*U should reconstruct the unpivoted A; got %v want %v", got, a)
}

func TestSingularMatrixSolveReturnsError(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{1, 2, 2, 4})
	lu := (&LU{}).Factorize(a)
	assert.False(t, lu.IsNonsingular())
	_, err := lu.Inverse()
	assert.Error(t, err)
	var merr Error
	assert.ErrorAs(t, err, &merr)
	assert.Equal(t, Singular, merr.Kind)
}

func TestLUSolve(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{1, 2, 3, 4})
	b := NewDenseFromRowMajor(2, 1, []float64{5, 11})
	x := (&LU{}).Factorize(a).Solve(b)
	// a*x == b
	assert.True(t, a.Times(x).EqualApprox(b, 1e-9))
}

func TestSingularMatrixFactorizeWarns(t *testing.T) {
	fake := &fakeDiagnostics{}
	SetDiagnostics(fake)
	defer SetDiagnostics(nil)

	a := NewDenseFromRowMajor(2, 2, []float64{1, 2, 2, 4})
	(&LU{}).Factorize(a)
	assert.NotEmpty(t, fake.warnings, "Factorize should warn on a singular input rather than staying silent")
}
