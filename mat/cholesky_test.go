// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCholeskyScenario(t *testing.T) {
	a := NewDenseFromRowMajor(3, 3, []float64{
		4, 12, -16,
		12, 37, -43,
		-16, -43, 98,
	})
	ch := (&Cholesky{}).Factorize(a)
	assert.True(t, ch.IsSPD())

	want := NewDenseFromRowMajor(3, 3, []float64{
		2, 0, 0,
		6, 1, 0,
		-8, 5, 3,
	})
	assert.True(t, ch.GetL().EqualApprox(want, 1e-9))
}

func TestCholeskyReconstructs(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{4, 2, 2, 3})
	ch := (&Cholesky{}).Factorize(a)
	l := ch.GetL()
	got := l.Times(l.T())
	assert.True(t, got.EqualApprox(a, 1e-9))
}

func TestCholeskyNonSPDReportsFalse(t *testing.T) {
	a := NewDenseFromRowMajor(2, 2, []float64{1, 2, 2, 1})
	ch := (&Cholesky{}).Factorize(a)
	assert.False(t, ch.IsSPD())

	err := Maybe(func() { ch.Solve(NewDense(2, 1)) })
	assert.Error(t, err)
}

func TestCholeskyNonSPDFactorizeWarns(t *testing.T) {
	fake := &fakeDiagnostics{}
	SetDiagnostics(fake)
	defer SetDiagnostics(nil)

	a := NewDenseFromRowMajor(2, 2, []float64{1, 2, 2, 1})
	(&Cholesky{}).Factorize(a)
	assert.NotEmpty(t, fake.warnings, "Factorize should warn on a non-SPD input rather than staying silent")
}
