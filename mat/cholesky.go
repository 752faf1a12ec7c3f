// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "math"

// Cholesky is the Cholesky decomposition of a symmetric positive-definite
// matrix A: A = L·Lᵀ, with L lower triangular.
//
// Row-by-row construction (each row of L from the rows above it), adapted from the classical
// JAMA-lineage CholeskyDecomposition (the same algorithm as
// sholden-matrix's mat64/la Cholesky fragment): IsSPD is tracked as a
// by-product of the factorization rather than checked up front, since the
// running reduction already has every value the check needs.
type Cholesky struct {
	l     *Dense
	n     int
	isspd bool
}

// Factorize computes the Cholesky decomposition of a and returns the
// receiver. a need not be symmetric positive-definite: if it is not,
// Factorize still returns, but IsSPD reports false and Solve panics.
// Factorize panics with ShapeMismatch if a is not square.
func (ch *Cholesky) Factorize(a *Dense) *Cholesky {
	r, c := a.Dims()
	if r != c {
		panic(errSquare)
	}
	ch.n = r
	ch.l = NewDense(r, r)
	ch.isspd = true

	for j := 0; j < r; j++ {
		var d float64
		for k := 0; k < j; k++ {
			var s float64
			lk := ch.l.rowView(k)
			lj := ch.l.rowView(j)
			for i := 0; i < k; i++ {
				s += lk[i] * lj[i]
			}
			s = (a.at(j, k) - s) / ch.l.at(k, k)
			ch.l.Set(j, k, s)
			d += s * s
			if ch.isspd && a.at(k, j) != a.at(j, k) {
				ch.isspd = false
				defaultDiag.Warnf("mat: Cholesky factorization kept with non-SPD input; A[%d,%d] != A[%d,%d]", k, j, j, k)
			}
		}
		d = a.at(j, j) - d
		if ch.isspd && d <= 0 {
			ch.isspd = false
			defaultDiag.Warnf("mat: Cholesky factorization kept with non-SPD input; pivot at row %d is not positive", j)
		}
		ch.l.Set(j, j, math.Sqrt(math.Max(d, 0)))
	}
	return ch
}

// IsSPD reports whether the factorized matrix was (to observed precision)
// symmetric positive-definite.
func (ch *Cholesky) IsSPD() bool { return ch.isspd }

// GetL returns a copy of the lower-triangular factor L.
func (ch *Cholesky) GetL() *Dense { return ch.l.Clone() }

// Solve returns X such that A·X = b, where A is the factorized matrix.
// Solve panics with a Singular Error if the factorized matrix was not SPD,
// and with ShapeMismatch if b's row count does not equal A's dimension.
func (ch *Cholesky) Solve(b *Dense) *Dense {
	if !ch.isspd {
		panic(newError(Singular, "matrix is not symmetric positive definite"))
	}
	br, bc := b.Dims()
	if br != ch.n {
		panic(errShape)
	}

	x := b.Clone()
	for j := 0; j < bc; j++ {
		for k := 0; k < ch.n; k++ {
			var s float64
			for i := 0; i < k; i++ {
				s += x.at(i, j) * ch.l.at(k, i)
			}
			x.Set(k, j, (x.at(k, j)-s)/ch.l.at(k, k))
		}
		for k := ch.n - 1; k >= 0; k-- {
			var s float64
			for i := k + 1; i < ch.n; i++ {
				s += x.at(i, j) * ch.l.at(i, k)
			}
			x.Set(k, j, (x.at(k, j)-s)/ch.l.at(k, k))
		}
	}
	return x
}
