// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"

	"github.com/b-io/io.barras-sub007/internal/fvec"
)

// Apply returns a new matrix holding f applied element-wise to m.
func (m *Dense) Apply(f func(float64) float64) *Dense {
	r, c := m.Dims()
	out := NewDense(r, c)
	for i := 0; i < r; i++ {
		src := m.rowView(i)
		dst := out.rowView(i)
		for j, v := range src {
			dst[j] = f(v)
		}
	}
	return out
}

// ApplyInPlace applies f element-wise to m in place and returns m.
func (m *Dense) ApplyInPlace(f func(float64) float64) *Dense {
	for i := 0; i < m.mat.Rows; i++ {
		row := m.rowView(i)
		for j, v := range row {
			row[j] = f(v)
		}
	}
	return m
}

// ApplyByColumn folds the bivariate function f down each column, starting
// from init, and returns the result as a 1×n row vector.
func (m *Dense) ApplyByColumn(init float64, f func(acc, v float64) float64) *Dense {
	r, c := m.Dims()
	out := NewVector(c, nil, false)
	for j := 0; j < c; j++ {
		acc := init
		for i := 0; i < r; i++ {
			acc = f(acc, m.at(i, j))
		}
		out.Set(0, j, acc)
	}
	return out
}

// ApplyByRow folds the bivariate function f across each row, starting from
// init, and returns the result as an m×1 column vector.
func (m *Dense) ApplyByRow(init float64, f func(acc, v float64) float64) *Dense {
	r, c := m.Dims()
	out := NewVector(r, nil, true)
	for i := 0; i < r; i++ {
		acc := init
		row := m.rowView(i)
		_ = c
		for _, v := range row {
			acc = f(acc, v)
		}
		out.Set(i, 0, acc)
	}
	return out
}

// Sum returns the sum of every element of m.
func (m *Dense) Sum() float64 {
	var s float64
	for i := 0; i < m.mat.Rows; i++ {
		for _, v := range m.rowView(i) {
			s += v
		}
	}
	return s
}

// Norm1 returns the 1-norm of m: the maximum absolute column sum.
func (m *Dense) Norm1() float64 {
	r, c := m.Dims()
	var best float64
	for j := 0; j < c; j++ {
		var s float64
		for i := 0; i < r; i++ {
			s += math.Abs(m.at(i, j))
		}
		if s > best {
			best = s
		}
	}
	return best
}

// NormInf returns the infinity-norm of m: the maximum absolute row sum.
func (m *Dense) NormInf() float64 {
	r, _ := m.Dims()
	var best float64
	for i := 0; i < r; i++ {
		var s float64
		for _, v := range m.rowView(i) {
			s += math.Abs(v)
		}
		if s > best {
			best = s
		}
	}
	return best
}

// NormF returns the Frobenius norm of m, computed via a numerically stable
// hypot-style reduction (internal/fvec.L2Norm) rather than a naive sum of
// squares.
func (m *Dense) NormF() float64 {
	return fvec.L2Norm(m.mat.Data)
}

// Norm2 returns the 2-norm (spectral norm) of m: its largest singular
// value. It delegates to the SVD (C7).
func (m *Dense) Norm2() float64 {
	return NewSVD(m).Norm2()
}
