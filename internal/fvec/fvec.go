// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fvec provides the low-level float64 vector kernels the
// multiplication engine and the norm reductions build on: SAXPY
// (y += alpha*x), a unitary dot product, and a numerically stable L2
// reduction. It is adapted from gonum's internal/asm/f64 package, without
// the architecture-specific assembly: AxpyUnitary here always runs the
// pure-Go loop, the same loop gonum itself falls back to under its noasm
// build tag.
package fvec

import (
	"math"

	"golang.org/x/sys/cpu"
)

// hasWideRegisters hints that the inner AXPY loop can safely use a 4-wide
// unroll without spilling. It is a coarse, real use of the CPU feature
// probe gonum's own internal/asm/f64/axpy_amd64.go uses to choose between
// SSE2/AVX2/FMA kernels at init time; unlike that file, no assembly is
// dispatched here, only the unroll factor of the pure-Go loop.
var hasWideRegisters = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// AxpyUnitary computes y[i] += alpha*x[i] for every i, in place.
// AxpyUnitary panics if len(x) != len(y).
func AxpyUnitary(alpha float64, x, y []float64) {
	if len(x) != len(y) {
		panic("fvec: length mismatch")
	}
	if !hasWideRegisters || len(x) < 4 {
		for i, v := range x {
			y[i] += alpha * v
		}
		return
	}
	n := len(x)
	i := 0
	for ; i+4 <= n; i += 4 {
		y[i] += alpha * x[i]
		y[i+1] += alpha * x[i+1]
		y[i+2] += alpha * x[i+2]
		y[i+3] += alpha * x[i+3]
	}
	for ; i < n; i++ {
		y[i] += alpha * x[i]
	}
}

// AxpyUnitaryTo computes dst[i] = alpha*x[i] + y[i] for every i. dst may
// alias y. AxpyUnitaryTo panics if the three slices do not have equal
// length.
func AxpyUnitaryTo(dst []float64, alpha float64, x, y []float64) {
	if len(x) != len(y) || len(x) != len(dst) {
		panic("fvec: length mismatch")
	}
	for i, v := range x {
		dst[i] = alpha*v + y[i]
	}
}

// DotUnitary returns the dot product of x and y. DotUnitary panics if the
// slices do not have equal length.
func DotUnitary(x, y []float64) float64 {
	if len(x) != len(y) {
		panic("fvec: length mismatch")
	}
	var sum float64
	for i, v := range x {
		sum += v * y[i]
	}
	return sum
}

// L1Norm returns the sum of the absolute values of x.
func L1Norm(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += math.Abs(v)
	}
	return sum
}

// LinfNorm returns the maximum absolute value in x.
func LinfNorm(x []float64) float64 {
	var best float64
	for _, v := range x {
		a := math.Abs(v)
		if a > best {
			best = a
		}
	}
	return best
}

// L2Norm returns the Euclidean norm of x, computed with a scaled running
// sum of squares so that it neither overflows nor underflows for a far
// wider range of inputs than a naive sqrt(sum(x*x)) would.
//
// Adapted from gonum's internal/asm/f64.L2NormUnitary (the noasm variant).
func L2Norm(x []float64) float64 {
	var scale float64
	sumSquares := 1.0
	for _, v := range x {
		if v == 0 {
			continue
		}
		absxi := math.Abs(v)
		if math.IsNaN(absxi) {
			return math.NaN()
		}
		if scale < absxi {
			s := scale / absxi
			sumSquares = 1 + sumSquares*s*s
			scale = absxi
		} else {
			s := absxi / scale
			sumSquares += s * s
		}
	}
	if math.IsInf(scale, 1) {
		return math.Inf(1)
	}
	return scale * math.Sqrt(sumSquares)
}
