// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"github.com/b-io/io.barras-sub007/internal/fvec"
	"github.com/b-io/io.barras-sub007/schedule"
)

// GPUBackend is an optional collaborator that can take over a Forward call
// from the CPU tiled kernel. Test is consulted with the shapes of the call
// it would serve; when it returns false, or when no backend has been
// installed, Forward falls back to Times(x).Plus(bias).
type GPUBackend interface {
	Test(innerDim, aCols, bCols int) bool
	Forward(w, x, bias *Dense) *Dense
}

var gpuBackend GPUBackend

// SetGPUBackend installs the process-wide GPU offload collaborator for
// Dense.Forward. A nil argument removes it, restoring the CPU-only path.
func SetGPUBackend(b GPUBackend) { gpuBackend = b }

// Times returns the matrix product m×b. Times panics with ShapeMismatch if
// m's column count does not equal b's row count.
//
// The product is computed with the tiled SAXPY kernel (saxpyGEMM): for each
// row i of the result, result[i,:] += m[i,k]*b[k,:] accumulated over k, one
// row-scaled add at a time, rather than an inner dot-product loop. Rows of
// the result are independent, so the row range is handed to the
// process-wide scheduler (package schedule) for row-parallel dispatch.
func (m *Dense) Times(b *Dense) *Dense {
	mr, mc := m.Dims()
	br, bc := b.Dims()
	if mc != br {
		panic(errShape)
	}
	out := NewDense(mr, bc)
	saxpyGEMM(out, m, b)
	return out
}

// saxpyGEMM computes out = a×b via the row-tiled SAXPY kernel, dispatching
// disjoint row ranges of out onto the scheduler.
func saxpyGEMM(out, a, b *Dense) {
	_, ac := a.Dims()
	schedule.Do(out.mat.Rows, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			outRow := out.rowView(i)
			aRow := a.rowView(i)
			for k := 0; k < ac; k++ {
				aik := aRow[k]
				if aik == 0 {
					continue
				}
				fvec.AxpyUnitary(aik, b.rowView(k), outRow)
			}
		}
	})
}

// DiagonalTimes returns the diagonal of m×b as a column vector, without
// materializing the full product. DiagonalTimes panics with ShapeMismatch
// if m's column count does not equal b's row count.
func (m *Dense) DiagonalTimes(b *Dense) *Dense {
	mr, mc := m.Dims()
	br, bc := b.Dims()
	if mc != br {
		panic(errShape)
	}
	n := mr
	if bc < n {
		n = bc
	}
	out := NewVector(n, nil, true)
	for i := 0; i < n; i++ {
		var s float64
		row := m.rowView(i)
		for k, v := range row {
			s += v * b.at(k, i)
		}
		out.Set(i, 0, s)
	}
	return out
}

// Forward computes m×x + bias, the fused primitive for a dense layer's
// forward pass. When a GPUBackend has been
// installed via SetGPUBackend and its Test reports it can serve the given
// shapes, the backend computes the result; otherwise Forward falls back to
// Times(x).Plus(bias).
func (m *Dense) Forward(x, bias *Dense) *Dense {
	_, xc := x.Dims()
	_, bc := bias.Dims()
	if gpuBackend != nil && gpuBackend.Test(m.mat.Cols, xc, bc) {
		return gpuBackend.Forward(m, x, bias)
	}
	return m.Times(x).Plus(bias)
}
