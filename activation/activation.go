// Copyright ©2017 The go-highway Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package activation implements the activation and regularization
// primitives a supervised-learning layer built on package mat would
// consume: Tanh, Sigmoid, (leaky) ReLU, Softmax, and L2 weight
// regularization.
//
// Row dispatch is grounded on go-highway's
// hwy/contrib/activation.ParallelApplyRows: the element-wise Apply and
// Derive methods (Tanh, Sigmoid, ReLU, and Softmax's Derive) hand off
// disjoint row ranges to package schedule rather than looping serially.
// Softmax's Apply and the regularizers run serially.
package activation

import (
	"github.com/b-io/io.barras-sub007/mat"
	"github.com/b-io/io.barras-sub007/schedule"
)

// Activation applies a nonlinearity element-wise and derives its gradient
// at the already-computed activation (or, for ReLU, at the pre-activation
// input — see ReLU's own doc comment).
type Activation interface {
	Name() string
	Apply(e *mat.Dense) *mat.Dense
	Derive(e *mat.Dense) *mat.Dense
}

// CostFunction is implemented by the output activations (Sigmoid, Softmax)
// that double as a cross-entropy cost.
type CostFunction interface {
	Cost(a, y *mat.Dense, m float64) float64
}

// parallelRows applies f to each row of m in place, dispatching disjoint
// row ranges onto the process-wide scheduler.
func parallelRows(m *mat.Dense, f func(row []float64)) {
	raw := m.RawMatrix()
	schedule.Do(raw.Rows, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			f(raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols])
		}
	})
}

// applyElementwise returns a new matrix holding f applied to every element
// of e, dispatched row-parallel.
func applyElementwise(e *mat.Dense, f func(float64) float64) *mat.Dense {
	out := e.Clone()
	parallelRows(out, func(row []float64) {
		for i, v := range row {
			row[i] = f(v)
		}
	})
	return out
}
