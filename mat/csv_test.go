// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSVRoundTrip(t *testing.T) {
	a := NewDenseFromRowMajor(2, 3, []float64{1, 2, 3, 4, 5, 6})
	var buf bytes.Buffer
	assert.NoError(t, SaveCSV(&buf, a))

	got, err := LoadCSV(&buf, false)
	assert.NoError(t, err)
	assert.True(t, got.EqualApprox(a, 1e-12))
}

func TestLoadCSVDetectsSemicolon(t *testing.T) {
	m, err := LoadCSV(strings.NewReader("1;2;3\n4;5;6\n"), false)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.mat.Data)
}

func TestLoadCSVTranspose(t *testing.T) {
	m, err := LoadCSV(strings.NewReader("1,2\n3,4\n"), true)
	assert.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3.0, m.At(1, 0))
}

func TestLoadCSVCoercesBadFieldToNaN(t *testing.T) {
	m, err := LoadCSV(strings.NewReader("1,x\n3,4\n"), false)
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(m.At(0, 1)))
}

func TestLoadCSVShortRowIsRaggedInput(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("1,2,3\n4,5\n"), false)
	assert.Error(t, err)
	var merr Error
	assert.ErrorAs(t, err, &merr)
	assert.Equal(t, RaggedInput, merr.Kind)
}
