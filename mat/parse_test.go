// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScenario(t *testing.T) {
	m, err := Parse("[1,2;3,4]")
	assert.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []float64{1, 2, 3, 4}, m.mat.Data)
}

func TestParseWhitespaceSeparated(t *testing.T) {
	m, err := Parse("[1 2 3; 4 5 6]")
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.mat.Data)
}

func TestParseMissingBracketsIsParseError(t *testing.T) {
	_, err := Parse("1 2; 3 4")
	assert.Error(t, err)
	var merr Error
	assert.ErrorAs(t, err, &merr)
	assert.Equal(t, ParseError, merr.Kind)
}

func TestParseRaggedRowsIsRaggedInput(t *testing.T) {
	_, err := Parse("[1 2; 3 4 5]")
	assert.Error(t, err)
	var merr Error
	assert.ErrorAs(t, err, &merr)
	assert.Equal(t, RaggedInput, merr.Kind)
}

func TestParseStringRoundTrip(t *testing.T) {
	m, err := Parse("[1 2; 3 4]")
	assert.NoError(t, err)
	reparsed, err := Parse(m.String())
	assert.NoError(t, err)
	assert.True(t, m.EqualApprox(reparsed, DefaultEqualTolerance))
}

func TestParseSeparatorIsDetectedMatrixWide(t *testing.T) {
	// The first row fixes the matrix-wide separator at ','. The second row
	// has no comma at all and must still be split on ',' rather than
	// falling back to its own per-row whitespace detection, so it collapses
	// to the single unparsable field "3 4".
	_, err := Parse("[1,2; 3 4]")
	assert.Error(t, err)
	var merr Error
	assert.ErrorAs(t, err, &merr)
	assert.Equal(t, ParseError, merr.Kind)
}
