// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"fmt"
	"strconv"
	"strings"
)

// Format implements fmt.Formatter, printing m as a right-aligned table of
// its elements bracketed by "⎡ ⎤"-style rows, the verbose counterpart to
// the single-line literal form String produces. The %v and %s verbs print
// the table; any other verb prints String's literal inside fmt's bad-verb
// form, %!c(mat.Dense=...).
func (m *Dense) Format(fs fmt.State, c rune) {
	if c != 'v' && c != 's' {
		fmt.Fprintf(fs, "%%!%c(mat.Dense=%s)", c, m.String())
		return
	}

	r, cols := m.Dims()
	if r == 0 || cols == 0 {
		fmt.Fprint(fs, "[]")
		return
	}

	cells := make([][]string, r)
	width := 0
	for i := 0; i < r; i++ {
		cells[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			s := strconv.FormatFloat(m.at(i, j), 'g', 6, 64)
			cells[i][j] = s
			if len(s) > width {
				width = len(s)
			}
		}
	}

	var b strings.Builder
	for i := 0; i < r; i++ {
		switch {
		case r == 1:
			b.WriteString("[")
		case i == 0:
			b.WriteString("⎡")
		case i == r-1:
			b.WriteString("⎣")
		default:
			b.WriteString("⎢")
		}
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strings.Repeat(" ", width-len(cells[i][j])))
			b.WriteString(cells[i][j])
		}
		switch {
		case r == 1:
			b.WriteString("]")
		case i == 0:
			b.WriteString("⎤")
		case i == r-1:
			b.WriteString("⎦")
		default:
			b.WriteString("⎥")
		}
		if i < r-1 {
			b.WriteByte('\n')
		}
	}
	fmt.Fprint(fs, b.String())
}
