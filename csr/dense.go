// SPDX-License-Identifier: MIT

// Package csr - dense rendering for human inspection.
//
// Supporting/debug surface only: nothing here is performance-sensitive and
// no correctness property depends on it beyond "matches the sparse
// contents".

package csr

import (
	"fmt"
	"strings"
)

// Formatting literals shared by String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// ToDense materializes the matrix as a freshly allocated dense grid with 0
// for absent cells. Intended for inspection and small fixtures; allocating
// rows×cols defeats the point of CSR at scale.
// Complexity: O(rows*cols + nnz).
func (m *Matrix) ToDense() [][]float64 {
	dense := make([][]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		dense[r] = make([]float64, m.cols)
		for k := m.rowStart[r]; k < m.rowStart[r+1]; k++ {
			dense[r][m.colIndex[k]] = m.values[k]
		}
	}
	return dense
}

// String renders the dense grid, one bracketed row per line, values in %g.
// Implements fmt.Stringer so fixtures print naturally in tests and examples.
func (m *Matrix) String() string {
	var b strings.Builder
	for _, row := range m.ToDense() {
		b.WriteString(_fmtRowOpen)
		for c, v := range row {
			if c > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString(_fmtRowClose)
	}
	return b.String()
}
