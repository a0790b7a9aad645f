// SPDX-License-Identifier: MIT

// Package csr - the CSR store itself & safe accessors.
//
// Purpose:
//   - Hold the three parallel CSR arrays (rowStart, colIndex, values) plus
//     dimensions, immutable after construction.
//   - Guarantee safety at the public surface: accessors return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration in
//     any result-producing path).
//
// Complexity quicksheet:
//   - Rows/Cols/NNZ: O(1); Row: O(1) (no copy); At: O(nnz(row)).

package csr

import "fmt"

// Matrix is a sparse matrix in Compressed Sparse Row form.
//
//   - rowStart has length rows+1; rowStart[r] is the offset into colIndex
//     and values where row r begins; rowStart[rows] equals NNZ().
//   - colIndex holds, for each row r, the column indices of that row's
//     nonzeros in colIndex[rowStart[r]:rowStart[r+1]); entries are unique
//     within a row and lie in [0, cols).
//   - values is parallel to colIndex.
//
// A Matrix is immutable after construction. Permute and the constructors
// always return a fresh instance; nothing in this package mutates a Matrix
// that has been handed to a caller, which makes read-only sharing across
// goroutines safe without locks.
type Matrix struct {
	rows, cols int       // dimensions (>0, validated at construction)
	rowStart   []int     // len rows+1, non-decreasing
	colIndex   []int     // len nnz, entries in [0, cols)
	values     []float64 // len nnz, parallel to colIndex
}

// Compile-time assertion for fmt.Stringer conformance (dense rendering).
var _ fmt.Stringer = (*Matrix)(nil)

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored nonzero entries.
// Complexity: O(1).
func (m *Matrix) NNZ() int { return m.rowStart[m.rows] }

// Row returns the column indices and values of row r as views into the
// matrix's internal storage. Callers MUST NOT modify the returned slices;
// copy first if mutation is needed.
// Returns ErrIndexOutOfRange if r is outside [0, Rows()).
// Complexity: O(1).
func (m *Matrix) Row(r int) (cols []int, vals []float64, err error) {
	if r < 0 || r >= m.rows {
		return nil, nil, fmt.Errorf("Row(%d): %w", r, ErrIndexOutOfRange)
	}
	lo, hi := m.rowStart[r], m.rowStart[r+1]
	return m.colIndex[lo:hi], m.values[lo:hi], nil
}

// At returns the value stored at (r, c), or 0 when the cell holds no entry.
// Returns ErrIndexOutOfRange for indices outside the matrix shape.
// Complexity: O(nnz(row r)) — a linear scan; rows are not required sorted.
func (m *Matrix) At(r, c int) (float64, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, fmt.Errorf("At(%d,%d): %w", r, c, ErrIndexOutOfRange)
	}
	for k := m.rowStart[r]; k < m.rowStart[r+1]; k++ {
		if m.colIndex[k] == c {
			return m.values[k], nil
		}
	}
	return 0, nil
}
