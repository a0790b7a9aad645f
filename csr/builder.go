// SPDX-License-Identifier: MIT

// Package csr - construction from coordinate triples and dense grids.
//
// Purpose:
//   - Group coordinate-format (COO) input by row via a counting pass, a
//     prefix sum, and a scatter pass — the canonical CSR build.
//   - Validate everything BEFORE allocating the result: range checks,
//     duplicate rejection, numeric policy. Failure leaves no partial object.
//   - Preserve input order within each row unless WithSortedRows is given;
//     determinism never depends on map iteration.
//
// Complexity quicksheet:
//   - NewFromCOO: O(nnz) build + O(nnz) validation (+ O(nnz log nnz) with
//     WithSortedRows); NewFromDense: O(rows*cols).

package csr

import (
	"fmt"
	"math"
	"sort"
)

// pairKey is an ordered (row, col) cell used to detect duplicate triples
// during ingestion. Using ints keeps the key compact and hash-friendly.
type pairKey struct {
	r int // row index
	c int // column index
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NewFromCOO builds a rows×cols CSR matrix from coordinate-format triples
// (rowIdx[k], colIdx[k], vals[k]). The triples need not be sorted; entries
// are grouped by row and, within a row, keep their input order unless
// WithSortedRows is supplied.
//
// Duplicate policy: two triples targeting the same (row, col) cell are
// rejected with ErrDuplicateEntry — values are never silently summed.
//
// Errors:
//   - ErrInvalidDimensions: rows <= 0 or cols <= 0.
//   - ErrBadTriples: the three input slices disagree in length.
//   - ErrIndexOutOfRange: any rowIdx outside [0, rows) or colIdx outside [0, cols).
//   - ErrDuplicateEntry: repeated (row, col) cell.
//   - ErrNaNInf: non-finite value under the default numeric policy.
//
// The input slices are copied; the caller keeps ownership of them.
// Complexity: O(nnz) time, O(nnz) extra space for the duplicate set.
func NewFromCOO(rows, cols int, rowIdx, colIdx []int, vals []float64, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewFromCOO(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	nnz := len(rowIdx)
	if len(colIdx) != nnz || len(vals) != nnz {
		return nil, fmt.Errorf("NewFromCOO: len(rowIdx)=%d len(colIdx)=%d len(vals)=%d: %w",
			len(rowIdx), len(colIdx), len(vals), ErrBadTriples)
	}
	o := gatherOptions(opts)

	// Validation pass. Runs to completion before any result allocation so a
	// failed construction leaves nothing behind.
	seen := make(map[pairKey]struct{}, nnz)
	for k := 0; k < nnz; k++ {
		r, c := rowIdx[k], colIdx[k]
		if r < 0 || r >= rows {
			return nil, fmt.Errorf("NewFromCOO: triple %d row %d: %w", k, r, ErrIndexOutOfRange)
		}
		if c < 0 || c >= cols {
			return nil, fmt.Errorf("NewFromCOO: triple %d col %d: %w", k, c, ErrIndexOutOfRange)
		}
		key := pairKey{r: r, c: c}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("NewFromCOO: triple %d cell (%d,%d): %w", k, r, c, ErrDuplicateEntry)
		}
		seen[key] = struct{}{}
		if o.validateNaNInf && !isFinite(vals[k]) {
			return nil, fmt.Errorf("NewFromCOO: triple %d value %v: %w", k, vals[k], ErrNaNInf)
		}
	}

	m := buildCSR(rows, cols, rowIdx, colIdx, vals)
	if o.sortRows {
		m.sortRowsInPlace()
	}
	return m, nil
}

// NewFromDense builds a CSR matrix from a dense row-major grid, storing only
// the nonzero cells. Rows come out sorted by column as a natural consequence
// of the scan order. A ragged grid is rejected with ErrBadTriples; an empty
// grid with ErrInvalidDimensions.
// Complexity: O(rows*cols).
func NewFromDense(dense [][]float64, opts ...Option) (*Matrix, error) {
	rows := len(dense)
	if rows == 0 || len(dense[0]) == 0 {
		return nil, fmt.Errorf("NewFromDense: %w", ErrInvalidDimensions)
	}
	cols := len(dense[0])
	o := gatherOptions(opts)

	rowStart := make([]int, rows+1)
	var colIndex []int
	var values []float64
	for r, row := range dense {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromDense: row %d has %d columns, want %d: %w",
				r, len(row), cols, ErrBadTriples)
		}
		for c, v := range row {
			if v == 0 {
				continue
			}
			if o.validateNaNInf && !isFinite(v) {
				return nil, fmt.Errorf("NewFromDense: cell (%d,%d) value %v: %w", r, c, v, ErrNaNInf)
			}
			colIndex = append(colIndex, c)
			values = append(values, v)
		}
		rowStart[r+1] = len(colIndex)
	}
	return &Matrix{rows: rows, cols: cols, rowStart: rowStart, colIndex: colIndex, values: values}, nil
}

// buildCSR groups pre-validated triples by row: counting pass over rowIdx,
// prefix sum into rowStart, then a scatter pass that preserves the relative
// input order of each row's entries.
func buildCSR(rows, cols int, rowIdx, colIdx []int, vals []float64) *Matrix {
	nnz := len(rowIdx)
	rowStart := make([]int, rows+1)
	for _, r := range rowIdx {
		rowStart[r+1]++
	}
	for r := 0; r < rows; r++ {
		rowStart[r+1] += rowStart[r]
	}

	colIndex := make([]int, nnz)
	values := make([]float64, nnz)
	next := make([]int, rows)
	copy(next, rowStart[:rows])
	for k := 0; k < nnz; k++ {
		r := rowIdx[k]
		p := next[r]
		colIndex[p] = colIdx[k]
		values[p] = vals[k]
		next[r]++
	}
	return &Matrix{rows: rows, cols: cols, rowStart: rowStart, colIndex: colIndex, values: values}
}

// sortRowsInPlace sorts each row's (colIndex, values) pairs by column index.
// Only called on a matrix not yet visible to any caller; the public surface
// stays immutable.
func (m *Matrix) sortRowsInPlace() {
	for r := 0; r < m.rows; r++ {
		lo, hi := m.rowStart[r], m.rowStart[r+1]
		sort.Sort(colValSlice{cols: m.colIndex[lo:hi], vals: m.values[lo:hi]})
	}
}

// colValSlice sorts a row's column indices and values in lockstep.
type colValSlice struct {
	cols []int
	vals []float64
}

func (s colValSlice) Len() int           { return len(s.cols) }
func (s colValSlice) Less(i, j int) bool { return s.cols[i] < s.cols[j] }
func (s colValSlice) Swap(i, j int) {
	s.cols[i], s.cols[j] = s.cols[j], s.cols[i]
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
}
