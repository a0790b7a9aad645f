// SPDX-License-Identifier: MIT

// Package csr_test: kernel and envelope-metric tests (MulVec, Bandwidth,
// Profile), including the floating-point linearity property.
package csr_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/gonum/floats"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrband/csr"
)

// tridiagonal builds the n×n matrix with 2 on the diagonal and -1 on the
// sub- and super-diagonals, the standard banded fixture.
func tridiagonal(t testing.TB, n int) *csr.Matrix {
	t.Helper()
	var rowIdx, colIdx []int
	var vals []float64
	for i := 0; i < n; i++ {
		rowIdx = append(rowIdx, i)
		colIdx = append(colIdx, i)
		vals = append(vals, 2)
		if i+1 < n {
			rowIdx = append(rowIdx, i, i+1)
			colIdx = append(colIdx, i+1, i)
			vals = append(vals, -1, -1)
		}
	}
	m, err := csr.NewFromCOO(n, n, rowIdx, colIdx, vals)
	require.NoError(t, err)
	return m
}

// TestMulVec_Fixture: [[1,2,0],[0,3,4],[5,0,6]] times the all-ones vector.
func TestMulVec_Fixture(t *testing.T) {
	rowIdx, colIdx, vals := fixture3x3()
	m, err := csr.NewFromCOO(3, 3, rowIdx, colIdx, vals)
	require.NoError(t, err)

	y, err := m.MulVec([]float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7, 11}, y)
}

// TestMulVec_DimensionMismatch covers wrong x and dst lengths.
func TestMulVec_DimensionMismatch(t *testing.T) {
	m := tridiagonal(t, 4)

	_, err := m.MulVec([]float64{1, 2, 3})
	require.ErrorIs(t, err, csr.ErrDimensionMismatch)

	err = m.MulVecTo(make([]float64, 3), make([]float64, 4))
	require.ErrorIs(t, err, csr.ErrDimensionMismatch)
}

// TestMulVecTo_Reuse checks that the no-allocation kernel overwrites dst.
func TestMulVecTo_Reuse(t *testing.T) {
	m := tridiagonal(t, 4)
	dst := []float64{99, 99, 99, 99} // stale content must be overwritten
	require.NoError(t, m.MulVecTo(dst, []float64{1, 1, 1, 1}))
	require.Equal(t, []float64{1, 0, 0, 1}, dst)
}

// TestMulVec_Linearity checks A(x1+x2) == Ax1 + Ax2 within tolerance on a
// random sparse matrix.
func TestMulVec_Linearity(t *testing.T) {
	const n = 20
	rnd := rand.New(rand.NewSource(1))

	dense := make([][]float64, n)
	for r := range dense {
		dense[r] = make([]float64, n)
		for c := range dense[r] {
			if rnd.Float64() < 0.3 {
				dense[r][c] = rnd.NormFloat64()
			}
		}
	}
	dense[0][0] = 1 // keep the matrix nonempty whatever the draw
	m, err := csr.NewFromDense(dense)
	require.NoError(t, err)

	x1 := make([]float64, n)
	x2 := make([]float64, n)
	for i := 0; i < n; i++ {
		x1[i] = rnd.NormFloat64()
		x2[i] = rnd.NormFloat64()
	}
	x12 := make([]float64, n)
	copy(x12, x1)
	floats.Add(x12, x2)

	y1, err := m.MulVec(x1)
	require.NoError(t, err)
	y2, err := m.MulVec(x2)
	require.NoError(t, err)
	y12, err := m.MulVec(x12)
	require.NoError(t, err)

	sum := make([]float64, n)
	copy(sum, y1)
	floats.Add(sum, y2)
	require.True(t, floats.EqualApprox(y12, sum, 1e-12),
		"linearity violated: |diff| = %v", floats.Distance(y12, sum, 2))
}

// TestBandwidth_Empty: zero stored entries has bandwidth 0, by definition.
func TestBandwidth_Empty(t *testing.T) {
	m, err := csr.NewFromCOO(4, 4, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Bandwidth())
}

// TestBandwidth_Tridiagonal: the canonical band-1 fixture.
func TestBandwidth_Tridiagonal(t *testing.T) {
	require.Equal(t, 1, tridiagonal(t, 5).Bandwidth())
}

// TestBandwidth_Rectangular: bandwidth is measured, never rejected, on
// non-square input.
func TestBandwidth_Rectangular(t *testing.T) {
	m, err := csr.NewFromCOO(2, 5, []int{0}, []int{4}, []float64{1})
	if err != nil {
		t.Fatalf("NewFromCOO: %v", err)
	}
	if got := m.Bandwidth(); got != 4 {
		t.Errorf("Bandwidth = %d; want 4", got)
	}
}

// TestProfile covers the envelope metric on banded and diagonal fixtures.
func TestProfile(t *testing.T) {
	// Tridiagonal 5×5: rows 1..4 each reach one column left of the diagonal.
	require.Equal(t, 4, tridiagonal(t, 5).Profile())

	// Diagonal only: nothing below the diagonal.
	diag, err := csr.NewFromCOO(3, 3, []int{0, 1, 2}, []int{0, 1, 2}, []float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, 0, diag.Profile())
}

// TestMulVec_NilReceiver: nil matrix surfaces the sentinel, not a panic.
func TestMulVec_NilReceiver(t *testing.T) {
	var m *csr.Matrix
	if _, err := m.MulVec(nil); !errors.Is(err, csr.ErrNilMatrix) {
		t.Errorf("want ErrNilMatrix, got %v", err)
	}
}
