package csr_test

import (
	"testing"

	"github.com/katalvlaran/csrband/csr"
)

// BenchmarkMulVecTo measures the gather kernel on a tridiagonal system of
// size N, reusing the destination vector.
func BenchmarkMulVecTo(b *testing.B) {
	const n = 10000
	m := tridiagonal(b, n)
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i % 7)
	}
	dst := make([]float64, n)

	b.ReportAllocs()
	b.SetBytes(int64(8 * m.NNZ()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.MulVecTo(dst, x)
	}
}

// BenchmarkNewFromCOO measures construction cost, validation included.
func BenchmarkNewFromCOO(b *testing.B) {
	const n = 10000
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

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = csr.NewFromCOO(n, n, rowIdx, colIdx, vals)
	}
}
