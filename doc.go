// Package csrband is a compact toolkit for sparse matrices in Compressed
// Sparse Row form — build them from coordinate triples, multiply them,
// measure their bandwidth, and shrink that bandwidth with Reverse
// Cuthill–McKee reordering.
//
// 🚀 What is csrband?
//
//	A small, deterministic library that brings together:
//		• CSR storage: row-pointer / column-index / value triples, immutable after build
//		• Construction: coordinate (COO) and dense ingestion with strict validation
//		• Kernels: matrix–vector multiply, bandwidth & profile measurement
//		• Reordering: Reverse Cuthill–McKee with reproducible tie-breaking
//		• Permutation: symmetric row/column renumbering into a fresh matrix
//		• Inspection: dense rendering and sparsity-pattern (spy) plots
//
// ✨ Why choose csrband?
//
//   - Deterministic by contract – identical inputs yield identical orderings
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Single-owner values – every operation returns a fresh, independent matrix
//   - Honest about heuristics – RCM promises a small bandwidth, never the minimum
//
// Everything is organized under three subpackages:
//
//	csr/ — the CSR store: construction, MulVec, Bandwidth, Permute, dense views
//	rcm/ — the Reverse Cuthill–McKee ordering engine
//	spy/ — sparsity-pattern scatter plots (gonum/plot)
//
// Quick ASCII example — a badly numbered path graph:
//
//	    0───2───4───1───3
//
//	has bandwidth 3 as a matrix; after RCM renumbering it is tridiagonal
//	with bandwidth 1.
//
// Dive into the package docs for the exact permutation conventions and the
// determinism guarantees the tests rely on.
//
//	go get github.com/katalvlaran/csrband
package csrband
