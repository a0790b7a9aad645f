// Package csr implements the Compressed Sparse Row matrix store and the
// operations the rest of the module builds on.
//
// The csr package provides:
//
//   - Matrix, an immutable CSR store built once from coordinate triples
//     (NewFromCOO) or a dense grid (NewFromDense).
//   - MulVec / MulVecTo for y = A·x with per-row gather loops.
//   - Bandwidth and Profile, the envelope metrics RCM tries to shrink.
//   - Permute, which renumbers rows and columns through a permutation pair
//     and returns a brand-new matrix, never mutating its input.
//   - AdjacencyList, the symmetrized undirected neighbor view used by the
//     rcm package.
//   - ToDense and String for human inspection.
//
// Conventions (fixed, documented once, relied on everywhere):
//
//   - A permutation pair (perm, invPerm) satisfies invPerm[perm[i]] == i;
//     perm[new] = old (new row `new` takes the data of old row `old`) and
//     invPerm[old] = new. Permute renumbers columns through invPerm, the
//     standard symmetric-reordering assumption of RCM.
//   - Duplicate (row, col) coordinates are rejected at construction with
//     ErrDuplicateEntry; they are never silently summed.
//   - Within a row, column order follows input order unless WithSortedRows
//     is supplied; no operation depends on sortedness.
//
// CSR is best when the matrix is built once and read many times: MulVec is
// O(nnz), Bandwidth is O(nnz), Permute is O(n + nnz).
//
// See the examples in this package and rcm for usage patterns.
package csr
