// SPDX-License-Identifier: MIT

// Package csr - symmetrized adjacency view.
//
// Purpose:
//   - Expose the undirected graph induced by the nonzero pattern: vertex u
//     is adjacent to v when A[u][v] != 0 OR A[v][u] != 0. RCM assumes this
//     symmetrized view; it is computed on demand and never persisted.
//
// Determinism & Performance:
//   - Neighbor lists come out sorted ascending and duplicate-free, so every
//     consumer iterates them in one fixed order.
//   - Build is O(n + nnz log nnz) from the sort; no map iteration.

package csr

import (
	"fmt"
	"sort"
)

// AdjacencyList returns the symmetrized undirected adjacency of the nonzero
// pattern: one sorted, duplicate-free neighbor list per row vertex.
// Self-loops (diagonal entries) are excluded, so an isolated vertex — one
// whose only entry sits on the diagonal, or which has no entries at all —
// gets an empty list and degree 0.
//
// The view treats rows and columns as the same index space, so the matrix
// must be square; a rectangular receiver is ErrNonSquare. Values play no
// role: any stored entry is a structural nonzero, whatever its magnitude.
// Complexity: O(n + nnz log nnz).
func (m *Matrix) AdjacencyList() ([][]int, error) {
	if m == nil {
		return nil, fmt.Errorf("AdjacencyList: %w", ErrNilMatrix)
	}
	if m.rows != m.cols {
		return nil, fmt.Errorf("AdjacencyList(%dx%d): %w", m.rows, m.cols, ErrNonSquare)
	}

	n := m.rows
	adj := make([][]int, n)
	for r := 0; r < n; r++ {
		for k := m.rowStart[r]; k < m.rowStart[r+1]; k++ {
			c := m.colIndex[k]
			if c == r {
				continue // self-loops never count as adjacency
			}
			adj[r] = append(adj[r], c)
			adj[c] = append(adj[c], r) // mirror: A[r][c] makes c adjacent to r too
		}
	}

	// Sort and compact each list; an asymmetric pattern or a mirrored pair
	// both produce duplicates here.
	for v := range adj {
		nbrs := adj[v]
		sort.Ints(nbrs)
		adj[v] = compactInts(nbrs)
	}
	return adj, nil
}

// compactInts removes adjacent duplicates from a sorted slice, in place.
func compactInts(s []int) []int {
	if len(s) < 2 {
		return s
	}
	w := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[w-1] {
			s[w] = s[i]
			w++
		}
	}
	return s[:w]
}
