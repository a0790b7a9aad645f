// Package rcm computes Reverse Cuthill–McKee orderings over the symmetrized
// adjacency of a csr.Matrix, returning a permutation pair that typically
// shrinks the matrix's bandwidth.
//
// The algorithm, in the exact order the tests rely on:
//
//  1. Compute vertex degrees from the symmetrized adjacency view
//     (csr.Matrix.AdjacencyList); self-loops are excluded, so a vertex with
//     no off-diagonal neighbors is a valid isolated vertex of degree 0.
//  2. While unvisited vertices remain, pick the unvisited vertex with
//     minimum degree (ties: smallest index) as a BFS root, then expand the
//     component breadth-first. Each frontier's unvisited neighbors are
//     visited in ascending (degree, index) order. Newly discovered vertices
//     append to the Cuthill–McKee order. Disconnected graphs simply restart
//     at the next minimum-degree root.
//  3. Reverse the order (skipped under WithoutReversal).
//  4. Build the inverse: InvPerm[Perm[i]] = i.
//
// Determinism is a behavioral contract, not an accident: the (degree, index)
// tie-breaks make identical inputs produce identical orderings, and the
// package's equality-based tests depend on it. Do not parallelize the
// frontier expansion without preserving the exact visit order.
//
// RCM is a heuristic. It promises a valid bijection and, in practice, a
// small bandwidth — never the minimum. A strongly non-symmetric matrix is
// accepted (the view symmetrizes it), but the bandwidth-reduction behavior
// is only meaningful under the symmetric assumption.
package rcm
