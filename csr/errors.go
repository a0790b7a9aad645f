// SPDX-License-Identifier: MIT
// Package csr: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the csr
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package csr

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "csr: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection site — callers still match via errors.Is.

var (
	// ErrNilMatrix indicates that a nil *Matrix receiver or argument was used.
	ErrNilMatrix = errors.New("csr: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Construction validates shape before any allocation.
	ErrInvalidDimensions = errors.New("csr: dimensions must be > 0")

	// ErrBadTriples indicates that the coordinate-format input slices
	// (row indices, column indices, values) disagree in length, or that a
	// dense input is ragged.
	ErrBadTriples = errors.New("csr: coordinate slices disagree in length")

	// ErrIndexOutOfRange indicates that a row or column index is outside the
	// declared bounds, at construction or in an accessor.
	ErrIndexOutOfRange = errors.New("csr: index out of range")

	// ErrDuplicateEntry indicates that two coordinate triples target the same
	// (row, col) cell. The policy is reject, never sum-combine.
	ErrDuplicateEntry = errors.New("csr: duplicate coordinate entry")

	// ErrNaNInf indicates a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (ingestion default).
	ErrNaNInf = errors.New("csr: NaN or Inf encountered")

	// ErrDimensionMismatch indicates an incompatible vector or permutation
	// length, e.g. MulVec where len(x) != Cols().
	ErrDimensionMismatch = errors.New("csr: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (adjacency view, symmetric permutation).
	ErrNonSquare = errors.New("csr: matrix is not square")

	// ErrBadPermutation indicates that a (perm, invPerm) pair is not a valid
	// bijection with invPerm[perm[i]] == i for all i.
	ErrBadPermutation = errors.New("csr: invalid permutation pair")
)
