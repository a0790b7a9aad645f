// SPDX-License-Identifier: MIT

// Package csr: functional configuration for construction.
// This file defines:
//   - Option (functional options consumed by the constructors),
//   - documented defaults (constants),
//   - WithX constructors.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; public APIs consume ...Option.

package csr

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion. When true, any NaN or ±Inf value is rejected with ErrNaNInf.
	DefaultValidateNaNInf = true

	// DefaultSortRows controls whether column indices inside each row are
	// sorted ascending after grouping. Sortedness is recommended for cache
	// behavior but no operation in this module requires it.
	DefaultSortRows = false
)

// Option configures matrix construction via functional arguments.
type Option func(*options)

// options holds construction-time switches. All fields are unexported;
// behavior is reachable only through the WithX constructors.
type options struct {
	sortRows       bool // sort (colIndex, values) pairs within each row
	validateNaNInf bool // reject NaN/±Inf values at ingestion
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		sortRows:       DefaultSortRows,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSortedRows sorts the column indices (and their parallel values) inside
// each row ascending during construction. Deterministic: ties cannot occur
// because duplicate (row, col) pairs are rejected earlier.
func WithSortedRows() Option {
	return func(o *options) { o.sortRows = true }
}

// WithoutNaNInfCheck disables the finite-value guard, admitting NaN and ±Inf
// values. Bandwidth, Permute and the adjacency view treat any stored value
// as a structural nonzero regardless of this switch.
func WithoutNaNInfCheck() Option {
	return func(o *options) { o.validateNaNInf = false }
}
