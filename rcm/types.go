// Package rcm provides tunable options and error definitions
// for Reverse Cuthill–McKee ordering over a csr.Matrix.
package rcm

import (
	"context"
	"errors"
)

// Sentinel errors for ordering computation. Shape violations on the input
// matrix surface as csr sentinels (csr.ErrNonSquare) wrapped with this
// package's prefix; match them with errors.Is.
var (
	// ErrMatrixNil is returned if a nil matrix pointer is passed.
	ErrMatrixNil = errors.New("rcm: matrix is nil")
)

// Option configures Compute via functional arguments.
type Option func(*options)

// options holds the tunables for a single Compute call.
type options struct {
	// ctx allows cancellation during traversal.
	ctx context.Context

	// reverse controls the final reversal step. true yields Reverse
	// Cuthill–McKee (the default); false leaves the plain Cuthill–McKee
	// order.
	reverse bool
}

// defaultOptions returns the documented defaults: background context,
// reversal on.
func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		reverse: true,
	}
}

// WithContext sets a custom context. Compute checks it once per dequeued
// vertex and returns ctx.Err() on cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithoutReversal skips the final reversal, returning the plain
// Cuthill–McKee order. Envelope methods that want CM directly use this;
// everything else should keep the default.
func WithoutReversal() Option {
	return func(o *options) { o.reverse = false }
}

// Ordering is a permutation pair over [0, n):
//
//   - Perm[new] = old — new index `new` takes the vertex that was `old`;
//   - InvPerm[old] = new — where vertex `old` ends up;
//   - InvPerm[Perm[i]] == i for every i, and Perm is a bijection.
//
// Feed the pair to csr.Matrix.Permute as (Perm, InvPerm), in that order.
type Ordering struct {
	Perm    []int
	InvPerm []int
}

// Inverse returns the ordering that undoes o: applying Permute with o and
// then with o.Inverse() restores the original matrix. The receiver is not
// modified; the result holds fresh slices.
func (o *Ordering) Inverse() *Ordering {
	n := len(o.Perm)
	inv := &Ordering{
		Perm:    make([]int, n),
		InvPerm: make([]int, n),
	}
	copy(inv.Perm, o.InvPerm)
	copy(inv.InvPerm, o.Perm)
	return inv
}

// Len returns the number of vertices the ordering covers.
func (o *Ordering) Len() int { return len(o.Perm) }
