// SPDX-License-Identifier: MIT

// Package matrix - logical equality across containers.
//
// Purpose:
//   - Compare what a matrix MEANS, not how it is stored: explicit zeros equal
//     structural zeros, orientation and capacity are irrelevant.
//   - Work for any pair of Matrix implementations (dense, compressed, views).
//
// Implementation:
//   - Both operands are brought into one orientation (sparse operands in
//     that orientation are not copied) and compared line by line with a
//     lock-step walk.

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b have the same shape and the same value at
// every coordinate. Returns false when an At call of a non-sparse operand
// fails.
// Complexity: O(nnz + lines) for sparse operands, O(r*c) for dense ones.
func Equal[T Scalar](a, b Matrix[T]) bool {
	return equalWith(a, b, func(x, y T) bool { return x == y })
}

// EqualApprox is Equal with an absolute tolerance: |x - y| <= tol at every
// coordinate. NaN never compares equal.
func EqualApprox[T constraints.Float](a, b Matrix[T], tol T) bool {
	return equalWith(a, b, func(x, y T) bool {
		return math.Abs(float64(x-y)) <= float64(tol)
	})
}

// equalWith is the shared kernel of Equal/EqualApprox.
func equalWith[T Scalar](a, b Matrix[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	o := RowMajor
	if s, ok := a.(Sparse[T]); ok {
		o = s.Orientation()
	} else if s, ok := b.(Sparse[T]); ok {
		o = s.Orientation()
	}
	la, err := linesOf(a, o)
	if err != nil {
		return false
	}
	lb, err := linesOf(b, o)
	if err != nil {
		return false
	}
	for l := 0; l < la.Lines(); l++ {
		if !lineEqual(la.Line(l), lb.Line(l), eq) {
			return false
		}
	}

	return true
}

// lineEqual compares two sorted slot runs; a slot present on one side only
// must be eq to zero.
func lineEqual[T Scalar](a, b []Element[T], eq func(x, y T) bool) bool {
	var zero T
	ia, ib := 0, 0
	for ia < len(a) || ib < len(b) {
		switch {
		case ib == len(b) || (ia < len(a) && a[ia].Index < b[ib].Index):
			if !eq(a[ia].Value, zero) {
				return false
			}
			ia++
		case ia == len(a) || b[ib].Index < a[ia].Index:
			if !eq(zero, b[ib].Value) {
				return false
			}
			ib++
		default:
			if !eq(a[ia].Value, b[ib].Value) {
				return false
			}
			ia++
			ib++
		}
	}

	return true
}
