// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Serve as the dense operand of compressed assignments and as the
//     reference container in tests and benchmarks.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//
// AI-Hints:
//   - Compressed.Assign(*Dense) reads the flat buffer directly for
//     RowMajor targets.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Scalar] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Scalar](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxDenseNew, rows, cols, ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFrom builds an r×c Dense from a row-major slice (copied).
//
// Errors:
//   - ErrInvalidDimensions for negative sizes.
//   - ErrDimensionMismatch when len(data) != r*c.
func NewDenseFrom[T Scalar](rows, cols int, data []T) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxDenseSlice, rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, denseErrorf(ctxDenseSlice, rows, cols, ErrDimensionMismatch)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// RawData returns the row-major backing slice (shared, not copied).
func (m *Dense[T]) RawData() []T { return m.data }

// String renders rows as "( a b c )" lines, the same format Compressed uses.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(_fmtSep)
			b.WriteString(fmt.Sprint(m.data[base+j]))
		}
		b.WriteString(_fmtClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major order.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
