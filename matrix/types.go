// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by dense and compressed containers.
// This file contains ONLY the element constraint, the orientation tag, the
// slot type and the two collaborator interfaces (Matrix, Sparse).
package matrix

import "golang.org/x/exp/constraints"

// Scalar is the element constraint of every container in this package.
// Any built-in integer, floating-point or complex type (or a type defined
// over one of them) qualifies.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Real is the constraint for scaling factors whose type may differ from the
// element type (see ScaleBy).
type Real interface {
	constraints.Integer | constraints.Float
}

// Orientation selects which dimension of a compressed matrix is stored as a
// contiguous line.
type Orientation uint8

const (
	// RowMajor stores one line per row; slot indices are column indices.
	RowMajor Orientation = iota
	// ColumnMajor stores one line per column; slot indices are row indices.
	ColumnMajor
)

// String returns "RowMajor" or "ColumnMajor".
func (o Orientation) String() string {
	if o == ColumnMajor {
		return "ColumnMajor"
	}

	return "RowMajor"
}

// Flip returns the other orientation.
func (o Orientation) Flip() Orientation {
	if o == ColumnMajor {
		return RowMajor
	}

	return ColumnMajor
}

// split maps a (row, col) coordinate to (line, index) for this orientation.
func (o Orientation) split(i, j int) (line, idx int) {
	if o == ColumnMajor {
		return j, i
	}

	return i, j
}

// join is the inverse of split.
func (o Orientation) join(line, idx int) (i, j int) {
	if o == ColumnMajor {
		return idx, line
	}

	return line, idx
}

// dims returns (number of lines, span of one line) for a rows×cols shape.
func (o Orientation) dims(rows, cols int) (lines, span int) {
	if o == ColumnMajor {
		return cols, rows
	}

	return rows, cols
}

// Element is one stored slot of a compressed line: the secondary index and
// its value. Within a line, slots are strictly ascending by Index.
type Element[T Scalar] struct {
	Index int // column (RowMajor) or row (ColumnMajor) index
	Value T   // stored value; may be an explicit zero
}

// Matrix is the minimal read surface shared by every two-dimensional
// container. Any type satisfying it can be the right-hand side of an
// assignment into a Compressed matrix.
type Matrix[T Scalar] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the value at (i, j) or ErrOutOfRange.
	// It never mutates the container.
	At(i, j int) (T, error)
}

// Sparse is implemented by containers and views that expose their stored
// slots line by line. Assignment algorithms detect it to walk sorted lines
// instead of scanning every coordinate.
type Sparse[T Scalar] interface {
	Matrix[T]

	// Orientation reports whether lines are rows or columns.
	Orientation() Orientation

	// Lines returns the number of lines (Rows for RowMajor, Cols otherwise).
	Lines() int

	// Line returns the stored slots of line l in ascending index order.
	// The slice must be treated as read-only and is invalidated by any
	// mutation of the underlying container.
	Line(l int) []Element[T]

	// NonZeros returns the number of stored slots (explicit zeros included).
	NonZeros() int
}
