// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All checked operations return these sentinels (possibly wrapped
// with call-site context) and tests match them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// wrapped at the detection site with fmt.Errorf("ctx: %w", ErrX); callers
// still branch with errors.Is.

var (
	// ErrDuplicateKey is returned by Insert when the target coordinate
	// already holds a stored slot. The container is left unchanged.
	ErrDuplicateKey = errors.New("matrix: element already exists")

	// ErrOutOfRange indicates that a row, column or line index is outside
	// the container bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes
	// (Assign/AddAssign/SubAssign with different shapes, MulAssign with
	// a.Cols != b.Rows, vector length mismatches).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidDimensions indicates negative requested dimensions.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadCapacity indicates a per-line capacity list whose length does
	// not match the number of lines.
	ErrBadCapacity = errors.New("matrix: invalid capacity layout")

	// ErrNilMatrix indicates that a nil operand was passed.
	ErrNilMatrix = errors.New("matrix: nil operand")

	// ErrUnsorted is returned by Builder.Append when slots do not arrive in
	// ascending (line, index) order.
	ErrUnsorted = errors.New("matrix: append out of order")

	// ErrBuilderConsumed is returned by any Builder call after Build.
	ErrBuilderConsumed = errors.New("matrix: builder already consumed")

	// ErrDivideByZero is returned by Divide when the divisor is zero.
	ErrDivideByZero = errors.New("matrix: division by zero")
)

// compressedErrorf wraps err with a method tag and the offending coordinates.
// Complexity: O(1).
func compressedErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Compressed.%s(%d,%d): %w", method, i, j, err)
}

// vectorErrorf is the CompressedVector counterpart of compressedErrorf.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("CompressedVector.%s(%d): %w", method, i, err)
}

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
