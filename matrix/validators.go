// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T Scalar](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil.
func validateSameShape[T Scalar](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Complexity: O(1).
func ValidateSameShape[T Scalar](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return validateSameShape(a, b)
}

// ValidateSquare checks that m is non-nil and square.
func ValidateSquare[T Scalar](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSorted checks the structural invariant of a sparse operand: every
// line is strictly ascending by index and every index lies inside the
// matrix. It returns ErrUnsorted or ErrOutOfRange tagged with the line.
// Complexity: O(lines + nnz).
func ValidateSorted[T Scalar](s Sparse[T]) error {
	if s == nil {
		return validatorErrorf("ValidateSorted", ErrNilMatrix)
	}
	_, span := s.Orientation().dims(s.Rows(), s.Cols())
	for l := 0; l < s.Lines(); l++ {
		line := s.Line(l)
		if !isSortedLine(line) {
			return validatorErrorf(fmt.Sprintf("ValidateSorted: line %d", l), ErrUnsorted)
		}
		if n := len(line); n > 0 && (line[0].Index < 0 || line[n-1].Index >= span) {
			return validatorErrorf(fmt.Sprintf("ValidateSorted: line %d", l), ErrOutOfRange)
		}
	}

	return nil
}
