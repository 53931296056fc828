// SPDX-License-Identifier: MIT

// Package matrix - zero-copy views over sparse operands.
//
// Purpose:
//   - Transposed: reinterpret the lines of a sparse operand in the other
//     orientation (rows become columns) without moving a slot.
//   - Lower/Upper/Diagonal: restrict every line to a contiguous sub-run of
//     its slots (a prefix, a suffix, or at most one slot).
//
// Behavior highlights:
//   - Views hold the operand, not a copy; they reflect later mutations and
//     share the operand's invalidation rules.
//   - All views implement Sparse, so assignments walk their lines directly.
//
// Complexity quicksheet:
//   - Transposed.Line: O(1); band Line: O(log k); NonZeros: O(lines) or
//     O(lines*log k).

package matrix

import "fmt"

// viewErrorf wraps err with the view name and the offending coordinates.
func viewErrorf(view string, i, j int, err error) error {
	return fmt.Errorf("%s.At(%d,%d): %w", view, i, j, err)
}

// TransposedView presents a sparse operand as its transpose.
type TransposedView[T Scalar] struct {
	src Sparse[T]
}

// Transposed returns the transpose of s as a view. The lines of s are reused
// as-is: a RowMajor r×c operand is seen as a ColumnMajor c×r matrix.
// Complexity: O(1).
func Transposed[T Scalar](s Sparse[T]) *TransposedView[T] {
	return &TransposedView[T]{src: s}
}

// Rows returns the column count of the operand.
func (v *TransposedView[T]) Rows() int { return v.src.Cols() }

// Cols returns the row count of the operand.
func (v *TransposedView[T]) Cols() int { return v.src.Rows() }

// Orientation is the flipped orientation of the operand.
func (v *TransposedView[T]) Orientation() Orientation { return v.src.Orientation().Flip() }

// Lines returns the line count of the operand.
func (v *TransposedView[T]) Lines() int { return v.src.Lines() }

// Line returns line l of the operand unchanged.
func (v *TransposedView[T]) Line(l int) []Element[T] { return v.src.Line(l) }

// NonZeros returns the slot count of the operand.
func (v *TransposedView[T]) NonZeros() int { return v.src.NonZeros() }

// At returns operand(j, i).
func (v *TransposedView[T]) At(i, j int) (T, error) {
	val, err := v.src.At(j, i)
	if err != nil {
		return val, viewErrorf("Transposed", i, j, ErrOutOfRange)
	}

	return val, nil
}

// bandKind selects which part of each line a BandView keeps.
type bandKind uint8

const (
	bandLower bandKind = iota // i >= j
	bandUpper                 // i <= j
	bandDiag                  // i == j
)

// String returns the view name used in error messages.
func (k bandKind) String() string {
	switch k {
	case bandLower:
		return "Lower"
	case bandUpper:
		return "Upper"
	default:
		return "Diagonal"
	}
}

// BandView restricts a sparse operand to its lower triangle, upper
// triangle or diagonal. Entries outside the band read as zero.
type BandView[T Scalar] struct {
	src  Sparse[T]
	kind bandKind
}

// Lower returns the view of s restricted to i >= j (diagonal included).
func Lower[T Scalar](s Sparse[T]) *BandView[T] { return &BandView[T]{src: s, kind: bandLower} }

// Upper returns the view of s restricted to i <= j (diagonal included).
func Upper[T Scalar](s Sparse[T]) *BandView[T] { return &BandView[T]{src: s, kind: bandUpper} }

// Diagonal returns the view of s restricted to i == j.
func Diagonal[T Scalar](s Sparse[T]) *BandView[T] { return &BandView[T]{src: s, kind: bandDiag} }

// Rows returns the operand's row count.
func (v *BandView[T]) Rows() int { return v.src.Rows() }

// Cols returns the operand's column count.
func (v *BandView[T]) Cols() int { return v.src.Cols() }

// Orientation returns the operand's orientation.
func (v *BandView[T]) Orientation() Orientation { return v.src.Orientation() }

// Lines returns the operand's line count.
func (v *BandView[T]) Lines() int { return v.src.Lines() }

// keeps reports whether (i, j) lies inside the band.
func (v *BandView[T]) keeps(i, j int) bool {
	switch v.kind {
	case bandLower:
		return i >= j
	case bandUpper:
		return i <= j
	default:
		return i == j
	}
}

// Line returns the sub-run of line l inside the band.
// Implementation:
//   - Within line l the band is "index <= l" or "index >= l" depending on
//     kind and orientation; both are contiguous, so one binary search cuts
//     the line into a prefix or a suffix. The diagonal is the single slot
//     with index l.
func (v *BandView[T]) Line(l int) []Element[T] {
	line := v.src.Line(l)
	if len(line) == 0 {
		return line
	}
	// RowMajor: (i, j) = (l, idx); lower keeps idx <= l.
	// ColumnMajor: (i, j) = (idx, l); lower keeps idx >= l.
	prefix := (v.kind == bandLower) == (v.src.Orientation() == RowMajor)
	switch {
	case v.kind == bandDiag:
		pos, ok := searchLine(line, l)
		if !ok {
			return line[:0]
		}

		return line[pos : pos+1 : pos+1]
	case prefix:
		cut := upperLine(line, l)

		return line[:cut:cut]
	default:
		cut, _ := searchLine(line, l)

		return line[cut:]
	}
}

// NonZeros counts the operand's slots inside the band.
// Complexity: O(lines*log k).
func (v *BandView[T]) NonZeros() int {
	n := 0
	for l := 0; l < v.src.Lines(); l++ {
		n += len(v.Line(l))
	}

	return n
}

// At returns the operand's value inside the band and zero outside it.
func (v *BandView[T]) At(i, j int) (T, error) {
	var zero T
	val, err := v.src.At(i, j)
	if err != nil {
		return zero, viewErrorf(v.kind.String(), i, j, ErrOutOfRange)
	}
	if !v.keeps(i, j) {
		return zero, nil
	}

	return val, nil
}

// Compile-time assertions.
var (
	_ Sparse[float64] = (*TransposedView[float64])(nil)
	_ Sparse[float64] = (*BandView[float64])(nil)
)
