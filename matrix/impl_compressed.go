// SPDX-License-Identifier: MIT

// Package matrix - Compressed container & element access.
//
// Purpose:
//   - Expose the storage engine through (row, col) coordinates for either
//     orientation.
//   - Separate pure lookup (At, Find, LowerBound, UpperBound) from
//     get-or-insert access (Ref), so that an inserting access is visible at
//     the call site.
//
// AI-Hints:
//   - Iterate with Line(l) or Do; both walk stored slots only.
//   - Positions returned by Find/LowerBound/UpperBound are line-relative and
//     compare against End(line).
//
// Complexity quicksheet:
//   - At/Find/LowerBound/UpperBound: O(log k); Ref: O(log k) when present,
//     insertion cost otherwise; String: O(r*c*log k).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"
	ctxRef        = "Ref"
	ctxSet        = "Set"
	ctxInsert     = "Insert"
	ctxErase      = "Erase"
	ctxNew        = "NewCompressed"
	ctxResize     = "Resize"
	ctxAssign     = "Assign"
	ctxAddAssign  = "AddAssign"
	ctxSubAssign  = "SubAssign"
	ctxMulAssign  = "MulAssign"
	ctxDivide     = "Divide"
	ctxMulVec     = "MulVec"
	ctxMulTransV  = "MulTransVec"
	ctxReserveLn  = "ReserveLine"
	ctxBuild      = "Builder"
	ctxVecNew     = "NewCompressedVector"
	ctxVecAssign  = "Assign"
	ctxVecResize  = "Resize"
	ctxDenseNew   = "NewDense"
	ctxDenseSlice = "NewDenseFrom"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "("
	_fmtClose = " )\n"
	_fmtSep   = " "
)

// Compressed is a row- or column-compressed sparse matrix.
//   - rows, cols hold the logical shape.
//   - orient selects whether lines are rows (RowMajor) or columns.
//   - st is the shared-buffer line store.
//
// The zero value is NOT ready for use; construct with NewCompressed,
// NewRowMajor or NewColumnMajor.
type Compressed[T Scalar] struct {
	rows, cols int
	orient     Orientation
	st         storage[T]
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Sparse[float64] = (*Compressed[float64])(nil)
	_ fmt.Stringer    = (*Compressed[float64])(nil)
)

// NewCompressed creates an empty rows×cols compressed matrix.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation and capacity options.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: resolve options; validate the per-line capacity list length.
//   - Stage 3: lay out lines (per-line capacities first, then global slack).
//
// Inputs:
//   - rows, cols: non-negative shape (0×0 is a valid empty container).
//   - orient: RowMajor or ColumnMajor.
//   - opts: WithCapacity, WithLineCapacities, WithGrowthFloor.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//   - ErrBadCapacity (WithLineCapacities length != number of lines).
//
// Complexity:
//   - Time O(lines + capacity), Space O(lines + capacity).
func NewCompressed[T Scalar](rows, cols int, orient Orientation, opts ...Option) (*Compressed[T], error) {
	if rows < 0 || cols < 0 {
		return nil, compressedErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	lines, _ := orient.dims(rows, cols)
	limit := capLimit(rows, cols)

	m := &Compressed[T]{rows: rows, cols: cols, orient: orient}
	if o.lineCaps != nil {
		if len(o.lineCaps) != lines {
			return nil, compressedErrorf(ctxNew, rows, cols, ErrBadCapacity)
		}
		m.st = newStorageLines[T](o.lineCaps, o.capacity, o.growthFloor, limit)

		return m, nil
	}
	m.st = newStorage[T](lines, o.capacity, o.growthFloor, limit)

	return m, nil
}

// NewRowMajor is NewCompressed with RowMajor orientation.
func NewRowMajor[T Scalar](rows, cols int, opts ...Option) (*Compressed[T], error) {
	return NewCompressed[T](rows, cols, RowMajor, opts...)
}

// NewColumnMajor is NewCompressed with ColumnMajor orientation.
func NewColumnMajor[T Scalar](rows, cols int, opts ...Option) (*Compressed[T], error) {
	return NewCompressed[T](rows, cols, ColumnMajor, opts...)
}

// adopt installs st as the store of m, keeping m's growth floor and
// recomputing the growth limit from the current shape.
func (m *Compressed[T]) adopt(st storage[T]) {
	st.floor = m.st.floor
	if st.floor == 0 {
		st.floor = DefaultGrowthFloor
	}
	st.limit = capLimit(m.rows, m.cols)
	m.st = st
}

// Rows returns the row count. Complexity: O(1).
func (m *Compressed[T]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Compressed[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Compressed[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// Orientation reports whether lines are rows or columns.
func (m *Compressed[T]) Orientation() Orientation { return m.orient }

// Lines returns the number of lines.
func (m *Compressed[T]) Lines() int { return m.st.Lines() }

// Line returns the stored slots of line l (nil when l is out of range).
// The slice is read-only and is invalidated by the next mutation.
func (m *Compressed[T]) Line(l int) []Element[T] { return m.st.Line(l) }

// NonZeros returns the number of stored slots, explicit zeros included.
// Complexity: O(lines).
func (m *Compressed[T]) NonZeros() int { return m.st.nonZeros() }

// End returns the end position of line l, i.e. its number of stored slots.
// Out-of-range lines report 0.
func (m *Compressed[T]) End(l int) int { return m.st.size(l) }

// Capacity returns the total number of allocated slots.
func (m *Compressed[T]) Capacity() int { return m.st.capacity() }

// LineCapacity returns the number of slots reserved by line l.
func (m *Compressed[T]) LineCapacity(l int) int { return m.st.lineCap(l) }

// locate bounds-checks (i, j) and maps it to (line, index).
func (m *Compressed[T]) locate(method string, i, j int) (line, idx int, err error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, 0, compressedErrorf(method, i, j, ErrOutOfRange)
	}
	line, idx = m.orient.split(i, j)

	return line, idx, nil
}

// At returns the value at (i, j); structural zeros read as the zero value.
// At never inserts.
//
// Errors:
//   - ErrOutOfRange when (i, j) is outside the matrix.
//
// Complexity:
//   - Time O(log k), Space O(1).
func (m *Compressed[T]) At(i, j int) (T, error) {
	var zero T
	line, idx, err := m.locate(ctxAt, i, j)
	if err != nil {
		return zero, err
	}
	l := m.st.Line(line)
	if pos, ok := searchLine(l, idx); ok {
		return l[pos].Value, nil
	}

	return zero, nil
}

// Ref returns a pointer to the value at (i, j), inserting a zero-valued slot
// first when (i, j) is a structural zero (get-or-insert).
// MAIN DESCRIPTION:
//   - Read-write access mirroring a mutable element reference.
//
// Behavior highlights:
//   - A miss MUTATES the container (one new explicit zero). Use At or Find
//     for pure lookup.
//   - The pointer is valid until the next mutation of m.
//
// Errors:
//   - ErrOutOfRange when (i, j) is outside the matrix.
//
// Complexity:
//   - O(log k) on a hit; insertion cost on a miss.
func (m *Compressed[T]) Ref(i, j int) (*T, error) {
	line, idx, err := m.locate(ctxRef, i, j)
	if err != nil {
		return nil, err
	}
	pos, ok := searchLine(m.st.Line(line), idx)
	if !ok {
		m.st.insertAt(line, pos, Element[T]{Index: idx})
	}

	return &m.st.buf[m.st.begin[line]+pos].Value, nil
}

// Find returns the line-relative position of the slot at (i, j), or
// End(line) when no slot is stored there. Coordinates outside the matrix
// are never stored, so they also yield the end position.
func (m *Compressed[T]) Find(i, j int) int {
	line, idx := m.orient.split(i, j)

	return m.st.find(line, idx)
}

// LowerBound returns the position of the first slot in (i, j)'s line whose
// index is >= the secondary coordinate, or End(line).
func (m *Compressed[T]) LowerBound(i, j int) int {
	line, idx := m.orient.split(i, j)
	pos, _ := searchLine(m.st.Line(line), idx)

	return pos
}

// UpperBound returns the position of the first slot in (i, j)'s line whose
// index is > the secondary coordinate, or End(line).
func (m *Compressed[T]) UpperBound(i, j int) int {
	line, idx := m.orient.split(i, j)

	return upperLine(m.st.Line(line), idx)
}

// Do visits every stored slot in storage order (line by line, ascending
// index) and calls f(i, j, v). It stops early when f returns false.
// Complexity: O(lines + nnz).
func (m *Compressed[T]) Do(f func(i, j int, v T) bool) {
	for l := 0; l < m.st.Lines(); l++ {
		for _, e := range m.st.Line(l) {
			i, j := m.orient.join(l, e.Index)
			if !f(i, j, e.Value) {
				return
			}
		}
	}
}

// Clone returns a deep copy with identical layout and capacity.
// Complexity: O(capacity).
func (m *Compressed[T]) Clone() *Compressed[T] {
	return &Compressed[T]{rows: m.rows, cols: m.cols, orient: m.orient, st: m.st.clone()}
}

// Swap exchanges the complete state of m and other in O(1).
func (m *Compressed[T]) Swap(other *Compressed[T]) {
	*m, *other = *other, *m
}

// String renders the matrix densely, one "( a b c )" line per row.
// Intended for diagnostics only.
// Complexity: O(r*c*log k).
func (m *Compressed[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtOpen)
		for j = 0; j < m.cols; j++ {
			v, _ := m.At(i, j) // in range by construction
			b.WriteString(_fmtSep)
			b.WriteString(fmt.Sprint(v))
		}
		b.WriteString(_fmtClose)
	}

	return b.String()
}
