// SPDX-License-Identifier: MIT

// Package matrix - assignment algorithms for Compressed matrices.
//
// Purpose:
//   - Copy (Assign), merge (AddAssign/SubAssign) and product (MulAssign)
//     from dense or sparse right-hand sides.
//   - In-place scaling (Scale, Divide, ScaleBy) and matrix-vector products.
//
// Policy:
//   - Every assignment assembles a fresh packed store and installs it only
//     after success, so a source that aliases the destination (the matrix
//     itself or a view over it) is read from the old store while the new
//     one is built. Failed calls leave the destination untouched.
//   - Dense operands contribute their non-zero entries only.
//   - Merges keep explicit zeros produced by cancellation; products drop
//     accumulated zeros.

package matrix

import (
	"slices"
)

// linesOf returns the content of src as lines in orientation o. Sparse
// operands already in orientation o are returned as-is (no copy).
// Complexity: O(1) for matching sparse operands; O(nnz + lines) for the
// other orientation; O(r*c) for dense operands.
func linesOf[T Scalar](src Matrix[T], o Orientation) (lineSource[T], error) {
	if s, ok := src.(Sparse[T]); ok && s.Orientation() == o {
		return s, nil
	}
	st, err := materialize(src, o)
	if err != nil {
		return nil, err
	}

	return &st, nil
}

// materialize copies the logical content of src into a packed store in
// orientation o.
// Implementation:
//   - Sparse, same orientation: slot-for-slot copy, line by line.
//   - Sparse, other orientation: histogram/scatter (transposed build).
//   - *Dense (row-major target): flat scan of the backing slice.
//   - Anything else: At-scan in the target's natural order.
//
// In the dense paths, entries equal to the zero value are not stored.
func materialize[T Scalar](src Matrix[T], o Orientation) (storage[T], error) {
	rows, cols := src.Rows(), src.Cols()
	lines, span := o.dims(rows, cols)

	if s, ok := src.(Sparse[T]); ok {
		if s.Orientation() == o {
			asm := newAssembler[T](lines, s.NonZeros())
			for l := 0; l < lines; l++ {
				asm.pushLine(s.Line(l))
			}

			return asm.storage(0, 0), nil
		}

		return scatter[T](s, lines, 0), nil
	}

	var zero T
	asm := newAssembler[T](lines, 0)
	if d, ok := src.(*Dense[T]); ok && o == RowMajor {
		for i := 0; i < rows; i++ {
			for j, v := range d.data[i*cols : (i+1)*cols] {
				if v != zero {
					asm.push(j, v)
				}
			}
			asm.seal()
		}

		return asm.storage(0, 0), nil
	}

	for l := 0; l < lines; l++ {
		for idx := 0; idx < span; idx++ {
			i, j := o.join(l, idx)
			v, err := src.At(i, j)
			if err != nil {
				return storage[T]{}, err
			}
			if v != zero {
				asm.push(idx, v)
			}
		}
		asm.seal()
	}

	return asm.storage(0, 0), nil
}

// Assign replaces the content AND shape of m by src.
// MAIN DESCRIPTION:
//   - Dense sources: scan in natural order, store non-zero entries only.
//   - Sparse sources, same orientation: structural slot-for-slot copy.
//   - Sparse sources, other orientation: transposed build via scatter;
//     lines come out sorted and duplicate-free.
//
// Behavior highlights:
//   - Assigning m to itself is a no-op; views over m are read before the
//     new store replaces the old one.
//   - Explicit zeros of a sparse source are copied verbatim.
//
// Errors:
//   - ErrNilMatrix; any error returned by src.At.
//
// Complexity:
//   - O(nnz + lines) for sparse sources, O(r*c) for dense ones.
func (m *Compressed[T]) Assign(src Matrix[T]) error {
	if src == nil {
		return matrixErrorf(ctxAssign, ErrNilMatrix)
	}
	if s, ok := src.(*Compressed[T]); ok && s == m {
		return nil
	}
	st, err := materialize(src, m.orient)
	if err != nil {
		return matrixErrorf(ctxAssign, err)
	}
	m.rows, m.cols = src.Rows(), src.Cols()
	m.adopt(st)

	return nil
}

// AddAssign computes m += src.
// Implementation:
//   - Stage 1: validate shapes; bring src into m's orientation (no copy for
//     matching sparse operands; dense zeros are dropped).
//   - Stage 2: per line, merge both sorted slot runs in lock-step: the
//     smaller index is copied, equal indices are combined.
//   - Stage 3: install the merged store.
//
// Behavior highlights:
//   - Positions present in one operand carry that operand's value.
//   - Cancellations produce explicit zeros; they are NOT pruned.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(nnz(m) + nnz(src) + lines), Space O(same).
func (m *Compressed[T]) AddAssign(src Matrix[T]) error { return m.merge(ctxAddAssign, src, false) }

// SubAssign computes m -= src. Positions present only in src carry the
// negated value. See AddAssign for the algorithm and error set.
func (m *Compressed[T]) SubAssign(src Matrix[T]) error { return m.merge(ctxSubAssign, src, true) }

// merge is the shared kernel of AddAssign/SubAssign.
func (m *Compressed[T]) merge(tag string, src Matrix[T], neg bool) error {
	if src == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}
	if err := validateSameShape[T](m, src); err != nil {
		return matrixErrorf(tag, err)
	}
	rhs, err := linesOf(src, m.orient)
	if err != nil {
		return matrixErrorf(tag, err)
	}

	lines := m.st.Lines()
	asm := newAssembler[T](lines, m.st.nonZeros())
	for l := 0; l < lines; l++ {
		mergeLine(&asm, m.st.Line(l), rhs.Line(l), neg)
		asm.seal()
	}
	m.adopt(asm.storage(0, 0))

	return nil
}

// mergeLine appends the sorted union of a and b (b negated when neg) to asm.
// Complexity: O(len(a) + len(b)).
func mergeLine[T Scalar](asm *assembler[T], a, b []Element[T], neg bool) {
	var zero T
	ia, ib := 0, 0
	for ia < len(a) && ib < len(b) {
		switch {
		case a[ia].Index < b[ib].Index:
			asm.push(a[ia].Index, a[ia].Value)
			ia++
		case b[ib].Index < a[ia].Index:
			if neg {
				asm.push(b[ib].Index, zero-b[ib].Value)
			} else {
				asm.push(b[ib].Index, b[ib].Value)
			}
			ib++
		default:
			if neg {
				asm.push(a[ia].Index, a[ia].Value-b[ib].Value)
			} else {
				asm.push(a[ia].Index, a[ia].Value+b[ib].Value)
			}
			ia++
			ib++
		}
	}
	asm.buf = append(asm.buf, a[ia:]...)
	for ; ib < len(b); ib++ {
		if neg {
			asm.push(b[ib].Index, zero-b[ib].Value)
		} else {
			asm.push(b[ib].Index, b[ib].Value)
		}
	}
}

// MulAssign computes m = m × src (sparse matrix product).
// MAIN DESCRIPTION:
//   - Row-major m: row i of the result accumulates a(i,j)·row j of src.
//   - Column-major m: column k of the result accumulates b(j,k)·column j
//     of m.
//
// Implementation:
//   - Stage 1: validate m.Cols == src.Rows; bring src into m's orientation.
//   - Stage 2: per output line, accumulate into a dense scratch row with a
//     stamp array marking touched positions.
//   - Stage 3: sort the touched positions; emit non-zero accumulators.
//
// Behavior highlights:
//   - Positions never reached by a stored pair stay absent; accumulated
//     zeros are dropped, so the result is structurally sparse.
//   - Views (Lower, Upper, Diagonal, Transposed) and dense operands are
//     accepted; m × m is safe.
//   - The result shape is m.Rows × src.Cols.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(flops + lines + touched·log touched), Space O(width + nnz(result)).
func (m *Compressed[T]) MulAssign(src Matrix[T]) error {
	if src == nil {
		return matrixErrorf(ctxMulAssign, ErrNilMatrix)
	}
	if m.cols != src.Rows() {
		return matrixErrorf(ctxMulAssign, ErrDimensionMismatch)
	}
	rows, cols := m.rows, src.Cols()
	rhs, err := linesOf(src, m.orient)
	if err != nil {
		return matrixErrorf(ctxMulAssign, err)
	}

	var (
		lead, other lineSource[T]
		lines       int
		width       int
		swapped     bool // lead holds rhs slots: multiply other·lead
	)
	if m.orient == RowMajor {
		lead, other, lines, width = &m.st, rhs, rows, cols
	} else {
		lead, other, lines, width, swapped = rhs, &m.st, cols, rows, true
	}

	var zero T
	acc := make([]T, width)
	stamp := make([]int, width)
	touched := make([]int, 0, width)
	asm := newAssembler[T](lines, m.st.nonZeros())
	for l := 0; l < lines; l++ {
		touched = touched[:0]
		for _, x := range lead.Line(l) {
			for _, y := range other.Line(x.Index) {
				k := y.Index
				if stamp[k] != l+1 {
					stamp[k] = l + 1
					acc[k] = zero
					touched = append(touched, k)
				}
				if swapped {
					acc[k] += y.Value * x.Value
				} else {
					acc[k] += x.Value * y.Value
				}
			}
		}
		slices.Sort(touched)
		for _, k := range touched {
			if acc[k] != zero {
				asm.push(k, acc[k])
			}
		}
		asm.seal()
	}
	m.cols = cols
	m.adopt(asm.storage(0, 0))

	return nil
}

// Scale multiplies every stored value by f in place. The structure is not
// altered (explicit zeros stay stored).
// Complexity: O(nnz).
func (m *Compressed[T]) Scale(f T) {
	for l := 0; l < m.st.Lines(); l++ {
		line := m.st.Line(l)
		for k := range line {
			line[k].Value *= f
		}
	}
}

// Divide divides every stored value by f in place.
//
// Errors:
//   - ErrDivideByZero when f is zero (nothing is modified).
func (m *Compressed[T]) Divide(f T) error {
	var zero T
	if f == zero {
		return matrixErrorf(ctxDivide, ErrDivideByZero)
	}
	for l := 0; l < m.st.Lines(); l++ {
		line := m.st.Line(l)
		for k := range line {
			line[k].Value /= f
		}
	}

	return nil
}

// ScaleBy multiplies every stored value of m by a factor whose type differs
// from the element type, e.g. a complex128 matrix by a float64. The factor
// is converted with Cast.
func ScaleBy[T Scalar, S Real](m *Compressed[T], f S) {
	m.Scale(Cast[T](f))
}

// MulVec computes dst = m·x.
//
// Errors:
//   - ErrDimensionMismatch when len(x) != Cols or len(dst) != Rows.
//
// Notes:
//   - dst and x must not overlap.
//
// Complexity: O(nnz + rows).
func (m *Compressed[T]) MulVec(dst, x []T) error {
	if len(x) != m.cols || len(dst) != m.rows {
		return matrixErrorf(ctxMulVec, ErrDimensionMismatch)
	}
	m.gaxpy(dst, x, m.orient == RowMajor)

	return nil
}

// MulTransVec computes dst = mᵀ·x.
//
// Errors:
//   - ErrDimensionMismatch when len(x) != Rows or len(dst) != Cols.
func (m *Compressed[T]) MulTransVec(dst, x []T) error {
	if len(x) != m.rows || len(dst) != m.cols {
		return matrixErrorf(ctxMulTransV, ErrDimensionMismatch)
	}
	m.gaxpy(dst, x, m.orient == ColumnMajor)

	return nil
}

// gaxpy runs dst = op(m)·x. With dot=true every line yields one dst entry
// (inner products); otherwise every line scatters x[line]·slot into dst.
func (m *Compressed[T]) gaxpy(dst, x []T, dot bool) {
	var zero T
	if dot {
		for l := range dst {
			sum := zero
			for _, e := range m.st.Line(l) {
				sum += e.Value * x[e.Index]
			}
			dst[l] = sum
		}

		return
	}
	clear(dst)
	for l := 0; l < m.st.Lines(); l++ {
		xl := x[l]
		for _, e := range m.st.Line(l) {
			dst[e.Index] += e.Value * xl
		}
	}
}
