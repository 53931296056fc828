// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Return fresh containers where the in-place methods mutate their receiver.
//
// Determinism & Policy:
//   - Facades never change the numeric policy of underlying kernels: sums keep
//     explicit zeros, products drop them.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Compressed (or a view) to unlock the line-wise paths.
//   - Use NewIdentity as the neutral element of MulAssign.

package matrix

// orientationOf returns the orientation of a sparse operand, RowMajor otherwise.
func orientationOf[T Scalar](m Matrix[T]) Orientation {
	if s, ok := m.(Sparse[T]); ok {
		return s.Orientation()
	}

	return RowMajor
}

// FromMatrix returns a new compressed copy of src in orientation o.
// Complexity: see Compressed.Assign.
func FromMatrix[T Scalar](src Matrix[T], o Orientation) (*Compressed[T], error) {
	m, err := NewCompressed[T](0, 0, o)
	if err != nil {
		return nil, err
	}
	if err = m.Assign(src); err != nil {
		return nil, err
	}

	return m, nil
}

// NewIdentity returns I_n as a compressed matrix with one slot per line.
// Complexity: O(n).
func NewIdentity[T Scalar](n int, o Orientation) (*Compressed[T], error) {
	if n < 0 {
		return nil, compressedErrorf(ctxNew, n, n, ErrInvalidDimensions)
	}
	caps := make([]int, n)
	for l := range caps {
		caps[l] = 1
	}
	m, err := NewCompressed[T](n, n, o, WithLineCapacities(caps...))
	if err != nil {
		return nil, err
	}
	for l := 0; l < n; l++ {
		m.Append(l, l, 1)
		m.Finalize(l)
	}

	return m, nil
}

// ZerosLike returns an empty compressed matrix with the shape of m, in m's
// orientation when m is sparse.
func ZerosLike[T Scalar](m Matrix[T]) (*Compressed[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewCompressed[T](m.Rows(), m.Cols(), orientationOf(m))
}

// Add returns a + b as a new compressed matrix in a's orientation.
func Add[T Scalar](a, b Matrix[T]) (*Compressed[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	c, err := FromMatrix(a, orientationOf(a))
	if err != nil {
		return nil, err
	}
	if err = c.AddAssign(b); err != nil {
		return nil, err
	}

	return c, nil
}

// Sub returns a - b as a new compressed matrix in a's orientation.
func Sub[T Scalar](a, b Matrix[T]) (*Compressed[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Sub", err)
	}
	c, err := FromMatrix(a, orientationOf(a))
	if err != nil {
		return nil, err
	}
	if err = c.SubAssign(b); err != nil {
		return nil, err
	}

	return c, nil
}

// Mul returns a × b as a new compressed matrix in a's orientation.
func Mul[T Scalar](a, b Matrix[T]) (*Compressed[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Mul", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Mul", err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf("Mul", ErrDimensionMismatch)
	}
	c, err := FromMatrix(a, orientationOf(a))
	if err != nil {
		return nil, err
	}
	if err = c.MulAssign(b); err != nil {
		return nil, err
	}

	return c, nil
}

// Hadamard returns the element-wise product a ∘ b in a's orientation.
// Only coordinates stored in both operands can be non-zero; zero products
// are dropped.
// Complexity: O(nnz(a) + nnz(b) + lines).
func Hadamard[T Scalar](a, b Matrix[T]) (*Compressed[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Hadamard", err)
	}
	o := orientationOf(a)
	la, err := linesOf(a, o)
	if err != nil {
		return nil, matrixErrorf("Hadamard", err)
	}
	lb, err := linesOf(b, o)
	if err != nil {
		return nil, matrixErrorf("Hadamard", err)
	}

	var zero T
	lines := la.Lines()
	asm := newAssembler[T](lines, 0)
	for l := 0; l < lines; l++ {
		intersect(la.Line(l), lb.Line(l), func(idx int, x, y T) {
			if p := x * y; p != zero {
				asm.push(idx, p)
			}
		})
		asm.seal()
	}
	c := &Compressed[T]{rows: a.Rows(), cols: a.Cols(), orient: o}
	c.adopt(asm.storage(0, 0))

	return c, nil
}

// TransposeOf returns a new compressed matrix holding the transpose of m,
// leaving m untouched.
// Complexity: O(nnz + lines).
func TransposeOf[T Scalar](m *Compressed[T]) *Compressed[T] {
	t := m.Clone()
	t.Transpose()

	return t
}

// RowSums returns the sum of every row.
// Complexity: O(nnz + rows).
func RowSums[T Scalar](m *Compressed[T]) []T {
	out := make([]T, m.rows)
	m.Do(func(i, _ int, v T) bool {
		out[i] += v

		return true
	})

	return out
}

// ColSums returns the sum of every column.
// Complexity: O(nnz + cols).
func ColSums[T Scalar](m *Compressed[T]) []T {
	out := make([]T, m.cols)
	m.Do(func(_, j int, v T) bool {
		out[j] += v

		return true
	})

	return out
}

// ToDense expands m into a new row-major Dense.
// Complexity: O(r*c + nnz).
func ToDense[T Scalar](m Sparse[T]) *Dense[T] {
	rows, cols := m.Rows(), m.Cols()
	d := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	o := m.Orientation()
	for l := 0; l < m.Lines(); l++ {
		for _, e := range m.Line(l) {
			i, j := o.join(l, e.Index)
			d.data[i*cols+j] = e.Value
		}
	}

	return d
}
