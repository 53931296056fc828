// SPDX-License-Identifier: MIT

package converters

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsparse/matrix"
)

// ToGonumVec copies v into a new *mat.VecDense.
//
// Errors: ErrNilOperand, ErrEmpty for a zero-sized vector.
func ToGonumVec(v *matrix.CompressedVector[float64]) (*mat.VecDense, error) {
	if v == nil {
		return nil, convErrorf("ToGonumVec", ErrNilOperand)
	}
	if v.Size() == 0 {
		return nil, convErrorf("ToGonumVec", ErrEmpty)
	}

	return mat.NewVecDense(v.Size(), v.Dense()), nil
}

// VectorFromGonum copies the non-zero entries of x into a compressed vector.
//
// Errors: ErrNilOperand.
func VectorFromGonum(x mat.Vector) (*matrix.CompressedVector[float64], error) {
	if x == nil {
		return nil, convErrorf("VectorFromGonum", ErrNilOperand)
	}
	n := x.Len()
	nnz := 0
	for i := 0; i < n; i++ {
		if x.AtVec(i) != 0 {
			nnz++
		}
	}
	out, err := matrix.NewCompressedVector[float64](n, matrix.WithCapacity(nnz))
	if err != nil {
		return nil, convErrorf("VectorFromGonum", err)
	}
	for i := 0; i < n; i++ {
		if val := x.AtVec(i); val != 0 {
			out.Append(i, val)
		}
	}

	return out, nil
}

// MulVecDense computes m·x into a new *mat.VecDense.
//
// Errors: ErrNilOperand, ErrEmpty when m has no rows, and
// matrix.ErrDimensionMismatch when x.Len() != m.Cols().
func MulVecDense(m *matrix.Compressed[float64], x mat.Vector) (*mat.VecDense, error) {
	if m == nil || x == nil {
		return nil, convErrorf("MulVecDense", ErrNilOperand)
	}
	if m.Rows() == 0 {
		return nil, convErrorf("MulVecDense", ErrEmpty)
	}
	if x.Len() != m.Cols() {
		return nil, convErrorf("MulVecDense", matrix.ErrDimensionMismatch)
	}
	in := make([]float64, x.Len())
	for i := range in {
		in[i] = x.AtVec(i)
	}
	dst := make([]float64, m.Rows())
	if err := m.MulVec(dst, in); err != nil {
		return nil, convErrorf("MulVecDense", err)
	}

	return mat.NewVecDense(len(dst), dst), nil
}

// Dot returns v·x for a dense slice x, gathering x at v's stored indices.
//
// Errors: ErrNilOperand, matrix.ErrDimensionMismatch when len(x) != v.Size().
func Dot(v *matrix.CompressedVector[float64], x []float64) (float64, error) {
	if v == nil {
		return 0, convErrorf("Dot", ErrNilOperand)
	}
	if len(x) != v.Size() {
		return 0, convErrorf("Dot", matrix.ErrDimensionMismatch)
	}
	els := v.Elements()
	vals := make([]float64, len(els))
	gathered := make([]float64, len(els))
	for p, e := range els {
		vals[p] = e.Value
		gathered[p] = x[e.Index]
	}

	return floats.Dot(vals, gathered), nil
}
