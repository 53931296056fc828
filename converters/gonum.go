// SPDX-License-Identifier: MIT

// Package: lvlsparse/converters
//
// gonum.go: matrix.Matrix[float64] <-> gonum mat.Matrix.
//
// Zero handling:
//   - Copies into this package's compressed containers keep non-zero entries
//     only, matching matrix.FromMatrix.
//   - Copies into gonum are always dense.

package converters

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsparse/matrix"
)

// GonumView adapts a matrix.Matrix[float64] to mat.Matrix. The view reads
// through to its operand and follows later mutations of it.
type GonumView struct {
	m matrix.Matrix[float64]
}

var _ mat.Matrix = GonumView{}

// ToGonum wraps m as a mat.Matrix. Returns nil for a nil m.
func ToGonum(m matrix.Matrix[float64]) *GonumView {
	if m == nil {
		return nil
	}

	return &GonumView{m: m}
}

// Dims returns the operand's shape.
func (g GonumView) Dims() (r, c int) { return g.m.Rows(), g.m.Cols() }

// At returns the (i,j) entry. Panics with mat.ErrIndexOutOfRange on a bad
// coordinate, as gonum's own types do.
func (g GonumView) At(i, j int) float64 {
	v, err := g.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return v
}

// T returns the implicit transpose.
func (g GonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// ToGonumDense copies m into a new *mat.Dense.
//
// Errors: ErrNilOperand, ErrEmpty for a zero dimension.
func ToGonumDense(m matrix.Matrix[float64]) (*mat.Dense, error) {
	if m == nil {
		return nil, convErrorf("ToGonumDense", ErrNilOperand)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, convErrorf("ToGonumDense", ErrEmpty)
	}
	if d, ok := m.(*matrix.Dense[float64]); ok {
		return mat.NewDense(r, c, append([]float64(nil), d.RawData()...)), nil
	}
	out := mat.NewDense(r, c, nil)
	if s, ok := m.(matrix.Sparse[float64]); ok {
		rowMajor := s.Orientation() == matrix.RowMajor
		for l := 0; l < s.Lines(); l++ {
			for _, e := range s.Line(l) {
				if rowMajor {
					out.Set(l, e.Index, e.Value)
				} else {
					out.Set(e.Index, l, e.Value)
				}
			}
		}

		return out, nil
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, convErrorf("ToGonumDense", err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// FromGonum copies the non-zero entries of a into a compressed matrix of
// orientation o. Row-major gonum storage is read directly when available.
//
// Errors: ErrNilOperand.
func FromGonum(a mat.Matrix, o matrix.Orientation) (*matrix.Compressed[float64], error) {
	if a == nil {
		return nil, convErrorf("FromGonum", ErrNilOperand)
	}
	r, c := a.Dims()
	d, err := matrix.NewDense[float64](r, c)
	if err != nil {
		return nil, convErrorf("FromGonum", err)
	}
	raw := d.RawData()
	if rm, ok := a.(mat.RawMatrixer); ok {
		src := rm.RawMatrix()
		for i := 0; i < r; i++ {
			copy(raw[i*c:(i+1)*c], src.Data[i*src.Stride:i*src.Stride+c])
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				raw[i*c+j] = a.At(i, j)
			}
		}
	}

	return matrix.FromMatrix[float64](d, o)
}
