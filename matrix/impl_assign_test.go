// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the assignment algorithms
// (Assign, AddAssign, SubAssign, MulAssign) and the scaling kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlsparse/matrix"
	"github.com/stretchr/testify/require"
)

// operandKinds enumerates the right-hand side flavours every assignment
// accepts: sparse in both orientations, *Dense, and an opaque Matrix.
func operandKinds(t *testing.T, r, c int, vals []float64) map[string]matrix.Matrix[float64] {
	t.Helper()

	return map[string]matrix.Matrix[float64]{
		"RowMajor":    MustSparse(t, matrix.RowMajor, r, c, vals),
		"ColumnMajor": MustSparse(t, matrix.ColumnMajor, r, c, vals),
		"Dense":       MustDense(t, r, c, vals),
		"Opaque":      hide{MustDense(t, r, c, vals)},
	}
}

// TestAssign_AllSources copies every operand kind into both orientations.
func TestAssign_AllSources(t *testing.T) {
	vals := randomValues(5, 4, 0.4, 21)
	for _, o := range orientations {
		for name, src := range operandKinds(t, 5, 4, vals) {
			t.Run(fmt.Sprintf("%s<-%s", o, name), func(t *testing.T) {
				m := MustSparse(t, o, 2, 2, []float64{9, 9, 9, 9})
				require.NoError(t, m.Assign(src))
				require.Equal(t, 5, m.Rows())
				require.Equal(t, 4, m.Cols())
				require.Equal(t, o, m.Orientation())
				RequireValid(t, m)
				RequireEqualDense(t, vals, m)
			})
		}
	}
}

// TestAssign_ZeroPolicy: dense zeros are not stored, sparse explicit zeros
// are copied verbatim.
func TestAssign_ZeroPolicy(t *testing.T) {
	m := MustRowMajor(t, 0, 0)
	require.NoError(t, m.Assign(MustDense(t, 2, 2, []float64{0, 1, 0, 0})))
	require.Equal(t, 1, m.NonZeros())

	src := MustRowMajor(t, 2, 2)
	_, err := src.Ref(0, 0)
	require.NoError(t, err)
	MustSet(t, src, 1, 1, 2)

	for _, o := range orientations {
		dst := MustRowMajor(t, 0, 0)
		if o == matrix.ColumnMajor {
			dst = MustColumnMajor(t, 0, 0)
		}
		require.NoError(t, dst.Assign(src))
		require.Equal(t, 2, dst.NonZeros(), o.String())
	}
}

// TestAssign_SelfAndAlias covers m = m and m = view(m).
func TestAssign_SelfAndAlias(t *testing.T) {
	vals := randomValues(4, 4, 0.5, 8)
	for _, o := range orientations {
		m := MustSparse(t, o, 4, 4, vals)
		require.NoError(t, m.Assign(m))
		RequireEqualDense(t, vals, m)

		require.NoError(t, m.Assign(matrix.Transposed[float64](m)))
		RequireValid(t, m)
		RequireEqualDense(t, denseTranspose(vals, 4, 4), m)

		m = MustSparse(t, o, 4, 4, vals)
		require.NoError(t, m.Assign(matrix.Lower[float64](m)))
		RequireValid(t, m)
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				want := vals[i*4+j]
				if j > i {
					want = 0
				}
				require.Equal(t, want, MustAt(t, m, i, j))
			}
		}
	}

	m := MustRowMajor(t, 1, 1)
	require.ErrorIs(t, m.Assign(nil), matrix.ErrNilMatrix)
}

// TestAddSubAssign_AgainstDense checks merges for every operand kind.
func TestAddSubAssign_AgainstDense(t *testing.T) {
	a := randomValues(6, 5, 0.35, 1)
	b := randomValues(6, 5, 0.35, 2)
	sum := make([]float64, len(a))
	diff := make([]float64, len(a))
	for k := range a {
		sum[k] = a[k] + b[k]
		diff[k] = a[k] - b[k]
	}

	for _, o := range orientations {
		for name, src := range operandKinds(t, 6, 5, b) {
			t.Run(fmt.Sprintf("%s+=%s", o, name), func(t *testing.T) {
				m := MustSparse(t, o, 6, 5, a)
				require.NoError(t, m.AddAssign(src))
				RequireValid(t, m)
				RequireEqualDense(t, sum, m)

				require.NoError(t, m.SubAssign(src))
				RequireValid(t, m)
				RequireEqualDense(t, a, m)
				require.True(t, matrix.Equal[float64](MustSparse(t, o, 6, 5, a), m))
			})
			t.Run(fmt.Sprintf("%s-=%s", o, name), func(t *testing.T) {
				m := MustSparse(t, o, 6, 5, a)
				require.NoError(t, m.SubAssign(src))
				RequireValid(t, m)
				RequireEqualDense(t, diff, m)
			})
		}
	}
}

// TestAddSubAssign_ExplicitZeros: cancellation keeps the slot; one-sided
// positions carry the operand's (negated) value.
func TestAddSubAssign_ExplicitZeros(t *testing.T) {
	a := MustSparse(t, matrix.RowMajor, 1, 3, []float64{2, 1, 0})
	b := MustSparse(t, matrix.ColumnMajor, 1, 3, []float64{2, 0, 4})

	require.NoError(t, a.SubAssign(b))
	require.Equal(t, []matrix.Element[float64]{
		{Index: 0, Value: 0},
		{Index: 1, Value: 1},
		{Index: 2, Value: -4},
	}, a.Line(0))

	// A dense zero is absent: no slot appears for it.
	c := MustSparse(t, matrix.RowMajor, 1, 3, []float64{0, 0, 5})
	require.NoError(t, c.AddAssign(MustDense(t, 1, 3, []float64{0, 0, 1})))
	require.Equal(t, 1, c.NonZeros())
}

// TestAddSubAssign_Errors verifies failures leave the destination unchanged.
func TestAddSubAssign_Errors(t *testing.T) {
	vals := []float64{1, 2, 3, 4}
	m := MustSparse(t, matrix.RowMajor, 2, 2, vals)

	err := m.AddAssign(MustDense(t, 2, 3, make([]float64, 6)))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	err = m.SubAssign(MustSparse(t, matrix.RowMajor, 3, 2, make([]float64, 6)))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.AddAssign(nil), matrix.ErrNilMatrix)
	RequireEqualDense(t, vals, m)
}

// TestMulAssign_AgainstDense multiplies every orientation pair and operand
// kind, including non-square shapes.
func TestMulAssign_AgainstDense(t *testing.T) {
	const r, k, c = 5, 6, 3
	a := randomValues(r, k, 0.4, 31)
	b := randomValues(k, c, 0.4, 32)
	want := denseMul(a, b, r, k, c)

	for _, o := range orientations {
		for name, src := range operandKinds(t, k, c, b) {
			t.Run(fmt.Sprintf("%s*=%s", o, name), func(t *testing.T) {
				m := MustSparse(t, o, r, k, a)
				require.NoError(t, m.MulAssign(src))
				require.Equal(t, r, m.Rows())
				require.Equal(t, c, m.Cols())
				RequireValid(t, m)
				RequireEqualDense(t, want, m)
			})
		}
	}
}

// TestMulAssign_Properties: identity, pruning, self product, views, errors.
func TestMulAssign_Properties(t *testing.T) {
	vals := randomValues(4, 4, 0.5, 41)
	for _, o := range orientations {
		t.Run(o.String(), func(t *testing.T) {
			id, err := matrix.NewIdentity[float64](4, o.Flip())
			require.NoError(t, err)
			m := MustSparse(t, o, 4, 4, vals)
			require.NoError(t, m.MulAssign(id))
			RequireEqualDense(t, vals, m)

			// m *= m reads the old content for the whole product.
			require.NoError(t, m.MulAssign(m))
			RequireValid(t, m)
			RequireEqualDense(t, denseMul(vals, vals, 4, 4, 4), m)

			lower := make([]float64, 16)
			upper := make([]float64, 16)
			diag := make([]float64, 16)
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					v := vals[i*4+j]
					if i >= j {
						lower[i*4+j] = v
					}
					if i <= j {
						upper[i*4+j] = v
					}
					if i == j {
						diag[i*4+j] = v
					}
				}
			}
			b := MustSparse(t, o, 4, 4, vals)
			views := []struct {
				name string
				view matrix.Matrix[float64]
				ref  []float64
			}{
				{"Lower", matrix.Lower[float64](b), lower},
				{"Upper", matrix.Upper[float64](b), upper},
				{"Diagonal", matrix.Diagonal[float64](b), diag},
				{"Transposed", matrix.Transposed[float64](b), denseTranspose(vals, 4, 4)},
			}
			for _, v := range views {
				m := MustSparse(t, o, 4, 4, vals)
				require.NoError(t, m.MulAssign(v.view), v.name)
				RequireValid(t, m)
				RequireEqualDense(t, denseMul(vals, v.ref, 4, 4, 4), m)
			}
		})
	}

	// (1 1)·(1 -1)ᵀ = 0: the accumulated zero is pruned.
	a := MustSparse(t, matrix.RowMajor, 1, 2, []float64{1, 1})
	require.NoError(t, a.MulAssign(MustDense(t, 2, 1, []float64{1, -1})))
	require.Equal(t, 0, a.NonZeros())
	require.Equal(t, 1, a.Cols())

	a = MustSparse(t, matrix.RowMajor, 2, 3, make([]float64, 6))
	require.ErrorIs(t, a.MulAssign(MustDense(t, 2, 3, make([]float64, 6))), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, a.MulAssign(nil), matrix.ErrNilMatrix)
	require.Equal(t, 3, a.Cols())
}

// TestScaleDivide covers in-place scaling, including a mixed factor type.
func TestScaleDivide(t *testing.T) {
	vals := randomValues(3, 3, 0.6, 51)
	m := MustSparse(t, matrix.ColumnMajor, 3, 3, vals)
	nnz := m.NonZeros()

	m.Scale(1)
	RequireEqualDense(t, vals, m)

	m.Scale(2)
	require.NoError(t, m.Divide(2))
	RequireEqualDense(t, vals, m)

	_, err := m.Ref(0, 0)
	require.NoError(t, err)
	m.Scale(0)
	require.GreaterOrEqual(t, m.NonZeros(), nnz) // structure kept

	require.ErrorIs(t, m.Divide(0), matrix.ErrDivideByZero)

	c, err := matrix.NewRowMajor[complex128](2, 2)
	require.NoError(t, err)
	_, err = c.Set(0, 1, complex(1, 2))
	require.NoError(t, err)
	matrix.ScaleBy(c, 0.5)
	v, err := c.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, complex(0.5, 1), v)

	n, err := matrix.NewRowMajor[int](1, 1)
	require.NoError(t, err)
	_, err = n.Set(0, 0, 7)
	require.NoError(t, err)
	matrix.ScaleBy(n, 3.9) // truncated to 3
	iv, err := n.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 21, iv)
}

// TestMulVec compares both matrix-vector products with dense references.
func TestMulVec(t *testing.T) {
	const r, c = 4, 6
	vals := randomValues(r, c, 0.5, 61)
	x := randomValues(1, c, 1, 62)
	y := randomValues(1, r, 1, 63)

	wantAx := denseMul(vals, x, r, c, 1)
	wantTy := denseMul(y, vals, 1, r, c)
	for _, o := range orientations {
		m := MustSparse(t, o, r, c, vals)

		dst := make([]float64, r)
		require.NoError(t, m.MulVec(dst, x))
		require.Equal(t, wantAx, dst, o.String())

		dstT := make([]float64, c)
		require.NoError(t, m.MulTransVec(dstT, y))
		require.Equal(t, wantTy, dstT, o.String())

		require.ErrorIs(t, m.MulVec(dst, y), matrix.ErrDimensionMismatch)
		require.ErrorIs(t, m.MulTransVec(dst, y), matrix.ErrDimensionMismatch)
	}
}
