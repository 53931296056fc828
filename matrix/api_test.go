// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the public facades.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlsparse/matrix"
	"github.com/stretchr/testify/require"
)

// TestFacades_AddSubMul checks that facades return fresh containers and
// leave their operands untouched.
func TestFacades_AddSubMul(t *testing.T) {
	a := randomValues(3, 3, 0.5, 91)
	b := randomValues(3, 3, 0.5, 92)
	A := MustSparse(t, matrix.ColumnMajor, 3, 3, a)
	B := MustDense(t, 3, 3, b)

	sum, err := matrix.Add[float64](A, B)
	require.NoError(t, err)
	require.Equal(t, matrix.ColumnMajor, sum.Orientation())
	diff, err := matrix.Sub[float64](sum, B)
	require.NoError(t, err)
	require.True(t, matrix.Equal[float64](A, diff))

	prod, err := matrix.Mul[float64](A, B)
	require.NoError(t, err)
	RequireEqualDense(t, denseMul(a, b, 3, 3, 3), prod)
	RequireEqualDense(t, a, A)

	_, err = matrix.Add[float64](A, MustRowMajor(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul[float64](A, MustRowMajor(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul[float64](nil, A)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestHadamard keeps the intersection and drops zero products.
func TestHadamard(t *testing.T) {
	a := MustSparse(t, matrix.RowMajor, 2, 2, []float64{1, 2, 0, 3})
	b := MustSparse(t, matrix.ColumnMajor, 2, 2, []float64{4, 0, 5, 6})

	h, err := matrix.Hadamard[float64](a, b)
	require.NoError(t, err)
	RequireValid(t, h)
	require.Equal(t, 2, h.NonZeros())
	RequireEqualDense(t, []float64{4, 0, 0, 18}, h)

	_, err = matrix.Hadamard[float64](a, MustRowMajor(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestIdentityZerosLikeSums covers the remaining helpers.
func TestIdentityZerosLikeSums(t *testing.T) {
	id, err := matrix.NewIdentity[int](3, matrix.ColumnMajor)
	require.NoError(t, err)
	require.Equal(t, 3, id.NonZeros())
	require.Equal(t, 3, id.Capacity())
	require.Equal(t, "( 1 0 0 )\n( 0 1 0 )\n( 0 0 1 )\n", id.String())
	_, err = matrix.NewIdentity[int](-1, matrix.RowMajor)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m := MustSparse(t, matrix.ColumnMajor, 2, 3, []float64{1, 0, 2, 0, 3, 4})
	z, err := matrix.ZerosLike[float64](m)
	require.NoError(t, err)
	require.Equal(t, matrix.ColumnMajor, z.Orientation())
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 0, z.NonZeros())

	require.Equal(t, []float64{3, 7}, matrix.RowSums(m))
	require.Equal(t, []float64{1, 3, 6}, matrix.ColSums(m))

	tr := matrix.TransposeOf(m)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, m.Rows()) // operand untouched
	RequireEqualDense(t, []float64{1, 0, 0, 3, 2, 4}, tr)
}
