// SPDX-License-Identifier: MIT
package converters_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsparse/builder"
	"github.com/katalvlaran/lvlsparse/converters"
	"github.com/katalvlaran/lvlsparse/matrix"
)

func mustRandom(t *testing.T, o matrix.Orientation, seed uint64) *matrix.Compressed[float64] {
	t.Helper()
	m, err := builder.RandomDensity[float64](4, 6, 0.4, o,
		builder.WithSeed(seed), builder.WithValueFn(builder.IntegerValues(-9, 9)))
	require.NoError(t, err)

	return m
}

// TestView reads through a compressed operand and its transpose.
func TestView(t *testing.T) {
	m := mustRandom(t, matrix.ColumnMajor, 1)
	v := converters.ToGonum(m)
	r, c := v.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 6, c)

	want, err := converters.ToGonumDense(m)
	require.NoError(t, err)
	require.True(t, mat.Equal(want, v))
	require.True(t, mat.Equal(want.T(), v.T()))
	require.Panics(t, func() { v.At(4, 0) })
	require.Nil(t, converters.ToGonum(nil))
}

// TestRoundTrip converts to gonum and back in both orientations.
func TestRoundTrip(t *testing.T) {
	for _, o := range []matrix.Orientation{matrix.RowMajor, matrix.ColumnMajor} {
		m := mustRandom(t, o, 2)
		d, err := converters.ToGonumDense(m)
		require.NoError(t, err)
		back, err := converters.FromGonum(d, o.Flip())
		require.NoError(t, err)
		require.Equal(t, o.Flip(), back.Orientation())
		require.True(t, matrix.Equal[float64](m, back))

		// Non-raw operands go through At.
		viaT, err := converters.FromGonum(d.T(), o)
		require.NoError(t, err)
		require.True(t, matrix.Equal[float64](matrix.Transposed[float64](m), viaT))
	}
}

// TestToGonumDense_Errors covers nil and empty inputs, and the Dense fast path.
func TestToGonumDense_Errors(t *testing.T) {
	_, err := converters.ToGonumDense(nil)
	require.ErrorIs(t, err, converters.ErrNilOperand)
	empty, err := matrix.NewRowMajor[float64](0, 3)
	require.NoError(t, err)
	_, err = converters.ToGonumDense(empty)
	require.ErrorIs(t, err, converters.ErrEmpty)

	src, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	d, err := converters.ToGonumDense(src)
	require.NoError(t, err)
	require.Equal(t, 3.0, d.At(1, 0))
	require.NoError(t, src.Set(1, 0, 9)) // copy is detached
	require.Equal(t, 3.0, d.At(1, 0))
}

// TestVectors covers vector conversions, MulVecDense and Dot.
func TestVectors(t *testing.T) {
	x := mat.NewVecDense(6, []float64{0, 1, 0, 2, 0, 3})
	v, err := converters.VectorFromGonum(x)
	require.NoError(t, err)
	require.Equal(t, 3, v.NonZeros())
	require.Equal(t, 3, v.Capacity())

	back, err := converters.ToGonumVec(v)
	require.NoError(t, err)
	require.True(t, mat.Equal(x, back))

	dot, err := converters.Dot(v, []float64{1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, 6.0, dot)
	_, err = converters.Dot(v, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	m := mustRandom(t, matrix.RowMajor, 3)
	got, err := converters.MulVecDense(m, x)
	require.NoError(t, err)
	d, err := converters.ToGonumDense(m)
	require.NoError(t, err)
	var want mat.VecDense
	want.MulVec(d, x)
	require.True(t, mat.EqualApprox(&want, got, 1e-12))

	_, err = converters.MulVecDense(m, mat.NewVecDense(2, nil))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = converters.ToGonumVec(nil)
	require.ErrorIs(t, err, converters.ErrNilOperand)
}
