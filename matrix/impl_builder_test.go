// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the checked Builder.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlsparse/matrix"
	"github.com/stretchr/testify/require"
)

// TestBuilder_BuildsInStorageOrder appends in storage order with skipped
// (empty) lines and checks the result.
func TestBuilder_BuildsInStorageOrder(t *testing.T) {
	b, err := matrix.NewBuilder[float64](4, 3, matrix.RowMajor, matrix.WithCapacity(4))
	require.NoError(t, err)

	require.NoError(t, b.Append(0, 1, 1))
	require.NoError(t, b.Append(0, 2, 2))
	require.NoError(t, b.Append(2, 0, 3)) // line 1 stays empty
	require.NoError(t, b.Append(3, 2, 0)) // explicit zero is kept
	require.Equal(t, 4, b.Len())

	m, err := b.Build()
	require.NoError(t, err)
	RequireValid(t, m)
	require.Equal(t, 4, m.NonZeros())
	require.Equal(t, 4, m.Lines())
	RequireEqualDense(t, []float64{
		0, 1, 2,
		0, 0, 0,
		3, 0, 0,
		0, 0, 0,
	}, m)

	// The built matrix is fully mutable.
	MustSet(t, m, 1, 1, 5)
	RequireValid(t, m)
}

// TestBuilder_ColumnMajorOrder verifies that storage order follows the
// orientation: column by column, ascending row.
func TestBuilder_ColumnMajorOrder(t *testing.T) {
	b, err := matrix.NewBuilder[int](2, 2, matrix.ColumnMajor)
	require.NoError(t, err)
	require.NoError(t, b.Append(1, 0, 1))
	require.NoError(t, b.Append(0, 1, 2))
	require.ErrorIs(t, b.Append(1, 0, 3), matrix.ErrUnsorted) // column 0 is sealed

	m, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, matrix.ColumnMajor, m.Orientation())
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

// TestBuilder_Errors covers every rejected call; none of them changes the
// Builder.
func TestBuilder_Errors(t *testing.T) {
	_, err := matrix.NewBuilder[float64](-1, 2, matrix.RowMajor)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	b, err := matrix.NewBuilder[float64](3, 3, matrix.RowMajor)
	require.NoError(t, err)
	require.NoError(t, b.Append(1, 1, 1))

	tests := []struct {
		name string
		i, j int
		want error
	}{
		{"same index", 1, 1, matrix.ErrUnsorted},
		{"descending index", 1, 0, matrix.ErrUnsorted},
		{"earlier line", 0, 2, matrix.ErrUnsorted},
		{"row out of range", 3, 0, matrix.ErrOutOfRange},
		{"col out of range", 1, -1, matrix.ErrOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, b.Append(tc.i, tc.j, 9), tc.want)
		})
	}
	require.Equal(t, 1, b.Len())

	m, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 1, m.NonZeros())

	require.ErrorIs(t, b.Append(2, 2, 1), matrix.ErrBuilderConsumed)
	_, err = b.Build()
	require.ErrorIs(t, err, matrix.ErrBuilderConsumed)
}

// TestBuilder_Empty builds matrices without any slot.
func TestBuilder_Empty(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {3, 0}, {0, 3}, {2, 2}} {
		b, err := matrix.NewBuilder[float64](shape[0], shape[1], matrix.ColumnMajor)
		require.NoError(t, err)
		m, err := b.Build()
		require.NoError(t, err)
		require.Equal(t, shape[1], m.Lines())
		require.Equal(t, 0, m.NonZeros())
		RequireValid(t, m)
	}
}
