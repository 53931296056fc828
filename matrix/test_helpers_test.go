// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for compressed and dense containers.
//   - Keep all data finite and exact (small integers stored in float64) so
//     that equality checks are bitwise.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlsparse/matrix"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Embed matrix.Matrix to forward Rows/Cols/At only.
//
// Behavior highlights:
//   - Forces the generic At-scan path in code under test (no *Dense fast
//     path, no Sparse line walk).
type hide struct{ matrix.Matrix[float64] }

// MustRowMajor ALLOCATES an empty r×c row-major matrix or fails the test.
func MustRowMajor(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Compressed[float64] {
	t.Helper()
	m, err := matrix.NewRowMajor[float64](r, c, opts...)
	require.NoError(t, err)

	return m
}

// MustColumnMajor ALLOCATES an empty r×c column-major matrix or fails the test.
func MustColumnMajor(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Compressed[float64] {
	t.Helper()
	m, err := matrix.NewColumnMajor[float64](r, c, opts...)
	require.NoError(t, err)

	return m
}

// MustDense BUILDS an r×c *Dense from a row-major flat slice.
func MustDense(t testing.TB, r, c int, vals []float64) *matrix.Dense[float64] {
	t.Helper()
	d, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return d
}

// MustSparse BUILDS an r×c compressed matrix in orientation o holding the
// non-zero entries of the row-major slice vals.
func MustSparse(t testing.TB, o matrix.Orientation, r, c int, vals []float64) *matrix.Compressed[float64] {
	t.Helper()
	m, err := matrix.FromMatrix[float64](MustDense(t, r, c, vals), o)
	require.NoError(t, err)
	require.NoError(t, matrix.CheckLayout_TestOnly(m))

	return m
}

// MustAt reads (i,j) and fails the test on error.
func MustAt(t testing.TB, m matrix.Matrix[float64], i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet stores (i,j)=v and fails the test on error.
func MustSet(t testing.TB, m *matrix.Compressed[float64], i, j int, v float64) {
	t.Helper()
	_, err := m.Set(i, j, v)
	require.NoError(t, err)
}

// RequireValid asserts the layout invariants of m.
func RequireValid(t testing.TB, m *matrix.Compressed[float64]) {
	t.Helper()
	require.NoError(t, matrix.CheckLayout_TestOnly(m))
}

// RequireEqualDense asserts that m holds exactly the row-major values want.
func RequireEqualDense(t testing.TB, want []float64, m matrix.Matrix[float64]) {
	t.Helper()
	require.Equal(t, want, matrix.ToDense[float64](mustSparseView(t, m)).RawData())
}

// mustSparseView returns m as a Sparse operand, materializing it if needed.
func mustSparseView(t testing.TB, m matrix.Matrix[float64]) matrix.Sparse[float64] {
	t.Helper()
	if s, ok := m.(matrix.Sparse[float64]); ok {
		return s
	}
	c, err := matrix.FromMatrix(m, matrix.RowMajor)
	require.NoError(t, err)

	return c
}

// randomValues RETURNS r*c row-major values where roughly density of the
// entries are small non-zero integers (exact in float64).
func randomValues(r, c int, density float64, seed uint64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for k := range vals {
		if rng.Float64() < density {
			vals[k] = float64(rng.Intn(9) + 1)
			if rng.Intn(2) == 0 {
				vals[k] = -vals[k]
			}
		}
	}

	return vals
}

// denseMul is the reference product of row-major a (r×k) and b (k×c).
func denseMul(a, b []float64, r, k, c int) []float64 {
	out := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for p := 0; p < k; p++ {
			x := a[i*k+p]
			if x == 0 {
				continue
			}
			for j := 0; j < c; j++ {
				out[i*c+j] += x * b[p*c+j]
			}
		}
	}

	return out
}

// denseTranspose is the reference transpose of a row-major r×c slice.
func denseTranspose(a []float64, r, c int) []float64 {
	out := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[j*r+i] = a[i*c+j]
		}
	}

	return out
}

// orientations is the table every orientation-sensitive test runs over.
var orientations = []matrix.Orientation{matrix.RowMajor, matrix.ColumnMajor}
