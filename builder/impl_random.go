// SPDX-License-Identifier: MIT

// Package: lvlsparse/builder
//
// impl_random.go: random compressed matrices, vectors and dense operands.
//
// RandomCompressed places exactly k non-zeros in every line, reserving that
// many slots per line up front and filling them through the unchecked
// Append/Finalize protocol; no reallocation happens during the fill.
// RandomDensity draws each entry independently and goes through the checked
// matrix.Builder, since per-line counts are not known in advance.

package builder

import (
	"github.com/katalvlaran/lvlsparse/matrix"
)

// coords maps a (line, index) pair back to (row, col).
func coords(o matrix.Orientation, line, idx int) (int, int) {
	if o == matrix.RowMajor {
		return line, idx
	}

	return idx, line
}

// lineDims returns the number of lines and the line length for o.
func lineDims(o matrix.Orientation, rows, cols int) (lines, span int) {
	if o == matrix.RowMajor {
		return rows, cols
	}

	return cols, rows
}

// RandomCompressed returns a rows×cols matrix in orientation o with exactly
// k non-zeros in every line at uniformly sampled positions.
//
// Errors:
//   - ErrInvalidDimensions if rows, cols or k is negative.
//   - ErrTooManyNonZeros if k exceeds the line length.
//   - ErrNeedRandSource without WithSeed/WithRand.
//
// Complexity: O(lines·k log k).
func RandomCompressed[T matrix.Scalar](rows, cols, k int, o matrix.Orientation, opts ...Option) (*matrix.Compressed[T], error) {
	if rows < 0 || cols < 0 || k < 0 {
		return nil, builderErrorf(methodRandomCompressed, "%dx%d k=%d", ErrInvalidDimensions, rows, cols, k)
	}
	lines, span := lineDims(o, rows, cols)
	if k > span {
		return nil, builderErrorf(methodRandomCompressed, "k=%d > line length %d", ErrTooManyNonZeros, k, span)
	}
	cfg := newBuilderConfig(opts...)
	rng, err := cfg.random(methodRandomCompressed)
	if err != nil {
		return nil, err
	}

	caps := make([]int, lines)
	for l := range caps {
		caps[l] = k
	}
	mopts := append(append([]matrix.Option(nil), cfg.matrixOpts...), matrix.WithLineCapacities(caps...))
	m, err := matrix.NewCompressed[T](rows, cols, o, mopts...)
	if err != nil {
		return nil, builderErrorf(methodRandomCompressed, "allocate", err)
	}
	for l := 0; l < lines; l++ {
		for _, idx := range sample(rng, span, k) {
			i, j := coords(o, l, idx)
			m.Append(i, j, value[T](cfg))
		}
		m.Finalize(l)
	}

	return m, nil
}

// RandomDensity returns a rows×cols matrix in orientation o where every
// entry is present independently with probability p.
//
// Errors:
//   - ErrInvalidDimensions if rows or cols is negative.
//   - ErrInvalidProbability if p is outside [0,1] or NaN.
//   - ErrNeedRandSource without WithSeed/WithRand.
//
// Complexity: O(rows·cols).
func RandomDensity[T matrix.Scalar](rows, cols int, p float64, o matrix.Orientation, opts ...Option) (*matrix.Compressed[T], error) {
	if rows < 0 || cols < 0 {
		return nil, builderErrorf(methodRandomDensity, "%dx%d", ErrInvalidDimensions, rows, cols)
	}
	if !(p >= 0 && p <= 1) {
		return nil, builderErrorf(methodRandomDensity, "p=%v", ErrInvalidProbability, p)
	}
	cfg := newBuilderConfig(opts...)
	rng, err := cfg.random(methodRandomDensity)
	if err != nil {
		return nil, err
	}

	hint := int(p * float64(rows) * float64(cols))
	bopts := append([]matrix.Option{matrix.WithCapacity(hint)}, cfg.matrixOpts...)
	b, err := matrix.NewBuilder[T](rows, cols, o, bopts...)
	if err != nil {
		return nil, builderErrorf(methodRandomDensity, "allocate", err)
	}
	lines, span := lineDims(o, rows, cols)
	for l := 0; l < lines; l++ {
		for idx := 0; idx < span; idx++ {
			if rng.Float64() >= p {
				continue
			}
			i, j := coords(o, l, idx)
			if err = b.Append(i, j, value[T](cfg)); err != nil {
				return nil, builderErrorf(methodRandomDensity, "append", err)
			}
		}
	}

	return b.Build()
}

// RandomVector returns a compressed vector of size n with k non-zeros at
// uniformly sampled positions.
//
// Errors:
//   - ErrInvalidDimensions if n or k is negative.
//   - ErrTooManyNonZeros if k > n.
//   - ErrNeedRandSource without WithSeed/WithRand.
func RandomVector[T matrix.Scalar](n, k int, opts ...Option) (*matrix.CompressedVector[T], error) {
	if n < 0 || k < 0 {
		return nil, builderErrorf(methodRandomVector, "n=%d k=%d", ErrInvalidDimensions, n, k)
	}
	if k > n {
		return nil, builderErrorf(methodRandomVector, "k=%d > n=%d", ErrTooManyNonZeros, k, n)
	}
	cfg := newBuilderConfig(opts...)
	rng, err := cfg.random(methodRandomVector)
	if err != nil {
		return nil, err
	}

	vopts := append([]matrix.Option{matrix.WithCapacity(k)}, cfg.matrixOpts...)
	v, err := matrix.NewCompressedVector[T](n, vopts...)
	if err != nil {
		return nil, builderErrorf(methodRandomVector, "allocate", err)
	}
	v.Reserve(k)
	for _, idx := range sample(rng, n, k) {
		v.Append(idx, value[T](cfg))
	}

	return v, nil
}

// RandomDense returns a fully populated rows×cols Dense.
//
// Errors:
//   - ErrInvalidDimensions if rows or cols is negative.
//   - ErrNeedRandSource without WithSeed/WithRand.
func RandomDense[T matrix.Scalar](rows, cols int, opts ...Option) (*matrix.Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, builderErrorf(methodRandomDense, "%dx%d", ErrInvalidDimensions, rows, cols)
	}
	cfg := newBuilderConfig(opts...)
	if _, err := cfg.random(methodRandomDense); err != nil {
		return nil, err
	}

	data := make([]T, rows*cols)
	for i := range data {
		data[i] = value[T](cfg)
	}

	return matrix.NewDenseFrom(rows, cols, data)
}
