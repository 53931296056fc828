// SPDX-License-Identifier: MIT

// Package builder provides deterministic random initialization of the
// containers in the matrix package.
//
// Every constructor draws from an explicit *rand.Rand (golang.org/x/exp/rand)
// supplied through WithRand or derived from WithSeed, so that the same seed
// and the same arguments always yield the same container. Benchmarks and
// property tests use this to compare kernels on reproducible operands.
//
// Constructors:
//
//   - Indices(n, k)                    sorted distinct sample of k indices in [0,n)
//   - RandomCompressed(r, c, k, o)     exactly k non-zeros per line (per row for RowMajor)
//   - RandomDensity(r, c, p, o)        each entry non-zero with probability p
//   - RandomVector(n, k)               compressed vector with k non-zeros
//   - RandomDense(r, c)                fully populated Dense
//
// Values come from a ValueFn (default UniformValues(1, 10)). Integer element
// types truncate toward zero; a ValueFn that can produce values in (-1, 1)
// therefore yields explicit zeros for integer T.
//
// Errors are sentinels from errors.go wrapped with the constructor name;
// match them with errors.Is.
package builder
