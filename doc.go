// Package lvlsparse is a generic sparse linear-algebra storage engine:
// row- and column-compressed matrices and vectors that grow in place,
// look entries up by binary search and mix freely with dense operands.
//
// What is in the box?
//
//	A pure-Go library that brings together:
//		• Compressed[T]: one shared slot buffer, per-line reserved capacity
//		• CompressedVector[T]: the single-line specialization
//		• Builder[T]: checked bulk construction from sorted coordinates
//		• Assignment kernels: copy, +=, -=, *= from sparse or dense sources
//		• Views: transpose, lower, upper, diagonal (no copies)
//		• Seeded random operands and gonum interop
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/     containers, storage engine, mutation and assignment kernels
//	builder/    deterministic random initialization (WithSeed / WithRand)
//	converters/ gonum mat.Matrix / mat.VecDense adapters
//
// plus cmd/sparsebench, a timing driver comparing the kernels with gonum and
// a plain CSR loop.
//
// Quick ASCII example (3×4, row-major, line capacities 2,1,3):
//
//	buf:   | 1 · | 4 | 5 6 · | (global slack)
//	        row0   row1 row2
//
//	go get github.com/katalvlaran/lvlsparse/matrix
package lvlsparse
