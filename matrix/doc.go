// SPDX-License-Identifier: MIT

// Package matrix provides dense and compressed (sparse) matrix and vector
// containers over a generic scalar element type.
//
// The matrix package provides:
//
//   - Compressed, a row- or column-compressed sparse matrix. Every line
//     (a row for RowMajor, a column for ColumnMajor) is a sorted run of
//     Element slots inside ONE shared buffer; each line may reserve more
//     slots than it uses so that appends do not reallocate.
//   - CompressedVector, the single-line specialization of the same engine.
//   - Builder, a single-use staging type for checked bulk construction.
//   - Dense, a flat row-major buffer used as a dense operand.
//   - Views (Transposed, Lower, Upper, Diagonal) that adapt a sparse
//     operand without copying it.
//
// Storage layout:
//
//	buf:   | line 0 used | slack | line 1 used | slack | ... | global slack |
//	       ^begin[0]     ^end[0] ^begin[1]     ^end[1]       ^begin[N]
//
// Inserting into an early line shifts every later line by one slot when that
// line has no slack of its own. Append-heavy and row-local patterns stay
// cheap; random insertion into early lines of a large matrix does not.
//
// Containers are plain values without locks. Slices returned by Line and
// pointers returned by Ref are invalidated by any mutation of the container.
package matrix
