// SPDX-License-Identifier: MIT

// Package matrix - checked, single-use bulk construction.
//
// Purpose:
//   - Offer the Append/Finalize fast path with every caller contract
//     verified: ascending (line, index) order and in-range coordinates.
//   - Seal lines implicitly: moving on to a later line closes every line in
//     between, so callers never call Finalize.
//
// Lifecycle:
//   - NewBuilder -> Append* -> Build. Build hands the buffer to the new
//     matrix; every later call returns ErrBuilderConsumed.

package matrix

// Builder assembles a Compressed matrix from slots delivered in storage
// order (line by line, ascending index within each line).
type Builder[T Scalar] struct {
	rows, cols int
	orient     Orientation
	lines      int
	floor      int
	asm        assembler[T]
	done       bool
}

// NewBuilder prepares a Builder for a rows×cols matrix.
//
// Options:
//   - WithCapacity(n): pre-size the slot buffer for n appends.
//   - WithGrowthFloor(n): carried into the built matrix.
//   - WithLineCapacities is ignored; the built matrix is always packed.
//
// Errors:
//   - ErrInvalidDimensions for negative sizes.
func NewBuilder[T Scalar](rows, cols int, orient Orientation, opts ...Option) (*Builder[T], error) {
	if rows < 0 || cols < 0 {
		return nil, compressedErrorf(ctxBuild, rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	lines, _ := orient.dims(rows, cols)

	return &Builder[T]{
		rows:   rows,
		cols:   cols,
		orient: orient,
		lines:  lines,
		floor:  o.growthFloor,
		asm:    newAssembler[T](lines, o.capacity),
	}, nil
}

// Len returns the number of slots appended so far.
func (b *Builder[T]) Len() int { return len(b.asm.buf) }

// Append adds the slot (i, j) = v.
// Implementation:
//   - Stage 1: reject calls after Build and out-of-range coordinates.
//   - Stage 2: reject a line below the open one, or an index not above the
//     last slot of the open line.
//   - Stage 3: seal every line up to (i, j)'s line, then push the slot.
//
// Errors:
//   - ErrBuilderConsumed, ErrOutOfRange, ErrUnsorted. A failed Append leaves
//     the Builder unchanged.
//
// Complexity: amortized O(1) plus O(skipped lines).
func (b *Builder[T]) Append(i, j int, v T) error {
	if b.done {
		return compressedErrorf(ctxBuild, i, j, ErrBuilderConsumed)
	}
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return compressedErrorf(ctxBuild, i, j, ErrOutOfRange)
	}
	line, idx := b.orient.split(i, j)
	open := b.asm.sealed()
	if line < open {
		return compressedErrorf(ctxBuild, i, j, ErrUnsorted)
	}
	if line == open {
		start := b.asm.begin[open]
		if n := len(b.asm.buf); n > start && b.asm.buf[n-1].Index >= idx {
			return compressedErrorf(ctxBuild, i, j, ErrUnsorted)
		}
	}
	for b.asm.sealed() < line {
		b.asm.seal()
	}
	b.asm.push(idx, v)

	return nil
}

// Build seals the remaining lines and returns the finished matrix. The
// Builder is consumed.
//
// Errors:
//   - ErrBuilderConsumed on a second call.
//
// Complexity: O(lines).
func (b *Builder[T]) Build() (*Compressed[T], error) {
	if b.done {
		return nil, compressedErrorf(ctxBuild, b.rows, b.cols, ErrBuilderConsumed)
	}
	for b.asm.sealed() < b.lines {
		b.asm.seal()
	}
	b.done = true

	m := &Compressed[T]{rows: b.rows, cols: b.cols, orient: b.orient}
	m.st.floor = b.floor
	m.adopt(b.asm.storage(0, 0))
	b.asm = assembler[T]{}

	return m, nil
}
