// SPDX-License-Identifier: MIT

// Package matrix - structural mutation of Compressed matrices.
//
// Purpose:
//   - Set/Insert/Erase with binary-search positioning.
//   - Append/Finalize: the unchecked bulk-construction path.
//   - Reserve/ReserveLine/Trim/TrimLine: capacity management.
//   - Resize/Transpose/Reset/Clear: whole-matrix restructuring.
//
// Policy:
//   - Checked operations are all-or-nothing: validation happens before the
//     first write.
//   - Erasing never releases memory; freed slots stay as line slack.

package matrix

// Set stores v at (i, j), overwriting an existing slot or inserting a new
// one, and returns the line-relative position of the slot.
//
// Errors:
//   - ErrOutOfRange when (i, j) is outside the matrix.
//
// Complexity:
//   - O(log k) on overwrite; insertion cost otherwise (see Insert).
func (m *Compressed[T]) Set(i, j int, v T) (int, error) {
	line, idx, err := m.locate(ctxSet, i, j)
	if err != nil {
		return 0, err
	}
	l := m.st.Line(line)
	pos, ok := searchLine(l, idx)
	if ok {
		l[pos].Value = v // slice shares the buffer

		return pos, nil
	}
	m.st.insertAt(line, pos, Element[T]{Index: idx, Value: v})

	return pos, nil
}

// Insert adds a new slot (i, j) = v and returns its line-relative position.
// MAIN DESCRIPTION:
//   - Checked insertion that refuses to overwrite.
//
// Implementation:
//   - Stage 1: bounds check; binary search for the sorted position.
//   - Stage 2: ErrDuplicateKey if the slot exists (no mutation).
//   - Stage 3: shift-insert using line slack, global slack, or a doubling
//     reallocation (floored by the growth floor) in that order.
//
// Errors:
//   - ErrOutOfRange, ErrDuplicateKey.
//
// Complexity:
//   - O(k) with line slack; O(nnz behind the slot) otherwise. A sequence of
//     appends to the last line amortizes to O(1) per slot.
func (m *Compressed[T]) Insert(i, j int, v T) (int, error) {
	line, idx, err := m.locate(ctxInsert, i, j)
	if err != nil {
		return 0, err
	}
	pos, ok := searchLine(m.st.Line(line), idx)
	if ok {
		return pos, compressedErrorf(ctxInsert, i, j, ErrDuplicateKey)
	}
	m.st.insertAt(line, pos, Element[T]{Index: idx, Value: v})

	return pos, nil
}

// Append writes (i, j) = v at the used end of its line WITHOUT any check.
//
// Contract (caller's responsibility, not verified):
//   - indices within a line arrive strictly ascending;
//   - lines are filled in ascending order and each is sealed with Finalize
//     before the next one receives slots;
//   - enough capacity was reserved (constructor options or Reserve).
//
// Violations corrupt the container or panic via Go bounds checks. Use
// Builder for a checked equivalent.
//
// Complexity: O(1).
func (m *Compressed[T]) Append(i, j int, v T) {
	line, idx := m.orient.split(i, j)
	m.st.appendUnchecked(line, Element[T]{Index: idx, Value: v})
}

// Finalize seals line l after a sequence of Append calls; the next line
// starts directly behind l's last slot. Must be called for every line, in
// ascending order, during bulk construction.
// Complexity: O(1).
func (m *Compressed[T]) Finalize(l int) { m.st.finalize(l) }

// Erase removes the slot at (i, j) and reports whether one was stored.
// Erasing a structural zero is a no-op. Capacity is retained as slack of the
// line.
//
// Errors:
//   - ErrOutOfRange when (i, j) is outside the matrix.
//
// Complexity: O(k).
func (m *Compressed[T]) Erase(i, j int) (bool, error) {
	line, idx, err := m.locate(ctxErase, i, j)
	if err != nil {
		return false, err
	}
	pos, ok := searchLine(m.st.Line(line), idx)
	if ok {
		m.st.erase(line, pos, pos+1)
	}

	return ok, nil
}

// EraseAt removes the slot at position pos of line l and returns the
// position of the slot that followed it (End(l) if none). An invalid line
// or position is a no-op returning End(l).
func (m *Compressed[T]) EraseAt(l, pos int) int {
	end := m.st.size(l)
	if pos < 0 || pos >= end {
		return end
	}

	return m.st.erase(l, pos, pos+1)
}

// EraseRange removes positions [first, last) of line l and returns first,
// now the position of the slot that followed the range. Bounds are clamped
// to [0, End(l)].
func (m *Compressed[T]) EraseRange(l, first, last int) int {
	end := m.st.size(l)
	first = min(max(first, 0), end)
	last = min(max(last, first), end)
	if first == last {
		return first
	}

	return m.st.erase(l, first, last)
}

// EraseIf removes every slot for which pred returns true, compacting each
// line in place. A common use is pruning explicit zeros.
// Complexity: O(lines + nnz).
func (m *Compressed[T]) EraseIf(pred func(i, j int, v T) bool) {
	for l := 0; l < m.st.Lines(); l++ {
		line := m.st.Line(l)
		kept := 0
		for _, e := range line {
			i, j := m.orient.join(l, e.Index)
			if pred(i, j, e.Value) {
				continue
			}
			line[kept] = e
			kept++
		}
		m.st.end[l] = m.st.begin[l] + kept
	}
}

// Reserve grows the total capacity to at least n slots. It never shrinks.
// Complexity: O(capacity) when reallocating.
func (m *Compressed[T]) Reserve(n int) { m.st.reserve(n) }

// ReserveLine grows the capacity of line l to at least n slots, shifting
// later lines. It never shrinks.
//
// Errors:
//   - ErrOutOfRange when l is not a valid line.
func (m *Compressed[T]) ReserveLine(l, n int) error {
	if l < 0 || l >= m.st.Lines() {
		return compressedErrorf(ctxReserveLn, l, n, ErrOutOfRange)
	}
	m.st.reserveLine(l, n)

	return nil
}

// Trim removes the slack of every line by handing it to the following line;
// the last line's slack joins the global tail. Total capacity and all
// values are unchanged.
// Complexity: O(nnz).
func (m *Compressed[T]) Trim() { m.st.trim() }

// TrimLine moves the slack of line l to line l+1 (or to the global tail).
//
// Errors:
//   - ErrOutOfRange when l is not a valid line.
func (m *Compressed[T]) TrimLine(l int) error {
	if l < 0 || l >= m.st.Lines() {
		return compressedErrorf("TrimLine", l, 0, ErrOutOfRange)
	}
	m.st.trimLine(l)

	return nil
}

// Reset drops every stored slot while keeping the shape and the capacity.
func (m *Compressed[T]) Reset() { m.st.clear() }

// ResetLine drops the stored slots of line l, keeping its capacity.
func (m *Compressed[T]) ResetLine(l int) {
	if l >= 0 && l < m.st.Lines() {
		m.st.end[l] = m.st.begin[l]
	}
}

// Clear turns m into an empty 0×0 matrix and releases its buffer.
func (m *Compressed[T]) Clear() {
	m.rows, m.cols = 0, 0
	m.adopt(newStorage[T](0, 0, 0, 0))
}

// Resize changes the shape to rows×cols.
// MAIN DESCRIPTION:
//   - preserve=false: discard all content; the new store has empty lines and
//     no capacity.
//   - preserve=true: keep exactly the slots whose (i, j) lies inside both
//     the old and the new bounds, with their values.
//
// Implementation:
//   - Stage 1: validate the new shape.
//   - Stage 2: rebuild line by line into a fresh packed store, cutting every
//     surviving line at the new span with a binary search.
//
// Errors:
//   - ErrInvalidDimensions for negative sizes.
//
// Complexity:
//   - Time O(lines + nnz), Space O(lines + nnz).
func (m *Compressed[T]) Resize(rows, cols int, preserve bool) error {
	if rows < 0 || cols < 0 {
		return compressedErrorf(ctxResize, rows, cols, ErrInvalidDimensions)
	}
	if rows == m.rows && cols == m.cols {
		return nil
	}
	lines, span := m.orient.dims(rows, cols)
	if !preserve {
		m.rows, m.cols = rows, cols
		m.adopt(newStorage[T](lines, 0, 0, 0))

		return nil
	}

	oldLines := m.st.Lines()
	asm := newAssembler[T](lines, m.st.nonZeros())
	for l := 0; l < lines; l++ {
		if l < oldLines {
			line := m.st.Line(l)
			cut, _ := searchLine(line, span)
			asm.buf = append(asm.buf, line[:cut]...)
		}
		asm.seal()
	}
	m.rows, m.cols = rows, cols
	m.adopt(asm.storage(0, 0))

	return nil
}

// Transpose replaces m by its transpose in place: rows and columns swap,
// the orientation is kept.
// Implementation:
//   - Stage 1: histogram of the secondary index of every slot.
//   - Stage 2: prefix sums give the new line boundaries.
//   - Stage 3: scatter all slots; sort any line that is not ascending.
//
// Behavior highlights:
//   - The total capacity is kept; unused slots become global slack.
//
// Complexity:
//   - Time O(nnz + cols), Space O(capacity + cols).
func (m *Compressed[T]) Transpose() {
	_, span := m.orient.dims(m.rows, m.cols)
	st := scatter[T](&m.st, span, m.st.capacity())
	m.rows, m.cols = m.cols, m.rows
	m.adopt(st)
}
