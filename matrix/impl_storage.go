// SPDX-License-Identifier: MIT

// Package matrix - compressed storage engine.
//
// Purpose:
//   - Hold N lines of sorted Element slots in ONE shared buffer.
//   - Give every line a used range [begin[l], end[l]) and a capacity range
//     [begin[l], begin[l+1]); the tail [begin[N], len(buf)) is global slack.
//   - Implement every structural algorithm (search, insert, erase, reserve,
//     trim, scatter/transpose) in line/index terms, so that row-major,
//     column-major and vector facades share one implementation.
//
// Invariants (outside an unfinished Append sequence):
//   - begin[l] <= end[l] <= begin[l+1] for every line l.
//   - begin[N] <= len(buf).
//   - buf[begin[l]:end[l]] is strictly ascending by Index.
//
// Positions handed out by the engine are line-relative (0..used length);
// the used length of a line is its "end position".

package matrix

import (
	"cmp"
	"math"
	"slices"
	"sort"
)

// storage is the shared-buffer compressed line store.
type storage[T Scalar] struct {
	buf   []Element[T] // len(buf) == total capacity
	begin []int        // len N+1; begin[N] starts the global slack
	end   []int        // len N; used end of every line
	floor int          // minimum capacity after the first growth
	limit int          // upper bound used to clamp growth (rows*cols)
}

// newStorage returns an empty store with n lines and a global slack of
// capacity slots.
func newStorage[T Scalar](n, capacity, floor, limit int) storage[T] {
	return storage[T]{
		buf:   make([]Element[T], capacity),
		begin: make([]int, n+1),
		end:   make([]int, n),
		floor: floor,
		limit: limit,
	}
}

// newStorageLines returns an empty store whose line l reserves caps[l]
// slots; extra (if > sum(caps)) becomes global slack.
func newStorageLines[T Scalar](caps []int, extra, floor, limit int) storage[T] {
	n := len(caps)
	s := storage[T]{
		begin: make([]int, n+1),
		end:   make([]int, n),
		floor: floor,
		limit: limit,
	}
	total := 0
	for l, c := range caps {
		s.begin[l] = total
		s.end[l] = total
		total += c
	}
	s.begin[n] = total
	s.buf = make([]Element[T], max(total, extra))

	return s
}

// capLimit computes rows*cols without overflowing int.
func capLimit(rows, cols int) int {
	if rows == 0 || cols == 0 {
		return 0
	}
	if rows > math.MaxInt/cols {
		return math.MaxInt
	}

	return rows * cols
}

// Lines returns the number of lines N.
func (s *storage[T]) Lines() int { return len(s.end) }

// Line returns the used slots of line l with a capped capacity, so that an
// accidental append by the caller never overwrites the next line.
func (s *storage[T]) Line(l int) []Element[T] {
	if l < 0 || l >= len(s.end) {
		return nil
	}

	return s.buf[s.begin[l]:s.end[l]:s.end[l]]
}

// size returns the used length of line l (0 for out-of-range lines).
func (s *storage[T]) size(l int) int {
	if l < 0 || l >= len(s.end) {
		return 0
	}

	return s.end[l] - s.begin[l]
}

// lineCap returns the reserved capacity of line l.
func (s *storage[T]) lineCap(l int) int {
	if l < 0 || l >= len(s.end) {
		return 0
	}

	return s.begin[l+1] - s.begin[l]
}

// nonZeros sums the used lengths of all lines.
// Complexity: O(N).
func (s *storage[T]) nonZeros() int {
	n := 0
	for l := range s.end {
		n += s.end[l] - s.begin[l]
	}

	return n
}

// capacity returns the total slot capacity.
func (s *storage[T]) capacity() int { return len(s.buf) }

// ---------- search ----------

// searchLine returns the first position in line whose Index >= idx and
// whether that slot holds exactly idx.
// Complexity: O(log k) for a line of k slots.
func searchLine[T Scalar](line []Element[T], idx int) (int, bool) {
	return slices.BinarySearchFunc(line, idx, func(e Element[T], t int) int {
		return cmp.Compare(e.Index, t)
	})
}

// upperLine returns the first position in line whose Index > idx.
func upperLine[T Scalar](line []Element[T], idx int) int {
	return sort.Search(len(line), func(k int) bool { return line[k].Index > idx })
}

// find returns the position of idx in line l, or size(l) when absent.
func (s *storage[T]) find(l, idx int) int {
	line := s.Line(l)
	pos, ok := searchLine(line, idx)
	if !ok {
		return len(line)
	}

	return pos
}

// ---------- growth ----------

// extendCapacity returns the capacity of the next reallocation:
// doubling, floored by s.floor, clamped to s.limit, and always > current.
func (s *storage[T]) extendCapacity() int {
	c := 2 * len(s.buf)
	if c < s.floor {
		c = s.floor
	}
	if c > s.limit {
		c = s.limit
	}
	if c <= len(s.buf) {
		c = len(s.buf) + 1
	}

	return c
}

// shiftAfter moves the used end of line l and every later line boundary by
// delta slots (the data has already been moved).
func (s *storage[T]) shiftAfter(l, delta int) {
	s.end[l] += delta
	n := len(s.end)
	for k := l + 1; k < n; k++ {
		s.begin[k] += delta
		s.end[k] += delta
	}
	s.begin[n] += delta
}

// insertAt places e at line-relative position pos of line l.
// Implementation:
//   - Stage 1: spare slot inside line l: shift that line's tail only.
//   - Stage 2: spare global slack: shift every slot behind pos by one and
//     move all later line boundaries.
//   - Stage 3: no slack at all: reallocate to extendCapacity(), copying the
//     prefix, the new slot and the suffix in one pass; per-line capacities
//     are preserved and the growth lands in the global tail.
//
// Complexity:
//   - Stage 1: O(k) for a line of k slots.
//   - Stage 2/3: O(slots stored behind pos) - the accepted cost of one
//     shared buffer.
func (s *storage[T]) insertAt(l, pos int, e Element[T]) {
	at := s.begin[l] + pos
	n := len(s.end)

	switch {
	case s.end[l] < s.begin[l+1]:
		copy(s.buf[at+1:s.end[l]+1], s.buf[at:s.end[l]])
		s.buf[at] = e
		s.end[l]++
	case s.begin[n] < len(s.buf):
		copy(s.buf[at+1:s.begin[n]+1], s.buf[at:s.begin[n]])
		s.buf[at] = e
		s.shiftAfter(l, 1)
	default:
		buf := make([]Element[T], s.extendCapacity())
		copy(buf, s.buf[:at])
		buf[at] = e
		copy(buf[at+1:], s.buf[at:s.begin[n]])
		s.buf = buf
		s.shiftAfter(l, 1)
	}
}

// erase removes positions [first, last) of line l and returns first.
// Capacity is retained as slack of line l.
// Complexity: O(k).
func (s *storage[T]) erase(l, first, last int) int {
	b := s.begin[l]
	copy(s.buf[b+first:], s.buf[b+last:s.end[l]])
	s.end[l] -= last - first

	return first
}

// ---------- bulk path ----------

// appendUnchecked writes e at the used end of line l. The caller guarantees
// ascending order and available capacity; violations are not detected
// beyond Go's own bounds checks.
func (s *storage[T]) appendUnchecked(l int, e Element[T]) {
	s.buf[s.end[l]] = e
	s.end[l]++
}

// finalize seals line l: the next line starts right after l's used end.
func (s *storage[T]) finalize(l int) {
	s.begin[l+1] = s.end[l]
	if l+1 < len(s.end) {
		s.end[l+1] = s.end[l]
	}
}

// ---------- capacity management ----------

// reserve grows the total capacity to at least n, preserving the layout.
// Complexity: O(capacity) when it reallocates, O(1) otherwise.
func (s *storage[T]) reserve(n int) {
	if n <= len(s.buf) {
		return
	}
	buf := make([]Element[T], n)
	copy(buf, s.buf)
	s.buf = buf
}

// reserveLine grows the capacity of line l to at least n by shifting every
// later line right; the total capacity grows only when the global slack is
// too small.
// Complexity: O(slots behind line l).
func (s *storage[T]) reserveLine(l, n int) {
	cur := s.begin[l+1] - s.begin[l]
	if cur >= n {
		return
	}
	add := n - cur
	last := len(s.end)
	from, to := s.begin[l+1], s.begin[last]

	if to+add > len(s.buf) {
		buf := make([]Element[T], to+add)
		copy(buf, s.buf[:from])
		copy(buf[from+add:], s.buf[from:to])
		s.buf = buf
	} else {
		copy(s.buf[from+add:to+add], s.buf[from:to])
	}
	for k := l + 1; k <= last; k++ {
		s.begin[k] += add
	}
	for k := l + 1; k < last; k++ {
		s.end[k] += add
	}
}

// trimLine hands the slack of line l to line l+1 (or to the global tail
// for the last line). Total capacity is unchanged.
// Complexity: O(size(l+1)).
func (s *storage[T]) trimLine(l int) {
	if l+1 < len(s.end) {
		moved := copy(s.buf[s.end[l]:], s.buf[s.begin[l+1]:s.end[l+1]])
		s.end[l+1] = s.end[l] + moved
	}
	s.begin[l+1] = s.end[l]
}

// trim runs trimLine over every line in ascending order.
func (s *storage[T]) trim() {
	for l := range s.end {
		s.trimLine(l)
	}
}

// clear drops every slot while keeping the buffer as global slack.
func (s *storage[T]) clear() {
	clear(s.begin)
	clear(s.end)
}

// clone returns an independent copy with identical layout.
func (s *storage[T]) clone() storage[T] {
	return storage[T]{
		buf:   slices.Clone(s.buf),
		begin: slices.Clone(s.begin),
		end:   slices.Clone(s.end),
		floor: s.floor,
		limit: s.limit,
	}
}

// ---------- transpose / scatter ----------

// lineSource is any line-wise slot provider (storage, Sparse, views).
type lineSource[T Scalar] interface {
	Lines() int
	Line(l int) []Element[T]
}

// scatter builds a packed store with span lines holding the transpose of
// src: slot (l, idx) of src becomes slot (idx, l).
// Implementation:
//   - Stage 1: histogram the secondary index of every slot.
//   - Stage 2: prefix sums give the new line boundaries.
//   - Stage 3: scatter every slot into its new line in one pass.
//   - Stage 4: sort any new line that did not come out ascending.
//
// Behavior highlights:
//   - Source lines are visited in ascending order, so stage 4 is a no-op for
//     well-formed inputs; it keeps the output sorted for arbitrary sources.
//
// Complexity:
//   - Time O(nnz + span), Space O(nnz + span).
func scatter[T Scalar](src lineSource[T], span, minCap int) storage[T] {
	n := src.Lines()
	begin := make([]int, span+1)
	for l := 0; l < n; l++ {
		for _, e := range src.Line(l) {
			begin[e.Index+1]++
		}
	}
	for k := 1; k <= span; k++ {
		begin[k] += begin[k-1]
	}
	nnz := begin[span]

	end := make([]int, span)
	copy(end, begin[:span])
	buf := make([]Element[T], max(nnz, minCap))
	for l := 0; l < n; l++ {
		for _, e := range src.Line(l) {
			buf[end[e.Index]] = Element[T]{Index: l, Value: e.Value}
			end[e.Index]++
		}
	}

	out := storage[T]{buf: buf, begin: begin, end: end}
	for k := 0; k < span; k++ {
		line := out.Line(k)
		if !isSortedLine(line) {
			slices.SortFunc(line, func(a, b Element[T]) int { return cmp.Compare(a.Index, b.Index) })
		}
	}

	return out
}

// isSortedLine reports whether line is strictly ascending by Index.
func isSortedLine[T Scalar](line []Element[T]) bool {
	for k := 1; k < len(line); k++ {
		if line[k-1].Index >= line[k].Index {
			return false
		}
	}

	return true
}

// ---------- sequential assembly ----------

// assembler builds a packed store line by line. It backs Builder, the
// assignment algorithms and Resize.
type assembler[T Scalar] struct {
	buf   []Element[T]
	begin []int
}

// newAssembler prepares an assembler for n lines with room for hint slots.
func newAssembler[T Scalar](n, hint int) assembler[T] {
	begin := make([]int, 1, n+1)

	return assembler[T]{buf: make([]Element[T], 0, hint), begin: begin}
}

// push appends one slot to the current line.
func (a *assembler[T]) push(idx int, v T) {
	a.buf = append(a.buf, Element[T]{Index: idx, Value: v})
}

// seal closes the current line.
func (a *assembler[T]) seal() { a.begin = append(a.begin, len(a.buf)) }

// sealed returns the number of closed lines.
func (a *assembler[T]) sealed() int { return len(a.begin) - 1 }

// pushLine copies a whole sorted line and seals it.
func (a *assembler[T]) pushLine(line []Element[T]) {
	a.buf = append(a.buf, line...)
	a.seal()
}

// storage finalizes the assembly into a packed store. Unused append
// capacity of the scratch buffer becomes global slack.
func (a *assembler[T]) storage(floor, limit int) storage[T] {
	n := len(a.begin) - 1
	end := make([]int, n)
	copy(end, a.begin[1:])

	return storage[T]{
		buf:   a.buf[:cap(a.buf)],
		begin: a.begin,
		end:   end,
		floor: floor,
		limit: limit,
	}
}
