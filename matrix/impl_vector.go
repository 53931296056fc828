// SPDX-License-Identifier: MIT

// Package matrix - CompressedVector, the single-line compressed container.
//
// Purpose:
//   - Reuse the line engine with exactly one line whose span is the vector
//     size; every algorithm of Compressed applies with one index.
//   - Provide the vector-specific arithmetic: merges with dense or sparse
//     vectors, element-wise product, dot products.
//
// Policy:
//   - Same as Compressed: checked operations are all-or-nothing, merges keep
//     explicit zeros, products drop zero results.

package matrix

import (
	"fmt"
	"strings"
)

// CompressedVector is a sparse vector of a fixed logical size.
type CompressedVector[T Scalar] struct {
	n  int
	st storage[T]
}

var _ fmt.Stringer = (*CompressedVector[float64])(nil)

// NewCompressedVector creates an empty sparse vector of size n.
//
// Options:
//   - WithCapacity(k): reserve k slots.
//   - WithLineCapacities(k): same as WithCapacity(k); any other list
//     length yields ErrBadCapacity.
//   - WithGrowthFloor(f).
//
// Errors:
//   - ErrInvalidDimensions when n < 0; ErrBadCapacity as above.
func NewCompressedVector[T Scalar](n int, opts ...Option) (*CompressedVector[T], error) {
	if n < 0 {
		return nil, vectorErrorf(ctxVecNew, n, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	capacity := o.capacity
	if o.lineCaps != nil {
		if len(o.lineCaps) != 1 {
			return nil, vectorErrorf(ctxVecNew, n, ErrBadCapacity)
		}
		capacity = max(capacity, o.lineCaps[0])
	}
	st := newStorage[T](1, capacity, o.growthFloor, n)
	// The single line owns the whole buffer.
	st.begin[1] = capacity

	return &CompressedVector[T]{n: n, st: st}, nil
}

// NewCompressedVectorFrom builds a sparse vector from a dense slice,
// storing its non-zero entries only.
func NewCompressedVectorFrom[T Scalar](x []T, opts ...Option) (*CompressedVector[T], error) {
	v, err := NewCompressedVector[T](len(x), opts...)
	if err != nil {
		return nil, err
	}
	v.AssignDense(x)

	return v, nil
}

// adopt installs a packed one-line store, keeping the growth floor.
func (v *CompressedVector[T]) adopt(st storage[T]) {
	st.floor = v.st.floor
	if st.floor == 0 {
		st.floor = DefaultGrowthFloor
	}
	st.limit = v.n
	st.begin[1] = len(st.buf)
	v.st = st
}

// Size returns the logical length.
func (v *CompressedVector[T]) Size() int { return v.n }

// NonZeros returns the number of stored slots (explicit zeros included).
func (v *CompressedVector[T]) NonZeros() int { return v.st.size(0) }

// Capacity returns the number of allocated slots.
func (v *CompressedVector[T]) Capacity() int { return v.st.capacity() }

// End returns the end position, i.e. NonZeros.
func (v *CompressedVector[T]) End() int { return v.st.size(0) }

// Elements returns the stored slots in ascending index order. The slice is
// read-only and is invalidated by the next mutation.
func (v *CompressedVector[T]) Elements() []Element[T] { return v.st.Line(0) }

// check bounds-checks index i.
func (v *CompressedVector[T]) check(method string, i int) error {
	if i < 0 || i >= v.n {
		return vectorErrorf(method, i, ErrOutOfRange)
	}

	return nil
}

// At returns the value at i; structural zeros read as zero. Never inserts.
func (v *CompressedVector[T]) At(i int) (T, error) {
	var zero T
	if err := v.check(ctxAt, i); err != nil {
		return zero, err
	}
	line := v.st.Line(0)
	if pos, ok := searchLine(line, i); ok {
		return line[pos].Value, nil
	}

	return zero, nil
}

// Ref returns a pointer to the value at i, inserting a zero slot on a miss.
// The pointer is valid until the next mutation.
func (v *CompressedVector[T]) Ref(i int) (*T, error) {
	if err := v.check(ctxRef, i); err != nil {
		return nil, err
	}
	pos, ok := searchLine(v.st.Line(0), i)
	if !ok {
		v.insertAt(pos, Element[T]{Index: i})
	}

	return &v.st.buf[v.st.begin[0]+pos].Value, nil
}

// insertAt inserts e at pos and hands any new capacity to the single line,
// so that Append can use it.
func (v *CompressedVector[T]) insertAt(pos int, e Element[T]) {
	v.st.insertAt(0, pos, e)
	v.st.begin[1] = len(v.st.buf)
}

// Find returns the position of the slot at i, or End().
func (v *CompressedVector[T]) Find(i int) int { return v.st.find(0, i) }

// LowerBound returns the position of the first slot with index >= i.
func (v *CompressedVector[T]) LowerBound(i int) int {
	pos, _ := searchLine(v.st.Line(0), i)

	return pos
}

// UpperBound returns the position of the first slot with index > i.
func (v *CompressedVector[T]) UpperBound(i int) int { return upperLine(v.st.Line(0), i) }

// Set overwrites or inserts the slot at i and returns its position.
func (v *CompressedVector[T]) Set(i int, val T) (int, error) {
	if err := v.check(ctxSet, i); err != nil {
		return 0, err
	}
	line := v.st.Line(0)
	pos, ok := searchLine(line, i)
	if ok {
		line[pos].Value = val

		return pos, nil
	}
	v.insertAt(pos, Element[T]{Index: i, Value: val})

	return pos, nil
}

// Insert adds a new slot at i.
//
// Errors:
//   - ErrOutOfRange, ErrDuplicateKey (vector unchanged).
func (v *CompressedVector[T]) Insert(i int, val T) (int, error) {
	if err := v.check(ctxInsert, i); err != nil {
		return 0, err
	}
	pos, ok := searchLine(v.st.Line(0), i)
	if ok {
		return pos, vectorErrorf(ctxInsert, i, ErrDuplicateKey)
	}
	v.insertAt(pos, Element[T]{Index: i, Value: val})

	return pos, nil
}

// Append writes slot i at the end WITHOUT checks: i must exceed every
// stored index and a free slot must have been reserved.
func (v *CompressedVector[T]) Append(i int, val T) {
	v.st.appendUnchecked(0, Element[T]{Index: i, Value: val})
}

// Erase removes the slot at i and reports whether one was stored.
func (v *CompressedVector[T]) Erase(i int) (bool, error) {
	if err := v.check(ctxErase, i); err != nil {
		return false, err
	}
	pos, ok := searchLine(v.st.Line(0), i)
	if ok {
		v.st.erase(0, pos, pos+1)
	}

	return ok, nil
}

// EraseAt removes the slot at position pos and returns the position of the
// following slot. Invalid positions are a no-op returning End().
func (v *CompressedVector[T]) EraseAt(pos int) int {
	end := v.st.size(0)
	if pos < 0 || pos >= end {
		return end
	}

	return v.st.erase(0, pos, pos+1)
}

// EraseRange removes positions [first, last), clamped to [0, End()].
func (v *CompressedVector[T]) EraseRange(first, last int) int {
	end := v.st.size(0)
	first = min(max(first, 0), end)
	last = min(max(last, first), end)
	if first == last {
		return first
	}

	return v.st.erase(0, first, last)
}

// Reserve grows the capacity to at least n slots.
func (v *CompressedVector[T]) Reserve(n int) {
	v.st.reserve(n)
	v.st.begin[1] = len(v.st.buf)
}

// Resize changes the logical size to n. With preserve, slots below n are
// kept; otherwise every slot is dropped (capacity is kept).
//
// Errors:
//   - ErrInvalidDimensions when n < 0.
func (v *CompressedVector[T]) Resize(n int, preserve bool) error {
	if n < 0 {
		return vectorErrorf(ctxVecResize, n, ErrInvalidDimensions)
	}
	if preserve {
		cut, _ := searchLine(v.st.Line(0), n)
		v.st.end[0] = v.st.begin[0] + cut
	} else {
		v.st.end[0] = v.st.begin[0]
	}
	v.n = n
	v.st.limit = n

	return nil
}

// Reset drops every slot, keeping size and capacity.
func (v *CompressedVector[T]) Reset() { v.st.end[0] = v.st.begin[0] }

// Clear turns v into an empty vector of size 0 and releases its buffer.
func (v *CompressedVector[T]) Clear() {
	v.n = 0
	v.adopt(newStorage[T](1, 0, 0, 0))
}

// Clone returns a deep copy.
func (v *CompressedVector[T]) Clone() *CompressedVector[T] {
	return &CompressedVector[T]{n: v.n, st: v.st.clone()}
}

// Swap exchanges the complete state of v and other.
func (v *CompressedVector[T]) Swap(other *CompressedVector[T]) { *v, *other = *other, *v }

// denseLine collects the non-zero entries of x as sorted slots.
func denseLine[T Scalar](x []T) []Element[T] {
	var zero T
	out := make([]Element[T], 0)
	for i, val := range x {
		if val != zero {
			out = append(out, Element[T]{Index: i, Value: val})
		}
	}

	return out
}

// AssignDense replaces content and size by the non-zero entries of x.
// Complexity: O(len(x)).
func (v *CompressedVector[T]) AssignDense(x []T) {
	line := denseLine(x)
	asm := newAssembler[T](1, len(line))
	asm.pushLine(line)
	v.n = len(x)
	v.adopt(asm.storage(0, 0))
}

// Assign replaces content and size by a copy of src (explicit zeros
// included).
//
// Errors:
//   - ErrNilMatrix when src is nil.
func (v *CompressedVector[T]) Assign(src *CompressedVector[T]) error {
	if src == nil {
		return matrixErrorf("CompressedVector."+ctxVecAssign, ErrNilMatrix)
	}
	if src == v {
		return nil
	}
	asm := newAssembler[T](1, src.NonZeros())
	asm.pushLine(src.st.Line(0))
	v.n = src.n
	v.adopt(asm.storage(0, 0))

	return nil
}

// AddAssign computes v += src (sparse).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func (v *CompressedVector[T]) AddAssign(src *CompressedVector[T]) error {
	if err := v.sameSize(ctxAddAssign, src); err != nil {
		return err
	}
	v.mergeWith(src.st.Line(0), false)

	return nil
}

// SubAssign computes v -= src (sparse).
func (v *CompressedVector[T]) SubAssign(src *CompressedVector[T]) error {
	if err := v.sameSize(ctxSubAssign, src); err != nil {
		return err
	}
	v.mergeWith(src.st.Line(0), true)

	return nil
}

// AddAssignDense computes v += x; zero entries of x are absent.
//
// Errors:
//   - ErrDimensionMismatch when len(x) != Size().
func (v *CompressedVector[T]) AddAssignDense(x []T) error {
	if len(x) != v.n {
		return matrixErrorf("CompressedVector."+ctxAddAssign, ErrDimensionMismatch)
	}
	v.mergeWith(denseLine(x), false)

	return nil
}

// SubAssignDense computes v -= x; zero entries of x are absent.
func (v *CompressedVector[T]) SubAssignDense(x []T) error {
	if len(x) != v.n {
		return matrixErrorf("CompressedVector."+ctxSubAssign, ErrDimensionMismatch)
	}
	v.mergeWith(denseLine(x), true)

	return nil
}

// sameSize validates a sparse vector operand.
func (v *CompressedVector[T]) sameSize(tag string, src *CompressedVector[T]) error {
	if src == nil {
		return matrixErrorf("CompressedVector."+tag, ErrNilMatrix)
	}
	if src.n != v.n {
		return matrixErrorf("CompressedVector."+tag, ErrDimensionMismatch)
	}

	return nil
}

// mergeWith rebuilds v as the sorted union with b (see mergeLine).
func (v *CompressedVector[T]) mergeWith(b []Element[T], neg bool) {
	a := v.st.Line(0)
	asm := newAssembler[T](1, len(a)+len(b))
	mergeLine(&asm, a, b, neg)
	asm.seal()
	v.adopt(asm.storage(0, 0))
}

// MulAssign computes the element-wise product v ∘= src. Only indices stored
// in both operands can be non-zero; zero products are dropped.
func (v *CompressedVector[T]) MulAssign(src *CompressedVector[T]) error {
	if err := v.sameSize(ctxMulAssign, src); err != nil {
		return err
	}
	v.productWith(src.st.Line(0))

	return nil
}

// MulAssignDense computes v ∘= x.
func (v *CompressedVector[T]) MulAssignDense(x []T) error {
	if len(x) != v.n {
		return matrixErrorf("CompressedVector."+ctxMulAssign, ErrDimensionMismatch)
	}
	v.productWith(denseLine(x))

	return nil
}

// productWith keeps the non-zero products of the index intersection.
func (v *CompressedVector[T]) productWith(b []Element[T]) {
	var zero T
	a := v.st.Line(0)
	asm := newAssembler[T](1, min(len(a), len(b)))
	intersect(a, b, func(idx int, x, y T) {
		if p := x * y; p != zero {
			asm.push(idx, p)
		}
	})
	asm.seal()
	v.adopt(asm.storage(0, 0))
}

// intersect calls f for every index stored in both sorted runs.
// Complexity: O(len(a) + len(b)).
func intersect[T Scalar](a, b []Element[T], f func(idx int, x, y T)) {
	ia, ib := 0, 0
	for ia < len(a) && ib < len(b) {
		switch {
		case a[ia].Index < b[ib].Index:
			ia++
		case b[ib].Index < a[ia].Index:
			ib++
		default:
			f(a[ia].Index, a[ia].Value, b[ib].Value)
			ia++
			ib++
		}
	}
}

// Scale multiplies every stored value by f.
func (v *CompressedVector[T]) Scale(f T) {
	line := v.st.Line(0)
	for k := range line {
		line[k].Value *= f
	}
}

// Divide divides every stored value by f.
//
// Errors:
//   - ErrDivideByZero when f is zero (nothing is modified).
func (v *CompressedVector[T]) Divide(f T) error {
	var zero T
	if f == zero {
		return matrixErrorf("CompressedVector."+ctxDivide, ErrDivideByZero)
	}
	line := v.st.Line(0)
	for k := range line {
		line[k].Value /= f
	}

	return nil
}

// Dot returns the inner product of v and w (no conjugation).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func (v *CompressedVector[T]) Dot(w *CompressedVector[T]) (T, error) {
	var sum T
	if err := v.sameSize("Dot", w); err != nil {
		return sum, err
	}
	intersect(v.st.Line(0), w.st.Line(0), func(_ int, x, y T) { sum += x * y })

	return sum, nil
}

// DotDense returns the inner product of v and the dense vector x.
func (v *CompressedVector[T]) DotDense(x []T) (T, error) {
	var sum T
	if len(x) != v.n {
		return sum, matrixErrorf("CompressedVector.DotDense", ErrDimensionMismatch)
	}
	for _, e := range v.st.Line(0) {
		sum += e.Value * x[e.Index]
	}

	return sum, nil
}

// Equal reports logical equality: same size and same value at every index,
// where explicit zeros equal structural zeros.
func (v *CompressedVector[T]) Equal(w *CompressedVector[T]) bool {
	if v == nil || w == nil {
		return v == w
	}

	return v.n == w.n && lineEqual(v.st.Line(0), w.st.Line(0), func(x, y T) bool { return x == y })
}

// Dense returns the vector as a dense slice of length Size().
func (v *CompressedVector[T]) Dense() []T {
	out := make([]T, v.n)
	for _, e := range v.st.Line(0) {
		out[e.Index] = e.Value
	}

	return out
}

// String renders the vector densely as "( a b c )\n".
func (v *CompressedVector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for _, val := range v.Dense() {
		b.WriteString(_fmtSep)
		b.WriteString(fmt.Sprint(val))
	}
	b.WriteString(_fmtClose)

	return b.String()
}
