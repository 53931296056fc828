// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the storage layout and the options snapshot.
//
// Purpose:
//   - Expose the line boundaries and the resolved options to matrix_test ONLY.
//   - Let black-box tests assert layout invariants without widening the API.
//
// Build Policy:
//   - Lives in a _test.go file of package matrix, so it is compiled into the
//     test binary of this package and nowhere else.

import "fmt"

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Capacity    int
	LineCaps    []int
	GrowthFloor int
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Capacity: o.capacity, LineCaps: o.lineCaps, GrowthFloor: o.growthFloor}
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicCapacityInvalid_TestOnly     = panicCapacityInvalid
	PanicLineCapacityInvalid_TestOnly = panicLineCapacityInvalid
	PanicGrowthFloorInvalid_TestOnly  = panicGrowthFloorInvalid
)

// Layout_TestOnly returns copies of the begin/end boundary arrays of m.
func Layout_TestOnly[T Scalar](m *Compressed[T]) (begin, end []int) {
	return append([]int(nil), m.st.begin...), append([]int(nil), m.st.end...)
}

// CheckLayout_TestOnly verifies the structural invariants of m's store:
// begin[l] <= end[l] <= begin[l+1], begin[N] <= capacity, and every line
// strictly ascending with in-range indices.
func CheckLayout_TestOnly[T Scalar](m *Compressed[T]) error {
	st := &m.st
	n := len(st.end)
	if len(st.begin) != n+1 {
		return fmt.Errorf("begin has %d entries, want %d", len(st.begin), n+1)
	}
	for l := 0; l < n; l++ {
		if st.begin[l] > st.end[l] || st.end[l] > st.begin[l+1] {
			return fmt.Errorf("line %d: begin=%d end=%d next=%d", l, st.begin[l], st.end[l], st.begin[l+1])
		}
	}
	if st.begin[n] > len(st.buf) {
		return fmt.Errorf("tail %d beyond capacity %d", st.begin[n], len(st.buf))
	}

	return ValidateSorted[T](m)
}

// CheckVectorLayout_TestOnly verifies that the single line of v owns the
// whole buffer and is strictly ascending inside [0, Size).
func CheckVectorLayout_TestOnly[T Scalar](v *CompressedVector[T]) error {
	st := &v.st
	if st.begin[0] != 0 || st.begin[1] != len(st.buf) || st.end[0] > st.begin[1] {
		return fmt.Errorf("vector layout begin=%v end=%v cap=%d", st.begin, st.end, len(st.buf))
	}
	line := st.Line(0)
	if !isSortedLine(line) {
		return ErrUnsorted
	}
	if k := len(line); k > 0 && (line[0].Index < 0 || line[k-1].Index >= v.n) {
		return ErrOutOfRange
	}

	return nil
}
