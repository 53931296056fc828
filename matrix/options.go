// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for compressed containers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each knob changes the initial layout or growth policy.
//   - Panic only on invalid parameters (programmer error); constructors
//     return sentinel errors for data-dependent problems (ErrBadCapacity).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultGrowthFloor is the minimum capacity of the first reallocation
	// triggered by Insert on a container without spare slots.
	DefaultGrowthFloor = 7

	// DefaultCapacity is the total slot capacity of a fresh container.
	DefaultCapacity = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid     = "matrix: WithCapacity: capacity must be >= 0"
	panicLineCapacityInvalid = "matrix: WithLineCapacities: capacities must be >= 0"
	panicGrowthFloorInvalid  = "matrix: WithGrowthFloor: floor must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	capacity    int   // total capacity hint (>= 0)
	lineCaps    []int // per-line capacities; nil when not requested
	growthFloor int   // minimum capacity after the first growth
}

// WithCapacity requests a total slot capacity of at least n. The slots are
// placed in the global tail and are consumed by the first lines that grow.
// Panics when n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// WithLineCapacities front-loads exact per-line capacity: line l reserves
// caps[l] slots. The list length must equal the number of lines, otherwise
// the constructor returns ErrBadCapacity. Panics on a negative entry.
//
// AI-Hints:
//   - Pair with Append/Finalize for zero-reallocation bulk construction.
func WithLineCapacities(caps ...int) Option {
	for _, c := range caps {
		if c < 0 {
			panic(panicLineCapacityInvalid)
		}
	}
	cp := append([]int(nil), caps...) // detach from caller's slice

	return func(o *Options) { o.lineCaps = cp }
}

// WithGrowthFloor overrides DefaultGrowthFloor. Panics when n < 1.
func WithGrowthFloor(n int) Option {
	if n < 1 {
		panic(panicGrowthFloorInvalid)
	}

	return func(o *Options) { o.growthFloor = n }
}

// gatherOptions applies opts in order over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		capacity:    DefaultCapacity,
		growthFloor: DefaultGrowthFloor,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
