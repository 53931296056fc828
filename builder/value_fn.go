// SPDX-License-Identifier: MIT

package builder

import "golang.org/x/exp/rand"

// ValueFn produces the value of one generated entry.
type ValueFn func(r *rand.Rand) float64

// UniformValues draws from [lo, hi). Panics unless lo < hi.
func UniformValues(lo, hi float64) ValueFn {
	if !(lo < hi) {
		panic(panicBadRange)
	}
	width := hi - lo

	return func(r *rand.Rand) float64 { return lo + r.Float64()*width }
}

// IntegerValues draws integers uniformly from [lo, hi], skipping zero when
// the range contains other values. Panics if lo > hi.
func IntegerValues(lo, hi int) ValueFn {
	if lo > hi {
		panic(panicBadIntRange)
	}
	span := hi - lo + 1

	return func(r *rand.Rand) float64 {
		for {
			v := lo + r.Intn(span)
			if v != 0 || span == 1 {
				return float64(v)
			}
		}
	}
}

// ConstantValues always yields v.
func ConstantValues(v float64) ValueFn {
	return func(*rand.Rand) float64 { return v }
}
