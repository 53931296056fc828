// SPDX-License-Identifier: MIT

// Package: lvlsparse/builder
//
// impl_indices.go: sorted sampling of distinct indices.
//
// Contract:
//   - 0 <= k <= n; the result has length k, strictly increasing, within [0,n).
//   - Deterministic for a given source state.
//
// Implementation:
//   - Stage 1: Floyd's sampling; for j in [n-k, n) draw t in [0, j]; keep t
//     unless already taken, in which case keep j. Every k-subset is equally
//     likely and exactly k draws are made.
//   - Stage 2: sort the picked indices.
//   - When k > n/2 the complement is sampled instead and inverted, which
//     keeps the set small.
//
// Complexity: O(min(k, n-k) log) time, O(min(k, n-k)) extra space, plus O(n)
// for the complement walk.

package builder

import (
	"slices"

	"golang.org/x/exp/rand"
)

// Indices returns k sorted distinct indices drawn uniformly from [0, n).
//
// Errors:
//   - ErrInvalidDimensions if n < 0 or k < 0.
//   - ErrTooManyNonZeros if k > n.
//   - ErrNeedRandSource without WithSeed/WithRand.
func Indices(n, k int, opts ...Option) ([]int, error) {
	if n < 0 || k < 0 {
		return nil, builderErrorf(methodIndices, "n=%d k=%d", ErrInvalidDimensions, n, k)
	}
	if k > n {
		return nil, builderErrorf(methodIndices, "k=%d > n=%d", ErrTooManyNonZeros, k, n)
	}
	cfg := newBuilderConfig(opts...)
	rng, err := cfg.random(methodIndices)
	if err != nil {
		return nil, err
	}

	return sample(rng, n, k), nil
}

// sample implements Indices for validated arguments.
func sample(rng *rand.Rand, n, k int) []int {
	if k == 0 {
		return []int{}
	}
	if k == n {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}

		return out
	}
	if 2*k > n {
		skip := floyd(rng, n, n-k)
		out := make([]int, 0, k)
		s := 0
		for i := 0; i < n; i++ {
			if s < len(skip) && skip[s] == i {
				s++
				continue
			}
			out = append(out, i)
		}

		return out
	}

	return floyd(rng, n, k)
}

// floyd draws k distinct values of [0,n) and returns them sorted.
func floyd(rng *rand.Rand, n, k int) []int {
	seen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for j := n - k; j < n; j++ {
		t := rng.Intn(j + 1)
		if _, dup := seen[t]; dup {
			t = j
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	slices.Sort(out)

	return out
}
