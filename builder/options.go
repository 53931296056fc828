// SPDX-License-Identifier: MIT

// Package: lvlsparse/builder
//
// options.go: functional options for the random constructors.
//
// Options are applied in order; the last writer wins. WithRand takes
// precedence over WithSeed regardless of order.

package builder

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlsparse/matrix"
)

// Option customizes a builderConfig.
type Option func(*builderConfig)

// WithSeed derives a fresh PCG source from seed.
func WithSeed(seed uint64) Option {
	return func(c *builderConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// WithRand uses r as the random source. Panics on nil.
// r is not safe for concurrent use; callers own its synchronization.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithValueFn sets the value generator. Panics on nil.
func WithValueFn(fn ValueFn) Option {
	if fn == nil {
		panic(panicNilValueFn)
	}

	return func(c *builderConfig) { c.valueFn = fn }
}

// WithMatrixOptions forwards capacity options to the matrix constructor.
// They override the builder's capacity hint; the slots a constructor is
// about to fill are always reserved on top of them.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(c *builderConfig) { c.matrixOpts = append(c.matrixOpts, opts...) }
}
