// SPDX-License-Identifier: MIT

package builder

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlsparse/matrix"
)

// builderConfig holds the resolved options of one constructor call.
type builderConfig struct {
	rng        *rand.Rand
	seed       uint64
	seeded     bool
	valueFn    ValueFn
	matrixOpts []matrix.Option
}

// newBuilderConfig applies opts over the defaults. Nil options are skipped.
func newBuilderConfig(opts ...Option) *builderConfig {
	cfg := &builderConfig{valueFn: UniformValues(defaultValueMin, defaultValueMax)}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.rng == nil && cfg.seeded {
		cfg.rng = rand.New(rand.NewSource(cfg.seed))
	}

	return cfg
}

// random returns the configured source or ErrNeedRandSource.
func (c *builderConfig) random(method string) (*rand.Rand, error) {
	if c == nil {
		panic(panicNilOptionSet)
	}
	if c.rng == nil {
		return nil, builderErrorf(method, "use WithSeed or WithRand", ErrNeedRandSource)
	}

	return c.rng, nil
}

// value draws one entry converted to T.
func value[T matrix.Scalar](c *builderConfig) T {
	return matrix.Cast[T](c.valueFn(c.rng))
}
