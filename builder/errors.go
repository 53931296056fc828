// SPDX-License-Identifier: MIT

// Package: lvlsparse/builder
//
// errors.go: sentinel errors shared by the random constructors.

package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a row, column or element count is negative.
	ErrInvalidDimensions = errors.New("builder: invalid dimensions")

	// ErrTooManyNonZeros is returned when more distinct non-zeros are requested
	// than a line (or vector) has positions.
	ErrTooManyNonZeros = errors.New("builder: too many non-zeros")

	// ErrInvalidProbability is returned when a density lies outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource is returned when a stochastic constructor runs
	// without WithRand or WithSeed.
	ErrNeedRandSource = errors.New("builder: random source required")
)

// builderErrorf wraps err with the constructor name, keeping the sentinel
// reachable through errors.Is.
func builderErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
