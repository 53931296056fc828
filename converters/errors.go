// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a zero-sized operand must become a gonum
	// container; gonum rejects zero dimensions.
	ErrEmpty = errors.New("converters: zero-sized operand")

	// ErrNilOperand is returned for nil inputs.
	ErrNilOperand = errors.New("converters: nil operand")
)

func convErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
