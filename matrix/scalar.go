// SPDX-License-Identifier: MIT

package matrix

import "reflect"

// Cast converts a real factor f into the element type T.
//   - complex T: complex(f, 0)
//   - floating T: float conversion
//   - integer T: truncation toward zero
//
// Types defined over a built-in kind (type Weight float64) are handled by
// their kind.
func Cast[T Scalar, S Real](f S) T {
	var out T
	v := reflect.ValueOf(&out).Elem()
	switch v.Kind() {
	case reflect.Complex64, reflect.Complex128:
		v.SetComplex(complex(float64(f), 0))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(float64(f))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(f))
	default: // unsigned kinds
		v.SetUint(uint64(f))
	}

	return out
}
