package numeric

import (
	"math"

	"github.com/geoplane/geom2d/types"
)

// CheckedAddInt64 returns a+b, or a non-nil *types.GeomError of kind
// types.Overflow if the sum would overflow an int64.
//
// This backs the integer Point's widened cross-product/length arithmetic
// (spec.md §3.1): rather than silently wrapping on overflow, integer
// geometric primitives abort with a dedicated error.
func CheckedAddInt64(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, types.NewGeomError(types.Overflow, "int64 addition overflow: %d + %d", a, b)
	}
	return sum, nil
}

// CheckedSubInt64 returns a-b, or a non-nil *types.GeomError of kind
// types.Overflow if the difference would overflow an int64.
func CheckedSubInt64(a, b int64) (int64, error) {
	if b == math.MinInt64 {
		// -b is not representable; a - MinInt64 fits only when a is negative.
		if a >= 0 {
			return 0, types.NewGeomError(types.Overflow, "int64 subtraction overflow: %d - %d", a, b)
		}
		return a - b, nil
	}
	return CheckedAddInt64(a, -b)
}

// CheckedMulInt64 returns a*b, or a non-nil *types.GeomError of kind
// types.Overflow if the product would overflow an int64.
func CheckedMulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	product := a * b
	if product/b != a {
		return 0, types.NewGeomError(types.Overflow, "int64 multiplication overflow: %d * %d", a, b)
	}
	// Guard the one case the division check above misses: MinInt64 * -1.
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, types.NewGeomError(types.Overflow, "int64 multiplication overflow: %d * %d", a, b)
	}
	return product, nil
}
