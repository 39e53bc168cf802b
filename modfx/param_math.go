//go:build !fastmath

package modfx

import "math"

// mathPower2 computes 2^x using the standard library.
func mathPower2(x float64) float64 {
	return math.Pow(2, x)
}
