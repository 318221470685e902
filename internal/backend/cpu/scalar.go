package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Scalar operations - element-wise operations with a scalar value.

// AddScalar computes dst[i] = x[i] + scalar.
func AddScalar(dst, x []float64, scalar float64) {
	checkScalarLen("addScalar", dst, x)
	copy(dst, x)
	floats.AddConst(scalar, dst)
}

// SubScalar computes dst[i] = x[i] - scalar.
// x - s and x + (-s) round identically in IEEE 754.
func SubScalar(dst, x []float64, scalar float64) {
	checkScalarLen("subScalar", dst, x)
	copy(dst, x)
	floats.AddConst(-scalar, dst)
}

// MulScalar computes dst[i] = x[i] * scalar.
func MulScalar(dst, x []float64, scalar float64) {
	checkScalarLen("mulScalar", dst, x)
	floats.ScaleTo(dst, scalar, x)
}

func checkScalarLen(op string, dst, x []float64) {
	if len(dst) != len(x) {
		panic(fmt.Sprintf("%s: buffer lengths differ: dst=%d x=%d", op, len(dst), len(x)))
	}
}
