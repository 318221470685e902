// Package cpu implements the CPU kernels behind dense tensor operations.
//
// Kernels work on flat row-major float64 buffers and assume the caller has
// already validated shapes. A violated precondition is a programming error
// and panics.
package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Add computes dst[i] = a[i] + b[i].
func Add(dst, a, b []float64) {
	checkLen("add", dst, a, b)
	floats.AddTo(dst, a, b)
}

// Sub computes dst[i] = a[i] - b[i].
func Sub(dst, a, b []float64) {
	checkLen("sub", dst, a, b)
	floats.SubTo(dst, a, b)
}

// Mul computes dst[i] = a[i] * b[i].
func Mul(dst, a, b []float64) {
	checkLen("mul", dst, a, b)
	floats.MulTo(dst, a, b)
}

func checkLen(op string, dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(fmt.Sprintf("%s: buffer lengths differ: dst=%d a=%d b=%d", op, len(dst), len(a), len(b)))
	}
}
