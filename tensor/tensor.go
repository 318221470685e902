// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand/v2"

	"github.com/born-ml/dense/internal/parallel"
	"github.com/born-ml/dense/internal/tensor"
)

// Type aliases for public API

// Tensor is a dense float64 tensor with a row-major buffer.
//
// Example:
//
//	x, _ := tensor.Linspace(0, 5, 6) // Shape: [1, 6]
//	_ = x.Reshape(2, 3)               // Shape: [2, 3]
//	y, _ := x.Transpose()             // Shape: [3, 2]
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a 2×3 matrix.
type Shape = tensor.Shape

// ShapeError describes incompatible operand shapes. It unwraps to ErrShapeMismatch.
type ShapeError = tensor.ShapeError

// ParallelConfig controls how MatMulWith splits output rows across goroutines.
type ParallelConfig = parallel.Config

// Errors returned by tensor operations.
var (
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrUnsupportedRank = tensor.ErrUnsupportedRank
	ErrInvalidArgument = tensor.ErrInvalidArgument
)

// Creation functions

// New creates a tensor from a flat row-major slice. Data and shape are copied.
//
// Example:
//
//	x, err := tensor.New([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func New(data []float64, shape Shape) (*Tensor, error) {
	return tensor.New(data, shape)
}

// MustNew is like New but panics on error.
func MustNew(data []float64, shape Shape) *Tensor {
	return tensor.MustNew(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) (*Tensor, error) {
	return tensor.Zeros(shape)
}

// Eye creates an n×n identity matrix.
func Eye(n int) (*Tensor, error) {
	return tensor.Eye(n)
}

// Linspace creates a [1, count] tensor of evenly spaced values from start to
// end inclusive. count must be at least 2.
//
// Example:
//
//	x, _ := tensor.Linspace(0, 10, 11) // [0, 1, 2, ..., 10]
func Linspace(start, end float64, count int) (*Tensor, error) {
	return tensor.Linspace(start, end, count)
}

// Rand creates a [1, count] tensor of values drawn uniformly from [min, max).
func Rand(min, max float64, count int) (*Tensor, error) {
	return tensor.Rand(min, max, count)
}

// RandWithSource is like Rand but draws from src for reproducible output.
//
// Example:
//
//	x, _ := tensor.RandWithSource(rand.NewPCG(1, 2), -1, 1, 16)
func RandWithSource(src rand.Source, min, max float64, count int) (*Tensor, error) {
	return tensor.RandWithSource(src, min, max, count)
}

// Arithmetic functions

// Add performs element-wise addition of equally shaped tensors.
func Add(a, b *Tensor) (*Tensor, error) {
	return tensor.Add(a, b)
}

// Sub performs element-wise subtraction of equally shaped tensors.
func Sub(a, b *Tensor) (*Tensor, error) {
	return tensor.Sub(a, b)
}

// Mul performs element-wise multiplication of equally shaped tensors.
func Mul(a, b *Tensor) (*Tensor, error) {
	return tensor.Mul(a, b)
}

// AddScalar adds scalar to every element.
func AddScalar(x *Tensor, scalar float64) *Tensor {
	return tensor.AddScalar(x, scalar)
}

// SubScalar subtracts scalar from every element.
func SubScalar(x *Tensor, scalar float64) *Tensor {
	return tensor.SubScalar(x, scalar)
}

// MulScalar multiplies every element by scalar.
func MulScalar(x *Tensor, scalar float64) *Tensor {
	return tensor.MulScalar(x, scalar)
}

// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) → (M, N).
//
// Example:
//
//	a := tensor.MustNew([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	b := tensor.MustNew([]float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})
//	c, _ := tensor.MatMul(a, b) // [[58, 64], [139, 154]]
func MatMul(a, b *Tensor) (*Tensor, error) {
	return tensor.MatMul(a, b)
}

// MatMulWith is MatMul with output rows split across goroutines.
// The result is bit-identical to MatMul.
//
// Example:
//
//	c, err := tensor.MatMulWith(a, b, tensor.DefaultParallelConfig())
func MatMulWith(a, b *Tensor, cfg ParallelConfig) (*Tensor, error) {
	return tensor.MatMulWith(a, b, cfg)
}

// Parallel configuration

// DefaultParallelConfig uses one worker per CPU.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// ParallelWorkers returns a config using n workers; n <= 1 runs sequentially.
func ParallelWorkers(n int) ParallelConfig {
	return parallel.WithWorkers(n)
}
