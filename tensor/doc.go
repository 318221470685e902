// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense float64 tensors with shape-checked arithmetic.
//
// # Overview
//
// A Tensor owns a flat row-major buffer tagged with a Shape. This package provides:
//   - Construction from slices (New), Zeros, Eye, Linspace and Rand
//   - In-place Reshape and a pure 2D Transpose
//   - Element-wise Add, Sub and Mul on equally shaped tensors
//   - Scalar AddScalar, SubScalar and MulScalar
//   - 2D matrix multiplication (MatMul), optionally split across workers
//   - Row-per-line formatting rounded to 3 decimals
//
// # Basic Usage
//
//	import "github.com/born-ml/dense/tensor"
//
//	func main() {
//	    a, _ := tensor.New([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	    id, _ := tensor.Eye(2)
//
//	    c, err := tensor.MatMul(a, id)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Print(c) // [1, 2]
//	                 // [3, 4]
//	}
//
// # Shapes
//
// Operations never broadcast. Element-wise operations require identical shapes
// and MatMul requires (M, K) @ (K, N). Transpose, MatMul and Pretty only accept
// 2D tensors.
//
// # Errors
//
// Failures are returned, never panicked, and can be matched with errors.Is:
//
//	_, err := tensor.Add(a, b)
//	if errors.Is(err, tensor.ErrShapeMismatch) {
//	    // shapes differ
//	}
//
// Shape failures also carry a *ShapeError with the operation name and both shapes.
//
// # Memory
//
// Every operation allocates a fresh result; operands are never modified.
// Reshape is the only mutating operation and leaves the tensor untouched when
// it fails. Data returns the live buffer, not a copy.
package tensor
