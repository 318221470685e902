// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/dense/tensor"
)

// TestPublicErrorsMatchInternal verifies errors.Is works across the facade.
func TestPublicErrorsMatchInternal(t *testing.T) {
	_, err := tensor.New([]float64{1, 2, 3}, tensor.Shape{2, 2})
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)

	var shapeErr *tensor.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "new", shapeErr.Op)

	_, err = tensor.Linspace(0, 1, 1)
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)

	v := tensor.MustNew([]float64{1, 2}, tensor.Shape{2})
	_, err = v.Transpose()
	assert.ErrorIs(t, err, tensor.ErrUnsupportedRank)
}

// TestDemoPipeline mirrors the timing demo: linspace, reshape, multiply.
func TestDemoPipeline(t *testing.T) {
	const n = 16

	a, err := tensor.Linspace(0, n*n-1, n*n)
	require.NoError(t, err)
	require.NoError(t, a.Reshape(n, n))

	b, err := tensor.Linspace(0, n*n-1, n*n)
	require.NoError(t, err)
	require.NoError(t, b.Reshape(n, n))

	seq, err := tensor.MatMul(a, b)
	require.NoError(t, err)
	par, err := tensor.MatMulWith(a, b, tensor.ParallelWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{n, n}, seq.Shape())
	assert.True(t, seq.Equal(par))

	// C[0,0] = sum_k k * (k*n) = n * sum_k k^2
	var want float64
	for k := 0; k < n; k++ {
		want += float64(k) * float64(k*n)
	}
	assert.Equal(t, want, seq.At(0, 0))
}

func TestScalarChain(t *testing.T) {
	x, err := tensor.RandWithSource(rand.NewPCG(9, 9), 0, 1, 12)
	require.NoError(t, err)

	y := tensor.SubScalar(tensor.MulScalar(tensor.AddScalar(x, 1), 2), 2)
	for i, v := range x.Data() {
		assert.InDelta(t, 2*v, y.Data()[i], 1e-15)
	}
}

func TestElementwiseFacade(t *testing.T) {
	a := tensor.MustNew([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := tensor.MustNew([]float64{4, 3, 2, 1}, tensor.Shape{2, 2})

	sum, err := tensor.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 5, 5}, sum.Data())

	diff, err := tensor.Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, -1, 1, 3}, diff.Data())

	prod, err := tensor.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6, 6, 4}, prod.Data())

	z, err := tensor.Zeros(tensor.Shape{2, 2})
	require.NoError(t, err)
	same, err := tensor.Add(a, z)
	require.NoError(t, err)
	assert.True(t, a.Equal(same))
}

func TestDefaultParallelConfig(t *testing.T) {
	cfg := tensor.DefaultParallelConfig()
	assert.Positive(t, cfg.NumWorkers)
	assert.False(t, tensor.ParallelWorkers(1).Enabled)
}
