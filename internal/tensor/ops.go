package tensor

import (
	"fmt"

	"github.com/born-ml/dense/internal/backend/cpu"
	"github.com/born-ml/dense/internal/parallel"
)

// Add performs element-wise addition. Shapes must match exactly.
//
// Example:
//
//	a := tensor.MustNew([]float64{1, 2}, Shape{1, 2})
//	b := tensor.MustNew([]float64{3, 4}, Shape{1, 2})
//	c, _ := tensor.Add(a, b) // [4, 6]
func Add(a, b *Tensor) (*Tensor, error) {
	return elementwise("add", a, b, cpu.Add)
}

// Sub performs element-wise subtraction. Shapes must match exactly.
func Sub(a, b *Tensor) (*Tensor, error) {
	return elementwise("sub", a, b, cpu.Sub)
}

// Mul performs element-wise multiplication. Shapes must match exactly.
// Use MatMul for the matrix product.
func Mul(a, b *Tensor) (*Tensor, error) {
	return elementwise("mul", a, b, cpu.Mul)
}

func elementwise(op string, a, b *Tensor, kernel func(dst, a, b []float64)) (*Tensor, error) {
	if !a.shape.Equal(b.shape) {
		return nil, &ShapeError{Op: op, Left: a.shape.Clone(), Right: b.shape.Clone(), Detail: "shapes must be equal"}
	}
	result := newUninit(a.shape)
	kernel(result.data, a.data, b.data)
	return result, nil
}

// AddScalar adds a scalar value to each element.
func AddScalar(x *Tensor, scalar float64) *Tensor {
	result := newUninit(x.shape)
	cpu.AddScalar(result.data, x.data, scalar)
	return result
}

// SubScalar subtracts a scalar value from each element.
func SubScalar(x *Tensor, scalar float64) *Tensor {
	result := newUninit(x.shape)
	cpu.SubScalar(result.data, x.data, scalar)
	return result
}

// MulScalar multiplies each element by a scalar value.
func MulScalar(x *Tensor, scalar float64) *Tensor {
	result := newUninit(x.shape)
	cpu.MulScalar(result.data, x.data, scalar)
	return result
}

// MatMul performs matrix multiplication on the caller's goroutine.
//
// Requirements:
//   - Both operands are 2D: (M, K) @ (K, N) → (M, N)
//
// B is transposed first so that both operands are walked row by row in the
// inner loop. Each output element is accumulated in increasing K order.
//
// Example:
//
//	a, _ := tensor.Rand(0, 1, 12)
//	_ = a.Reshape(3, 4)
//	b, _ := tensor.Rand(0, 1, 20)
//	_ = b.Reshape(4, 5)
//	c, _ := tensor.MatMul(a, b) // Shape: [3, 5]
func MatMul(a, b *Tensor) (*Tensor, error) {
	return MatMulWith(a, b, parallel.Sequential())
}

// MatMulWith is MatMul with output rows split across workers according to cfg.
// The result is bit-identical to MatMul.
func MatMulWith(a, b *Tensor, cfg parallel.Config) (*Tensor, error) {
	if len(a.shape) != 2 {
		return nil, rankError("matmul", a.shape)
	}
	if len(b.shape) != 2 {
		return nil, rankError("matmul", b.shape)
	}

	m, k := a.shape[0], a.shape[1]
	kAlt, n := b.shape[0], b.shape[1]
	if k != kAlt {
		return nil, &ShapeError{
			Op:     "matmul",
			Left:   a.shape.Clone(),
			Right:  b.shape.Clone(),
			Detail: fmt.Sprintf("inner dimensions differ: %d vs %d", k, kAlt),
		}
	}

	bT := transpose2D(b)
	result := newUninit(Shape{m, n})
	parallel.ForRange(m, func(lo, hi int) {
		cpu.MatMulRows(result.data, a.data, bT.data, k, n, lo, hi)
	}, cfg)

	return result, nil
}

// transpose2D assumes t is 2D.
func transpose2D(t *Tensor) *Tensor {
	rows, cols := t.shape[0], t.shape[1]
	result := newUninit(Shape{cols, rows})
	cpu.Transpose2D(result.data, t.data, rows, cols)
	return result
}

// Add performs element-wise addition with other.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return Add(t, other)
}

// Sub performs element-wise subtraction of other.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return Sub(t, other)
}

// Mul performs element-wise multiplication with other.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return Mul(t, other)
}

// MatMul performs matrix multiplication t @ other.
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	return MatMul(t, other)
}

// AddScalar adds scalar to each element.
func (t *Tensor) AddScalar(scalar float64) *Tensor {
	return AddScalar(t, scalar)
}

// SubScalar subtracts scalar from each element.
func (t *Tensor) SubScalar(scalar float64) *Tensor {
	return SubScalar(t, scalar)
}

// MulScalar multiplies each element by scalar.
func (t *Tensor) MulScalar(scalar float64) *Tensor {
	return MulScalar(t, scalar)
}
