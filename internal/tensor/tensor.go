package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Tensor is a dense float64 tensor stored as a flat row-major buffer.
//
// Every operation that produces a Tensor allocates its own buffer and shape,
// so a Tensor never aliases another one. Only Reshape mutates a Tensor.
//
// Example:
//
//	t, err := tensor.New([]float64{1, 2, 3, 4}, Shape{2, 2})
//	if err != nil {
//	    return err
//	}
//	tt, _ := t.Transpose() // [[1, 3], [2, 4]]
type Tensor struct {
	shape Shape
	data  []float64
}

// New creates a Tensor from a flat slice and a shape.
// Both are copied into the tensor's memory.
func New(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, &ShapeError{
			Op:     "new",
			Left:   shape.Clone(),
			Right:  Shape{len(data)},
			Detail: fmt.Sprintf("shape requires %d elements, but got %d", shape.NumElements(), len(data)),
		}
	}

	buf := make([]float64, len(data))
	copy(buf, data)
	return &Tensor{shape: shape.Clone(), data: buf}, nil
}

// MustNew is like New but panics on error.
// Intended for literals in tests and examples.
func MustNew(data []float64, shape Shape) *Tensor {
	t, err := New(data, shape)
	if err != nil {
		panic(err)
	}
	return t
}

// newUninit allocates a zeroed tensor for an already-validated shape.
func newUninit(shape Shape) *Tensor {
	return &Tensor{shape: shape.Clone(), data: make([]float64, shape.NumElements())}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the tensor's flat row-major buffer.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor) At(indices ...int) float64 {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	strides := t.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * strides[i]
	}

	return t.data[offset]
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{shape: t.shape.Clone(), data: data}
}

// Equal reports whether both tensors have the same shape and bitwise-equal
// elements (NaN never equals NaN).
func (t *Tensor) Equal(other *Tensor) bool {
	return t.shape.Equal(other.shape) && floats.Equal(t.data, other.data)
}

// AllClose reports whether both tensors have the same shape and every pair of
// elements is within tol, either absolutely or relative to their magnitude.
func (t *Tensor) AllClose(other *Tensor, tol float64) bool {
	return t.shape.Equal(other.shape) && floats.EqualApprox(t.data, other.data, tol)
}

// Reshape changes the tensor's shape in place without touching element order.
// The new shape must have the same number of elements. On error the tensor is
// left unchanged.
//
// Example:
//
//	t, _ := tensor.Linspace(0, 11, 12) // Shape: [1, 12]
//	err := t.Reshape(3, 4)             // Shape: [3, 4]
func (t *Tensor) Reshape(newShape ...int) error {
	s := Shape(newShape)
	if err := s.Validate(); err != nil {
		return fmt.Errorf("reshape: %w", err)
	}
	if s.NumElements() != len(t.data) {
		return &ShapeError{
			Op:     "reshape",
			Left:   t.shape.Clone(),
			Right:  s.Clone(),
			Detail: "different number of elements",
		}
	}

	t.shape = s.Clone()
	return nil
}

// Transpose returns a new tensor with rows and columns swapped.
// Only 2D tensors are supported; the receiver is not modified.
//
// Example:
//
//	t := tensor.MustNew([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
//	tt, _ := t.Transpose() // Shape: [3, 2]
func (t *Tensor) Transpose() (*Tensor, error) {
	if len(t.shape) != 2 {
		return nil, rankError("transpose", t.shape)
	}
	return transpose2D(t), nil
}

// String returns a human-readable representation of the tensor.
// 2D tensors are rendered row by row as Pretty does; other ranks get a
// one-line summary.
func (t *Tensor) String() string {
	if s, err := t.Pretty(); err == nil {
		return s
	}
	return fmt.Sprintf("Tensor[float64]%v", t.shape)
}
