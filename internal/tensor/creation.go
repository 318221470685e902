package tensor

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros(Shape{3, 4})
func Zeros(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("zeros: %w", err)
	}
	return newUninit(shape), nil
}

// Eye creates an n×n identity matrix.
//
// Example:
//
//	t, _ := tensor.Eye(3) // 3x3 identity matrix
func Eye(n int) (*Tensor, error) {
	if n < 0 {
		return nil, fmt.Errorf("eye: %w: size %d must be >= 0", ErrInvalidArgument, n)
	}
	shape := Shape{n, n}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("eye: %w", err)
	}
	t := newUninit(shape)
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1
	}
	return t, nil
}

// Linspace creates a [1, count] tensor of count evenly spaced values from
// start to end inclusive. Element i is start + i*step with
// step = (end-start)/(count-1).
//
// count must be at least 2, otherwise the step is undefined.
//
// Example:
//
//	t, _ := tensor.Linspace(0, 10, 11) // [0, 1, 2, ..., 10]
func Linspace(start, end float64, count int) (*Tensor, error) {
	if count <= 1 {
		return nil, fmt.Errorf("linspace: %w: count %d must be >= 2", ErrInvalidArgument, count)
	}

	t := newUninit(Shape{1, count})
	step := (end - start) / float64(count-1)
	for i := range t.data {
		t.data[i] = start + float64(i)*step
	}
	return t, nil
}

// Rand creates a [1, count] tensor of values drawn uniformly from [min, max)
// using the global random source.
//
// Example:
//
//	t, _ := tensor.Rand(-1, 1, 100)
func Rand(min, max float64, count int) (*Tensor, error) {
	return RandWithSource(nil, min, max, count)
}

// RandWithSource is like Rand but draws from src, which makes the result
// reproducible. A nil src uses the global random source.
//
// Example:
//
//	src := rand.NewPCG(42, 42)
//	t, _ := tensor.RandWithSource(src, 0, 1, 10)
func RandWithSource(src rand.Source, min, max float64, count int) (*Tensor, error) {
	if count < 0 {
		return nil, fmt.Errorf("rand: %w: count %d must be >= 0", ErrInvalidArgument, count)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(max-min, 0) {
		return nil, fmt.Errorf("rand: %w: bounds [%v, %v) must be finite", ErrInvalidArgument, min, max)
	}
	if max <= min {
		return nil, fmt.Errorf("rand: %w: max %v must be greater than min %v", ErrInvalidArgument, max, min)
	}

	dist := distuv.Uniform{Min: min, Max: max, Src: src}
	upper := math.Nextafter(max, min)

	t := newUninit(Shape{1, count})
	for i := range t.data {
		v := dist.Rand()
		if v >= max {
			// r*(max-min)+min can round up to max for r close to 1.
			v = upper
		}
		t.data[i] = v
	}
	return t, nil
}
