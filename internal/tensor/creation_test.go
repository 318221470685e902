package tensor

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

func TestZeros(t *testing.T) {
	x, err := Zeros(Shape{3, 4})
	require.NoError(t, err)

	assert.Equal(t, Shape{3, 4}, x.Shape())
	for i, v := range x.Data() {
		assert.Zerof(t, v, "Zeros[%d]", i)
	}

	_, err = Zeros(Shape{2, -1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEye(t *testing.T) {
	x, err := Eye(3)
	require.NoError(t, err)

	assert.Equal(t, Shape{3, 3}, x.Shape())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.Equalf(t, want, x.At(i, j), "Eye[%d,%d]", i, j)
		}
	}

	_, err = Eye(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Eye(math.MaxInt/2 + 1)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

// Linspace Tests

func TestLinspace_Integers(t *testing.T) {
	x, err := Linspace(0, 10, 11)
	require.NoError(t, err)

	assert.Equal(t, Shape{1, 11}, x.Shape())
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, x.Data())
}

func TestLinspace_Fractional(t *testing.T) {
	x, err := Linspace(1, 2, 5)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 1.25, 1.5, 1.75, 2}, x.Data())
}

func TestLinspace_Descending(t *testing.T) {
	x, err := Linspace(4, -4, 3)
	require.NoError(t, err)

	assert.Equal(t, []float64{4, 0, -4}, x.Data())
}

func TestLinspace_ElementFormula(t *testing.T) {
	start, end, count := -1.7, 3.3, 37
	x, err := Linspace(start, end, count)
	require.NoError(t, err)

	step := (end - start) / float64(count-1)
	for i, v := range x.Data() {
		assert.Equalf(t, start+float64(i)*step, v, "Linspace[%d]", i)
	}
}

func TestLinspace_InvalidCount(t *testing.T) {
	for _, count := range []int{1, 0, -3} {
		x, err := Linspace(0, 1, count)
		assert.Nil(t, x)
		assert.ErrorIsf(t, err, ErrInvalidArgument, "count=%d", count)
	}
}

// Rand Tests

func TestRand_Range(t *testing.T) {
	x, err := Rand(-2, 3, 5000)
	require.NoError(t, err)

	assert.Equal(t, Shape{1, 5000}, x.Shape())
	for i, v := range x.Data() {
		if v < -2 || v >= 3 {
			t.Fatalf("Rand[%d] = %v, should be in [-2, 3)", i, v)
		}
	}
}

func TestRand_PositiveMinStaysInRange(t *testing.T) {
	// A draw computed as r*(max-min) - min would fall in [-10, 0) here.
	x, err := RandWithSource(newTestSource(1), 10, 20, 2000)
	require.NoError(t, err)

	data := x.Data()
	sum := 0.0
	for i, v := range data {
		if v < 10 || v >= 20 {
			t.Fatalf("Rand[%d] = %v, should be in [10, 20)", i, v)
		}
		sum += v
	}

	mean := sum / float64(len(data))
	assert.InDelta(t, 15, mean, 0.5, "mean of uniform [10, 20)")
}

func TestRandWithSource_Reproducible(t *testing.T) {
	a, err := RandWithSource(newTestSource(42), 0, 1, 64)
	require.NoError(t, err)
	b, err := RandWithSource(newTestSource(42), 0, 1, 64)
	require.NoError(t, err)
	c, err := RandWithSource(newTestSource(43), 0, 1, 64)
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same seed must give same values")
	assert.False(t, a.Equal(c), "different seeds should differ")
}

func TestRand_NotConstant(t *testing.T) {
	x, err := RandWithSource(newTestSource(3), 0, 1, 100)
	require.NoError(t, err)

	data := x.Data()
	allSame := true
	for _, v := range data[1:] {
		if v != data[0] {
			allSame = false
			break
		}
	}
	assert.False(t, allSame, "Rand should produce different values")
}

func TestRand_Empty(t *testing.T) {
	x, err := Rand(0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 0}, x.Shape())
	assert.Empty(t, x.Data())
}

func TestRand_InvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		count    int
	}{
		{"negative count", 0, 1, -1},
		{"empty range", 1, 1, 10},
		{"inverted range", 2, 1, 10},
		{"nan bound", math.NaN(), 1, 10},
		{"infinite bound", 0, math.Inf(1), 10},
		{"overflowing range", -math.MaxFloat64, math.MaxFloat64, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := Rand(tt.min, tt.max, tt.count)
			assert.Nil(t, x)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
