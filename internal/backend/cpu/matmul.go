package cpu

import "fmt"

// Transpose2D writes the transpose of the [rows, cols] matrix src into dst,
// which is laid out as [cols, rows].
func Transpose2D(dst, src []float64, rows, cols int) {
	if len(src) != rows*cols || len(dst) != len(src) {
		panic(fmt.Sprintf("transpose: buffer lengths dst=%d src=%d do not fit [%d,%d]", len(dst), len(src), rows, cols))
	}

	for i := 0; i < rows; i++ {
		row := src[i*cols : (i+1)*cols]
		for j, v := range row {
			dst[j*rows+i] = v
		}
	}
}

// MatMulRows computes output rows [lo, hi) of C = A @ B, where A is [m, k]
// and bT is B already transposed to [n, k]. C is [m, n].
//
// C[i,j] = sum_k A[i,k] * bT[j,k], accumulated in increasing k. Keeping the
// order fixed makes results reproducible bit for bit regardless of how rows
// are split between workers.
func MatMulRows(c, a, bT []float64, k, n, lo, hi int) {
	if lo < 0 || hi < lo || hi*n > len(c) || hi*k > len(a) || n*k > len(bT) {
		panic(fmt.Sprintf("matmul: rows [%d,%d) out of range for k=%d n=%d (len c=%d a=%d bT=%d)",
			lo, hi, k, n, len(c), len(a), len(bT)))
	}

	for i := lo; i < hi; i++ {
		aRow := a[i*k : (i+1)*k]
		cRow := c[i*n : (i+1)*n]
		for j := range cRow {
			bRow := bT[j*k : (j+1)*k]
			sum := float64(0)
			for kIdx, av := range aRow {
				sum += av * bRow[kIdx]
			}
			cRow[j] = sum
		}
	}
}
