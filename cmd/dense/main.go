// Package main provides the dense CLI, a matrix multiplication timing demo.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/born-ml/dense/tensor"
)

const version = "v0.1.0-dev"

// maxPrintSide bounds the matrices -print will render.
const maxPrintSide = 16

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("dense %s\n", version)
		return
	}

	n := flag.Int("n", 512, "Side length of the square matrices to multiply")
	workers := flag.Int("workers", 0, "Worker goroutines for matmul (0 or 1 = sequential, -1 = one per CPU)")
	show := flag.Bool("print", false, "Print the product (only when n <= 16)")
	flag.Parse()

	if err := run(*n, parallelConfig(*workers), *show); err != nil {
		log.Fatalf("dense: %v", err)
	}
}

func parallelConfig(workers int) tensor.ParallelConfig {
	if workers < 0 {
		return tensor.DefaultParallelConfig()
	}
	return tensor.ParallelWorkers(workers)
}

// run builds two [n, n] matrices holding 0..n*n-1 and times their product.
func run(n int, cfg tensor.ParallelConfig, show bool) error {
	a, err := squareLinspace(n)
	if err != nil {
		return err
	}
	b, err := squareLinspace(n)
	if err != nil {
		return err
	}

	start := time.Now()
	c, err := tensor.MatMulWith(a, b, cfg)
	if err != nil {
		return fmt.Errorf("matmul: %w", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("matmul %dx%d @ %dx%d: %v\n", n, n, n, n, elapsed)

	if show {
		if n > maxPrintSide {
			fmt.Printf("result has %d elements, not printing (n > %d)\n", c.NumElements(), maxPrintSide)
			return nil
		}
		fmt.Print(c)
	}
	return nil
}

func squareLinspace(n int) (*tensor.Tensor, error) {
	switch {
	case n < 1:
		return nil, fmt.Errorf("-n must be >= 1, got %d", n)
	case n == 1:
		// Linspace needs two points; the 1x1 matrix is just [[0]].
		return tensor.New([]float64{0}, tensor.Shape{1, 1})
	}

	t, err := tensor.Linspace(0, float64(n*n-1), n*n)
	if err != nil {
		return nil, fmt.Errorf("linspace: %w", err)
	}
	if err := t.Reshape(n, n); err != nil {
		return nil, err
	}
	return t, nil
}
