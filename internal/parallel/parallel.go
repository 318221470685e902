// Package parallel splits index ranges across worker goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 16,
	}
}

// Sequential returns a config that always runs on the caller's goroutine.
func Sequential() Config {
	return Config{}
}

// WithWorkers returns a config using n workers. n <= 1 means sequential.
func WithWorkers(n int) Config {
	if n <= 1 {
		return Sequential()
	}
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = n
	return cfg
}

// ForRange calls f(lo, hi) over disjoint sub-ranges covering [0, n).
// Falls back to a single f(0, n) call if parallelism is disabled or n is too small.
// Each index belongs to exactly one call, so workers writing only inside their
// own range need no synchronization.
func ForRange(n int, f func(lo, hi int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < 2*cfg.MinChunkSize {
		f(0, n)
		return
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(start, end)
	}
	wg.Wait()
}
