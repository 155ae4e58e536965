// File: parallel.go
// Role: concurrency over independent matrices - one goroutine per
// independent matrix, writing into a disjoint slot of a preallocated output
// slice, joined with a single sync.WaitGroup. No locks are needed because
// no two goroutines ever touch the same slice element; partitioned
// ownership instead of shared state guarded by a mutex.
package linalg

import (
	"math/big"
	"sync"
)

// RankAllParallel computes GF2Matrix.Rank() for every matrix in ms
// concurrently, returning results in the same order as ms. A nil entry in
// ms produces a 0 in the corresponding output slot without spawning a
// goroutine for it.
func RankAllParallel(ms []*GF2Matrix, opts ...Option) []int {
	cfg := newConfig(opts...)
	out := make([]int, len(ms))
	var wg sync.WaitGroup
	for i, m := range ms {
		if m == nil {
			continue
		}
		wg.Add(1)
		go func(i int, m *GF2Matrix) {
			defer wg.Done()
			out[i] = m.Rank()
			cfg.logger.Debug().Int("index", i).Int("rank", out[i]).Msg("gf2 rank computed")
		}(i, m)
	}
	wg.Wait()

	return out
}

// SNFAllParallel computes SmithNormalForm for every matrix in ms
// concurrently, returning diagonals and errors in the same order as ms.
func SNFAllParallel(ms []*IntMatrix, opts ...Option) ([][]*big.Int, []error) {
	cfg := newConfig(opts...)
	diags := make([][]*big.Int, len(ms))
	errs := make([]error, len(ms))
	var wg sync.WaitGroup
	for i, m := range ms {
		if m == nil {
			continue
		}
		wg.Add(1)
		go func(i int, m *IntMatrix) {
			defer wg.Done()
			d, err := SmithNormalForm(m)
			diags[i], errs[i] = d, err
			cfg.logger.Debug().Int("index", i).Err(err).Msg("snf computed")
		}(i, m)
	}
	wg.Wait()

	return diags, errs
}
