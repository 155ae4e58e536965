// File: betti.go
// Role: the 𝔽2 Betti-number shortcut - rank-only, no SNF, no
// torsion information, just β_k = dim(H_k; 𝔽2).
package homology

import (
	"github.com/katalvlaran/simplicial/boundary"
	"github.com/katalvlaran/simplicial/core"
	"github.com/katalvlaran/simplicial/linalg"
)

// BettiNumbers computes β_0..β_dim over 𝔽2: β_k = (#k-simplices) - r_k -
// r_{k+1}, where r_k = rank(∂k) (r_0 = r_{dim+1} = 0 by convention). A
// complex with N == 0 returns (nil, nil); isolated points (no edges at all)
// yield a single β_0 = N.
func BettiNumbers(sc *core.SimplicialComplex, opts ...Option) ([]int, error) {
	if sc == nil {
		return nil, ErrNilComplex
	}
	if sc.N == 0 {
		return nil, nil
	}
	cfg := newConfig(opts...)

	gf2, err := boundary.GF2Boundaries(sc)
	if err != nil {
		return nil, err
	}

	effectiveDim := sc.Dim()
	if effectiveDim < 0 {
		effectiveDim = 0
	}

	// ranks[k-1] = r_k, k = 1..len(gf2). Each dimension's rank is
	// independent of the others, so the parallel dispatch and the serial
	// loop produce identical results.
	var ranks []int
	if cfg.parallel {
		ranks = linalg.RankAllParallel(gf2, linalg.WithLogger(cfg.logger))
	} else {
		ranks = make([]int, len(gf2))
		for i, m := range gf2 {
			ranks[i] = m.Rank()
		}
	}
	rankAt := func(k int) int {
		if k <= 0 || k > len(ranks) {
			return 0
		}

		return ranks[k-1]
	}

	betti := make([]int, effectiveDim+1)
	for k := 0; k <= effectiveDim; k++ {
		betti[k] = sc.NumSimplices(k) - rankAt(k) - rankAt(k+1)
	}

	return betti, nil
}
