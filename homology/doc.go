// Package homology computes simplicial homology of a core.SimplicialComplex,
// both over ℤ via Smith Normal Form (IntegerHomology) and the
// cheaper 𝔽2 Betti-number shortcut (BettiNumbers) that only needs
// ranks, not full SNF, when torsion isn't of interest.
//
// IntegerHomology's per-dimension work (one SNF call per homological
// degree) and BettiNumbers' per-dimension rank calls are each independent
// across dimensions and may be dispatched through linalg.SNFAllParallel /
// linalg.RankAllParallel via WithParallel(true): one goroutine per
// dimension, joined with a WaitGroup, writing into a disjoint output slice
// index, with output identical to the default serial loop.
package homology
