// Package linalg provides the dense matrix kernel behind the homology and
// persistence computations: rectangular matrices over 𝔽₂ and over ℤ, with
// rank, column echelon form, the "image-in-kernel" change of basis, and
// Smith Normal Form. Two concrete types share a flat row-major backing
// layout: GF2Matrix packs one bit per entry into []uint64 words, IntMatrix
// holds one *big.Int per entry so that integer Smith Normal Form cannot
// overflow regardless of input size.
//
// Every exported constructor validates shape before allocating
// (ErrBadShape on negative rows/cols), following a validate-then-compute
// discipline. Operations that combine two matrices (ImageInKernel) check
// dimension compatibility against ErrDimensionMismatch before doing any
// work.
//
// Parallel variants (RankAllParallel, SNFAllParallel) operate on a slice of
// independent matrices, one goroutine per matrix, and produce results
// identical to calling the serial operation in a loop; see
// parallel_test.go.
package linalg
