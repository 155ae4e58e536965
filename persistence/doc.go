// Package persistence implements the standard persistence algorithm:
// incremental column reduction of a core.Filtration over 𝔽2,
// producing per-dimension finite and infinite barcodes.
//
// The chain representation (Chain) is bit-packed: a symmetric difference
// (XOR) of two boundary chains and finding the pivot (lowest set simplex
// index) are both word-granularity operations, not per-bit loops. The
// reduction itself (Barcodes) is strictly sequential within a dimension -
// each simplex's reduced chain depends on slots a strictly earlier simplex
// in filtration order may have populated, so the per-simplex loop is never
// parallelized (see reduceDimension's doc comment). Independent dimensions
// could in principle run concurrently, but
// slots[k] at dimension k+1 feeds directly from marked[k] computed in the
// same pass, so dimensions are processed in a single top-to-bottom sweep
// rather than fanned out.
package persistence
