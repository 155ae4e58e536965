// Package core defines the shared data model for the simplicial package:
// Simplex, SimplicialComplex, FilteredSimplex, Filtration, the Extended[T]
// sum type used by barcodes, and the invariant-checking helpers every other
// package relies on before it starts computing.
//
// Ownership: a SimplicialComplex owns its Simplex values; a Filtration owns
// its FilteredSimplex values. Face references are index-valued back-pointers
// into a sibling layer array, never pointers - this is what makes the
// renumbering step in package filtration cheap and avoids lifetime tangles.
//
// Nothing in this package mutates shared state across goroutines; every type
// here is a plain value or a slice of plain values with no internal locking,
// since the library as a whole is a pure computation with no concurrent
// mutation of a single complex/filtration (see package-level docs in linalg
// and homology for where parallelism actually happens).
package core
