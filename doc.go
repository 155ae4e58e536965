// Package simplicial performs topological data analysis on point clouds and
// graphs: given a finite set of points and a distance-like function, it
// builds Vietoris-Rips filtrations, computes persistence barcodes over 𝔽2,
// and computes simplicial homology over ℤ via Smith Normal Form.
//
// The package is a thin root facade: every call here simply validates,
// builds an Option set, and delegates to the appropriate subpackage
// (complex, boundary, homology, filtration, persistence). The real
// engineering - combinatorial clique enumeration, bit-packed sparse linear
// algebra, incremental column reduction, Smith Normal Form - lives in
// those subpackages; this layer exists only so a caller who wants the
// library's eight top-level operations never has to import six packages
// by hand.
package simplicial
