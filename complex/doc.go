// Package complex builds Vietoris-Rips simplicial complexes:
// given a point set, a distance function and a scale, it thresholds the
// pairwise distances into an adjacency predicate, enumerates the resulting
// graph's maximal cliques (delegating to internal/clique), and takes their
// downward closure to produce a core.SimplicialComplex - the Vietoris-Rips
// complex is exactly the clique (flag) complex of the threshold graph, so
// every subset of every maximal clique is itself a simplex that must be
// present.
//
// Build recomputes the metric on demand ("light"); BuildCached precomputes
// the full pairwise-distance graph once and reuses it ("fast"). Both are
// proven to produce structurally identical complexes for the same inputs.
package complex
