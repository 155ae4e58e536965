// Package boundary computes the boundary operators ∂1..∂dim of a
// core.SimplicialComplex, over both ℤ (package linalg's IntMatrix) and 𝔽2
// (GF2Matrix).
//
// Sign convention (ℤ only): ∂1 assigns -1 to an edge's lower-index endpoint
// and +1 to its higher-index endpoint. For k >= 2, the column for simplex σ
// assigns sign (-1)^i to the face obtained by deleting the i-th vertex of
// σ.Verts (0-indexed, ascending canonical order) - the canonical convention,
// chosen because it is the one under which ∂∘∂ = 0 holds unconditionally.
package boundary
