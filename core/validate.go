// File: validate.go
// Role: invariant checking for SimplicialComplex and Filtration.
// Determinism: pure functions; no mutation of the argument.
// Concurrency: none needed; callers run validation once, up front, before any
// parallel work is dispatched (see linalg/parallel.go, homology package docs).
package core

import "fmt"

// ValidateComplex checks the structural invariants of a
// SimplicialComplex: every vertex index is < N, every face index is a valid
// position in the previous layer, the complex is closed under taking faces,
// and each layer contains no duplicate simplex (by vertex set).
//
// Complexity: O(total simplex count * dimension^2) for the closure check.
func ValidateComplex(sc *SimplicialComplex) error {
	if sc == nil {
		return fmt.Errorf("ValidateComplex: %w", ErrEmptyVertices)
	}

	for k, layer := range sc.Layers {
		seen := make(map[string]struct{}, len(layer))
		for idx, s := range layer {
			if len(s.Verts) == 0 {
				return fmt.Errorf("ValidateComplex: layer %d simplex %d: %w", k, idx, ErrEmptyVertices)
			}
			if !sortedAscending(s.Verts) {
				return fmt.Errorf("ValidateComplex: layer %d simplex %d: %w", k, idx, ErrUnsortedVerts)
			}
			for _, v := range s.Verts {
				if v < 0 || v >= sc.N {
					return fmt.Errorf("ValidateComplex: layer %d simplex %d vertex %d: %w", k, idx, v, ErrVertexIndexOutOfRange)
				}
			}
			key := vertKey(s.Verts)
			if _, dup := seen[key]; dup {
				return fmt.Errorf("ValidateComplex: layer %d: %w", k, ErrDuplicateSimplex)
			}
			seen[key] = struct{}{}

			// Faces must be valid positions in layer k-1, and every proper
			// face of dimension >= 1 must indeed be present there (closure).
			if k == 0 {
				continue // edges: faces are the endpoints, not materialized
			}
			prevLayer := sc.Layers[k-1]
			if len(s.Faces) != len(s.Verts) {
				return fmt.Errorf("ValidateComplex: layer %d simplex %d: %w", k, idx, ErrNotClosed)
			}
			used := make(map[int]bool, len(s.Faces))
			for _, f := range s.Faces {
				if f < 0 || f >= len(prevLayer) {
					return fmt.Errorf("ValidateComplex: layer %d simplex %d face %d: %w", k, idx, f, ErrFaceIndexOutOfRange)
				}
				// Each face must be s.Verts minus exactly one vertex, named once.
				fv, matched := prevLayer[f].Verts, 0
				for _, v := range s.Verts {
					if matched < len(fv) && fv[matched] == v {
						matched++
					}
				}
				if len(fv) != len(s.Verts)-1 || matched != len(fv) || used[f] {
					return fmt.Errorf("ValidateComplex: layer %d simplex %d face %d: %w", k, idx, f, ErrNotClosed)
				}
				used[f] = true
			}
		}
	}

	return nil
}

// ValidateFiltration checks the ordering invariants required of
// a Filtration before it is handed to package persistence: each layer sorted
// ascending by Idx, and each simplex's Faces slice resolving to valid
// positions in the previous layer.
func ValidateFiltration(f *Filtration) error {
	if f == nil {
		return fmt.Errorf("ValidateFiltration: %w", ErrEmptyVertices)
	}

	for k, layer := range f.Layers {
		lastIdx := -1
		for i, s := range layer {
			if s.Idx < lastIdx {
				return fmt.Errorf("ValidateFiltration: layer %d position %d: %w", k, i, ErrFiltrationNotSorted)
			}
			lastIdx = s.Idx

			if k == 0 && f.General {
				continue // vertex layer: no faces
			}
			if !f.General && k == 0 {
				continue // Simple shape: layer 0 is edges, faces = endpoints
			}
			prevLayer := f.Layers[k-1]
			for _, fa := range s.Faces {
				if fa < 0 || fa >= len(prevLayer) {
					return fmt.Errorf("ValidateFiltration: layer %d position %d face %d: %w", k, i, fa, ErrFaceIndexOutOfRange)
				}
			}
		}
	}

	return nil
}

// sortedAscending reports whether xs is sorted in strictly ascending order.
func sortedAscending(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}

	return true
}

// vertKey builds a map key uniquely identifying an ascending-sorted vertex
// set, used to detect duplicate simplices within a layer.
func vertKey(verts []int) string {
	// Verts are already required ascending by construction; a simple
	// separator-joined key is enough to distinguish vertex sets and avoids
	// pulling in strconv/strings for a hot validation path.
	buf := make([]byte, 0, len(verts)*5)
	for _, v := range verts {
		buf = appendInt(buf, v)
		buf = append(buf, ',')
	}

	return string(buf)
}

// appendInt appends the decimal representation of v to buf without
// allocating through fmt/strconv.
func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	if neg {
		buf = append(buf, '-')
	}
	// reverse the appended digits
	end := len(buf) - 1
	for i, j := start, end; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}
