// File: gf2_boundary.go
// Role: the 𝔽2 boundary operators, used by homology.BettiNumbers:
// over GF(2) every sign is +1, so a column is simply the indicator
// vector of the simplex's Faces.
package boundary

import (
	"github.com/katalvlaran/simplicial/core"
	"github.com/katalvlaran/simplicial/linalg"
)

// GF2Boundaries returns ∂1..∂dim over 𝔽2, out[k-1] = ∂k, with the same
// always-present-∂1 and N==0 conventions as IntBoundaries.
func GF2Boundaries(sc *core.SimplicialComplex) ([]*linalg.GF2Matrix, error) {
	if sc == nil {
		return nil, ErrNilComplex
	}
	if sc.N == 0 {
		return nil, nil
	}

	numBoundaries := sc.Dim()
	if numBoundaries < 1 {
		numBoundaries = 1
	}
	out := make([]*linalg.GF2Matrix, numBoundaries)

	var edges []core.Simplex
	if len(sc.Layers) > 0 {
		edges = sc.Layers[0]
	}
	d1, err := linalg.NewGF2Matrix(sc.N, len(edges))
	if err != nil {
		return nil, err
	}
	for ei, e := range edges {
		if err := d1.Set(e.Verts[0], ei, 1); err != nil {
			return nil, err
		}
		if err := d1.Set(e.Verts[1], ei, 1); err != nil {
			return nil, err
		}
	}
	out[0] = d1

	for k := 2; k <= sc.Dim(); k++ {
		rows := len(sc.Layers[k-2])
		cols := len(sc.Layers[k-1])
		dk, err := linalg.NewGF2Matrix(rows, cols)
		if err != nil {
			return nil, err
		}
		for ci, s := range sc.Layers[k-1] {
			for _, faceIdx := range s.Faces {
				if err := dk.Set(faceIdx, ci, 1); err != nil {
					return nil, err
				}
			}
		}
		out[k-1] = dk
	}

	return out, nil
}
