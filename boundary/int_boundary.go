// File: int_boundary.go
// Role: the ℤ boundary operators ∂1..∂dim.
package boundary

import (
	"math/big"

	"github.com/katalvlaran/simplicial/core"
	"github.com/katalvlaran/simplicial/linalg"
)

// IntBoundaries returns ∂1..∂dim for sc, as out[k-1] = ∂k. ∂1 is always
// present when sc.N > 0, even with zero edges (an N x 0 matrix, the zero
// map homology.IntegerHomology needs to read H_0 = Z^N off a cloud of
// isolated points). A complex with N == 0 returns (nil, nil): no boundaries
// can exist without vertices.
func IntBoundaries(sc *core.SimplicialComplex) ([]*linalg.IntMatrix, error) {
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
	out := make([]*linalg.IntMatrix, numBoundaries)

	var edges []core.Simplex
	if len(sc.Layers) > 0 {
		edges = sc.Layers[0]
	}
	d1, err := linalg.NewIntMatrix(sc.N, len(edges))
	if err != nil {
		return nil, err
	}
	for ei, e := range edges {
		if err := d1.SetInt64(e.Verts[0], ei, -1); err != nil {
			return nil, err
		}
		if err := d1.SetInt64(e.Verts[1], ei, 1); err != nil {
			return nil, err
		}
	}
	out[0] = d1

	for k := 2; k <= sc.Dim(); k++ {
		rows := len(sc.Layers[k-2])
		cols := len(sc.Layers[k-1])
		dk, err := linalg.NewIntMatrix(rows, cols)
		if err != nil {
			return nil, err
		}
		for ci, s := range sc.Layers[k-1] {
			for _, faceIdx := range s.Faces {
				cur, err := dk.At(faceIdx, ci)
				if err != nil {
					return nil, err
				}
				// Sign (-1)^i, where i is the position in s.Verts of the vertex
				// this face omits: the first position where the two ascending
				// vertex lists differ, or the last position if none does.
				face := sc.Layers[k-2][faceIdx].Verts
				omit := len(s.Verts) - 1
				for i := 0; i < len(face) && i < len(s.Verts); i++ {
					if face[i] != s.Verts[i] {
						omit = i
						break
					}
				}
				sign := int64(1)
				if omit%2 == 1 {
					sign = -1
				}
				if err := dk.Set(faceIdx, ci, new(big.Int).Add(cur, big.NewInt(sign))); err != nil {
					return nil, err
				}
			}
		}
		out[k-1] = dk
	}

	return out, nil
}
