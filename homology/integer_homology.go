// File: integer_homology.go
// Role: H_0..H_dim over ℤ via Smith Normal Form.
package homology

import (
	"math/big"

	"github.com/katalvlaran/simplicial/boundary"
	"github.com/katalvlaran/simplicial/core"
	"github.com/katalvlaran/simplicial/linalg"
)

// IntegerHomology computes H_0(sc; ℤ)..H_dim(sc; ℤ). result[k] is
// diag(SNF(...)) for the group-defining matrix at dimension k (length
// equal to that matrix's row count, per linalg.SmithNormalForm's
// convention): the leading rank(...) entries are the non-negative
// invariant factors (torsion, when > 1), and the rest are 0, representing
// the free rank of H_k. A complex with N == 0 returns (nil, nil).
//
// H_0 = coker(∂1). For 0 < k < dim, H_k = coker(image_in_kernel(∂k,
// ∂(k+1))). H_dim has no ∂(dim+1) to quotient by, so it is pure free rank:
// nullity(∂dim) zero entries, no SNF call needed.
func IntegerHomology(sc *core.SimplicialComplex, opts ...Option) ([][]*big.Int, error) {
	if sc == nil {
		return nil, ErrNilComplex
	}
	if sc.N == 0 {
		return nil, nil
	}
	cfg := newConfig(opts...)

	boundaries, err := boundary.IntBoundaries(sc)
	if err != nil {
		return nil, err
	}

	dim := sc.Dim()
	if dim < 0 {
		// Isolated points only: a single group, H_0 = Z^N.
		diag, err := linalg.SmithNormalForm(boundaries[0])
		if err != nil {
			return nil, err
		}

		return [][]*big.Int{diag}, nil
	}

	// matrices[0..dim-1] define H_0..H_{dim-1}; H_dim is handled separately
	// below (pure free rank, no SNF call).
	matrices := make([]*linalg.IntMatrix, dim)
	matrices[0] = boundaries[0]
	for k := 1; k < dim; k++ {
		m, err := linalg.ImageInKernel(boundaries[k-1], boundaries[k])
		if err != nil {
			return nil, err
		}
		matrices[k] = m
	}

	var diags [][]*big.Int
	if cfg.parallel {
		var errs []error
		diags, errs = linalg.SNFAllParallel(matrices, linalg.WithLogger(cfg.logger))
		for _, e := range errs {
			if e != nil {
				return nil, e
			}
		}
	} else {
		diags = make([][]*big.Int, len(matrices))
		for i, m := range matrices {
			d, err := linalg.SmithNormalForm(m)
			if err != nil {
				return nil, err
			}
			diags[i] = d
		}
	}

	result := make([][]*big.Int, dim+1)
	copy(result, diags)

	topBoundary := boundaries[dim-1] // ∂dim
	nullity := topBoundary.Cols() - topBoundary.Rank()
	top := make([]*big.Int, nullity)
	for i := range top {
		top[i] = big.NewInt(0)
	}
	result[dim] = top

	return result, nil
}
