// File: simplicial.go
// Role: the eight consumer-facing operations of the library, exposed as free
// functions over the subpackages' own types.
package simplicial

import (
	"math/big"

	"github.com/katalvlaran/simplicial/boundary"
	"github.com/katalvlaran/simplicial/complex"
	"github.com/katalvlaran/simplicial/core"
	"github.com/katalvlaran/simplicial/filtration"
	"github.com/katalvlaran/simplicial/homology"
	"github.com/katalvlaran/simplicial/linalg"
	"github.com/katalvlaran/simplicial/persistence"
)

// VRComplex builds the Vietoris-Rips complex of points at the given scale.
// CacheDistances(true) selects the "fast" precomputed-graph
// path; the default is "light" (recompute the metric on demand).
func VRComplex[T any](scale float64, metric complex.Metric[T], points []T, opts ...Option) (*core.SimplicialComplex, error) {
	o := newOptions(opts...)
	if o.cacheDistances {
		return complex.BuildCached(scale, metric, points, o.complexOpts()...)
	}

	return complex.Build(scale, metric, points, o.complexOpts()...)
}

// BoundaryOperatorsInt returns ∂1..∂dim of sc over ℤ.
func BoundaryOperatorsInt(sc *core.SimplicialComplex) ([]*linalg.IntMatrix, error) {
	return boundary.IntBoundaries(sc)
}

// BoundaryOperatorsBool returns ∂1..∂dim of sc over 𝔽2.
func BoundaryOperatorsBool(sc *core.SimplicialComplex) ([]*linalg.GF2Matrix, error) {
	return boundary.GF2Boundaries(sc)
}

// HomologyInt computes H_0(sc; ℤ)..H_dim(sc; ℤ) via Smith Normal Form,
// one cyclic-order diagonal per dimension.
func HomologyInt(sc *core.SimplicialComplex, opts ...Option) ([][]*big.Int, error) {
	o := newOptions(opts...)

	return homology.IntegerHomology(sc, o.homologyOpts()...)
}

// HomologyBool computes the 𝔽2 Betti numbers β_0..β_dim of sc.
func HomologyBool(sc *core.SimplicialComplex, opts ...Option) ([]int, error) {
	o := newOptions(opts...)

	return homology.BettiNumbers(sc, o.homologyOpts()...)
}

// VRFiltration builds the filtration of points over the descending scale
// list. scales must be strictly descending;
// filtration.ValidateScales rejects any other order before any complex
// construction begins.
func VRFiltration[T any](scales []float64, metric complex.Metric[T], points []T, opts ...Option) (*core.Filtration, error) {
	o := newOptions(opts...)
	if o.cacheDistances {
		return filtration.BuildCached(scales, metric, points, o.filtrationOpts()...)
	}

	return filtration.Build(scales, metric, points, o.filtrationOpts()...)
}

// IndexBarcodes computes the per-dimension finite and infinite barcodes of
// f, indexed by filtration index.
func IndexBarcodes(f *core.Filtration) ([][]core.Barcode[int], error) {
	return persistence.Barcodes(f)
}

// ScaleBarcodes computes the same barcodes as IndexBarcodes, remapped from
// filtration indices back to the scales that produced f.
func ScaleBarcodes(scales []float64, f *core.Filtration) ([][]core.Barcode[float64], error) {
	return persistence.ScaleBarcodes(scales, f)
}
