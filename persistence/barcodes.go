// File: barcodes.go
// Role: the standard persistence algorithm: dimension-by-
// dimension incremental column reduction over 𝔽2, producing finite and
// infinite barcodes per dimension.
package persistence

import (
	"fmt"

	"github.com/katalvlaran/simplicial/core"
)

// Barcodes computes the per-dimension finite and infinite barcodes of f,
// indexed by filtration index. result[k] holds the barcodes
// born/dying among dimension-k simplices. A filtration with N == 0 returns
// (nil, nil), matching the empty-point-set "not an error" convention.
func Barcodes(f *core.Filtration, opts ...Option) ([][]core.Barcode[int], error) {
	if f == nil {
		return nil, ErrNilFiltration
	}
	if err := core.ValidateFiltration(f); err != nil {
		return nil, fmt.Errorf("Barcodes: %w: %w", ErrFiltrationInvariant, err)
	}
	if f.N == 0 {
		return nil, nil
	}
	cfg := newConfig(opts...)

	maxDim := topDimension(f)
	result := make([][]core.Barcode[int], maxDim+1)

	// Dimension 0: every vertex starts marked; vertices have no boundary,
	// so no bars are emitted yet -
	// they are either closed off while processing edges, or, if maxDim == 0
	// (no edges at all), contribute infinite bars directly via the final
	// sweep below.
	prevIdx := vertexIndices(f)
	markedPrev := make([]bool, f.N)
	for i := range markedPrev {
		markedPrev[i] = true
	}
	slotsPrev := make([]Chain, f.N)
	occupiedPrev := make([]bool, f.N)

	for d := 1; d <= maxDim; d++ {
		layer := layerAtDim(f, d)
		curIdx := make([]int, len(layer))
		for i, s := range layer {
			curIdx[i] = s.Idx
		}

		marked, slots, occupied, bars := reduceDimension(d, layer, markedPrev, slotsPrev, occupiedPrev, prevIdx)
		bars = append(bars, infiniteBars(prevIdx, markedPrev, occupiedPrev)...)
		result[d-1] = bars
		cfg.logger.Debug().Int("dim", d-1).Int("simplices", len(markedPrev)).Int("bars", len(bars)).Msg("persistence dimension reduced")

		markedPrev, slotsPrev, occupiedPrev, prevIdx = marked, slots, occupied, curIdx
	}

	result[maxDim] = infiniteBars(prevIdx, markedPrev, occupiedPrev)
	cfg.logger.Debug().Int("dim", maxDim).Int("simplices", len(markedPrev)).Int("bars", len(result[maxDim])).Msg("persistence top dimension")

	return result, nil
}

// ScaleBarcodes remaps Barcodes' output from filtration indices to the
// scales that produced them: index i maps to
// scales[len(scales)-1-i], reversed because the filtration indexes low to
// high while scales were supplied high to low.
func ScaleBarcodes(scales []float64, f *core.Filtration, opts ...Option) ([][]core.Barcode[float64], error) {
	idxBars, err := Barcodes(f, opts...)
	if err != nil {
		return nil, err
	}
	if idxBars == nil {
		return nil, nil
	}
	if len(scales) == 0 {
		return nil, ErrEmptyScales
	}

	remap := func(i int) (float64, error) {
		j := len(scales) - 1 - i
		if j < 0 || j >= len(scales) {
			return 0, fmt.Errorf("ScaleBarcodes: index %d out of range for %d scales: %w", i, len(scales), ErrEmptyScales)
		}

		return scales[j], nil
	}

	result := make([][]core.Barcode[float64], len(idxBars))
	for d, bars := range idxBars {
		out := make([]core.Barcode[float64], len(bars))
		for i, b := range bars {
			birth, err := remap(b.Birth)
			if err != nil {
				return nil, err
			}
			death := core.InfiniteValue[float64]()
			if !b.Death.IsInfinite() {
				dv, err := remap(b.Death.Value)
				if err != nil {
					return nil, err
				}
				death = core.FiniteValue(dv)
			}
			out[i] = core.Barcode[float64]{Birth: birth, Death: death}
		}
		result[d] = out
	}

	return result, nil
}

// reduceDimension runs the incremental reduction over one dimension's
// layer of simplices: each simplex's boundary chain (its face indices
// restricted to those marked at dimension k-1) is reduced against
// slotsPrev, the slots populated for dimension k-1 as of entry. A chain
// that reduces to zero marks its simplex; otherwise the reduced chain is
// stored at its pivot's slot and a finite bar (prevIdx[pivot], curIdx[i])
// is emitted, dropped if birth == death (the null-feature filter).
//
// This loop is strictly sequential and must never be parallelized: the
// reduction of simplex i may depend on a slot written by the
// reduction of simplex i-1 earlier in this same loop, so splitting the
// range across goroutines would race on slotsPrev and change which
// reductions are visible to which simplex, breaking determinism.
func reduceDimension(dim int, layer []core.FilteredSimplex, markedPrev []bool, slotsPrev []Chain, occupiedPrev []bool, prevIdx []int) (marked []bool, slots []Chain, occupied []bool, bars []core.Barcode[int]) {
	marked = make([]bool, len(layer))
	slots = make([]Chain, len(layer))
	occupied = make([]bool, len(layer))

	for i, s := range layer {
		chain := NewChain(len(markedPrev))
		for _, faceIdx := range boundaryRefs(dim, s) {
			if markedPrev[faceIdx] {
				chain.Set(faceIdx)
			}
		}

		for !chain.IsZero() {
			p, _ := chain.Pivot()
			if !occupiedPrev[p] {
				break
			}
			chain = chain.XOR(slotsPrev[p])
		}

		if chain.IsZero() {
			marked[i] = true
			continue
		}

		p, _ := chain.Pivot()
		slotsPrev[p] = chain
		occupiedPrev[p] = true

		birth, death := prevIdx[p], s.Idx
		if birth != death {
			bars = append(bars, core.Barcode[int]{Birth: birth, Death: core.FiniteValue(death)})
		}
	}

	return marked, slots, occupied, bars
}

// boundaryRefs returns the indices into the dimension-(dim-1) layer that
// name simplex s's boundary: for edges (dim == 1), faces are never
// materialized as a layer of their own, so the boundary is s's
// two vertex endpoints directly; for dim >= 2 it is s.Faces, the
// back-pointers the complex/filtration builders already populated.
func boundaryRefs(dim int, s core.FilteredSimplex) []int {
	if dim == 1 {
		return s.Verts
	}

	return s.Faces
}

// infiniteBars emits one infinite bar per simplex that is marked but whose
// slot was never claimed as a pivot.
func infiniteBars(idx []int, marked []bool, occupied []bool) []core.Barcode[int] {
	var bars []core.Barcode[int]
	for i, m := range marked {
		if m && !occupied[i] {
			bars = append(bars, core.Barcode[int]{Birth: idx[i], Death: core.InfiniteValue[int]()})
		}
	}

	return bars
}

// topDimension returns the highest simplex dimension present in f, derived
// from the layer count and f.EdgeLayer() rather than f.Dim() so the
// computation stays correct for both the Simple and General shapes
// regardless of how many layers are actually populated.
func topDimension(f *core.Filtration) int {
	return len(f.Layers) - f.EdgeLayer()
}

// layerAtDim returns the layer of dimension-d simplices (d >= 1) for
// either filtration shape.
func layerAtDim(f *core.Filtration, d int) []core.FilteredSimplex {
	return f.Layers[f.EdgeLayer()+d-1]
}

// vertexIndices returns the filtration index of every vertex: f.Layers[0]'s
// own Idx values in the General shape, or all zeros in the Simple shape
// (vertices are implicitly present from the start).
func vertexIndices(f *core.Filtration) []int {
	idx := make([]int, f.N)
	if f.General {
		for i, s := range f.Layers[0] {
			idx[i] = s.Idx
		}
	}

	return idx
}
