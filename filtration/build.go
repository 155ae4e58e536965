// File: build.go
// Role: the filtration construction pipeline: build
// the Vietoris-Rips complex at scales[0], assign every simplex its entry
// index from the descending scale list, then stable-sort each layer
// ascending by Idx and renumber Faces back-pointers to match.
package filtration

import (
	"sort"

	"github.com/katalvlaran/simplicial/complex"
	"github.com/katalvlaran/simplicial/core"
)

// ValidateScales rejects a scale list that is not strictly descending. An
// empty list is not an error: Build/BuildCached treat it as yielding an
// empty filtration with no barcodes downstream.
func ValidateScales(scales []float64) error {
	for i := 1; i < len(scales); i++ {
		if scales[i] >= scales[i-1] {
			return core.ErrScalesNotDescending
		}
	}

	return nil
}

// Build constructs the filtration of points over the descending scale list,
// recomputing metric(a, b) on demand for every compared pair ("light").
func Build[T any](scales []float64, metric complex.Metric[T], points []T, opts ...Option) (*core.Filtration, error) {
	cfg := newConfig(opts...)
	if err := ValidateScales(scales); err != nil {
		return nil, err
	}
	n := len(points)
	if n == 0 {
		return &core.Filtration{N: 0}, nil
	}
	if len(scales) == 0 {
		return &core.Filtration{N: n}, nil
	}

	sc, err := complex.Build(scales[0], metric, points)
	if err != nil {
		return nil, err
	}
	dist := func(i, j int) float64 { return metric(points[i], points[j]) }

	return buildFiltrationFromComplex(sc, scales, dist, cfg)
}

// BuildCached constructs the same filtration as Build, but precomputes the
// full pairwise-distance graph once up front ("fast").
func BuildCached[T any](scales []float64, metric complex.Metric[T], points []T, opts ...Option) (*core.Filtration, error) {
	cfg := newConfig(opts...)
	if err := ValidateScales(scales); err != nil {
		return nil, err
	}
	n := len(points)
	if n == 0 {
		return &core.Filtration{N: 0}, nil
	}
	if len(scales) == 0 {
		return &core.Filtration{N: n}, nil
	}

	graph := buildDistanceGraph(points, metric)
	sc, err := complex.BuildCached(scales[0], metric, points)
	if err != nil {
		return nil, err
	}

	return buildFiltrationFromComplex(sc, scales, graph.at, cfg)
}

// assignIdx counts how many of scales[1:] the simplex's longest internal
// edge still reaches or exceeds, scanning from the smallest scale (the
// easiest to exceed) toward scales[1] and stopping at the first threshold
// it no longer clears. That scan is a sound shortcut, not just an
// optimization: the scale list is strictly descending, so once maxEdge
// fails to clear scales[t] it necessarily fails every scales[t'] for t' < t
// too (those are even larger). The resulting count is monotonically
// non-decreasing in maxEdge, which is what keeps a simplex's Idx >= every
// one of its faces' Idx (a face's longest edge is never longer than its
// simplex's).
func assignIdx(maxEdge float64, scales []float64) int {
	count := 0
	for t := len(scales) - 1; t >= 1; t-- {
		if maxEdge >= scales[t] {
			count++
		} else {
			break
		}
	}

	return count
}

// maxPairwiseDistance returns the largest distance among all pairs of verts.
func maxPairwiseDistance(verts []int, dist func(i, j int) float64) float64 {
	max := 0.0
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			if d := dist(verts[i], verts[j]); d > max {
				max = d
			}
		}
	}

	return max
}

func buildFiltrationFromComplex(sc *core.SimplicialComplex, scales []float64, dist func(i, j int) float64, cfg *config) (*core.Filtration, error) {
	numLayers := len(sc.Layers)
	layers := make([][]core.FilteredSimplex, numLayers)
	for k, layer := range sc.Layers {
		fl := make([]core.FilteredSimplex, len(layer))
		for i, s := range layer {
			maxEdge := maxPairwiseDistance(s.Verts, dist)
			fl[i] = core.FilteredSimplex{
				Idx:   assignIdx(maxEdge, scales),
				Verts: append([]int(nil), s.Verts...),
				Faces: append([]int(nil), s.Faces...),
			}
		}
		layers[k] = fl
	}

	oldToNew := make([][]int, numLayers)
	for k, layer := range layers {
		order := make([]int, len(layer))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool { return layer[order[a]].Idx < layer[order[b]].Idx })

		newLayer := make([]core.FilteredSimplex, len(layer))
		mapping := make([]int, len(layer))
		for newPos, orig := range order {
			newLayer[newPos] = layer[orig]
			mapping[orig] = newPos
		}
		layers[k] = newLayer
		oldToNew[k] = mapping
	}

	for k := 1; k < numLayers; k++ {
		prevMap := oldToNew[k-1]
		for i := range layers[k] {
			faces := layers[k][i].Faces
			for fi, old := range faces {
				faces[fi] = prevMap[old]
			}
			sort.Ints(faces)
		}
	}

	f := &core.Filtration{N: sc.N, Layers: layers}
	cfg.logger.Debug().Int("layers", numLayers).Msg("filtration built")
	if err := core.ValidateFiltration(f); err != nil {
		return nil, err
	}

	return f, nil
}
