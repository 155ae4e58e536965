// File: build.go
// Role: the Vietoris-Rips construction pipeline:
// threshold graph -> maximal cliques -> downward closure grouped by size ->
// layers built from edges upward, each simplex's Faces back-pointers
// indexing the layer one dimension below, built just before it.
package complex

import (
	"sort"

	"github.com/katalvlaran/simplicial/core"
	"github.com/katalvlaran/simplicial/internal/clique"
)

// Build constructs the Vietoris-Rips complex of points at the given scale,
// recomputing metric(a, b) on demand for every compared pair ("light").
func Build[T any](scale float64, metric Metric[T], points []T, opts ...Option) (*core.SimplicialComplex, error) {
	cfg := newConfig(opts...)
	n := len(points)
	if n == 0 {
		return &core.SimplicialComplex{N: 0}, nil
	}
	adj := func(i, j int) bool { return metric(points[i], points[j]) < scale }

	return buildFromAdjacency(n, adj, cfg)
}

// BuildCached constructs the same complex as Build, but precomputes the
// full pairwise-distance graph once up front ("fast"), trading O(N^2)
// memory for never recomputing metric(a, b) for a pair already seen.
func BuildCached[T any](scale float64, metric Metric[T], points []T, opts ...Option) (*core.SimplicialComplex, error) {
	cfg := newConfig(opts...)
	n := len(points)
	if n == 0 {
		return &core.SimplicialComplex{N: 0}, nil
	}
	dist := buildDistanceGraph(points, metric)
	adj := func(i, j int) bool { return dist.at(i, j) < scale }

	return buildFromAdjacency(n, adj, cfg)
}

func buildFromAdjacency(n int, adj func(i, j int) bool, cfg *config) (*core.SimplicialComplex, error) {
	cliques := clique.MaximalCliques(n, adj)

	bySize := make(map[int]map[string][]int)
	for _, c := range cliques {
		if len(c) < 2 {
			continue // singleton/isolated vertices are not stored as simplices
		}
		downwardClosure(c, bySize)
	}

	maxSize := 0
	for size := range bySize {
		if size > maxSize {
			maxSize = size
		}
	}
	if maxSize == 0 {
		sc := &core.SimplicialComplex{N: n}

		return sc, nil
	}

	layers := make([][]core.Simplex, maxSize-1)
	var prevIndex map[string]int
	for size := 2; size <= maxSize; size++ {
		k := size - 2
		bucket := bySize[size]
		ordered := make([][]int, 0, len(bucket))
		for _, verts := range bucket {
			ordered = append(ordered, verts)
		}
		sort.Slice(ordered, func(i, j int) bool { return lexLess(ordered[i], ordered[j]) })

		layer := make([]core.Simplex, 0, len(ordered))
		index := make(map[string]int, len(ordered))
		for _, verts := range ordered {
			var faces []int
			if size > 2 {
				faces = make([]int, 0, size)
				for omit := range verts {
					face := make([]int, 0, size-1)
					for i, v := range verts {
						if i != omit {
							face = append(face, v)
						}
					}
					faceIdx, ok := prevIndex[vertKey(face)]
					if !ok {
						// The downward closure guarantees every face of a
						// stored simplex is itself stored one layer down.
						panic("complex: face missing from prior layer - downward closure invariant violated")
					}
					faces = append(faces, faceIdx)
				}
			}
			simplex := core.Simplex{Verts: verts, Faces: faces}
			index[vertKey(verts)] = len(layer)
			layer = append(layer, simplex)
		}
		layers[k] = layer
		prevIndex = index
	}

	sc := &core.SimplicialComplex{N: n, Layers: layers}
	cfg.logger.Debug().Int("vertices", n).Int("maxDim", maxSize-2).Msg("vietoris-rips complex built")
	if err := core.ValidateComplex(sc); err != nil {
		return nil, err
	}

	return sc, nil
}

// lexLess reports whether a sorts before b in ascending lexicographic
// (canonical) order.
func lexLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
