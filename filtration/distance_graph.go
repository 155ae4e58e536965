// File: distance_graph.go
// Role: the precomputed N x N distance graph BuildCached trades memory for,
// same flat row-major []float64 idiom as package complex's distance_graph.go.
package filtration

type distanceGraph struct {
	n    int
	data []float64 // n*n, row-major, symmetric
}

func buildDistanceGraph[T any](points []T, metric func(a, b T) float64) *distanceGraph {
	n := len(points)
	g := &distanceGraph{n: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric(points[i], points[j])
			g.data[i*n+j] = d
			g.data[j*n+i] = d
		}
	}

	return g
}

func (g *distanceGraph) at(i, j int) float64 {
	return g.data[i*g.n+j]
}
