package homology_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/simplicial/core"
	"github.com/katalvlaran/simplicial/homology"
	"github.com/stretchr/testify/require"
)

// polygonBoundary returns the n-cycle graph C_n as an edges-only complex
// (no 2-simplices): a single circle, topologically.
func polygonBoundary(n int) *core.SimplicialComplex {
	var edges []core.Simplex
	for i := 0; i < n; i++ {
		a, b := i, (i+1)%n
		if a > b {
			a, b = b, a
		}
		edges = append(edges, core.Simplex{Verts: []int{a, b}})
	}

	return &core.SimplicialComplex{N: n, Layers: [][]core.Simplex{edges}}
}

func twoDisjointTriangleBoundaries() *core.SimplicialComplex {
	a := polygonBoundary(3)
	var edges []core.Simplex
	edges = append(edges, a.Layers[0]...)
	for _, e := range a.Layers[0] {
		edges = append(edges, core.Simplex{Verts: []int{e.Verts[0] + 3, e.Verts[1] + 3}})
	}

	return &core.SimplicialComplex{N: 6, Layers: [][]core.Simplex{edges}}
}

func figureEight() *core.SimplicialComplex {
	edges := []core.Simplex{
		{Verts: []int{0, 1}}, {Verts: []int{1, 2}}, {Verts: []int{0, 2}},
		{Verts: []int{0, 3}}, {Verts: []int{3, 4}}, {Verts: []int{0, 4}},
	}

	return &core.SimplicialComplex{N: 5, Layers: [][]core.Simplex{edges}}
}

// rp2Complex is the classical 6-vertex minimal triangulation of the real
// projective plane: 15 edges (every pair is an edge), 10 triangles, each
// edge shared by exactly two triangles. Known invariants: H_0 = Z, H_1 =
// Z/2, H_2 = 0.
func rp2Complex(t *testing.T) *core.SimplicialComplex {
	t.Helper()
	const n = 6
	var edges []core.Simplex
	edgeIdx := make(map[[2]int]int)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edgeIdx[[2]int{i, j}] = len(edges)
			edges = append(edges, core.Simplex{Verts: []int{i, j}})
		}
	}

	triVerts := [][3]int{
		{0, 1, 4}, {0, 1, 5}, {0, 2, 3}, {0, 2, 5}, {0, 3, 4},
		{1, 2, 3}, {1, 2, 4}, {1, 3, 5}, {2, 4, 5}, {3, 4, 5},
	}
	var triangles []core.Simplex
	for _, tv := range triVerts {
		verts := []int{tv[0], tv[1], tv[2]}
		faces := []int{
			edgeIdx[[2]int{verts[1], verts[2]}],
			edgeIdx[[2]int{verts[0], verts[2]}],
			edgeIdx[[2]int{verts[0], verts[1]}],
		}
		triangles = append(triangles, core.Simplex{Verts: verts, Faces: faces})
	}

	return &core.SimplicialComplex{N: n, Layers: [][]core.Simplex{edges, triangles}}
}

func freeRank(diag []*big.Int) int {
	n := 0
	for _, d := range diag {
		if d.Sign() == 0 {
			n++
		}
	}

	return n
}

func TestScenario_TwoIsolatedPoints(t *testing.T) {
	sc := &core.SimplicialComplex{N: 2}

	h, err := homology.IntegerHomology(sc)
	require.NoError(t, err)
	require.Len(t, h, 1)
	require.Equal(t, 2, freeRank(h[0]))

	betti, err := homology.BettiNumbers(sc)
	require.NoError(t, err)
	require.Equal(t, []int{2}, betti)
}

func TestScenario_TriangleBoundary(t *testing.T) {
	sc := polygonBoundary(3)

	h, err := homology.IntegerHomology(sc)
	require.NoError(t, err)
	require.Len(t, h, 2)
	require.Equal(t, 1, freeRank(h[0]), "one connected component")
	require.Equal(t, 1, freeRank(h[1]), "one 1-cycle")

	betti, err := homology.BettiNumbers(sc)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1}, betti)
}

func TestScenario_CircleSample(t *testing.T) {
	sc := polygonBoundary(7) // a heptagon: same topology as the triangle, more points

	betti, err := homology.BettiNumbers(sc)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1}, betti)
}

func TestScenario_TwoDisconnectedTriangles(t *testing.T) {
	sc := twoDisjointTriangleBoundaries()

	h, err := homology.IntegerHomology(sc)
	require.NoError(t, err)
	require.Equal(t, 2, freeRank(h[0]), "two connected components")
	require.Equal(t, 2, freeRank(h[1]), "two independent 1-cycles")

	betti, err := homology.BettiNumbers(sc)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, betti)
}

func TestScenario_FigureEight(t *testing.T) {
	sc := figureEight()

	h, err := homology.IntegerHomology(sc)
	require.NoError(t, err)
	require.Equal(t, 1, freeRank(h[0]), "one connected component")
	require.Equal(t, 2, freeRank(h[1]), "wedge of two circles has H_1 of rank 2")

	betti, err := homology.BettiNumbers(sc)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, betti)
}

func TestScenario_RP2Torsion(t *testing.T) {
	sc := rp2Complex(t)

	h, err := homology.IntegerHomology(sc)
	require.NoError(t, err)
	require.Len(t, h, 3)

	require.Equal(t, 1, freeRank(h[0]), "H_0 = Z")
	require.Equal(t, 0, freeRank(h[1]), "H_1 of RP^2 is finite (no free part)")
	hasTorsion := false
	for _, d := range h[1] {
		if d.Cmp(big.NewInt(1)) > 0 {
			hasTorsion = true
		}
	}
	require.True(t, hasTorsion, "H_1(RP^2; Z) has a nontrivial torsion factor")
	require.Empty(t, h[2], "H_2 of a non-orientable closed surface is 0 over Z")

	betti, err := homology.BettiNumbers(sc)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1}, betti, "RP^2 has Euler characteristic 1 over F2")
}
