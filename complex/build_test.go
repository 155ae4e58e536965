package complex_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/simplicial/complex"
	"github.com/stretchr/testify/require"
)

type point struct{ x, y float64 }

func euclidean(a, b point) float64 {
	dx, dy := a.x-b.x, a.y-b.y

	return math.Sqrt(dx*dx + dy*dy)
}

// triangleCloud is three mutually-close points and one far outlier, so a
// moderate scale yields exactly one triangle {0,1,2} and vertex 3 isolated.
func triangleCloud() []point {
	return []point{{0, 0}, {1, 0}, {0, 1}, {100, 100}}
}

func TestBuild_EmptyPointSet(t *testing.T) {
	sc, err := complex.Build(1.0, euclidean, nil)
	require.NoError(t, err)
	require.Equal(t, 0, sc.N)
	require.Nil(t, sc.Layers)
}

func TestBuild_TriangleAtModerateScale(t *testing.T) {
	sc, err := complex.Build(2.0, euclidean, triangleCloud())
	require.NoError(t, err)
	require.Equal(t, 4, sc.N)
	require.Equal(t, 2, sc.Dim()) // edges and one 2-dimensional triangle
	require.Equal(t, 3, sc.NumSimplices(1), "three edges among the close trio")
	require.Equal(t, 1, sc.NumSimplices(2), "exactly one triangle")
}

func TestBuild_ZeroScaleYieldsNoSimplices(t *testing.T) {
	sc, err := complex.Build(0.0, euclidean, triangleCloud())
	require.NoError(t, err)
	require.Nil(t, sc.Layers)
}

func TestBuild_CanonicalVertexOrder(t *testing.T) {
	sc, err := complex.Build(2.0, euclidean, triangleCloud())
	require.NoError(t, err)
	for _, layer := range sc.Layers {
		for _, s := range layer {
			for i := 1; i < len(s.Verts); i++ {
				require.Less(t, s.Verts[i-1], s.Verts[i], "Verts must be strictly ascending")
			}
		}
	}
}

func TestLightFastEquivalence(t *testing.T) {
	light, err := complex.Build(2.0, euclidean, triangleCloud())
	require.NoError(t, err)
	fast, err := complex.BuildCached(2.0, euclidean, triangleCloud())
	require.NoError(t, err)

	require.Equal(t, light.N, fast.N)
	require.Equal(t, len(light.Layers), len(fast.Layers))
	for k := range light.Layers {
		require.Equal(t, light.Layers[k], fast.Layers[k])
	}
}

func TestBuild_ClosureUnderFaces(t *testing.T) {
	sc, err := complex.Build(2.0, euclidean, triangleCloud())
	require.NoError(t, err)
	// every simplex above dimension 1 must have non-empty Faces
	for k := 1; k < len(sc.Layers); k++ {
		for _, s := range sc.Layers[k] {
			require.NotEmpty(t, s.Faces)
			for _, fi := range s.Faces {
				require.GreaterOrEqual(t, fi, 0)
				require.Less(t, fi, len(sc.Layers[k-1]))
			}
		}
	}
}
