package filtration_test

import (
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/simplicial/filtration"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip_FacesResolveToVertexSubsets verifies that the sort-and-
// renumber pass preserves the meaning of every Faces back-pointer: after
// each layer is reordered by Idx and face indices are rewritten, the faces
// a simplex points at must still be exactly the codimension-1 vertex
// subsets of that simplex.
func TestRoundTrip_FacesResolveToVertexSubsets(t *testing.T) {
	f, err := filtration.Build([]float64{3.0, 1.2, 0.6, 0.1}, planarMetric, circlePoints(12))
	require.NoError(t, err)

	for k := 1; k < len(f.Layers); k++ {
		prev := f.Layers[k-1]
		for i, s := range f.Layers[k] {
			require.Len(t, s.Faces, len(s.Verts),
				"layer %d simplex %d: one face per omitted vertex", k, i)

			got := make([]string, 0, len(s.Faces))
			for _, faceIdx := range s.Faces {
				got = append(got, vertKeyOf(prev[faceIdx].Verts))
			}
			sort.Strings(got)

			want := make([]string, 0, len(s.Verts))
			for omit := range s.Verts {
				sub := make([]int, 0, len(s.Verts)-1)
				for j, v := range s.Verts {
					if j != omit {
						sub = append(sub, v)
					}
				}
				want = append(want, vertKeyOf(sub))
			}
			sort.Strings(want)

			require.Equal(t, want, got, "layer %d simplex %d", k, i)
		}
	}
}

// TestRoundTrip_LightFastFacesAgree pins the renumbering to be identical
// across the light and cached construction paths, not just structurally
// equivalent: the same input must yield the same positions everywhere.
func TestRoundTrip_LightFastFacesAgree(t *testing.T) {
	scales := []float64{3.0, 1.2, 0.6, 0.1}
	pts := circlePoints(10)

	light, err := filtration.Build(scales, planarMetric, pts)
	require.NoError(t, err)
	fast, err := filtration.BuildCached(scales, planarMetric, pts)
	require.NoError(t, err)

	require.Equal(t, light.Layers, fast.Layers)
}

func vertKeyOf(verts []int) string {
	var b strings.Builder
	for _, v := range verts {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}

	return b.String()
}
