package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicial/core"
)

func triangleComplex() *core.SimplicialComplex {
	// 0-1-2 triangle: one 2-simplex, three edges.
	return &core.SimplicialComplex{
		N: 3,
		Layers: [][]core.Simplex{
			{ // layer 0: edges
				{Verts: []int{0, 1}},
				{Verts: []int{0, 2}},
				{Verts: []int{1, 2}},
			},
			{ // layer 1: the filled triangle
				{Verts: []int{0, 1, 2}, Faces: []int{2, 1, 0}},
			},
		},
	}
}

func TestValidateComplex_Valid(t *testing.T) {
	sc := triangleComplex()
	require.NoError(t, core.ValidateComplex(sc))
}

func TestValidateComplex_VertexOutOfRange(t *testing.T) {
	sc := triangleComplex()
	sc.N = 2 // vertex index 2 is now out of range
	err := core.ValidateComplex(sc)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrVertexIndexOutOfRange)
}

func TestValidateComplex_FaceOutOfRange(t *testing.T) {
	sc := triangleComplex()
	sc.Layers[1][0].Faces = []int{2, 1, 5}
	err := core.ValidateComplex(sc)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrFaceIndexOutOfRange)
}

func TestValidateComplex_NotClosed(t *testing.T) {
	sc := triangleComplex()
	sc.Layers[1][0].Faces = nil
	err := core.ValidateComplex(sc)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotClosed)
}

func TestValidateComplex_UnsortedVerts(t *testing.T) {
	sc := triangleComplex()
	sc.Layers[0][0].Verts = []int{1, 0}
	err := core.ValidateComplex(sc)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnsortedVerts)
}

func TestValidateComplex_DuplicateSimplex(t *testing.T) {
	sc := triangleComplex()
	sc.Layers[0] = append(sc.Layers[0], core.Simplex{Verts: []int{0, 1}})
	err := core.ValidateComplex(sc)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDuplicateSimplex)
}

func TestValidateComplex_Empty(t *testing.T) {
	sc := &core.SimplicialComplex{N: 0}
	assert.NoError(t, core.ValidateComplex(sc))
}

func TestValidateFiltration_Valid(t *testing.T) {
	f := &core.Filtration{
		N: 3,
		Layers: [][]core.FilteredSimplex{
			{
				{Idx: 0, Verts: []int{0, 1}},
				{Idx: 0, Verts: []int{1, 2}},
				{Idx: 1, Verts: []int{0, 2}},
			},
		},
	}
	assert.NoError(t, core.ValidateFiltration(f))
}

func TestValidateFiltration_NotSorted(t *testing.T) {
	f := &core.Filtration{
		N: 2,
		Layers: [][]core.FilteredSimplex{
			{
				{Idx: 1, Verts: []int{0, 1}},
				{Idx: 0, Verts: []int{0, 1}},
			},
		},
	}
	err := core.ValidateFiltration(f)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrFiltrationNotSorted)
}

func TestExtended_Ordering(t *testing.T) {
	a := core.FiniteValue(3)
	b := core.FiniteValue(5)
	inf := core.InfiniteValue[int]()

	assert.False(t, a.IsInfinite())
	assert.True(t, inf.IsInfinite())
	assert.Less(t, a.Value, b.Value)
}
