package linalg_test

import (
	"testing"

	"github.com/katalvlaran/simplicial/linalg"
	"github.com/stretchr/testify/require"
)

func TestImageInKernel_DimensionMismatch(t *testing.T) {
	a, err := linalg.NewIntMatrix(2, 3)
	require.NoError(t, err)
	b, err := linalg.NewIntMatrix(4, 1) // b.Rows() != a.Cols()
	require.NoError(t, err)

	_, err = linalg.ImageInKernel(a, b)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestImageInKernel_NilMatrix(t *testing.T) {
	a, err := linalg.NewIntMatrix(2, 2)
	require.NoError(t, err)

	_, err = linalg.ImageInKernel(a, nil)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)
}

// TestImageInKernel_TriangleBoundary exercises the single-triangle complex:
// A = d1 (vertices x edges), B = d2 (edges x one 2-simplex). ker(A) has rank
// 1 (the triangle's edge-cycle), and B's single column already lies in that
// kernel, so the result must be a 1x1 matrix holding a nonzero entry.
func TestImageInKernel_TriangleBoundary(t *testing.T) {
	a, err := linalg.NewIntMatrix(3, 3) // vertices x edges: e0=(0,1) e1=(0,2) e2=(1,2)
	require.NoError(t, err)
	arows := [][]int64{
		{-1, -1, 0},
		{1, 0, -1},
		{0, 1, 1},
	}
	for i, row := range arows {
		for j, v := range row {
			require.NoError(t, a.SetInt64(i, j, v))
		}
	}

	b, err := linalg.NewIntMatrix(3, 1) // edges x the one 2-simplex {0,1,2}
	require.NoError(t, err)
	require.NoError(t, b.SetInt64(0, 0, 1))  // e0
	require.NoError(t, b.SetInt64(1, 0, -1)) // e1
	require.NoError(t, b.SetInt64(2, 0, 1))  // e2

	out, err := linalg.ImageInKernel(a, b)
	require.NoError(t, err)
	require.Equal(t, 1, out.Rows())
	require.Equal(t, 1, out.Cols())

	v, err := out.At(0, 0)
	require.NoError(t, err)
	require.NotZero(t, v.Sign())
}
