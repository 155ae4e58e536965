package linalg_test

import (
	"testing"

	"github.com/katalvlaran/simplicial/linalg"
	"github.com/stretchr/testify/require"
)

func boundaryLikeMatrix(t *testing.T) *linalg.IntMatrix {
	t.Helper()
	// The boundary of a single triangle {0,1,2}: edges (0,1) (0,2) (1,2),
	// vertices 0,1,2 - a 3x3 matrix with one obviously-dependent column.
	m, err := linalg.NewIntMatrix(3, 3)
	require.NoError(t, err)
	data := [][]int64{
		{-1, -1, 0},
		{1, 0, -1},
		{0, 1, 1},
	}
	for i, row := range data {
		for j, v := range row {
			require.NoError(t, m.SetInt64(i, j, v))
		}
	}

	return m
}

func TestColumnEchelon_TrailingColumnsAllZero(t *testing.T) {
	m := boundaryLikeMatrix(t)
	echelon, ops, err := linalg.ColumnEchelon(m)
	require.NoError(t, err)
	require.NotEmpty(t, ops)

	rank := m.Rank()
	for c := rank; c < echelon.Cols(); c++ {
		for r := 0; r < echelon.Rows(); r++ {
			v, err := echelon.At(r, c)
			require.NoError(t, err)
			require.Zerof(t, v.Sign(), "column %d row %d expected zero, got %v", c, r, v)
		}
	}
}

func TestColumnEchelon_OriginalUntouched(t *testing.T) {
	m := boundaryLikeMatrix(t)
	before := m.Clone()

	_, _, err := linalg.ColumnEchelon(m)
	require.NoError(t, err)

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			a, _ := m.At(i, j)
			b, _ := before.At(i, j)
			require.Equal(t, b, a)
		}
	}
}

func TestColumnEchelon_NilMatrix(t *testing.T) {
	_, _, err := linalg.ColumnEchelon(nil)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)
}

func TestColumnEchelon_IdentityIsAlreadyEchelon(t *testing.T) {
	m := identityInt(t, 3)
	echelon, ops, err := linalg.ColumnEchelon(m)
	require.NoError(t, err)
	require.Empty(t, ops)
	for i := 0; i < 3; i++ {
		v, err := echelon.At(i, i)
		require.NoError(t, err)
		require.Equal(t, int64(1), v.Int64())
	}
}
