package linalg_test

import (
	"testing"

	"github.com/katalvlaran/simplicial/linalg"
	"github.com/stretchr/testify/require"
)

func TestSmithNormalForm_Identity(t *testing.T) {
	m := identityInt(t, 3)
	diag, err := linalg.SmithNormalForm(m)
	require.NoError(t, err)
	require.Len(t, diag, 3)
	for _, d := range diag {
		require.Equal(t, int64(1), d.Int64())
	}
}

func TestSmithNormalForm_ReturnLengthEqualsRows(t *testing.T) {
	// rows=3, cols=2, rank=2: expect diag length 3, last entry zero.
	m, err := linalg.NewIntMatrix(3, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetInt64(0, 0, 1))
	require.NoError(t, m.SetInt64(1, 1, 1))

	diag, err := linalg.SmithNormalForm(m)
	require.NoError(t, err)
	require.Len(t, diag, 3)
	require.Equal(t, int64(0), diag[2].Int64())
}

func TestSmithNormalForm_Torsion(t *testing.T) {
	// The classic Z/2 torsion example: [[2]].
	m, err := linalg.NewIntMatrix(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.SetInt64(0, 0, 2))

	diag, err := linalg.SmithNormalForm(m)
	require.NoError(t, err)
	require.Len(t, diag, 1)
	require.Equal(t, int64(2), diag[0].Int64())
}

func TestSmithNormalForm_DivisibilityChain(t *testing.T) {
	// diag(4,2) is not in divisibility order as built; it must normalize
	// to (2,4).
	m, err := linalg.NewIntMatrix(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetInt64(0, 0, 4))
	require.NoError(t, m.SetInt64(1, 1, 2))

	diag, err := linalg.SmithNormalForm(m)
	require.NoError(t, err)
	require.Len(t, diag, 2)
	require.Equal(t, int64(2), diag[0].Int64())
	require.Equal(t, int64(4), diag[1].Int64())
	require.Zero(t, diag[1].Int64()%diag[0].Int64())
}

func TestSmithNormalForm_NilMatrix(t *testing.T) {
	_, err := linalg.SmithNormalForm(nil)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)
}
