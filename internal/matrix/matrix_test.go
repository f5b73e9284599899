package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"graphpart/internal/matrix"
)

func TestNewRejectsNonSquare(t *testing.T) {
	_, err := matrix.New([][]float64{{1, 2}, {3}})
	require.Error(t, err)
}

func TestRowSumsAndDiag(t *testing.T) {
	m, err := matrix.New([][]float64{
		{0, 1, 1},
		{1, 0, 0},
		{1, 0, 0},
	})
	require.NoError(t, err)

	sums := m.RowSums()
	require.Equal(t, []float64{2, 1, 1}, sums)

	d := matrix.Diag(sums)
	require.Equal(t, 2.0, d.At(0, 0))
	require.Equal(t, 0.0, d.At(0, 1))
}

func TestLaplacianRowsSumToZero(t *testing.T) {
	m, err := matrix.New([][]float64{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
	})
	require.NoError(t, err)

	lap, err := matrix.Laplacian(m)
	require.NoError(t, err)
	require.True(t, lap.IsSymmetric(1e-9))

	for i := 0; i < lap.N(); i++ {
		require.InDelta(t, 0.0, lap.RowSum(i), 1e-9)
	}
}

func TestEigenSymSmallestEigenvalueIsZero(t *testing.T) {
	m, err := matrix.New([][]float64{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
	})
	require.NoError(t, err)

	lap, err := matrix.Laplacian(m)
	require.NoError(t, err)

	eig, err := matrix.EigenSym(lap)
	require.NoError(t, err)
	require.InDelta(t, 0.0, eig.Values[0], 1e-9)
}

func TestSecondSmallestIndexSkipsDuplicateZeroOnDisconnectedGraph(t *testing.T) {
	// Two disconnected triangles: {0,1,2} and {3,4,5}.
	rows := [][]float64{
		{0, 1, 1, 0, 0, 0},
		{1, 0, 1, 0, 0, 0},
		{1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1},
		{0, 0, 0, 1, 0, 1},
		{0, 0, 0, 1, 1, 0},
	}
	m, err := matrix.New(rows)
	require.NoError(t, err)

	lap, err := matrix.Laplacian(m)
	require.NoError(t, err)

	eig, err := matrix.EigenSym(lap)
	require.NoError(t, err)

	// Two connected components => the second-smallest eigenvalue is also
	// (numerically) zero, and SecondSmallestIndex must skip the
	// duplicate zero and land on the first strictly-positive eigenvalue.
	idx, err := eig.SecondSmallestIndex()
	require.NoError(t, err)
	require.Greater(t, eig.Values[idx], 1e-6)
}

func TestEigenSymRejectsAsymmetric(t *testing.T) {
	m, err := matrix.New([][]float64{
		{0, 1},
		{0, 0},
	})
	require.NoError(t, err)

	_, err = matrix.EigenSym(m)
	require.Error(t, err)
}
