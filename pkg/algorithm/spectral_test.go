package algorithm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"graphpart/pkg/algorithm"
)

func TwoTriangles() [][]float64 {
	rows := make([][]float64, 6)
	for i := range rows {
		rows[i] = make([]float64, 6)
	}
	triangle := func(a, b, c int) {
		rows[a][b], rows[b][a] = 1, 1
		rows[b][c], rows[c][b] = 1, 1
		rows[a][c], rows[c][a] = 1, 1
	}
	triangle(0, 1, 2)
	triangle(3, 4, 5)
	return rows
}

func TestSpectralTwoDisconnectedTrianglesFindsZeroCut(t *testing.T) {
	adj := adjFromRows(t, TwoTriangles())
	sp := algorithm.NewSpectral()
	p, err := sp.Partition(algorithm.Input{Adjacency: adj, K: 2})
	require.NoError(t, err)
	require.NoError(t, p.Validate(6, false))
	require.Equal(t, 0, cutEdges(p, 6, adj))
}

func TestSpectralTwoDisconnectedTrianglesReturnsComponentsExactly(t *testing.T) {
	adj := adjFromRows(t, TwoTriangles())
	sp := algorithm.NewSpectral()
	p, err := sp.Partition(algorithm.Input{Adjacency: adj, K: 2})
	require.NoError(t, err)

	sorted := p.Sorted()
	groups := [][]int{sorted.Groups[0], sorted.Groups[1]}
	require.ElementsMatch(t, [][]int{{0, 1, 2}, {3, 4, 5}}, groups)
}

func TestSpectralRejectsKOtherThanTwo(t *testing.T) {
	adj := adjFromRows(t, cycle4())
	sp := algorithm.NewSpectral()
	_, err := sp.Partition(algorithm.Input{Adjacency: adj, K: 3})
	require.Error(t, err)
}

func TestSpectralFourCycleBisectsIntoTwoEqualHalves(t *testing.T) {
	adj := adjFromRows(t, cycle4())
	sp := algorithm.NewSpectral()
	p, err := sp.Partition(algorithm.Input{Adjacency: adj, K: 2})
	require.NoError(t, err)
	require.NoError(t, p.Validate(4, false))
	require.Equal(t, 2, p.Size(0))
	require.Equal(t, 2, p.Size(1))
}
