package algorithm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"graphpart/pkg/algorithm"
)

func TestInertialRequiresWeightsMatrix(t *testing.T) {
	adj := adjFromRows(t, cycle4())
	in := algorithm.NewInertial()
	_, err := in.Partition(algorithm.Input{Adjacency: adj, K: 2})
	require.Error(t, err)
}

func TestInertialRejectsKOtherThanTwo(t *testing.T) {
	adj := adjFromRows(t, complete(4))
	w := weightsFromRows(t, complete(4), adj)
	in := algorithm.NewInertial()
	_, err := in.Partition(algorithm.Input{Adjacency: adj, Weights: w, K: 3})
	require.Error(t, err)
}

func TestInertialTwoDisconnectedWeightedTrianglesReturnsComponentsExactly(t *testing.T) {
	adj := adjFromRows(t, TwoTriangles())
	w := weightsFromRows(t, TwoTriangles(), adj)

	in := algorithm.NewInertial()
	p, err := in.Partition(algorithm.Input{Adjacency: adj, Weights: w, K: 2})
	require.NoError(t, err)
	require.NoError(t, p.Validate(6, false))
	require.Equal(t, 0, cutEdges(p, 6, adj))

	sorted := p.Sorted()
	groups := [][]int{sorted.Groups[0], sorted.Groups[1]}
	require.ElementsMatch(t, [][]int{{0, 1, 2}, {3, 4, 5}}, groups)
}

func TestInertialWeightedK4ProducesBalancedSplit(t *testing.T) {
	adj := adjFromRows(t, complete(4))
	rows := [][]float64{
		{0, 10, 1, 1},
		{10, 0, 1, 1},
		{1, 1, 0, 10},
		{1, 1, 10, 0},
	}
	w := weightsFromRows(t, rows, adj)

	in := algorithm.NewInertial()
	p, err := in.Partition(algorithm.Input{Adjacency: adj, Weights: w, K: 2})
	require.NoError(t, err)
	require.NoError(t, p.Validate(4, false))
	require.Equal(t, 2, p.Size(0))
	require.Equal(t, 2, p.Size(1))
}
