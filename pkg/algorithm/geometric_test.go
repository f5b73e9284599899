package algorithm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"graphpart/internal/rng"
	"graphpart/pkg/algorithm"
)

func TestGeometricWithFixedSeedIsDeterministic(t *testing.T) {
	adj := adjFromRows(t, complete(6))
	w := weightsFromRows(t, complete(6), adj)
	geo := algorithm.NewGeometric()

	p1, err := geo.Partition(algorithm.Input{Adjacency: adj, Weights: w, K: 3, RNG: rng.New(42)})
	require.NoError(t, err)
	p2, err := geo.Partition(algorithm.Input{Adjacency: adj, Weights: w, K: 3, RNG: rng.New(42)})
	require.NoError(t, err)

	require.Equal(t, p1.Sorted(), p2.Sorted())
}

func TestGeometricProducesBalancedKWayPartition(t *testing.T) {
	adj := adjFromRows(t, complete(8))
	w := weightsFromRows(t, complete(8), adj)
	geo := algorithm.NewGeometric()

	p, err := geo.Partition(algorithm.Input{Adjacency: adj, Weights: w, K: 4, RNG: rng.New(7)})
	require.NoError(t, err)
	require.NoError(t, p.Validate(8, false))
	require.Equal(t, 4, p.K())
}

func TestGeometricRequiresRNGAndWeights(t *testing.T) {
	adj := adjFromRows(t, complete(4))
	w := weightsFromRows(t, complete(4), adj)
	geo := algorithm.NewGeometric()

	_, err := geo.Partition(algorithm.Input{Adjacency: adj, K: 2, RNG: rng.New(1)})
	require.Error(t, err)

	_, err = geo.Partition(algorithm.Input{Adjacency: adj, Weights: w, K: 2})
	require.Error(t, err)
}
