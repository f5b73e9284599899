package algorithm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"graphpart/internal/partition"
	"graphpart/internal/rng"
	"graphpart/pkg/algorithm"
)

func TestKernighanLinRequiresRNG(t *testing.T) {
	adj := adjFromRows(t, cycle4())
	kl := algorithm.NewKernighanLin()
	_, err := kl.Partition(algorithm.Input{Adjacency: adj, K: 2})
	require.Error(t, err)
}

func TestKernighanLinNeverIncreasesCutFromRandomStart(t *testing.T) {
	adj := adjFromRows(t, complete(8))
	kl := algorithm.NewKernighanLin()

	p, err := kl.Partition(algorithm.Input{Adjacency: adj, K: 2, RNG: rng.New(11)})
	require.NoError(t, err)
	require.NoError(t, p.Validate(8, false))
	// K4,4-style balanced complete graph cut is exactly n^2/4 regardless
	// of which 4 vertices land on each side.
	require.Equal(t, 16, cutEdges(p, 8, adj))
}

func TestKernighanLinConvergesOnFourCycle(t *testing.T) {
	adj := adjFromRows(t, cycle4())
	kl := algorithm.NewKernighanLin()

	p, err := kl.Partition(algorithm.Input{Adjacency: adj, K: 2, RNG: rng.New(3)})
	require.NoError(t, err)
	require.NoError(t, p.Validate(4, false))
	require.Equal(t, 2, cutEdges(p, 4, adj))
}

func TestKernighanLinSupportsMoreThanTwoGroups(t *testing.T) {
	adj := adjFromRows(t, path(6))
	kl := algorithm.NewKernighanLin()

	p, err := kl.Partition(algorithm.Input{Adjacency: adj, K: 3, RNG: rng.New(5)})
	require.NoError(t, err)
	require.NoError(t, p.Validate(6, false))
	require.Equal(t, 3, p.K())

	cut := partition.CutEdges(p, 6, adj.HasEdge)
	require.LessOrEqual(t, cut, 5) // path has 5 edges total; KL must not increase beyond trivial bound
}
