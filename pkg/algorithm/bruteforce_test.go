package algorithm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"graphpart/internal/graphmodel"
	"graphpart/internal/partition"
	"graphpart/pkg/algorithm"
)

func adjFromRows(t *testing.T, rows [][]float64) *graphmodel.AdjacencyMatrix {
	t.Helper()
	a, err := graphmodel.NewAdjacencyMatrix(rows)
	require.NoError(t, err)
	return a
}

func weightsFromRows(t *testing.T, rows [][]float64, adj *graphmodel.AdjacencyMatrix) *graphmodel.WeightsMatrix {
	t.Helper()
	w, err := graphmodel.NewWeightsMatrix(rows, adj)
	require.NoError(t, err)
	return w
}

func cycle4() [][]float64 {
	return [][]float64{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
	}
}

func complete(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = 1
			}
		}
	}
	return rows
}

func path(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n-1; i++ {
		rows[i][i+1] = 1
		rows[i+1][i] = 1
	}
	return rows
}

func star(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 1; i < n; i++ {
		rows[0][i] = 1
		rows[i][0] = 1
	}
	return rows
}

func cutEdges(p partition.Partition, n int, adj *graphmodel.AdjacencyMatrix) int {
	return partition.CutEdges(p, n, adj.HasEdge)
}

func TestBruteForceFourCycleOptimalCutIsTwo(t *testing.T) {
	adj := adjFromRows(t, cycle4())
	bf := algorithm.NewBruteForce()
	p, err := bf.Partition(algorithm.Input{Adjacency: adj, K: 2})
	require.NoError(t, err)
	require.NoError(t, p.Validate(4, false))
	require.Equal(t, 2, cutEdges(p, 4, adj))
}

func TestBruteForceCompleteGraphOptimalCutIsNSquaredOverFour(t *testing.T) {
	n := 6
	adj := adjFromRows(t, complete(n))
	bf := algorithm.NewBruteForce()
	p, err := bf.Partition(algorithm.Input{Adjacency: adj, K: 2})
	require.NoError(t, err)
	require.NoError(t, p.Validate(n, false))
	require.Equal(t, n*n/4, cutEdges(p, n, adj))
	require.Equal(t, 3, p.Size(0))
	require.Equal(t, 3, p.Size(1))
}

func TestBruteForcePathSixVerticesThreeWayOptimalCutIsTwo(t *testing.T) {
	adj := adjFromRows(t, path(6))
	bf := algorithm.NewBruteForce()
	p, err := bf.Partition(algorithm.Input{Adjacency: adj, K: 3})
	require.NoError(t, err)
	require.NoError(t, p.Validate(6, false))
	require.Equal(t, 2, cutEdges(p, 6, adj))
}

func TestBruteForceStarMinimumCutIsThree(t *testing.T) {
	// Center 0 shares its side with two leaves; the three leaves on the
	// other side each keep their one edge to the center, so every
	// balanced 3/3 split cuts exactly 3 edges.
	adj := adjFromRows(t, star(6))
	bf := algorithm.NewBruteForce()
	p, err := bf.Partition(algorithm.Input{Adjacency: adj, K: 2})
	require.NoError(t, err)
	require.NoError(t, p.Validate(6, false))
	require.Equal(t, 3, cutEdges(p, 6, adj))
	require.ElementsMatch(t, []int{3, 3}, []int{p.Size(0), p.Size(1)})
}

func TestBruteForceIsOptimalAgainstEveryBalancedPartition(t *testing.T) {
	// Exhaustively compare against every balanced partition for a small
	// graph (spec.md §8 "BruteForce on any input is optimal").
	adj := adjFromRows(t, cycle4())
	bf := algorithm.NewBruteForce()
	p, err := bf.Partition(algorithm.Input{Adjacency: adj, K: 2})
	require.NoError(t, err)
	best := cutEdges(p, 4, adj)

	for mask := 0; mask < 16; mask++ {
		var g0, g1 []int
		for v := 0; v < 4; v++ {
			if mask&(1<<v) != 0 {
				g0 = append(g0, v)
			} else {
				g1 = append(g1, v)
			}
		}
		alt := partition.New([][]int{g0, g1})
		if alt.Validate(4, false) != nil {
			continue
		}
		require.LessOrEqual(t, best, cutEdges(alt, 4, adj))
	}
}

func TestBruteForceWeightedK4MinimumCutIsFour(t *testing.T) {
	adj := adjFromRows(t, complete(4))
	rows := [][]float64{
		{0, 10, 1, 1},
		{10, 0, 1, 1},
		{1, 1, 0, 10},
		{1, 1, 10, 0},
	}
	w := weightsFromRows(t, rows, adj)

	bfw := algorithm.NewBruteForceWeighted()
	p, err := bfw.Partition(algorithm.Input{Adjacency: adj, Weights: w, K: 2})
	require.NoError(t, err)
	require.NoError(t, p.Validate(4, false))

	cutWeight := partition.CutWeight(p, 4, func(i, j int) float64 { return w.At(i, j) })
	require.Equal(t, 4.0, cutWeight)

	groups := p.Sorted()
	gotPairs := [][]int{groups.Groups[0], groups.Groups[1]}
	wantA := []int{0, 1}
	wantB := []int{2, 3}
	matches := (equalInts(gotPairs[0], wantA) && equalInts(gotPairs[1], wantB)) ||
		(equalInts(gotPairs[0], wantB) && equalInts(gotPairs[1], wantA))
	require.True(t, matches, "expected partition {{0,1},{2,3}}, got %v", gotPairs)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
