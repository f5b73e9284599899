package algorithm

import (
	"graphpart/internal/partition"
)

// BruteForce enumerates every balanced k-way partition of {0..n-1} by
// backtracking (assign each vertex in turn to a group, check balance
// at depth n) and keeps the one minimizing the unweighted inter-group
// edge count (spec.md §4.7). There is no symmetry breaking — partitions
// that are equivalent under group relabeling are each evaluated.
// O(k^n); intended only for small n.
type BruteForce struct{}

func NewBruteForce() *BruteForce { return &BruteForce{} }

func (a *BruteForce) Name() string { return "brute-force" }

func (a *BruteForce) Partition(in Input) (partition.Partition, error) {
	if err := validateCommon(in, 1); err != nil {
		return partition.Partition{}, err
	}

	n := in.Adjacency.N()
	k := in.K
	adjList := buildAdjList(in.Adjacency, n)
	maxSize := (n + k - 1) / k

	assign := make([]int, n)
	groupCounts := make([]int, k)

	bestCut := -1
	var bestAssign []int

	var backtrack func(i, curCut int)
	backtrack = func(i, curCut int) {
		if i == n {
			min, max := groupCounts[0], groupCounts[0]
			for _, c := range groupCounts {
				if c < min {
					min = c
				}
				if c > max {
					max = c
				}
			}
			if max-min > 1 {
				return
			}
			if bestCut == -1 || curCut < bestCut {
				bestCut = curCut
				bestAssign = append([]int(nil), assign...)
			}
			return
		}

		for g := 0; g < k; g++ {
			if groupCounts[g]+1 > maxSize {
				continue
			}
			added := 0
			for _, nb := range adjList[i] {
				if nb < i && assign[nb] != g {
					added++
				}
			}
			assign[i] = g
			groupCounts[g]++
			backtrack(i+1, curCut+added)
			groupCounts[g]--
		}
	}

	backtrack(0, 0)

	groups := make([][]int, k)
	for v, g := range bestAssign {
		groups[g] = append(groups[g], v)
	}
	return partition.New(groups), nil
}
