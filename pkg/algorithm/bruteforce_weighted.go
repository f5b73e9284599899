package algorithm

import (
	"graphpart/internal/errs"
	"graphpart/internal/partition"
)

// BruteForceWeighted enumerates every assignment of {0..n-1} to k
// groups via a base-k counter, filters to balanced ones, and keeps the
// one minimizing total inter-group edge weight (spec.md §4.7). O(k^n);
// intended only for small n.
type BruteForceWeighted struct{}

func NewBruteForceWeighted() *BruteForceWeighted { return &BruteForceWeighted{} }

func (a *BruteForceWeighted) Name() string { return "brute-force-weighted" }

func (a *BruteForceWeighted) Partition(in Input) (partition.Partition, error) {
	if err := validateCommon(in, 1); err != nil {
		return partition.Partition{}, err
	}
	if in.Weights == nil {
		return partition.Partition{}, errs.New(errs.InvalidInput, "brute-force-weighted algorithm requires a weights matrix")
	}

	n := in.Weights.N()
	k := in.K

	// Pairwise weighted edges, collected once.
	type edge struct {
		u, v int
		w    float64
	}
	var edges []edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w := in.Weights.At(i, j); w > 0 {
				edges = append(edges, edge{i, j, w})
			}
		}
	}

	counter := make([]int, n)
	bestWeight := -1.0
	var bestAssign []int

	total := int64(1)
	for i := 0; i < n; i++ {
		total *= int64(k)
	}

	for iteration := int64(0); iteration < total; iteration++ {
		if isBalanced(counter, n, k) {
			w := 0.0
			for _, e := range edges {
				if counter[e.u] != counter[e.v] {
					w += e.w
				}
			}
			if bestWeight < 0 || w < bestWeight {
				bestWeight = w
				bestAssign = append([]int(nil), counter...)
			}
		}
		incrementBaseK(counter, k)
	}

	groups := make([][]int, k)
	for v, g := range bestAssign {
		groups[g] = append(groups[g], v)
	}
	return partition.New(groups), nil
}

// incrementBaseK advances counter as a base-k counter with n digits.
func incrementBaseK(counter []int, k int) {
	for i := range counter {
		counter[i]++
		if counter[i] < k {
			return
		}
		counter[i] = 0
	}
}

func isBalanced(counter []int, n, k int) bool {
	sizes := make([]int, k)
	for _, g := range counter {
		sizes[g]++
	}
	min, max := sizes[0], sizes[0]
	for _, s := range sizes {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return max-min <= 1
}
