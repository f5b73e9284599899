package algorithm

import (
	"graphpart/internal/graphmodel"
	"graphpart/internal/partition"
)

// defaultGreedyMaxRefineIterations bounds the local-search refinement
// pass (spec.md §4.6 step 4) when Greedy is built without an explicit
// override.
const defaultGreedyMaxRefineIterations = 100

// Greedy implements the BFS-growth heuristic of spec.md §4.6: pick
// pseudo-peripheral seeds one partition at a time, grow each partition
// by BFS from its seed (falling back to any unused boundary vertex once
// the BFS frontier is exhausted), then run a bounded greedy swap
// refinement pass.
type Greedy struct {
	maxRefineIterations int
}

func NewGreedy() *Greedy {
	return &Greedy{maxRefineIterations: defaultGreedyMaxRefineIterations}
}

// NewGreedyWithConfig builds a Greedy whose refinement pass is capped at
// maxRefineIterations — wired from config.AlgorithmDefaults rather than
// hard-coded (spec.md §9's "tunables belong in configuration" note).
func NewGreedyWithConfig(maxRefineIterations int) *Greedy {
	if maxRefineIterations <= 0 {
		maxRefineIterations = defaultGreedyMaxRefineIterations
	}
	return &Greedy{maxRefineIterations: maxRefineIterations}
}

func (a *Greedy) Name() string { return "greedy" }

func (a *Greedy) Partition(in Input) (partition.Partition, error) {
	if err := validateCommon(in, 1); err != nil {
		return partition.Partition{}, err
	}

	n := in.Adjacency.N()
	k := in.K
	adjList := buildAdjList(in.Adjacency, n)
	targets := partition.TargetSizes(n, k)

	used := make([]bool, n)
	group := make([]int, n)
	for i := range group {
		group[i] = -1
	}

	seeds := make([]int, 0, k)
	for i := 0; i < k; i++ {
		var seed int
		if i == 0 {
			seed = pseudoPeripheral(adjList, n, used)
		} else {
			seed = farthestFromSet(adjList, n, seeds, used)
		}
		seeds = append(seeds, seed)
		growPartition(adjList, n, seed, targets[i], used, group, i)
	}

	assignUnclaimed(group, k)

	refineGreedy(adjList, in.Adjacency, group, k, a.maxRefineIterations)

	groups := make([][]int, k)
	for v, g := range group {
		groups[g] = append(groups[g], v)
	}
	return partition.New(groups), nil
}

// pseudoPeripheral finds the vertex maximizing single-source BFS depth
// over all unused candidates (spec.md §4.6 step 2, glossary).
func pseudoPeripheral(adjList [][]int, n int, used []bool) int {
	best, bestDepth := -1, -1
	for v := 0; v < n; v++ {
		if used[v] {
			continue
		}
		_, depth := bfsFrom(adjList, n, []int{v})
		if depth > bestDepth {
			best, bestDepth = v, depth
		}
	}
	return best
}

// farthestFromSet finds the unused vertex maximizing multi-source BFS
// distance from the already-chosen seeds (spec.md §4.6 step 2).
func farthestFromSet(adjList [][]int, n int, seeds []int, used []bool) int {
	dist, _ := bfsFrom(adjList, n, seeds)
	best, bestDist := -1, -1
	for v := 0; v < n; v++ {
		if used[v] {
			continue
		}
		d := dist[v]
		if d < 0 {
			d = n // unreachable: treat as maximally far
		}
		if d > bestDist {
			best, bestDist = v, d
		}
	}
	if best == -1 {
		// every vertex is used; shouldn't happen given k <= n, but
		// guard against a degenerate call.
		for v := 0; v < n; v++ {
			if !used[v] {
				return v
			}
		}
	}
	return best
}

// bfsFrom returns per-vertex distance from the nearest source (-1 if
// unreachable) and the maximum finite distance reached.
func bfsFrom(adjList [][]int, n int, sources []int) ([]int, int) {
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	queue := make([]int, 0, n)
	for _, s := range sources {
		if dist[s] == -1 {
			dist[s] = 0
			queue = append(queue, s)
		}
	}
	maxDepth := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range adjList[cur] {
			if dist[nb] == -1 {
				dist[nb] = dist[cur] + 1
				if dist[nb] > maxDepth {
					maxDepth = dist[nb]
				}
				queue = append(queue, nb)
			}
		}
	}
	return dist, maxDepth
}

// growPartition runs BFS from seed, pulling in unused neighbors until
// target vertices have been claimed for group gi. If the BFS frontier
// exhausts first, any unused boundary vertex (an unused neighbor of any
// used vertex) fills the remainder; if none exists the partition stays
// short (spec.md §4.6 step 3 implementer note — can happen only on a
// disconnected graph with no edges between components).
func growPartition(adjList [][]int, n int, seed int, target int, used []bool, group []int, gi int) {
	claim := func(v int) {
		used[v] = true
		group[v] = gi
	}

	claimed := 0
	queue := []int{seed}
	claim(seed)
	claimed++

	for claimed < target && len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range adjList[cur] {
			if claimed >= target {
				break
			}
			if !used[nb] {
				claim(nb)
				claimed++
				queue = append(queue, nb)
			}
		}
	}

	for claimed < target {
		boundary := -1
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			for _, nb := range adjList[v] {
				if used[nb] {
					boundary = v
					break
				}
			}
			if boundary != -1 {
				break
			}
		}
		if boundary == -1 {
			return // disconnected with no boundary vertex left
		}
		claim(boundary)
		claimed++
	}
}

// assignUnclaimed hands every still-unclaimed vertex (group[v] == -1) to
// whichever group is currently smallest. growPartition leaves vertices
// unclaimed when the graph has more connected components than k and a
// component runs out of boundary vertices (spec.md §4.6's implementer
// note) — §7 only bounds k to (0,n], so this is reachable on valid
// input and must produce a short-but-complete partition, not a crash.
func assignUnclaimed(group []int, k int) {
	sizes := make([]int, k)
	for _, g := range group {
		if g != -1 {
			sizes[g]++
		}
	}
	for v, g := range group {
		if g != -1 {
			continue
		}
		smallest := 0
		for gi := 1; gi < k; gi++ {
			if sizes[gi] < sizes[smallest] {
				smallest = gi
			}
		}
		group[v] = smallest
		sizes[smallest]++
	}
}

// refineGreedy applies, for up to maxIterations passes, the first
// cross-partition vertex-pair swap it finds that reduces the total
// cut-edge count — greedy first-improvement, not simulated annealing
// (spec.md §4.6 step 4).
func refineGreedy(adjList [][]int, adj *graphmodel.AdjacencyMatrix, group []int, k, maxIterations int) {
	n := len(group)
	counts := buildGroupCounts(adjList, group, k)

	for iter := 0; iter < maxIterations; iter++ {
		improved := false
		for u := 0; u < n && !improved; u++ {
			for v := u + 1; v < n && !improved; v++ {
				gi, gj := group[u], group[v]
				if gi == gj {
					continue
				}
				du := counts[u][gj] - counts[u][gi]
				dv := counts[v][gi] - counts[v][gj]
				c := 0
				if adj.HasEdge(u, v) {
					c = 1
				}
				gain := du + dv - 2*c
				if gain > 0 {
					applySwap(adjList, counts, group, u, v)
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}
}
