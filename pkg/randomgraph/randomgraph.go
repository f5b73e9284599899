// Package randomgraph implements the random graph generator spec.md §6
// describes as a reference contract for the HTTP façade's
// /randomAdjacencyGraph and /randomWeightedAdjacencyGraph endpoints. It
// is kept as a library package, separate from the HTTP handlers that
// call it.
package randomgraph

import (
	"graphpart/internal/errs"
	"graphpart/internal/rng"
)

// Generate builds an n-vertex adjacency matrix. For each vertex i, a
// target degree t is chosen uniformly from [1, maxEdgesPerVertex]
// (lower-bounded to 2 if i would otherwise become another vertex's
// single dangling leaf), then undirected edges are added to distinct
// neighbors respecting both endpoints' remaining degree budget.
func Generate(src rng.Source, numVertices, maxEdgesPerVertex int) ([][]float64, error) {
	if numVertices <= 0 {
		return nil, errs.New(errs.InvalidInput, "numVertices must be positive")
	}
	if maxEdgesPerVertex <= 0 {
		return nil, errs.New(errs.InvalidInput, "maxEdgesPerVertex must be positive")
	}

	n := numVertices
	target := make([]int, n)
	for i := range target {
		t := 1 + src.Intn(maxEdgesPerVertex)
		target[i] = t
	}

	adj := make([][]float64, n)
	for i := range adj {
		adj[i] = make([]float64, n)
	}
	degree := make([]int, n)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	src.Shuffle(n, func(a, b int) { order[a], order[b] = order[b], order[a] })

	for _, i := range order {
		// Raise the floor to 2 once we're about to leave a vertex with
		// exactly one neighbor as another vertex's only connection.
		want := target[i]
		if want < 2 && degree[i] == 0 {
			want = 2
			if want > maxEdgesPerVertex {
				want = maxEdgesPerVertex
			}
		}

		candidates := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i || adj[i][j] != 0 {
				continue
			}
			if degree[j] >= target[j] {
				continue
			}
			candidates = append(candidates, j)
		}
		src.Shuffle(len(candidates), func(a, b int) { candidates[a], candidates[b] = candidates[b], candidates[a] })

		for _, j := range candidates {
			if degree[i] >= want {
				break
			}
			adj[i][j] = 1
			adj[j][i] = 1
			degree[i]++
			degree[j]++
		}
	}

	return adj, nil
}

// GenerateWeighted assigns a weight to every existing edge of adj:
// weight = minWeight + 0.5*round(rand*(maxWeight-minWeight)/0.5), the
// half-integer quantization spec.md §6 specifies.
func GenerateWeighted(src rng.Source, adj [][]float64, minWeight, maxWeight float64) ([][]float64, error) {
	if maxWeight < minWeight {
		return nil, errs.New(errs.InvalidInput, "maxWeight must be >= minWeight")
	}
	n := len(adj)
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}
	span := maxWeight - minWeight
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adj[i][j] == 0 {
				continue
			}
			steps := roundHalf(src.Float64() * span / 0.5)
			weight := minWeight + 0.5*steps
			w[i][j] = weight
			w[j][i] = weight
		}
	}
	return w, nil
}

func roundHalf(x float64) float64 {
	if x < 0 {
		return -roundHalf(-x)
	}
	return float64(int64(x + 0.5))
}
