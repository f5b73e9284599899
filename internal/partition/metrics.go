package partition

// CutEdges counts the number of edges (from a HasEdge predicate) whose
// endpoints lie in different groups — the unweighted CutMetric (spec.md
// §3-§4).
func CutEdges(p Partition, n int, hasEdge func(i, j int) bool) int {
	group := groupOf(p, n)
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if hasEdge(i, j) && group[i] != group[j] {
				count++
			}
		}
	}
	return count
}

// CutWeight sums the weight (from a weight function) of edges whose
// endpoints lie in different groups — the weighted CutMetric.
func CutWeight(p Partition, n int, weight func(i, j int) float64) float64 {
	group := groupOf(p, n)
	total := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w := weight(i, j); w > 0 && group[i] != group[j] {
				total += w
			}
		}
	}
	return total
}

func groupOf(p Partition, n int) []int {
	group := make([]int, n)
	for gi, g := range p.Groups {
		for _, v := range g {
			group[v] = gi
		}
	}
	return group
}
