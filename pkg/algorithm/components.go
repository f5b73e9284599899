package algorithm

import "sort"

// connectedComponents groups vertices 0..n-1 into connected components
// via BFS over adjList, in discovery order. A graph with a single
// component returns one slice containing every vertex.
func connectedComponents(adjList [][]int, n int) [][]int {
	visited := make([]bool, n)
	var components [][]int

	for v := 0; v < n; v++ {
		if visited[v] {
			continue
		}
		var comp []int
		queue := []int{v}
		visited[v] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, nb := range adjList[cur] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		components = append(components, comp)
	}
	return components
}

// balanceComponentsIntoTwoGroups assigns whole connected components to
// one of two sides, largest component first, always extending whichever
// side is currently smaller (greedy number-partitioning) — so two
// disconnected components of equal size land one per side with zero
// cut, matching spec.md's disconnected-graph property for Spectral and
// Inertial. If the greedy assignment still leaves the sides more than
// one vertex apart, individual vertices are moved across from the
// larger side until the ±1 balance invariant holds; splitting a
// component is the last resort, only to restore balance.
func balanceComponentsIntoTwoGroups(components [][]int) (sideA, sideB []int) {
	sorted := append([][]int(nil), components...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	for _, comp := range sorted {
		if len(sideA) <= len(sideB) {
			sideA = append(sideA, comp...)
		} else {
			sideB = append(sideB, comp...)
		}
	}

	for len(sideA)-len(sideB) > 1 {
		v := sideA[len(sideA)-1]
		sideA = sideA[:len(sideA)-1]
		sideB = append(sideB, v)
	}
	for len(sideB)-len(sideA) > 1 {
		v := sideB[len(sideB)-1]
		sideB = sideB[:len(sideB)-1]
		sideA = append(sideA, v)
	}
	return sideA, sideB
}
