package algorithm

import (
	"sort"

	"graphpart/internal/errs"
	"graphpart/internal/matrix"
	"graphpart/internal/partition"
)

// Inertial implements the two-way weighted spectral cut: build the
// weighted Laplacian from W, extract its Fiedler vector, and split on
// the upper median of its components (spec.md §4.3). k is fixed at 2.
//
// Tie policy: ties at the median go to P1 (sorted[n/2] is the pivot),
// which can produce |P1|-|P2| = ±1 on odd n — this matches spec.md
// §4.3's documented behavior rather than forcing exact balance.
type Inertial struct{}

func NewInertial() *Inertial { return &Inertial{} }

func (a *Inertial) Name() string { return "inertial" }

func (a *Inertial) Partition(in Input) (partition.Partition, error) {
	if err := validateCommon(in, 2); err != nil {
		return partition.Partition{}, err
	}
	if in.K != 2 {
		return partition.Partition{}, errs.New(errs.InvalidInput, "inertial algorithm only supports k=2")
	}
	if in.Weights == nil {
		return partition.Partition{}, errs.New(errs.InvalidInput, "inertial algorithm requires a weights matrix")
	}

	n := in.Adjacency.N()
	adjList := buildAdjList(in.Adjacency, n)
	if components := connectedComponents(adjList, n); len(components) >= 2 {
		// Same block-diagonal deflation issue as Spectral (spec.md
		// §4.3's disconnected-graph property): keep components whole
		// instead of letting a component-confined Fiedler vector split
		// them by the global median.
		sideA, sideB := balanceComponentsIntoTwoGroups(components)
		return partition.New([][]int{sideA, sideB}), nil
	}

	fiedler, err := matrix.Fiedler(in.Weights.Dense)
	if err != nil {
		return partition.Partition{}, err
	}

	sorted := append([]float64(nil), fiedler...)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]

	var p1, p2 []int
	for i, x := range fiedler {
		if x >= median {
			p1 = append(p1, i)
		} else {
			p2 = append(p2, i)
		}
	}
	return partition.New([][]int{p1, p2}), nil
}
