package algorithm

import (
	"math"
	"sort"

	"graphpart/internal/errs"
	"graphpart/internal/matrix"
	"graphpart/internal/partition"
	"graphpart/internal/rng"
)

// Geometric implements the recursive binary "circle" split (spec.md
// §4.4): embed vertices in 2-D via the second and third eigenvectors of
// the weighted Laplacian, stereographically project to the unit
// sphere, then recursively bisect on a random plane through a shifted
// centroid until k groups remain.
//
// Randomness: the splitting normal is drawn fresh per recursive call,
// so output is non-deterministic unless in.RNG is seeded (spec.md §4.4,
// §5, §8 "Geometric with fixed seed is deterministic").
type Geometric struct{}

func NewGeometric() *Geometric { return &Geometric{} }

func (g *Geometric) Name() string { return "geometric" }

type point3 struct{ x, y, z float64 }

func (g *Geometric) Partition(in Input) (partition.Partition, error) {
	if err := validateCommon(in, 1); err != nil {
		return partition.Partition{}, err
	}
	if in.Weights == nil {
		return partition.Partition{}, errs.New(errs.InvalidInput, "geometric algorithm requires a weights matrix")
	}
	if in.RNG == nil {
		return partition.Partition{}, errs.New(errs.InvalidInput, "geometric algorithm requires an RNG source")
	}

	lap, err := matrix.Laplacian(in.Weights.Dense)
	if err != nil {
		return partition.Partition{}, err
	}
	eig, err := matrix.EigenSym(lap)
	if err != nil {
		return partition.Partition{}, err
	}
	s1, err := eig.SecondSmallestIndex()
	if err != nil {
		return partition.Partition{}, err
	}
	s2, err := eig.ThirdSmallestIndex(s1)
	if err != nil {
		return partition.Partition{}, err
	}

	v1, v2 := eig.Column(s1), eig.Column(s2)
	n := in.Weights.N()

	// Stereographic projection of the 2-D embedding onto the unit
	// sphere in 3-D.
	sphere := make([]point3, n)
	for i := 0; i < n; i++ {
		x, y := v1[i], v2[i]
		norm := math.Sqrt(x*x + y*y + 1)
		sphere[i] = point3{x / norm, y / norm, 1 / norm}
	}

	var cx, cy, cz float64
	for _, p := range sphere {
		cx += p.x
		cy += p.y
		cz += p.z
	}
	cx, cy, cz = cx/float64(n), cy/float64(n), cz/float64(n)

	q := make([]point3, n)
	for i, p := range sphere {
		q[i] = point3{p.x - cx, p.y - cy, p.z - cz}
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	groups := g.split(indices, q, in.K, in.RNG)
	return partition.New(groups), nil
}

func (g *Geometric) split(indices []int, q []point3, k int, src rng.Source) [][]int {
	if k <= 1 {
		return [][]int{append([]int(nil), indices...)}
	}

	normal := randomUnitVector3(src)
	d := make(map[int]float64, len(indices))
	for _, i := range indices {
		d[i] = q[i].x*normal.x + q[i].y*normal.y + q[i].z*normal.z
	}

	sortedByD := append([]int(nil), indices...)
	sort.Slice(sortedByD, func(a, b int) bool { return d[sortedByD[a]] < d[sortedByD[b]] })
	median := d[sortedByD[len(sortedByD)/2]]

	var left, right []int
	for _, i := range indices {
		if d[i] < median {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	left, right = balance(left, right, q)

	leftK := k / 2
	rightK := k - leftK
	leftGroups := g.split(left, q, leftK, src)
	rightGroups := g.split(right, q, rightK, src)
	return append(leftGroups, rightGroups...)
}

// balance moves elements between the two sides until their sizes
// differ by at most one, each time picking from the larger side the
// vertex whose coordinate sum is closest to the median coordinate sum
// across both sides (spec.md §4.4 step 5).
func balance(left, right []int, q []point3) ([]int, []int) {
	coordSum := func(i int) float64 { return q[i].x + q[i].y + q[i].z }

	for abs(len(left)-len(right)) > 1 {
		all := append(append([]int(nil), left...), right...)
		sums := make([]float64, len(all))
		for i, idx := range all {
			sums[i] = coordSum(idx)
		}
		sorted := append([]float64(nil), sums...)
		sort.Float64s(sorted)
		median := sorted[len(sorted)/2]

		var from, to *[]int
		if len(left) > len(right) {
			from, to = &left, &right
		} else {
			from, to = &right, &left
		}

		bestPos, bestDist := -1, math.Inf(1)
		for pos, idx := range *from {
			dist := math.Abs(coordSum(idx) - median)
			if dist < bestDist {
				bestDist, bestPos = dist, pos
			}
		}
		moved := (*from)[bestPos]
		*from = append((*from)[:bestPos], (*from)[bestPos+1:]...)
		*to = append(*to, moved)
	}
	return left, right
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// randomUnitVector3 draws a uniformly random unit vector in R^3 via
// Box-Muller Gaussian coordinates normalized to unit length.
func randomUnitVector3(src rng.Source) point3 {
	gx, gy, gz := gaussian(src), gaussian(src), gaussian(src)
	norm := math.Sqrt(gx*gx + gy*gy + gz*gz)
	if norm == 0 {
		return point3{1, 0, 0}
	}
	return point3{gx / norm, gy / norm, gz / norm}
}

func gaussian(src rng.Source) float64 {
	u1 := src.Float64()
	if u1 <= 0 {
		u1 = 1e-12
	}
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
