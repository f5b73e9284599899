// Package partition defines the Partition value type and the balance
// invariant every algorithm's output must satisfy (spec.md §3).
package partition

import (
	"fmt"
	"sort"

	"graphpart/internal/errs"
)

// Partition is an ordered tuple of k disjoint vertex index sets whose
// union is {0..n-1}. Order within a group is not significant.
type Partition struct {
	Groups [][]int
}

// New builds a Partition from groups, without validating it — use
// Validate separately so callers can choose when to pay for the check.
func New(groups [][]int) Partition {
	return Partition{Groups: groups}
}

// K returns the number of groups.
func (p Partition) K() int { return len(p.Groups) }

// Size returns |P_i| for group i.
func (p Partition) Size(i int) int { return len(p.Groups[i]) }

// Validate checks the universal invariants: the groups partition
// {0..n-1} exactly, and sizes differ by at most one (spec.md §3, §8).
// strictEqual enforces the ASP mode's stricter "all sizes equal" rule
// (spec.md §4.8) instead of the default ±1 balance.
func (p Partition) Validate(n int, strictEqual bool) error {
	seen := make([]bool, n)
	total := 0
	for gi, g := range p.Groups {
		for _, v := range g {
			if v < 0 || v >= n {
				return errs.New(errs.InvalidInput, fmt.Sprintf("vertex %d in group %d out of range [0,%d)", v, gi, n))
			}
			if seen[v] {
				return errs.New(errs.InvalidInput, fmt.Sprintf("vertex %d appears in more than one group", v))
			}
			seen[v] = true
			total++
		}
	}
	if total != n {
		return errs.New(errs.InvalidInput, fmt.Sprintf("partition covers %d of %d vertices", total, n))
	}

	sizes := make([]int, len(p.Groups))
	for i, g := range p.Groups {
		sizes[i] = len(g)
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
	if strictEqual {
		if min != max {
			return errs.New(errs.InvalidInput, fmt.Sprintf("ASP partition sizes must be exactly equal, got min=%d max=%d", min, max))
		}
		return nil
	}
	if max-min > 1 {
		return errs.New(errs.InvalidInput, fmt.Sprintf("partition sizes must differ by at most one, got min=%d max=%d", min, max))
	}
	return nil
}

// TargetSizes returns the balanced target size for each of k groups:
// floor(n/k) for all, plus one extra for the first n mod k groups
// (spec.md §4.6).
func TargetSizes(n, k int) []int {
	base := n / k
	rem := n % k
	sizes := make([]int, k)
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}

// Sorted returns a copy of the partition with every group's vertices
// sorted ascending — useful for deterministic comparisons in tests.
func (p Partition) Sorted() Partition {
	out := make([][]int, len(p.Groups))
	for i, g := range p.Groups {
		cp := append([]int(nil), g...)
		sort.Ints(cp)
		out[i] = cp
	}
	return Partition{Groups: out}
}
