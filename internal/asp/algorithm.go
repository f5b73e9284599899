package asp

import (
	"context"

	"graphpart/internal/config"
	"graphpart/internal/errs"
	"graphpart/internal/graphmodel"
	"graphpart/internal/partition"
)

// LogicalProgramming drives the ASP path end to end: emit, solve,
// parse. It is not registered in pkg/algorithm.Registry because it
// needs a context and solver configuration that the six in-memory
// algorithms' (A, [W], k) -> Partition signature has no room for
// (spec.md §4.8 keeps it as its own HTTP endpoint, not one of "the six
// algorithms" spec.md §9's polymorphism section describes).
type LogicalProgramming struct {
	Config config.ASPConfig
}

func NewLogicalProgramming(cfg config.ASPConfig) *LogicalProgramming {
	return &LogicalProgramming{Config: cfg}
}

func (l *LogicalProgramming) Partition(ctx context.Context, adj *graphmodel.AdjacencyMatrix, k int) (partition.Partition, error) {
	if adj == nil {
		return partition.Partition{}, errs.New(errs.InvalidInput, "adjacency matrix is required")
	}
	n := adj.N()
	if k <= 0 || k > n {
		return partition.Partition{}, errs.New(errs.InvalidInput, "k must be in [1, n]")
	}
	if n%k != 0 {
		return partition.Partition{}, errs.New(errs.InvalidInput, "logical programming requires n divisible by k (strict equal balance)")
	}

	prog := Emit(n, k, adj.HasEdge)
	return Solve(ctx, l.Config, prog)
}

func (l *LogicalProgramming) PartitionWeighted(ctx context.Context, adj *graphmodel.AdjacencyMatrix, w *graphmodel.WeightsMatrix, k int) (partition.Partition, error) {
	if adj == nil || w == nil {
		return partition.Partition{}, errs.New(errs.InvalidInput, "adjacency and weights matrices are required")
	}
	n := w.N()
	if k <= 0 || k > n {
		return partition.Partition{}, errs.New(errs.InvalidInput, "k must be in [1, n]")
	}
	if n%k != 0 {
		return partition.Partition{}, errs.New(errs.InvalidInput, "logical programming requires n divisible by k (strict equal balance)")
	}

	prog := EmitWeighted(n, k, func(i, j int) (float64, bool) {
		if !w.HasEdge(i, j) {
			return 0, false
		}
		return w.At(i, j), true
	})
	return Solve(ctx, l.Config, prog)
}
