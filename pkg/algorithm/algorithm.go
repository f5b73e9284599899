// Package algorithm is the polymorphism layer spec.md §9 asks for: the
// six partitioning strategies share one capability interface and are
// looked up through a factory Registry keyed by name, rather than
// exposed as siblings with identical static entry points — modeled on
// the teacher's algorithm.Registry (graph-clustering-backend/src2/algorithm/interface.go).
package algorithm

import (
	"graphpart/internal/errs"
	"graphpart/internal/graphmodel"
	"graphpart/internal/partition"
	"graphpart/internal/rng"
)

// Input bundles everything a Partition call can consume: the
// unweighted adjacency matrix (always required), an optional weights
// matrix for the weighted algorithms, the requested number of parts,
// and an injectable RNG for the randomized algorithms (spec.md §9).
type Input struct {
	Adjacency *graphmodel.AdjacencyMatrix
	Weights   *graphmodel.WeightsMatrix
	K         int
	RNG       rng.Source
}

// Algorithm is the common capability every partitioning strategy
// implements: (A, [W], k) -> Partition (spec.md §9).
type Algorithm interface {
	// Name identifies the algorithm in the Registry and at the HTTP
	// boundary.
	Name() string

	// Partition computes a balanced k-way partition of in.Adjacency
	// (and in.Weights, where the algorithm is weighted).
	Partition(in Input) (partition.Partition, error)
}

// Registry looks algorithms up by name — the factory registry spec.md
// §9 calls for instead of static per-algorithm entry points.
type Registry struct {
	algorithms map[string]Algorithm
}

// Defaults is the subset of config.AlgorithmDefaults the registry needs
// at construction time — declared locally so pkg/algorithm doesn't
// import internal/config.
type Defaults struct {
	GreedyMaxRefineIterations int
	KLMaxIterations           int
}

// NewRegistry builds a Registry pre-populated with all six strategies,
// using each algorithm's built-in iteration-cap defaults.
func NewRegistry() *Registry {
	return NewRegistryWithDefaults(Defaults{})
}

// NewRegistryWithDefaults builds a Registry whose Greedy and
// KernighanLin entries use the given iteration caps instead of their
// hard-coded defaults (spec.md §9 — iteration caps are implementer
// tunables, wired here from configuration).
func NewRegistryWithDefaults(d Defaults) *Registry {
	r := &Registry{algorithms: make(map[string]Algorithm)}
	r.Register(NewSpectral())
	r.Register(NewInertial())
	r.Register(NewGeometric())
	r.Register(NewKernighanLinWithConfig(d.KLMaxIterations))
	r.Register(NewGreedyWithConfig(d.GreedyMaxRefineIterations))
	r.Register(NewBruteForce())
	r.Register(NewBruteForceWeighted())
	return r
}

// Register adds an algorithm, keyed by its own Name().
func (r *Registry) Register(a Algorithm) {
	r.algorithms[a.Name()] = a
}

// Get retrieves an algorithm by name.
func (r *Registry) Get(name string) (Algorithm, bool) {
	a, ok := r.algorithms[name]
	return a, ok
}

// List returns every registered algorithm name.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	return names
}

// requireRNG builds the InvalidInput error for algorithms that need an
// injected RNG source (Geometric, KernighanLin) but didn't get one.
func requireRNG(algo string) error {
	return errs.New(errs.InvalidInput, algo+" algorithm requires an RNG source")
}

// validateCommon checks the shared preconditions every algorithm needs
// before doing its own work (spec.md §7).
func validateCommon(in Input, minK int) error {
	if in.Adjacency == nil {
		return errs.New(errs.InvalidInput, "adjacency matrix is required")
	}
	n := in.Adjacency.N()
	if in.K <= 0 {
		return errs.New(errs.InvalidInput, "k must be positive")
	}
	if in.K < minK {
		return errs.New(errs.InvalidInput, "k below algorithm minimum")
	}
	if in.K > n {
		return errs.New(errs.InvalidInput, "k must not exceed the number of vertices")
	}
	return nil
}
