// Package graphmodel holds the graph-level data model: adjacency and
// weight matrices and brace-format serialization. Algorithms consume
// AdjacencyMatrix/WeightsMatrix rather than the bare matrix.Dense so
// that input validation (square, symmetric, zero diagonal, support(W)
// ⊆ support(A)) happens in one place.
package graphmodel

import (
	"fmt"

	"graphpart/internal/errs"
	"graphpart/internal/matrix"
)

// AdjacencyMatrix is a symmetric n×n 0/1 (or any-positive-means-edge)
// matrix with zero diagonal (spec.md §3).
type AdjacencyMatrix struct {
	*matrix.Dense
}

// NewAdjacencyMatrix validates and wraps a raw 2-D array.
func NewAdjacencyMatrix(rows [][]float64) (*AdjacencyMatrix, error) {
	m, err := matrix.New(rows)
	if err != nil {
		return nil, err
	}
	a := &AdjacencyMatrix{Dense: m}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *AdjacencyMatrix) validate() error {
	n := a.N()
	for i := 0; i < n; i++ {
		if a.At(i, i) != 0 {
			return errs.New(errs.InvalidInput, fmt.Sprintf("adjacency matrix must have zero diagonal; A[%d,%d]=%v", i, i, a.At(i, i)))
		}
	}
	if !a.IsSymmetric(1e-9) {
		return errs.New(errs.InvalidInput, "adjacency matrix must be symmetric")
	}
	return nil
}

// HasEdge reports whether i-j is an edge: any positive value counts as
// present, matching the greedy/KL algorithms' treatment (spec.md §3).
func (a *AdjacencyMatrix) HasEdge(i, j int) bool {
	return a.At(i, j) > 0
}

// WeightsMatrix is a symmetric n×n matrix where W[i,j] = 0 iff no edge,
// otherwise W[i,j] > 0 (spec.md §3).
type WeightsMatrix struct {
	*matrix.Dense
}

// NewWeightsMatrix validates and wraps a raw 2-D array. If adj is
// non-nil, enforces support(W) ⊆ support(A).
func NewWeightsMatrix(rows [][]float64, adj *AdjacencyMatrix) (*WeightsMatrix, error) {
	m, err := matrix.New(rows)
	if err != nil {
		return nil, err
	}
	w := &WeightsMatrix{Dense: m}
	if err := w.validate(adj); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *WeightsMatrix) validate(adj *AdjacencyMatrix) error {
	n := w.N()
	for i := 0; i < n; i++ {
		if w.At(i, i) != 0 {
			return errs.New(errs.InvalidInput, fmt.Sprintf("weights matrix must have zero diagonal; W[%d,%d]=%v", i, i, w.At(i, i)))
		}
		for j := 0; j < n; j++ {
			if w.At(i, j) < 0 {
				return errs.New(errs.InvalidInput, fmt.Sprintf("weights matrix must be non-negative; W[%d,%d]=%v", i, j, w.At(i, j)))
			}
		}
	}
	if !w.IsSymmetric(1e-9) {
		return errs.New(errs.InvalidInput, "weights matrix must be symmetric")
	}
	if adj != nil {
		if adj.N() != n {
			return errs.New(errs.InvalidInput, "weights and adjacency matrices must share dimension")
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if w.At(i, j) > 0 && !adj.HasEdge(i, j) {
					return errs.New(errs.InvalidInput, fmt.Sprintf("weight present at [%d,%d] without a corresponding adjacency edge", i, j))
				}
			}
		}
	}
	return nil
}

// HasEdge reports whether i-j carries positive weight.
func (w *WeightsMatrix) HasEdge(i, j int) bool {
	return w.At(i, j) > 0
}
