// Package asp emits the logic program spec.md §4.8 describes, runs it
// through an external ASP solver, and parses the answer set back into a
// partition. This is the LogicalProgramming algorithm's machinery,
// kept separate from pkg/algorithm because it needs process
// invocation and scratch-file handling that the pure in-memory
// algorithms don't.
package asp

import (
	"fmt"
	"strings"
)

// Program is the emitted ASP source plus the vertex/edge counts needed
// to interpret the solver's answer.
type Program struct {
	Source string
	N      int
	K      int
}

// Emit builds the program of spec.md §4.8 for an unweighted graph:
// facts for vertices, edges, and k; the assignment, cut, minimize, and
// strict-balance rules; and the #show directive.
func Emit(n, k int, hasEdge func(i, j int) bool) Program {
	var b strings.Builder
	fmt.Fprintf(&b, "vertex(0..%d).\n", n-1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if hasEdge(i, j) {
				fmt.Fprintf(&b, "edge(%d,%d).\n", i, j)
			}
		}
	}
	fmt.Fprintf(&b, "k(%d).\n", k)
	b.WriteString(assignmentAndBalanceRules())
	b.WriteString("cut_edge(X,Y) :- edge(X,Y), part(X,P1), part(Y,P2), P1 != P2.\n")
	b.WriteString("#minimize { 1,X,Y : cut_edge(X,Y) }.\n")
	b.WriteString("#show part/2.\n")
	return Program{Source: b.String(), N: n, K: k}
}

// EmitWeighted builds the weighted variant: edge weights are cast to
// integers (⌊W[i,j]⌋) as spec.md §4.8 and §9 describe — fractional
// weight is truncated by the ASP encoding, not rounded.
func EmitWeighted(n, k int, weight func(i, j int) (float64, bool)) Program {
	var b strings.Builder
	fmt.Fprintf(&b, "vertex(0..%d).\n", n-1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w, ok := weight(i, j); ok {
				fmt.Fprintf(&b, "edge(%d,%d,%d).\n", i, j, int(w))
			}
		}
	}
	fmt.Fprintf(&b, "k(%d).\n", k)
	b.WriteString(assignmentAndBalanceRules())
	b.WriteString("cut_edge(X,Y,W) :- edge(X,Y,W), part(X,P1), part(Y,P2), P1 != P2.\n")
	b.WriteString("#minimize { W,X,Y : cut_edge(X,Y,W) }.\n")
	b.WriteString("#show part/2.\n")
	return Program{Source: b.String(), N: n, K: k}
}

// assignmentAndBalanceRules is shared between the weighted and
// unweighted emitters: the part/2 assignment and the strict-equality
// size constraint. Strict equality (not ±1) is a deliberate semantic
// difference from every other algorithm (spec.md §4.8, §9) — ASP mode
// only accepts n divisible by k.
func assignmentAndBalanceRules() string {
	return "1 { part(V, 1..K) } :- vertex(V), k(K).\n" +
		"part_size(P,S) :- S = #count { V : part(V,P) }, k(K), P = 1..K.\n" +
		":- k(K), P1=1..K, P2=1..K, P1<P2, part_size(P1,S1), part_size(P2,S2), S1 != S2.\n"
}
