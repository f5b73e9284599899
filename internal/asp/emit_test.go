package asp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"graphpart/internal/asp"
)

func cycle4HasEdge(i, j int) bool {
	edges := map[[2]int]bool{
		{0, 1}: true, {1, 2}: true, {2, 3}: true, {0, 3}: true,
	}
	a, b := i, j
	if a > b {
		a, b = b, a
	}
	return edges[[2]int{a, b}]
}

func TestEmitProducesExpectedFactsAndRules(t *testing.T) {
	prog := asp.Emit(4, 2, cycle4HasEdge)
	require.Contains(t, prog.Source, "vertex(0..3).")
	require.Contains(t, prog.Source, "edge(0,1).")
	require.Contains(t, prog.Source, "k(2).")
	require.Contains(t, prog.Source, "1 { part(V, 1..K) } :- vertex(V), k(K).")
	require.Contains(t, prog.Source, "#minimize { 1,X,Y : cut_edge(X,Y) }.")
	require.Contains(t, prog.Source, "#show part/2.")
	require.True(t, strings.Contains(prog.Source, "S1 != S2"), "strict balance constraint must be present")
}

func TestEmitWeightedTruncatesFractionalWeights(t *testing.T) {
	prog := asp.EmitWeighted(2, 1, func(i, j int) (float64, bool) {
		if i == 0 && j == 1 {
			return 3.9, true
		}
		return 0, false
	})
	require.Contains(t, prog.Source, "edge(0,1,3).")
}

func TestParseAnswerGroupsPartAtomsByPartition(t *testing.T) {
	stdout := "clingo version 5.6.2\n" +
		"Answer: 1\n" +
		"part(0,1) part(1,1) part(2,2) part(3,2)\n" +
		"Optimization: 2\n" +
		"SATISFIABLE\n"
	groups, err := asp.ParseAnswer(stdout, 4, 2)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1}, groups[0])
	require.ElementsMatch(t, []int{2, 3}, groups[1])
}

func TestParseAnswerRejectsMissingVertex(t *testing.T) {
	stdout := "Answer: 1\npart(0,1) part(1,1) part(2,2)\n"
	_, err := asp.ParseAnswer(stdout, 4, 2)
	require.Error(t, err)
}

func TestParseAnswerRejectsEmptyOutput(t *testing.T) {
	_, err := asp.ParseAnswer("UNSATISFIABLE\n", 4, 2)
	require.Error(t, err)
}
