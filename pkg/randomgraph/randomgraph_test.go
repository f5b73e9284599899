package randomgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"graphpart/internal/rng"
	"graphpart/pkg/randomgraph"
)

func TestGenerateProducesSymmetricZeroDiagonal(t *testing.T) {
	src := rng.New(42)
	adj, err := randomgraph.Generate(src, 12, 4)
	require.NoError(t, err)
	require.Len(t, adj, 12)

	for i := range adj {
		require.Equal(t, 0.0, adj[i][i])
		for j := range adj {
			require.Equal(t, adj[i][j], adj[j][i])
		}
	}
}

func TestGenerateWeightedStaysWithinBounds(t *testing.T) {
	src := rng.New(7)
	adj, err := randomgraph.Generate(src, 8, 3)
	require.NoError(t, err)

	w, err := randomgraph.GenerateWeighted(src, adj, 1.0, 5.0)
	require.NoError(t, err)

	for i := range w {
		for j := range w[i] {
			if adj[i][j] == 0 {
				require.Equal(t, 0.0, w[i][j])
				continue
			}
			require.GreaterOrEqual(t, w[i][j], 1.0)
			require.LessOrEqual(t, w[i][j], 5.0)
		}
	}
}
