package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"graphpart/internal/solver"
)

func TestMedianCutSolverSplitsEvenlyForEvenN(t *testing.T) {
	s := solver.NewMedianCutSolver()
	assignment, err := s.Solve([]float64{0.5, -0.2, 0.1, -0.9})
	require.NoError(t, err)

	var pos, neg int
	for _, a := range assignment {
		switch a {
		case 1:
			pos++
		case -1:
			neg++
		default:
			t.Fatalf("unexpected assignment value %d", a)
		}
	}
	require.Equal(t, 2, pos)
	require.Equal(t, 2, neg)
	// index 3 (value -0.9) is the smallest, must land on the -1 side.
	require.Equal(t, -1, assignment[3])
	// index 0 (value 0.5) is the largest, must land on the +1 side.
	require.Equal(t, 1, assignment[0])
}

func TestMedianCutSolverRejectsEmptyInput(t *testing.T) {
	s := solver.NewMedianCutSolver()
	_, err := s.Solve(nil)
	require.Error(t, err)
}
