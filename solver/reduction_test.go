package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

func TestSolveCenters_RejectsSmallCubes(t *testing.T) {
	for _, size := range []int{2, 3} {
		_, err := SolveCenters(mustCube(t, size))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "4x4 or larger")
	}
}

func TestSolveEdges_RejectsSmallCubes(t *testing.T) {
	for _, size := range []int{2, 3} {
		_, err := SolveEdges(mustCube(t, size))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "4x4 or larger")
	}
}

func TestSolveCenters_AlreadySolved(t *testing.T) {
	sol, err := SolveCenters(mustCube(t, 4))
	require.NoError(t, err)
	assert.Zero(t, sol.MoveCount())
	require.Equal(t, 1, sol.StepCount())
	assert.Equal(t, "Centers are already solved", sol.Steps[0].Description)
	assert.Contains(t, sol.Method, "Reduction")
	assert.Contains(t, sol.Method, "Centers")
}

func TestSolveEdges_AlreadyPaired(t *testing.T) {
	sol, err := SolveEdges(mustCube(t, 4))
	require.NoError(t, err)
	assert.Zero(t, sol.MoveCount())
	require.Equal(t, 1, sol.StepCount())
	assert.Equal(t, "Edges are already paired", sol.Steps[0].Description)
	assert.Contains(t, sol.Method, "Edges")
}

func TestSolveCenters_OuterMovesLeaveCentersIntact(t *testing.T) {
	// Single-layer moves never touch face interiors on a 4x4.
	c := scrambledCube(t, 4, "R U F' D L2 B")
	assert.True(t, centersSolved(c))

	sol, err := SolveCenters(c)
	require.NoError(t, err)
	assert.Zero(t, sol.MoveCount())
}

func TestSolveCenters_RestoresWideScramble(t *testing.T) {
	for _, alg := range []string{"Rw", "Rw Uw'", "Fw2 Rw'"} {
		c := scrambledCube(t, 4, alg)
		require.False(t, centersSolved(c), "scramble %q", alg)

		sol, err := SolveCenters(c)
		require.NoError(t, err, "scramble %q", alg)

		check := c.Clone()
		require.NoError(t, check.ApplyMoves(sol.AllMoves()))
		assert.True(t, centersSolved(check), "scramble %q", alg)
	}
}

func TestSolveEdges_RestoresWideScramble(t *testing.T) {
	for _, alg := range []string{"Rw", "Uw Fw'"} {
		c := scrambledCube(t, 4, alg)
		require.False(t, edgesPaired(c), "scramble %q", alg)

		sol, err := SolveEdges(c)
		require.NoError(t, err, "scramble %q", alg)

		check := c.Clone()
		require.NoError(t, check.ApplyMoves(sol.AllMoves()))
		assert.True(t, edgesPaired(check), "scramble %q", alg)
	}
}

func TestReduction_WorksOn5x5(t *testing.T) {
	c := scrambledCube(t, 5, "Rw Uw'")
	require.False(t, centersSolved(c))

	sol, err := SolveCenters(c)
	require.NoError(t, err)
	assert.Less(t, sol.Duration, 2*time.Second)

	check := c.Clone()
	require.NoError(t, check.ApplyMoves(sol.AllMoves()))
	assert.True(t, centersSolved(check))
}

func TestCentersSolved_DetectsMixedInterior(t *testing.T) {
	c := mustCube(t, 5)
	c.SetSticker(nxcube.Up, 2, 2, nxcube.Green)
	assert.False(t, centersSolved(c))
}

func TestEdgesPaired_DetectsBrokenStrip(t *testing.T) {
	c := mustCube(t, 4)
	c.SetSticker(nxcube.Front, 0, 1, nxcube.Red)
	assert.False(t, edgesPaired(c))
}
