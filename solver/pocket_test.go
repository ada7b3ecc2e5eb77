package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

func TestSolve2x2_RejectsWrongSize(t *testing.T) {
	for _, size := range []int{3, 4, 5} {
		_, err := Solve2x2(mustCube(t, size))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "size 2")
	}
}

func TestSolve2x2_RejectsInvalidState(t *testing.T) {
	c := mustCube(t, 2)
	c.SetSticker(nxcube.Up, 0, 0, nxcube.Green)

	_, err := Solve2x2(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cube state")
}

func TestSolve2x2_AlreadySolved(t *testing.T) {
	sol, err := Solve2x2(mustCube(t, 2))
	require.NoError(t, err)
	assert.Zero(t, sol.MoveCount())
	require.Equal(t, 1, sol.StepCount())
	assert.Contains(t, sol.Steps[0].Description, "already solved")
}

func TestSolve2x2_ShortScrambles(t *testing.T) {
	scrambles := []string{
		"R",
		"R U",
		"F' U2",
		"R U F",
		"R2 F R'",
		"U F2 R U'",
	}
	for _, alg := range scrambles {
		c := scrambledCube(t, 2, alg)
		sol, err := Solve2x2(c)
		require.NoError(t, err, "scramble %q", alg)
		assertSolves(t, c, sol)
		assert.LessOrEqual(t, sol.MoveCount(), pocketMaxDepth, "scramble %q", alg)
	}
}

// Scrambles over L, D and B leave states the R/U/F search can only reach in
// a different orientation, so solving them depends on orientation-free
// solved detection.
func TestSolve2x2_ScramblesUsingAllSixFaces(t *testing.T) {
	scrambles := []string{
		"L",
		"D B'",
		"L D",
		"B2 L' D",
		"L U B D'",
	}
	for _, alg := range scrambles {
		c := scrambledCube(t, 2, alg)
		sol, err := Solve2x2(c)
		require.NoError(t, err, "scramble %q", alg)
		assertSolves(t, c, sol)
	}
}

func TestSolve2x2_DoesNotMutateInput(t *testing.T) {
	c := scrambledCube(t, 2, "R U F")
	before := c.Clone()

	_, err := Solve2x2(c)
	require.NoError(t, err)
	assert.True(t, before.Equal(c))
}

func TestSolve2x2_Timing(t *testing.T) {
	sol, err := Solve2x2(scrambledCube(t, 2, "R U F U'"))
	require.NoError(t, err)
	assert.Less(t, sol.Duration, 2*time.Second)
	assert.Contains(t, sol.Summary(), "ms)")
}
