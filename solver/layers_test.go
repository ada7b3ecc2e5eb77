package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

// superflip is the classic every-edge-flipped position, 20 moves from solved.
const superflip = "U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2"

func TestSolve3x3_RejectsWrongSize(t *testing.T) {
	for _, size := range []int{2, 4} {
		_, err := Solve3x3(mustCube(t, size))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "size 3")
	}
}

func TestSolve3x3_RejectsInvalidState(t *testing.T) {
	c := mustCube(t, 3)
	c.SetSticker(nxcube.Front, 1, 1, nxcube.White)

	_, err := Solve3x3(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cube state")
}

func TestSolve3x3_AlreadySolved(t *testing.T) {
	sol, err := Solve3x3(mustCube(t, 3))
	require.NoError(t, err)
	assert.Zero(t, sol.MoveCount())
	require.Equal(t, 1, sol.StepCount())
	assert.Contains(t, sol.Steps[0].Description, "already solved")
	assert.Equal(t, "Kociemba Two-Phase Method", sol.Method)
}

func TestDepthSearch_ShortScramblesAreOptimal(t *testing.T) {
	scrambles := []string{
		"R",
		"R U'",
		"F L D",
		"B2 R' U F",
	}
	for _, alg := range scrambles {
		c := scrambledCube(t, 3, alg)
		sol, err := Solve3x3With(c, &DepthSearch{})
		require.NoError(t, err, "scramble %q", alg)
		assertSolves(t, c, sol)

		want := len(mustMoves(t, alg))
		assert.LessOrEqual(t, sol.MoveCount(), want, "scramble %q", alg)
	}
}

func TestSolve3x3_FullLengthScramble(t *testing.T) {
	c := scrambledCube(t, 3, "D2 F' L2 U B2 R F D' L' U2 B R2 D F2 L U' R' B2 D' F")

	start := time.Now()
	sol, err := Solve3x3(c)
	require.NoError(t, err)
	assertSolves(t, c, sol)
	assert.LessOrEqual(t, sol.MoveCount(), 30)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestSolve3x3_SolvesSuperflip(t *testing.T) {
	c := scrambledCube(t, 3, superflip)

	sol, err := Solve3x3(c)
	require.NoError(t, err)
	assertSolves(t, c, sol)
	assert.LessOrEqual(t, sol.MoveCount(), 30)
}

func TestTwoPhase_RejectsIllegalState(t *testing.T) {
	// Recoloring one UB edge sticker green fabricates a green/blue edge, a
	// piece that exists on no real cube.
	c := mustCube(t, 3)
	c.SetSticker(nxcube.Up, 0, 1, nxcube.Green)

	_, err := (&TwoPhase{}).Solve(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not reachable")
}

func TestTwoPhase_RejectsWrongSize(t *testing.T) {
	_, err := (&TwoPhase{}).Solve(mustCube(t, 4))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3x3")
}

func TestDepthSearch_ReportsUnreachableDepth(t *testing.T) {
	c := scrambledCube(t, 3, "R U F' L")
	search := &DepthSearch{MaxDepth: 2}

	_, err := search.Solve(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no solution within 2 moves")
}

func TestReverseScramble_SolvesSuperflip(t *testing.T) {
	scramble := mustMoves(t, superflip)
	c := mustCube(t, 3)
	require.NoError(t, c.ApplyMoves(scramble))

	sol, err := Solve3x3With(c, &ReverseScramble{Scramble: scramble})
	require.NoError(t, err)
	assertSolves(t, c, sol)
	assert.LessOrEqual(t, sol.MoveCount(), 20)
	assert.Equal(t, "Scramble Inversion", sol.Method)
}

func TestReverseScramble_RejectsMismatchedState(t *testing.T) {
	c := scrambledCube(t, 3, "R U")

	_, err := Solve3x3With(c, &ReverseScramble{Scramble: mustMoves(t, "F D")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestSolve3x3With_DoesNotMutateInput(t *testing.T) {
	c := scrambledCube(t, 3, "R U F'")
	before := c.Clone()

	_, err := Solve3x3(c)
	require.NoError(t, err)
	assert.True(t, before.Equal(c))
}
