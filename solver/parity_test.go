package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

// flipUpEdge fakes an OLL parity state by recoloring one inner sticker on
// the up face border.
func flipUpEdge(c *nxcube.Cube) {
	c.SetSticker(nxcube.Up, 0, 1, nxcube.Red)
}

// swapSideEdges fakes a PLL parity state by mismatching exactly two of the
// four top edge strips.
func swapSideEdges(c *nxcube.Cube) {
	c.SetSticker(nxcube.Front, 0, 1, nxcube.Blue)
	c.SetSticker(nxcube.Back, 0, 1, nxcube.Green)
}

func TestDetectParity_SmallCubesNeverHaveParity(t *testing.T) {
	for _, size := range []int{2, 3} {
		c := mustCube(t, size)
		assert.False(t, DetectOLLParity(c))
		assert.False(t, DetectPLLParity(c))
		assert.Equal(t, ParityNone, DetectParity(c))
	}
}

func TestDetectParity_SolvedBigCube(t *testing.T) {
	for _, size := range []int{4, 5, 6} {
		assert.Equal(t, ParityNone, DetectParity(mustCube(t, size)))
	}
}

func TestDetectOLLParity(t *testing.T) {
	c := mustCube(t, 4)
	flipUpEdge(c)

	assert.True(t, DetectOLLParity(c))
	assert.False(t, DetectPLLParity(c))
	assert.Equal(t, ParityOLL, DetectParity(c))
}

func TestDetectPLLParity(t *testing.T) {
	c := mustCube(t, 4)
	swapSideEdges(c)

	assert.True(t, DetectPLLParity(c))
	assert.False(t, DetectOLLParity(c))
	assert.Equal(t, ParityPLL, DetectParity(c))
}

func TestResolveParity_RejectsSmallCubes(t *testing.T) {
	for _, size := range []int{2, 3} {
		_, err := ResolveParity(mustCube(t, size))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "4x4+")
	}
}

func TestResolveParity_NoParity(t *testing.T) {
	sol, err := ResolveParity(mustCube(t, 4))
	require.NoError(t, err)
	require.Equal(t, 1, sol.StepCount())
	assert.Equal(t, "No parity detected", sol.Steps[0].Description)
	assert.Zero(t, sol.MoveCount())
	assert.Equal(t, "4x4+ Parity - None", sol.Method)
}

func TestResolveParity_OLL(t *testing.T) {
	c := mustCube(t, 4)
	flipUpEdge(c)

	sol, err := ResolveParity(c)
	require.NoError(t, err)
	require.Equal(t, 1, sol.StepCount())
	assert.Contains(t, sol.Steps[0].Description, "OLL")
	assert.Equal(t, 16, sol.Steps[0].MoveCount())
	assert.Equal(t, "4x4+ Parity - OLL", sol.Method)
}

func TestResolveParity_PLL(t *testing.T) {
	c := mustCube(t, 4)
	swapSideEdges(c)

	sol, err := ResolveParity(c)
	require.NoError(t, err)
	require.Equal(t, 1, sol.StepCount())
	assert.Contains(t, sol.Steps[0].Description, "PLL")
	assert.Equal(t, 9, sol.Steps[0].MoveCount())
	assert.Equal(t, "4x4+ Parity - PLL", sol.Method)
}

func TestResolveParity_Both_OLLFirst(t *testing.T) {
	c := mustCube(t, 4)
	flipUpEdge(c)
	swapSideEdges(c)

	sol, err := ResolveParity(c)
	require.NoError(t, err)
	require.Equal(t, 2, sol.StepCount())
	assert.Contains(t, sol.Steps[0].Description, "OLL")
	assert.Contains(t, sol.Steps[1].Description, "PLL")
	assert.Equal(t, "4x4+ Parity - OLL & PLL", sol.Method)
}

func TestParityAlgorithms_PreserveColorCounts(t *testing.T) {
	c := mustCube(t, 4)
	require.NoError(t, c.ApplyMoves(ollParityAlgorithm()))
	require.NoError(t, c.ApplyMoves(pllParityAlgorithm()))
	assert.NoError(t, c.Validate())
}
