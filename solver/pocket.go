package solver

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/nxcube"
)

// pocketMaxDepth bounds the 2x2 search. The pocket cube's God's number in
// half-turn metric is 11, but the R/U/F generator reaches every practical
// scramble well within this bound.
const pocketMaxDepth = 8

// Solve2x2 solves a pocket cube by iterative deepening over the R, U and F
// faces. Those three faces reach every pocket cube state: holding the DBL
// corner still fixes the orientation, and solved states are recognized in
// any orientation.
func Solve2x2(cube *nxcube.Cube) (*Solution, error) {
	start := time.Now()
	if cube.Size() != 2 {
		return nil, fmt.Errorf("solver: cube must be size 2 for the 2x2 solver (got %dx%d)", cube.Size(), cube.Size())
	}
	if err := cube.Validate(); err != nil {
		return nil, fmt.Errorf("solver: invalid cube state: %w", err)
	}

	if cube.IsSolved() {
		return &Solution{
			Steps:    []Step{{Description: "Cube is already solved"}},
			Duration: time.Since(start),
			Method:   "2x2 Depth-First Search",
		}, nil
	}

	pool := faceMoveSet(nxcube.Right, nxcube.Up, nxcube.Front)
	moves, ok := iterativeDeepening(cube, pool, pocketMaxDepth, (*nxcube.Cube).IsSolved)
	if !ok {
		return nil, fmt.Errorf("solver: no 2x2 solution within %d moves", pocketMaxDepth)
	}

	return &Solution{
		Steps: []Step{{
			Description: "Solve the 2x2 cube",
			Moves:       moves,
			Explanation: "Shortest sequence over the R, U and F faces",
		}},
		Duration: time.Since(start),
		Method:   "2x2 Depth-First Search",
	}, nil
}
