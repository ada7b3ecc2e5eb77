// Package solver produces step-by-step solutions for nxcube cubes.
//
// Each cube class has its own entry point: Solve2x2 for pocket cubes,
// Solve3x3 for standard cubes, and the reduction pipeline (SolveCenters,
// SolveEdges, ResolveParity) for 4x4 and larger. Solvers never mutate their
// input; they clone the cube and search on the copy.
package solver

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/nxcube"
)

// Step is one logical stage of a solution.
type Step struct {
	// Description says what the step accomplishes.
	Description string
	// Moves are the moves that perform the step.
	Moves []nxcube.Move
	// Explanation optionally expands on the description.
	Explanation string
}

// MoveCount returns the number of moves in the step.
func (s Step) MoveCount() int { return len(s.Moves) }

// Notation returns the step's moves as a notation string.
func (s Step) Notation() string { return nxcube.FormatMoves(s.Moves) }

// Solution is a complete solve broken into steps.
type Solution struct {
	Steps    []Step
	Duration time.Duration
	// Method names the solving method used.
	Method string
}

// AllMoves flattens the steps into a single move sequence.
func (s *Solution) AllMoves() []nxcube.Move {
	var moves []nxcube.Move
	for _, step := range s.Steps {
		moves = append(moves, step.Moves...)
	}
	return moves
}

// MoveCount returns the total number of moves across all steps.
func (s *Solution) MoveCount() int {
	n := 0
	for _, step := range s.Steps {
		n += len(step.Moves)
	}
	return n
}

// StepCount returns the number of steps.
func (s *Solution) StepCount() int { return len(s.Steps) }

// Notation returns every move of the solution as a notation string.
func (s *Solution) Notation() string { return nxcube.FormatMoves(s.AllMoves()) }

// Summary returns a one-line description of the solution.
func (s *Solution) Summary() string {
	method := ""
	if s.Method != "" {
		method = fmt.Sprintf(" using %s", s.Method)
	}
	return fmt.Sprintf("Solution%s with %d steps and %d moves (found in %dms)",
		method, s.StepCount(), s.MoveCount(), s.Duration.Milliseconds())
}
