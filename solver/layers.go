package solver

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/nxcube"
)

// Strategy finds a move sequence that solves a 3x3 cube. Implementations
// must not mutate the cube they are given.
type Strategy interface {
	// Name identifies the strategy in solution summaries.
	Name() string
	// Solve returns moves that take cube to the solved state.
	Solve(cube *nxcube.Cube) ([]nxcube.Move, error)
}

// DepthSearch solves by iterative deepening over all eighteen face moves.
// It finds optimal solutions but only reaches shallow scrambles; states
// deeper than MaxDepth return an error. Use TwoPhase for real scrambles.
type DepthSearch struct {
	// MaxDepth bounds the search. Zero means the default of 12.
	MaxDepth int
}

func (d *DepthSearch) Name() string { return "Beginner's Layer-by-Layer Method" }

func (d *DepthSearch) Solve(cube *nxcube.Cube) ([]nxcube.Move, error) {
	maxDepth := d.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 12
	}
	faces := nxcube.AllFaces()
	pool := faceMoveSet(faces[:]...)
	moves, ok := iterativeDeepening(cube, pool, maxDepth, (*nxcube.Cube).IsSolved)
	if !ok {
		return nil, fmt.Errorf("solver: no solution within %d moves", maxDepth)
	}
	return moves, nil
}

// ReverseScramble solves by undoing a known scramble. It only works when the
// cube state is exactly the result of applying Scramble to a solved cube.
type ReverseScramble struct {
	Scramble []nxcube.Move
}

func (r *ReverseScramble) Name() string { return "Scramble Inversion" }

func (r *ReverseScramble) Solve(cube *nxcube.Cube) ([]nxcube.Move, error) {
	expected, err := nxcube.New(cube.Size())
	if err != nil {
		return nil, err
	}
	if err := expected.ApplyMoves(r.Scramble); err != nil {
		return nil, fmt.Errorf("solver: invalid scramble: %w", err)
	}
	if !expected.Equal(cube) {
		return nil, fmt.Errorf("solver: cube state does not match the given scramble")
	}
	return nxcube.InverseMoves(r.Scramble), nil
}

// Solve3x3 solves a standard cube with the default two-phase strategy,
// which handles scrambles of any depth.
func Solve3x3(cube *nxcube.Cube) (*Solution, error) {
	return Solve3x3With(cube, &TwoPhase{})
}

// Solve3x3With solves a standard cube using the given strategy.
func Solve3x3With(cube *nxcube.Cube, strategy Strategy) (*Solution, error) {
	start := time.Now()
	if cube.Size() != 3 {
		return nil, fmt.Errorf("solver: cube must be size 3 for the 3x3 solver (got %dx%d)", cube.Size(), cube.Size())
	}
	if err := cube.Validate(); err != nil {
		return nil, fmt.Errorf("solver: invalid cube state: %w", err)
	}

	if cube.IsSolved() {
		return &Solution{
			Steps:    []Step{{Description: "Cube is already solved"}},
			Duration: time.Since(start),
			Method:   strategy.Name(),
		}, nil
	}

	moves, err := strategy.Solve(cube)
	if err != nil {
		return nil, err
	}
	return &Solution{
		Steps: []Step{{
			Description: "Solve the 3x3 cube",
			Moves:       moves,
		}},
		Duration: time.Since(start),
		Method:   strategy.Name(),
	}, nil
}
