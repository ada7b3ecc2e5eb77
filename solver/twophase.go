package solver

import (
	"fmt"
	"time"

	"github.com/unixpickle/gocube"

	"github.com/SeamusWaldron/nxcube"
)

// stickerFaceOrder is the face order of a gocube sticker array: top, bottom,
// front, back, right, left, nine stickers per face in reading order.
var stickerFaceOrder = [6]nxcube.FaceName{
	nxcube.Up, nxcube.Down, nxcube.Front,
	nxcube.Back, nxcube.Right, nxcube.Left,
}

// TwoPhase solves any legal 3x3 state with a Kociemba-style two-phase
// search. Unlike DepthSearch it handles arbitrarily deep scrambles; the
// solutions it emits improve until the timeout and are bounded by MaxLength.
type TwoPhase struct {
	// MaxLength bounds accepted solutions. Zero means 30.
	MaxLength int
	// Timeout bounds how long the search keeps improving its best
	// solution. Zero means 1500ms.
	Timeout time.Duration
}

func (t *TwoPhase) Name() string { return "Kociemba Two-Phase Method" }

func (t *TwoPhase) Solve(cube *nxcube.Cube) ([]nxcube.Move, error) {
	state, err := cubieState(cube)
	if err != nil {
		return nil, err
	}

	maxLength := t.MaxLength
	if maxLength <= 0 {
		maxLength = 30
	}
	timeout := t.Timeout
	if timeout <= 0 {
		timeout = 1500 * time.Millisecond
	}

	search := gocube.NewSolver(*state, maxLength)
	defer search.Stop()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var best []gocube.Move
	haveBest := false
	for {
		select {
		case solution, ok := <-search.Solutions():
			if !ok {
				return finishTwoPhase(best, haveBest)
			}
			best = solution
			haveBest = true
		case <-timer.C:
			return finishTwoPhase(best, haveBest)
		}
	}
}

func finishTwoPhase(best []gocube.Move, haveBest bool) ([]nxcube.Move, error) {
	if !haveBest {
		return nil, fmt.Errorf("solver: two-phase search found no solution before timeout")
	}
	return nativeMoves(best)
}

// cubieState converts a 3x3 cube into gocube's cubie representation. The
// conversion also rejects facelet arrangements that no sequence of moves can
// produce (twisted corners, flipped edges, impossible permutations).
func cubieState(cube *nxcube.Cube) (*gocube.CubieCube, error) {
	if cube.Size() != 3 {
		return nil, fmt.Errorf("solver: two-phase search needs a 3x3 cube (got %dx%d)", cube.Size(), cube.Size())
	}

	// Sticker values number the faces 1..6; a sticker's value is the face
	// whose center carries its color. Centers never move on a 3x3, so this
	// holds for any orientation.
	valueByColor := make(map[nxcube.Color]int, 6)
	for i, name := range stickerFaceOrder {
		valueByColor[cube.Face(name).Get(1, 1)] = i + 1
	}
	if len(valueByColor) != 6 {
		return nil, fmt.Errorf("solver: cube centers do not carry six distinct colors")
	}

	var stickers gocube.StickerCube
	idx := 0
	for _, name := range stickerFaceOrder {
		face := cube.Face(name)
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				stickers[idx] = valueByColor[face.Get(row, col)]
				idx++
			}
		}
	}

	state, err := stickers.CubieCube()
	if err != nil {
		return nil, fmt.Errorf("solver: cube state is not reachable by legal moves: %w", err)
	}
	return state, nil
}

// nativeMoves translates a gocube move sequence through its notation, which
// uses the same face letters and suffixes.
func nativeMoves(moves []gocube.Move) ([]nxcube.Move, error) {
	out := make([]nxcube.Move, len(moves))
	for i, m := range moves {
		parsed, err := nxcube.ParseMove(m.String())
		if err != nil {
			return nil, fmt.Errorf("solver: unexpected move %q in solution: %w", m.String(), err)
		}
		out[i] = parsed
	}
	return out, nil
}
