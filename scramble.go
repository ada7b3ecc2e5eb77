package nxcube

import "math/rand/v2"

// ScrambleConfig controls scramble generation.
type ScrambleConfig struct {
	// Length is the number of moves to generate.
	Length int
	// Size is the cube size to scramble.
	Size int
}

// DefaultScrambleConfig is a 20-move scramble for a 3x3 cube.
func DefaultScrambleConfig() ScrambleConfig {
	return ScrambleConfig{Length: 20, Size: 3}
}

// Scramble is a generated move sequence and the state it produces when
// applied to a solved cube.
type Scramble struct {
	Moves []Move
	Cube  *Cube
}

// Notation returns the scramble as a space-separated notation string.
func (s *Scramble) Notation() string {
	return FormatMoves(s.Moves)
}

// NewScramble generates a random scramble. Consecutive moves never share a
// face, and after two moves on opposite faces (such as R then L) the third
// move avoids both.
func NewScramble(cfg ScrambleConfig) (*Scramble, error) {
	cube, err := New(cfg.Size)
	if err != nil {
		return nil, err
	}

	pool := scramblePool(cfg.Size)
	moves := make([]Move, 0, cfg.Length)
	for len(moves) < cfg.Length {
		next := selectNextMove(moves, pool)
		// Pool moves are always legal for this size.
		_ = cube.Apply(next)
		moves = append(moves, next)
	}
	return &Scramble{Moves: moves, Cube: cube}, nil
}

// scramblePool returns the moves eligible for scrambling: the 18 face moves,
// plus slice moves on odd cubes of size 3 and up. Rotations and wide moves
// never appear in scrambles.
func scramblePool(size int) []Move {
	turns := [3]Turn{Clockwise, CounterClockwise, Double}

	var pool []Move
	for _, face := range [6]FaceName{Right, Left, Up, Down, Front, Back} {
		for _, t := range turns {
			pool = append(pool, FaceMove(face, t))
		}
	}
	if size >= 3 && size%2 == 1 {
		for _, s := range [3]Slice{SliceM, SliceE, SliceS} {
			for _, t := range turns {
				pool = append(pool, SliceMove(s, t))
			}
		}
	}
	return pool
}

// moveBucket groups moves that turn the same physical layer family, so the
// anti-repeat filter treats R, R' and R2 alike. Rotations bucket with the
// face they mimic.
func moveBucket(m Move) string {
	switch m.Kind {
	case KindSlice:
		return m.Slice.String()
	case KindRotation:
		switch m.Axis {
		case AxisX:
			return "R"
		case AxisY:
			return "U"
		}
		return "F"
	}
	return m.Face.String()
}

func oppositeBuckets(a, b string) bool {
	switch a + b {
	case "RL", "LR", "UD", "DU", "FB", "BF":
		return true
	}
	return false
}

func selectNextMove(previous []Move, pool []Move) Move {
	if len(previous) == 0 {
		return pool[rand.IntN(len(pool))]
	}

	lastBucket := moveBucket(previous[len(previous)-1])
	valid := make([]Move, 0, len(pool))
	for _, m := range pool {
		if moveBucket(m) != lastBucket {
			valid = append(valid, m)
		}
	}

	if len(previous) >= 2 {
		secondLastBucket := moveBucket(previous[len(previous)-2])
		if oppositeBuckets(lastBucket, secondLastBucket) {
			filtered := make([]Move, 0, len(valid))
			for _, m := range valid {
				b := moveBucket(m)
				if b != lastBucket && b != secondLastBucket {
					filtered = append(filtered, m)
				}
			}
			if len(filtered) > 0 {
				return filtered[rand.IntN(len(filtered))]
			}
		}
	}

	return valid[rand.IntN(len(valid))]
}
