package solver

import (
	"fmt"

	"github.com/SeamusWaldron/nxcube"
)

// moveKey groups moves that act on the same layer block, so the search never
// plays two of them in a row (any such pair collapses into one move).
func moveKey(m nxcube.Move) string {
	switch m.Kind {
	case nxcube.KindSlice:
		return "s" + m.Slice.String()
	case nxcube.KindWide:
		return fmt.Sprintf("w%d%s", m.Depth, m.Face)
	}
	return "f" + m.Face.String()
}

// iterativeDeepening searches for a move sequence over pool that takes cube
// to a state where done reports true, trying depths 1..maxDepth.
func iterativeDeepening(cube *nxcube.Cube, pool []nxcube.Move, maxDepth int, done func(*nxcube.Cube) bool) ([]nxcube.Move, bool) {
	if done(cube) {
		return nil, true
	}
	for depth := 1; depth <= maxDepth; depth++ {
		if moves, ok := searchAtDepth(cube, pool, depth, "", done); ok {
			return moves, true
		}
	}
	return nil, false
}

func searchAtDepth(cube *nxcube.Cube, pool []nxcube.Move, depth int, prevKey string, done func(*nxcube.Cube) bool) ([]nxcube.Move, bool) {
	for _, m := range pool {
		key := moveKey(m)
		if key == prevKey {
			continue
		}

		next := cube.Clone()
		if err := next.Apply(m); err != nil {
			continue
		}
		if done(next) {
			return []nxcube.Move{m}, true
		}
		if depth > 1 {
			if rest, ok := searchAtDepth(next, pool, depth-1, key, done); ok {
				return append([]nxcube.Move{m}, rest...), true
			}
		}
	}
	return nil, false
}

func faceMoveSet(faces ...nxcube.FaceName) []nxcube.Move {
	turns := [3]nxcube.Turn{nxcube.Clockwise, nxcube.CounterClockwise, nxcube.Double}
	var pool []nxcube.Move
	for _, f := range faces {
		for _, t := range turns {
			pool = append(pool, nxcube.FaceMove(f, t))
		}
	}
	return pool
}
