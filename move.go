package nxcube

import (
	"fmt"
	"strings"
)

// Turn is the rotation amount of a move.
type Turn int

const (
	Clockwise        Turn = 1
	CounterClockwise Turn = -1
	Double           Turn = 2
)

// Inverse returns the turn that undoes this one.
func (t Turn) Inverse() Turn {
	switch t {
	case Clockwise:
		return CounterClockwise
	case CounterClockwise:
		return Clockwise
	}
	return t
}

func (t Turn) suffix() string {
	switch t {
	case CounterClockwise:
		return "'"
	case Double:
		return "2"
	}
	return ""
}

// MoveKind distinguishes the four move families.
type MoveKind int

const (
	// KindFace turns a single outer layer (R, L, U, D, F, B).
	KindFace MoveKind = iota
	// KindSlice turns the middle layer of an odd cube (M, E, S).
	KindSlice
	// KindRotation reorients the whole cube (x, y, z).
	KindRotation
	// KindWide turns the outer layer plus inner layers to a depth (Rw, 3Rw).
	KindWide
)

// Slice identifies a middle-layer move.
type Slice int

const (
	// SliceM follows the L direction on the middle column.
	SliceM Slice = iota
	// SliceE follows the D direction on the middle row.
	SliceE
	// SliceS follows the F direction on the middle ring.
	SliceS
)

func (s Slice) String() string {
	switch s {
	case SliceM:
		return "M"
	case SliceE:
		return "E"
	case SliceS:
		return "S"
	}
	return "?"
}

// Axis identifies a whole-cube rotation axis.
type Axis int

const (
	// AxisX rotates the cube in the R direction.
	AxisX Axis = iota
	// AxisY rotates the cube in the U direction.
	AxisY
	// AxisZ rotates the cube in the F direction.
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// DefaultWideDepth is the layer count of a wide move with no depth prefix.
const DefaultWideDepth = 2

// Move is a single cube move of any kind. The zero value is R clockwise.
type Move struct {
	Kind  MoveKind
	Face  FaceName // KindFace and KindWide
	Slice Slice    // KindSlice
	Axis  Axis     // KindRotation
	Turn  Turn
	Depth int // KindWide only, >= 2
}

// FaceMove returns a single-layer face move.
func FaceMove(face FaceName, turn Turn) Move {
	return Move{Kind: KindFace, Face: face, Turn: turn}
}

// SliceMove returns a middle-layer move.
func SliceMove(slice Slice, turn Turn) Move {
	return Move{Kind: KindSlice, Slice: slice, Turn: turn}
}

// RotationMove returns a whole-cube rotation.
func RotationMove(axis Axis, turn Turn) Move {
	return Move{Kind: KindRotation, Axis: axis, Turn: turn}
}

// WideMove returns a multi-layer face move. Depth counts layers from the
// named face and must be at least 2.
func WideMove(face FaceName, turn Turn, depth int) Move {
	return Move{Kind: KindWide, Face: face, Turn: turn, Depth: depth}
}

// Inverse returns the move that undoes this one.
func (m Move) Inverse() Move {
	m.Turn = m.Turn.Inverse()
	return m
}

// Notation returns the move in standard notation, e.g. "R'", "M2", "x",
// "3Uw".
func (m Move) Notation() string {
	switch m.Kind {
	case KindSlice:
		return m.Slice.String() + m.Turn.suffix()
	case KindRotation:
		return m.Axis.String() + m.Turn.suffix()
	case KindWide:
		prefix := ""
		if m.Depth > DefaultWideDepth {
			prefix = fmt.Sprintf("%d", m.Depth)
		}
		return prefix + m.Face.String() + "w" + m.Turn.suffix()
	}
	return m.Face.String() + m.Turn.suffix()
}

func (m Move) String() string { return m.Notation() }

// InverseMoves returns the sequence that undoes moves, in reverse order.
func InverseMoves(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// FormatMoves joins a move sequence into a notation string.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}
