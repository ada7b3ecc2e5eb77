package nxcube

import (
	"strconv"
	"strings"
)

// ParseMove parses a single token of standard cube notation.
//
// Basic moves, slices, and rotations are matched case-insensitively ("r" is
// the face move R, never a wide move). Tokens ending in w, w' or w2 are wide
// moves with an optional numeric depth prefix; a bare "Rw" means depth 2.
func ParseMove(token string) (Move, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return Move{}, ErrEmptyInput
	}
	if strings.HasSuffix(trimmed, "w") || strings.HasSuffix(trimmed, "w'") || strings.HasSuffix(trimmed, "w2") {
		return parseWideMove(trimmed)
	}
	return parsePlainMove(trimmed)
}

func parseWideMove(token string) (Move, error) {
	rest := token
	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}

	depth := DefaultWideDepth
	if digits > 0 {
		d, err := strconv.Atoi(rest[:digits])
		if err != nil || d == 0 {
			return Move{}, &InvalidDepthError{Value: rest[:digits]}
		}
		depth = d
	}
	rest = rest[digits:]

	if rest == "" {
		return Move{}, &InvalidMoveError{Token: token}
	}
	var face FaceName
	switch rest[0] {
	case 'R', 'r':
		face = Right
	case 'L', 'l':
		face = Left
	case 'U', 'u':
		face = Up
	case 'D', 'd':
		face = Down
	case 'F', 'f':
		face = Front
	case 'B', 'b':
		face = Back
	default:
		return Move{}, &InvalidMoveError{Token: token}
	}

	rest = rest[1:]
	if rest == "" || rest[0] != 'w' {
		return Move{}, &InvalidMoveError{Token: token}
	}

	turn := Clockwise
	switch rest[1:] {
	case "":
	case "'":
		turn = CounterClockwise
	case "2":
		turn = Double
	default:
		return Move{}, &InvalidMoveError{Token: token}
	}

	return WideMove(face, turn, depth), nil
}

func parsePlainMove(token string) (Move, error) {
	// Rotations keep their case; everything else is matched uppercased.
	normalized := token
	switch token[0] {
	case 'x', 'y', 'z':
	default:
		normalized = strings.ToUpper(token)
	}

	base := normalized
	turn := Clockwise
	if strings.HasSuffix(normalized, "'") {
		base = normalized[:len(normalized)-1]
		turn = CounterClockwise
	} else if strings.HasSuffix(normalized, "2") {
		base = normalized[:len(normalized)-1]
		turn = Double
	}

	switch base {
	case "R":
		return FaceMove(Right, turn), nil
	case "L":
		return FaceMove(Left, turn), nil
	case "U":
		return FaceMove(Up, turn), nil
	case "D":
		return FaceMove(Down, turn), nil
	case "F":
		return FaceMove(Front, turn), nil
	case "B":
		return FaceMove(Back, turn), nil
	case "M":
		return SliceMove(SliceM, turn), nil
	case "E":
		return SliceMove(SliceE, turn), nil
	case "S":
		return SliceMove(SliceS, turn), nil
	case "x", "X":
		return RotationMove(AxisX, turn), nil
	case "y", "Y":
		return RotationMove(AxisY, turn), nil
	case "z", "Z":
		return RotationMove(AxisZ, turn), nil
	}
	return Move{}, &InvalidMoveError{Token: token}
}

// ParseAlgorithm parses a whitespace-separated move sequence. Blank input
// yields an empty sequence, not an error.
func ParseAlgorithm(input string) ([]Move, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, nil
	}
	moves := make([]Move, 0, len(fields))
	for _, token := range fields {
		m, err := ParseMove(token)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
