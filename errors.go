package nxcube

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the engine.
var (
	// ErrInvalidSize is returned when a cube size outside 2..20 is requested.
	ErrInvalidSize = errors.New("nxcube: cube size must be between 2 and 20")

	// ErrEmptyInput is returned when a single move token is empty.
	ErrEmptyInput = errors.New("nxcube: empty input string")
)

// Reserved validation errors. Full solvability checking is not implemented;
// these kinds exist so callers can already branch on them.
var (
	ErrEdgeParity        = errors.New("nxcube: edge parity error: edges cannot be solved")
	ErrCornerParity      = errors.New("nxcube: corner parity error: corners cannot be solved")
	ErrPermutationParity = errors.New("nxcube: permutation parity error: cube has an odd permutation")
)

// InvalidMoveError reports a token that is not valid move notation.
type InvalidMoveError struct {
	Token string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("nxcube: invalid move notation: %s", e.Token)
}

// InvalidDepthError reports an unusable wide-move depth prefix, e.g. "0Rw".
type InvalidDepthError struct {
	Value string
}

func (e *InvalidDepthError) Error() string {
	return fmt.Sprintf("nxcube: invalid depth value: %s", e.Value)
}

// ColorCountError reports a color that does not appear exactly N^2 times.
type ColorCountError struct {
	Color    Color
	Expected int
	Found    int
}

func (e *ColorCountError) Error() string {
	return fmt.Sprintf("nxcube: invalid color count for %s: expected %d, found %d",
		e.Color, e.Expected, e.Found)
}

// MissingColorsError reports colors absent from the cube entirely.
type MissingColorsError struct {
	Missing []Color
}

func (e *MissingColorsError) Error() string {
	names := make([]string, len(e.Missing))
	for i, c := range e.Missing {
		names[i] = c.String()
	}
	return fmt.Sprintf("nxcube: missing colors: [%s]", strings.Join(names, " "))
}

// DecodeError wraps a failure to decode a serialized cube state.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("nxcube: cannot decode cube state: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnsupportedVersionError reports a serialized document whose version the
// engine does not understand.
type UnsupportedVersionError struct {
	Found     int
	Supported int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("nxcube: unsupported serialization version %d (supported: %d)",
		e.Found, e.Supported)
}
