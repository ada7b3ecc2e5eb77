package nxcube

import (
	"errors"
	"testing"
)

func TestParseMove_BasicFaces(t *testing.T) {
	cases := map[string]Move{
		"R":  FaceMove(Right, Clockwise),
		"L'": FaceMove(Left, CounterClockwise),
		"U2": FaceMove(Up, Double),
		"D":  FaceMove(Down, Clockwise),
		"F'": FaceMove(Front, CounterClockwise),
		"B2": FaceMove(Back, Double),
	}
	for token, want := range cases {
		got, err := ParseMove(token)
		if err != nil {
			t.Fatalf("ParseMove(%q) failed: %v", token, err)
		}
		if got != want {
			t.Errorf("ParseMove(%q) = %+v, want %+v", token, got, want)
		}
	}
}

func TestParseMove_LowercaseFacesAreBasic(t *testing.T) {
	for _, token := range []string{"r", "u'", "f2", "b", "l", "d'"} {
		got, err := ParseMove(token)
		if err != nil {
			t.Fatalf("ParseMove(%q) failed: %v", token, err)
		}
		if got.Kind != KindFace {
			t.Errorf("ParseMove(%q).Kind = %v, want KindFace", token, got.Kind)
		}
	}
}

func TestParseMove_SlicesAndRotations(t *testing.T) {
	cases := map[string]Move{
		"M":  SliceMove(SliceM, Clockwise),
		"E'": SliceMove(SliceE, CounterClockwise),
		"S2": SliceMove(SliceS, Double),
		"x":  RotationMove(AxisX, Clockwise),
		"X":  RotationMove(AxisX, Clockwise),
		"y'": RotationMove(AxisY, CounterClockwise),
		"Y'": RotationMove(AxisY, CounterClockwise),
		"z2": RotationMove(AxisZ, Double),
	}
	for token, want := range cases {
		got, err := ParseMove(token)
		if err != nil {
			t.Fatalf("ParseMove(%q) failed: %v", token, err)
		}
		if got != want {
			t.Errorf("ParseMove(%q) = %+v, want %+v", token, got, want)
		}
	}
}

func TestParseMove_WideMoves(t *testing.T) {
	cases := map[string]Move{
		"Rw":   WideMove(Right, Clockwise, 2),
		"Rw'":  WideMove(Right, CounterClockwise, 2),
		"Rw2":  WideMove(Right, Double, 2),
		"3Rw":  WideMove(Right, Clockwise, 3),
		"2Uw":  WideMove(Up, Clockwise, 2),
		"3Rw2": WideMove(Right, Double, 3),
		"4Fw'": WideMove(Front, CounterClockwise, 4),
	}
	for token, want := range cases {
		got, err := ParseMove(token)
		if err != nil {
			t.Fatalf("ParseMove(%q) failed: %v", token, err)
		}
		if got != want {
			t.Errorf("ParseMove(%q) = %+v, want %+v", token, got, want)
		}
	}
}

func TestParseMove_InvalidTokens(t *testing.T) {
	for _, token := range []string{"Q", "R3", "RR", "Rw3", "w"} {
		_, err := ParseMove(token)
		var invalid *InvalidMoveError
		if !errors.As(err, &invalid) {
			t.Errorf("ParseMove(%q) error = %v, want *InvalidMoveError", token, err)
		}
	}
}

func TestParseMove_ZeroDepthIsInvalid(t *testing.T) {
	_, err := ParseMove("0Rw")
	var depthErr *InvalidDepthError
	if !errors.As(err, &depthErr) {
		t.Fatalf("ParseMove(\"0Rw\") error = %v, want *InvalidDepthError", err)
	}
	if depthErr.Value != "0" {
		t.Errorf("depth error value = %q, want \"0\"", depthErr.Value)
	}
}

func TestParseMove_EmptyToken(t *testing.T) {
	if _, err := ParseMove("  "); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
}

func TestParseAlgorithm_Sequence(t *testing.T) {
	moves, err := ParseAlgorithm("R U R' U'")
	if err != nil {
		t.Fatalf("ParseAlgorithm failed: %v", err)
	}
	if len(moves) != 4 {
		t.Fatalf("expected 4 moves, got %d", len(moves))
	}
	if moves[2] != FaceMove(Right, CounterClockwise) {
		t.Errorf("moves[2] = %+v, want R'", moves[2])
	}
}

func TestParseAlgorithm_ExtraWhitespace(t *testing.T) {
	moves, err := ParseAlgorithm("  R   U\tR'  U' ")
	if err != nil {
		t.Fatalf("ParseAlgorithm failed: %v", err)
	}
	if len(moves) != 4 {
		t.Errorf("expected 4 moves, got %d", len(moves))
	}
}

func TestParseAlgorithm_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   "} {
		moves, err := ParseAlgorithm(input)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q) error = %v, want nil", input, err)
		}
		if len(moves) != 0 {
			t.Errorf("ParseAlgorithm(%q) = %v, want empty", input, moves)
		}
	}
}

func TestParseAlgorithm_MixedKinds(t *testing.T) {
	moves, err := ParseAlgorithm("R Rw M x' U2")
	if err != nil {
		t.Fatalf("ParseAlgorithm failed: %v", err)
	}
	wantKinds := []MoveKind{KindFace, KindWide, KindSlice, KindRotation, KindFace}
	for i, kind := range wantKinds {
		if moves[i].Kind != kind {
			t.Errorf("moves[%d].Kind = %v, want %v", i, moves[i].Kind, kind)
		}
	}
}

func TestNotation_RoundTrip(t *testing.T) {
	input := "R U' F2 M E' S2 x y' z2 Rw 3Uw' 4Fw2"
	moves, err := ParseAlgorithm(input)
	if err != nil {
		t.Fatalf("ParseAlgorithm failed: %v", err)
	}
	if got := FormatMoves(moves); got != input {
		t.Errorf("FormatMoves = %q, want %q", got, input)
	}
}
