package nxcube

import "testing"

func TestNewScramble_Length(t *testing.T) {
	for _, length := range []int{5, 10, 20, 25} {
		s, err := NewScramble(ScrambleConfig{Length: length, Size: 3})
		if err != nil {
			t.Fatalf("NewScramble failed: %v", err)
		}
		if len(s.Moves) != length {
			t.Errorf("scramble length = %d, want %d", len(s.Moves), length)
		}
	}
}

func TestNewScramble_RejectsBadSize(t *testing.T) {
	if _, err := NewScramble(ScrambleConfig{Length: 10, Size: 1}); err != ErrInvalidSize {
		t.Errorf("error = %v, want ErrInvalidSize", err)
	}
}

func TestNewScramble_NoSameFaceTwice(t *testing.T) {
	for i := 0; i < 100; i++ {
		s, err := NewScramble(DefaultScrambleConfig())
		if err != nil {
			t.Fatalf("NewScramble failed: %v", err)
		}
		for j := 1; j < len(s.Moves); j++ {
			prev := moveBucket(s.Moves[j-1])
			curr := moveBucket(s.Moves[j])
			if prev == curr {
				t.Fatalf("moves %d and %d share face %s in %q", j-1, j, curr, s.Notation())
			}
		}
	}
}

func TestNewScramble_AvoidsOppositeFaceSandwich(t *testing.T) {
	for i := 0; i < 50; i++ {
		s, err := NewScramble(DefaultScrambleConfig())
		if err != nil {
			t.Fatalf("NewScramble failed: %v", err)
		}
		for j := 2; j < len(s.Moves); j++ {
			a := moveBucket(s.Moves[j-2])
			b := moveBucket(s.Moves[j-1])
			c := moveBucket(s.Moves[j])
			if oppositeBuckets(a, b) && (c == a || c == b) {
				t.Fatalf("move %d reuses the opposite-face pair in %q", j, s.Notation())
			}
		}
	}
}

func TestNewScramble_StateMatchesMoves(t *testing.T) {
	s, err := NewScramble(DefaultScrambleConfig())
	if err != nil {
		t.Fatalf("NewScramble failed: %v", err)
	}

	replay := mustCube(t, 3)
	if err := replay.ApplyMoves(s.Moves); err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !replay.Equal(s.Cube) {
		t.Error("scramble cube state does not match replaying its moves")
	}
	if s.Cube.IsSolved() {
		t.Error("20-move scramble should not leave the cube solved")
	}
	if err := s.Cube.Validate(); err != nil {
		t.Errorf("scrambled cube should stay valid: %v", err)
	}
}

func TestNewScramble_MostlyUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s, err := NewScramble(DefaultScrambleConfig())
		if err != nil {
			t.Fatalf("NewScramble failed: %v", err)
		}
		seen[s.Notation()] = true
	}
	if len(seen) < 95 {
		t.Errorf("only %d distinct scrambles out of 100", len(seen))
	}
}

func TestScramblePool_SliceMovesOnlyOnOddCubes(t *testing.T) {
	for _, m := range scramblePool(4) {
		if m.Kind == KindSlice {
			t.Fatal("4x4 scramble pool should not contain slice moves")
		}
	}

	hasSlice := false
	for _, m := range scramblePool(5) {
		if m.Kind == KindSlice {
			hasSlice = true
		}
		if m.Kind == KindRotation || m.Kind == KindWide {
			t.Fatalf("scramble pool should not contain %s", m.Notation())
		}
	}
	if !hasSlice {
		t.Error("5x5 scramble pool should contain slice moves")
	}
}

func TestNewScramble_2x2And4x4(t *testing.T) {
	for _, cfg := range []ScrambleConfig{{Length: 15, Size: 2}, {Length: 40, Size: 4}} {
		s, err := NewScramble(cfg)
		if err != nil {
			t.Fatalf("NewScramble(%+v) failed: %v", cfg, err)
		}
		if len(s.Moves) != cfg.Length {
			t.Errorf("length = %d, want %d", len(s.Moves), cfg.Length)
		}
		if err := s.Cube.Validate(); err != nil {
			t.Errorf("scrambled %dx%d should stay valid: %v", cfg.Size, cfg.Size, err)
		}
	}
}
