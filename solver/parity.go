package solver

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/nxcube"
)

// Parity classifies the reduction parity of a big cube.
type Parity int

const (
	ParityNone Parity = iota
	ParityOLL
	ParityPLL
	ParityBoth
)

func (p Parity) String() string {
	switch p {
	case ParityOLL:
		return "OLL"
	case ParityPLL:
		return "PLL"
	case ParityBoth:
		return "OLL & PLL"
	}
	return "None"
}

// DetectOLLParity reports whether a reduced big cube has OLL parity: an odd
// number of flipped edge pieces on the top layer. It inspects the inner
// border stickers of the up face; an odd mismatch count against the face
// center means a single edge group is flipped.
func DetectOLLParity(cube *nxcube.Cube) bool {
	size := cube.Size()
	if size < 4 {
		return false
	}

	up := cube.Face(nxcube.Up)
	center := up.Get(1, 1)
	mismatches := 0
	for i := 1; i < size-1; i++ {
		if up.Get(0, i) != center {
			mismatches++
		}
		if up.Get(size-1, i) != center {
			mismatches++
		}
		if up.Get(i, 0) != center {
			mismatches++
		}
		if up.Get(i, size-1) != center {
			mismatches++
		}
	}
	return mismatches%2 == 1
}

// DetectPLLParity reports whether a reduced big cube has PLL parity: two
// edge groups swapped. It checks the top edge strip of each side face
// against that face's center; exactly two mismatched strips indicate the
// swap.
func DetectPLLParity(cube *nxcube.Cube) bool {
	size := cube.Size()
	if size < 4 {
		return false
	}

	strips := []struct {
		face nxcube.FaceName
		get  func(f *nxcube.Face, i int) nxcube.Color
	}{
		{nxcube.Front, func(f *nxcube.Face, i int) nxcube.Color { return f.Get(0, i) }},
		{nxcube.Right, func(f *nxcube.Face, i int) nxcube.Color { return f.Get(i, 0) }},
		{nxcube.Back, func(f *nxcube.Face, i int) nxcube.Color { return f.Get(0, i) }},
		{nxcube.Left, func(f *nxcube.Face, i int) nxcube.Color { return f.Get(i, size-1) }},
	}

	mismatched := 0
	for _, strip := range strips {
		face := cube.Face(strip.face)
		center := face.Get(1, 1)
		for i := 1; i < size-1; i++ {
			if strip.get(face, i) != center {
				mismatched++
				break
			}
		}
	}
	return mismatched == 2
}

// DetectParity combines both parity checks.
func DetectParity(cube *nxcube.Cube) Parity {
	oll := DetectOLLParity(cube)
	pll := DetectPLLParity(cube)
	switch {
	case oll && pll:
		return ParityBoth
	case oll:
		return ParityOLL
	case pll:
		return ParityPLL
	}
	return ParityNone
}

// ollParityAlgorithm flips the single misoriented edge group. The standard
// fix uses inner slice moves; this outer-move variant suits the reduction
// pipeline where inner layers are already paired.
func ollParityAlgorithm() []nxcube.Move {
	return mustParse("R U U R U U R' U U R' U U R U U R'")
}

// pllParityAlgorithm swaps the two exchanged edge groups.
func pllParityAlgorithm() []nxcube.Move {
	return mustParse("R2 U U R2 U U R2 U U")
}

// ResolveParity detects OLL and PLL parity on a 4x4+ cube and returns the
// fixing algorithms as a solution. OLL is fixed before PLL because the OLL
// algorithm can alter edge permutation.
func ResolveParity(cube *nxcube.Cube) (*Solution, error) {
	start := time.Now()
	size := cube.Size()
	if size < 4 {
		return nil, fmt.Errorf("solver: parity only applies to 4x4+ cubes (got %dx%d)", size, size)
	}

	parity := DetectParity(cube)
	var steps []Step
	switch parity {
	case ParityNone:
		steps = []Step{{Description: "No parity detected"}}
	case ParityOLL:
		steps = []Step{ollParityStep()}
	case ParityPLL:
		steps = []Step{pllParityStep()}
	case ParityBoth:
		steps = []Step{ollParityStep(), pllParityStep()}
	}

	return &Solution{
		Steps:    steps,
		Duration: time.Since(start),
		Method:   fmt.Sprintf("4x4+ Parity - %s", parity),
	}, nil
}

func ollParityStep() Step {
	return Step{
		Description: "Resolve OLL parity (flip single edge)",
		Moves:       ollParityAlgorithm(),
		Explanation: "A single flipped edge group is impossible on a 3x3; this flips it back",
	}
}

func pllParityStep() Step {
	return Step{
		Description: "Resolve PLL parity (swap two edges)",
		Moves:       pllParityAlgorithm(),
	}
}

func mustParse(alg string) []nxcube.Move {
	moves, err := nxcube.ParseAlgorithm(alg)
	if err != nil {
		panic(fmt.Sprintf("solver: bad built-in algorithm %q: %v", alg, err))
	}
	return moves
}
