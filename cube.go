package nxcube

import "strings"

// Color is one of the six standard sticker colors.
type Color int

const (
	White Color = iota
	Yellow
	Red
	Orange
	Blue
	Green
)

var colorNames = [...]string{"White", "Yellow", "Red", "Orange", "Blue", "Green"}

// AllColors returns the six colors in canonical order.
func AllColors() [6]Color {
	return [6]Color{White, Yellow, Red, Orange, Blue, Green}
}

func (c Color) String() string {
	if c < White || c > Green {
		return "?"
	}
	return colorNames[c]
}

// Letter returns the single-character symbol used in net renderings.
func (c Color) Letter() byte {
	switch c {
	case White:
		return 'W'
	case Yellow:
		return 'Y'
	case Red:
		return 'R'
	case Orange:
		return 'O'
	case Blue:
		return 'B'
	case Green:
		return 'G'
	}
	return '?'
}

// Opposite returns the color on the opposite face of a solved cube.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Yellow
	case Yellow:
		return White
	case Red:
		return Orange
	case Orange:
		return Red
	case Blue:
		return Green
	case Green:
		return Blue
	}
	return c
}

func colorFromName(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return White, false
}

// FaceName identifies one of the six cube faces.
type FaceName int

const (
	Up FaceName = iota
	Down
	Front
	Back
	Left
	Right
)

// AllFaces returns the six faces in canonical order.
func AllFaces() [6]FaceName {
	return [6]FaceName{Up, Down, Front, Back, Left, Right}
}

func (f FaceName) String() string {
	switch f {
	case Up:
		return "U"
	case Down:
		return "D"
	case Front:
		return "F"
	case Back:
		return "B"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "?"
}

// Label returns the human-readable face name.
func (f FaceName) Label() string {
	switch f {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "?"
}

// Opposite returns the face on the other side of the cube.
func (f FaceName) Opposite() FaceName {
	switch f {
	case Up:
		return Down
	case Down:
		return Up
	case Front:
		return Back
	case Back:
		return Front
	case Left:
		return Right
	case Right:
		return Left
	}
	return f
}

// StandardColor returns the color this face carries on a solved cube.
func (f FaceName) StandardColor() Color {
	switch f {
	case Up:
		return White
	case Down:
		return Yellow
	case Front:
		return Green
	case Back:
		return Blue
	case Left:
		return Orange
	case Right:
		return Red
	}
	return White
}

// Face is one NxN sticker grid. Position (0,0) is the top-left sticker when
// looking straight at the face.
type Face struct {
	size     int
	stickers [][]Color
}

func newFace(size int, color Color) Face {
	stickers := make([][]Color, size)
	for r := range stickers {
		row := make([]Color, size)
		for c := range row {
			row[c] = color
		}
		stickers[r] = row
	}
	return Face{size: size, stickers: stickers}
}

// Size returns N for an NxN face.
func (f *Face) Size() int { return f.size }

// Get returns the color at (row, col).
func (f *Face) Get(row, col int) Color { return f.stickers[row][col] }

// Set overwrites the color at (row, col).
func (f *Face) Set(row, col int, color Color) { f.stickers[row][col] = color }

// Row returns a copy of the given row, left to right.
func (f *Face) Row(row int) []Color {
	out := make([]Color, f.size)
	copy(out, f.stickers[row])
	return out
}

// Col returns a copy of the given column, top to bottom.
func (f *Face) Col(col int) []Color {
	out := make([]Color, f.size)
	for r := 0; r < f.size; r++ {
		out[r] = f.stickers[r][col]
	}
	return out
}

func (f *Face) setRow(row int, colors []Color) {
	copy(f.stickers[row], colors)
}

func (f *Face) setCol(col int, colors []Color) {
	for r := 0; r < f.size; r++ {
		f.stickers[r][col] = colors[r]
	}
}

// IsUniform reports whether every sticker on the face has the same color.
func (f *Face) IsUniform() bool {
	first := f.stickers[0][0]
	for _, row := range f.stickers {
		for _, c := range row {
			if c != first {
				return false
			}
		}
	}
	return true
}

func (f *Face) rotateCW() {
	n := f.size
	rotated := make([][]Color, n)
	for r := range rotated {
		rotated[r] = make([]Color, n)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			rotated[c][n-1-r] = f.stickers[r][c]
		}
	}
	f.stickers = rotated
}

func (f *Face) rotateCCW() {
	n := f.size
	rotated := make([][]Color, n)
	for r := range rotated {
		rotated[r] = make([]Color, n)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			rotated[n-1-c][r] = f.stickers[r][c]
		}
	}
	f.stickers = rotated
}

func (f *Face) clone() Face {
	out := Face{size: f.size, stickers: make([][]Color, f.size)}
	for r, row := range f.stickers {
		out.stickers[r] = make([]Color, f.size)
		copy(out.stickers[r], row)
	}
	return out
}

// MinSize and MaxSize bound the supported cube sizes.
const (
	MinSize = 2
	MaxSize = 20
)

// Cube is an NxN sticker cube. Read-only methods are safe for concurrent
// use; callers that mutate a shared cube must Clone first or synchronize.
type Cube struct {
	size  int
	faces [6]Face
}

// New returns a solved cube of the given size (2 to 20).
func New(size int) (*Cube, error) {
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}
	c := &Cube{size: size}
	for _, f := range AllFaces() {
		c.faces[f] = newFace(size, f.StandardColor())
	}
	return c, nil
}

// Size returns N for an NxN cube.
func (c *Cube) Size() int { return c.size }

// Face returns the named face. The returned pointer aliases the cube's
// internal state.
func (c *Cube) Face(name FaceName) *Face {
	return &c.faces[name]
}

// SetSticker overwrites a single sticker.
func (c *Cube) SetSticker(face FaceName, row, col int, color Color) {
	c.faces[face].Set(row, col, color)
}

// Clone returns a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	out := &Cube{size: c.size}
	for i := range c.faces {
		out.faces[i] = c.faces[i].clone()
	}
	return out
}

// Equal reports whether both cubes have identical sticker layouts.
func (c *Cube) Equal(other *Cube) bool {
	if other == nil || c.size != other.size {
		return false
	}
	for i := range c.faces {
		for r := 0; r < c.size; r++ {
			for col := 0; col < c.size; col++ {
				if c.faces[i].Get(r, col) != other.faces[i].Get(r, col) {
					return false
				}
			}
		}
	}
	return true
}

// IsSolved reports whether every face is uniform. Orientation does not
// matter: a whole-cube rotation of a solved cube is still solved.
func (c *Cube) IsSolved() bool {
	for i := range c.faces {
		if !c.faces[i].IsUniform() {
			return false
		}
	}
	return true
}

// CountColors tallies how often each color appears across all faces.
func (c *Cube) CountColors() map[Color]int {
	counts := make(map[Color]int, 6)
	for i := range c.faces {
		for _, row := range c.faces[i].stickers {
			for _, col := range row {
				counts[col]++
			}
		}
	}
	return counts
}

// HasValidColorCounts reports whether all six colors appear exactly N^2
// times each.
func (c *Cube) HasValidColorCounts() bool {
	counts := c.CountColors()
	if len(counts) != 6 {
		return false
	}
	expected := c.size * c.size
	for _, n := range counts {
		if n != expected {
			return false
		}
	}
	return true
}

// String renders the cube as an unfolded net:
//
//	    U
//	L F R B
//	    D
func (c *Cube) String() string {
	var b strings.Builder
	pad := strings.Repeat("  ", c.size)

	writeRow := func(face FaceName, row int) {
		f := &c.faces[face]
		for col := 0; col < c.size; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(f.Get(row, col).Letter())
		}
	}

	for r := 0; r < c.size; r++ {
		b.WriteString(pad)
		writeRow(Up, r)
		b.WriteByte('\n')
	}
	for r := 0; r < c.size; r++ {
		writeRow(Left, r)
		b.WriteByte(' ')
		writeRow(Front, r)
		b.WriteByte(' ')
		writeRow(Right, r)
		b.WriteByte(' ')
		writeRow(Back, r)
		b.WriteByte('\n')
	}
	for r := 0; r < c.size; r++ {
		b.WriteString(pad)
		writeRow(Down, r)
		b.WriteByte('\n')
	}
	return b.String()
}
