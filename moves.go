package nxcube

import "fmt"

// Apply performs a move on the cube, mutating it in place.
//
// Slice moves require an odd-sized cube; wide moves require a depth between
// 2 and the cube size. Counter-clockwise and double turns are built from
// repeated clockwise applications.
func (c *Cube) Apply(m Move) error {
	switch m.Kind {
	case KindSlice:
		if c.size%2 == 0 {
			return fmt.Errorf("nxcube: %s slice moves only work on odd-sized cubes", m.Slice)
		}
	case KindWide:
		if m.Depth < DefaultWideDepth {
			return &InvalidDepthError{Value: fmt.Sprintf("%d", m.Depth)}
		}
		if m.Depth > c.size {
			return fmt.Errorf("nxcube: wide move depth %d exceeds cube size %d", m.Depth, c.size)
		}
	}

	repeats := 1
	switch m.Turn {
	case CounterClockwise:
		repeats = 3
	case Double:
		repeats = 2
	}
	for i := 0; i < repeats; i++ {
		c.applyClockwise(m)
	}
	return nil
}

// ApplyMoves performs a sequence of moves, stopping at the first failure.
func (c *Cube) ApplyMoves(moves []Move) error {
	for _, m := range moves {
		if err := c.Apply(m); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cube) applyClockwise(m Move) {
	switch m.Kind {
	case KindFace:
		c.turnLayers(m.Face, 1)
	case KindWide:
		c.turnLayers(m.Face, m.Depth)
	case KindSlice:
		mid := c.size / 2
		switch m.Slice {
		case SliceM:
			c.cycleL(mid)
		case SliceE:
			c.cycleD(mid)
		case SliceS:
			c.cycleF(mid)
		}
	case KindRotation:
		switch m.Axis {
		case AxisX:
			c.turnLayers(Right, c.size)
		case AxisY:
			c.turnLayers(Up, c.size)
		case AxisZ:
			c.turnLayers(Front, c.size)
		}
	}
}

// turnLayers rotates the named face clockwise and cycles the adjacent
// sticker strips for layers 0..depth-1 (layer 0 is the face's own ring).
// Turning every layer also rotates the opposite face, which makes it a
// whole-cube rotation.
func (c *Cube) turnLayers(face FaceName, depth int) {
	c.faces[face].rotateCW()
	if depth == c.size {
		c.faces[face.Opposite()].rotateCCW()
	}
	for d := 0; d < depth; d++ {
		switch face {
		case Right:
			c.cycleR(d)
		case Left:
			c.cycleL(d)
		case Up:
			c.cycleU(d)
		case Down:
			c.cycleD(d)
		case Front:
			c.cycleF(d)
		case Back:
			c.cycleB(d)
		}
	}
}

func reversed(colors []Color) []Color {
	out := make([]Color, len(colors))
	for i, c := range colors {
		out[len(colors)-1-i] = c
	}
	return out
}

// cycleR moves the strips around the R axis at layer d: Up -> Front ->
// Down -> Back -> Up. The back face is viewed from outside, so its column
// is mirrored.
func (c *Cube) cycleR(d int) {
	col := c.size - 1 - d
	up, front, down, back := &c.faces[Up], &c.faces[Front], &c.faces[Down], &c.faces[Back]

	upCol := up.Col(col)
	frontCol := front.Col(col)
	downCol := down.Col(col)
	backCol := reversed(back.Col(d))

	front.setCol(col, upCol)
	down.setCol(col, frontCol)
	back.setCol(d, reversed(downCol))
	up.setCol(col, backCol)
}

// cycleL is the mirror of cycleR: Up -> Back -> Down -> Front -> Up.
func (c *Cube) cycleL(d int) {
	backCol := c.size - 1 - d
	up, front, down, back := &c.faces[Up], &c.faces[Front], &c.faces[Down], &c.faces[Back]

	upCol := up.Col(d)
	frontCol := front.Col(d)
	downCol := down.Col(d)
	oldBack := reversed(back.Col(backCol))

	back.setCol(backCol, reversed(upCol))
	down.setCol(d, oldBack)
	front.setCol(d, downCol)
	up.setCol(d, frontCol)
}

// cycleU moves row d around the U axis: Front -> Right -> Back -> Left.
func (c *Cube) cycleU(d int) {
	front, right, back, left := &c.faces[Front], &c.faces[Right], &c.faces[Back], &c.faces[Left]

	frontRow := front.Row(d)
	rightRow := right.Row(d)
	backRow := back.Row(d)
	leftRow := left.Row(d)

	right.setRow(d, frontRow)
	back.setRow(d, rightRow)
	left.setRow(d, backRow)
	front.setRow(d, leftRow)
}

// cycleD moves the mirrored row around the D axis: Front -> Left -> Back ->
// Right.
func (c *Cube) cycleD(d int) {
	row := c.size - 1 - d
	front, right, back, left := &c.faces[Front], &c.faces[Right], &c.faces[Back], &c.faces[Left]

	frontRow := front.Row(row)
	rightRow := right.Row(row)
	backRow := back.Row(row)
	leftRow := left.Row(row)

	left.setRow(row, frontRow)
	back.setRow(row, leftRow)
	right.setRow(row, backRow)
	front.setRow(row, rightRow)
}

// cycleF moves the ring at layer d around the F axis: Up -> Right -> Down ->
// Left. Two of the hand-offs mirror because rows meet columns.
func (c *Cube) cycleF(d int) {
	n := c.size
	up, right, down, left := &c.faces[Up], &c.faces[Right], &c.faces[Down], &c.faces[Left]

	upRow := up.Row(n - 1 - d)
	rightCol := right.Col(d)
	downRow := down.Row(d)
	leftCol := left.Col(n - 1 - d)

	right.setCol(d, upRow)
	down.setRow(d, reversed(rightCol))
	left.setCol(n-1-d, downRow)
	up.setRow(n-1-d, reversed(leftCol))
}

// cycleB moves the ring at layer d around the B axis: Up -> Left -> Down ->
// Right.
func (c *Cube) cycleB(d int) {
	n := c.size
	up, right, down, left := &c.faces[Up], &c.faces[Right], &c.faces[Down], &c.faces[Left]

	upRow := up.Row(d)
	leftCol := left.Col(d)
	downRow := down.Row(n - 1 - d)
	rightCol := right.Col(n - 1 - d)

	left.setCol(d, reversed(upRow))
	down.setRow(n-1-d, leftCol)
	right.setCol(n-1-d, reversed(downRow))
	up.setRow(d, rightCol)
}
