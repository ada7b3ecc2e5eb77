package nxcube

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// SerialVersion is the wire format version this package reads and writes.
const SerialVersion = 1

type faceDoc struct {
	Stickers [][]string `json:"stickers"`
	Size     int        `json:"size"`
}

type cubeDoc struct {
	Size  int     `json:"size"`
	Up    faceDoc `json:"up"`
	Down  faceDoc `json:"down"`
	Front faceDoc `json:"front"`
	Back  faceDoc `json:"back"`
	Left  faceDoc `json:"left"`
	Right faceDoc `json:"right"`
}

type stateDoc struct {
	Version int      `json:"version"`
	Cube    *cubeDoc `json:"cube"`
}

func encodeFace(f *Face) faceDoc {
	n := f.Size()
	rows := make([][]string, n)
	for r := 0; r < n; r++ {
		row := make([]string, n)
		for c := 0; c < n; c++ {
			row[c] = f.Get(r, c).String()
		}
		rows[r] = row
	}
	return faceDoc{Stickers: rows, Size: n}
}

// ToJSON serializes the cube as a versioned JSON document. Sticker colors
// are written as their names ("White", "Green", ...).
func (c *Cube) ToJSON() ([]byte, error) {
	return json.Marshal(c.document())
}

// ToJSONIndent is ToJSON with two-space indentation.
func (c *Cube) ToJSONIndent() ([]byte, error) {
	return json.MarshalIndent(c.document(), "", "  ")
}

func (c *Cube) document() stateDoc {
	return stateDoc{
		Version: SerialVersion,
		Cube: &cubeDoc{
			Size:  c.size,
			Up:    encodeFace(&c.faces[Up]),
			Down:  encodeFace(&c.faces[Down]),
			Front: encodeFace(&c.faces[Front]),
			Back:  encodeFace(&c.faces[Back]),
			Left:  encodeFace(&c.faces[Left]),
			Right: encodeFace(&c.faces[Right]),
		},
	}
}

// FromJSON reconstructs a cube from a document produced by ToJSON.
//
// Malformed JSON, a missing or structurally inconsistent cube object, empty
// input, and unknown color names all yield a *DecodeError; a version other
// than SerialVersion yields an *UnsupportedVersionError.
func FromJSON(data []byte) (*Cube, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &DecodeError{Err: errors.New("empty input")}
	}

	var doc stateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if doc.Cube == nil {
		return nil, &DecodeError{Err: errors.New("missing cube object")}
	}
	if doc.Version != SerialVersion {
		return nil, &UnsupportedVersionError{Found: doc.Version, Supported: SerialVersion}
	}

	cube, err := New(doc.Cube.Size)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	faces := [6]struct {
		name FaceName
		doc  *faceDoc
	}{
		{Up, &doc.Cube.Up},
		{Down, &doc.Cube.Down},
		{Front, &doc.Cube.Front},
		{Back, &doc.Cube.Back},
		{Left, &doc.Cube.Left},
		{Right, &doc.Cube.Right},
	}
	for _, f := range faces {
		if err := decodeFace(cube.Face(f.name), f.doc, doc.Cube.Size, f.name); err != nil {
			return nil, err
		}
	}
	return cube, nil
}

func decodeFace(dst *Face, src *faceDoc, size int, name FaceName) error {
	if src.Size != size || len(src.Stickers) != size {
		return &DecodeError{Err: fmt.Errorf("face %s: expected %dx%d stickers", name, size, size)}
	}
	for r, row := range src.Stickers {
		if len(row) != size {
			return &DecodeError{Err: fmt.Errorf("face %s row %d: expected %d stickers, got %d", name, r, size, len(row))}
		}
		for c, cell := range row {
			color, ok := colorFromName(cell)
			if !ok {
				return &DecodeError{Err: fmt.Errorf("face %s: unknown color %q", name, cell)}
			}
			dst.Set(r, c, color)
		}
	}
	return nil
}
