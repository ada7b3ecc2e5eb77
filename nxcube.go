// Package nxcube models NxN Rubik's cubes from 2x2 up to 20x20.
//
// The package provides the sticker-level cube state, the full move algebra
// (face moves, middle slices, whole-cube rotations, and depth-prefixed wide
// moves), a notation parser, a scramble generator, state validation, and a
// versioned JSON wire format. Solving lives in the solver subpackage.
//
// Cubes are not internally synchronized. Read-only methods may be called
// concurrently; to mutate a cube that other goroutines can see, Clone it
// first.
package nxcube
