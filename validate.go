package nxcube

// Validate checks that the cube's sticker multiset could belong to a real
// cube: all six colors present, each appearing exactly N^2 times.
//
// Piece-level checks (edge, corner and permutation parity) are not
// performed; their error kinds are reserved in errors.go.
func (c *Cube) Validate() error {
	counts := c.CountColors()

	if len(counts) != 6 {
		var missing []Color
		for _, color := range AllColors() {
			if counts[color] == 0 {
				missing = append(missing, color)
			}
		}
		return &MissingColorsError{Missing: missing}
	}

	expected := c.size * c.size
	for _, color := range AllColors() {
		if counts[color] != expected {
			return &ColorCountError{Color: color, Expected: expected, Found: counts[color]}
		}
	}
	return nil
}
