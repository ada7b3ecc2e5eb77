package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/nxcube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stepStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerStyles maps cube colors to terminal colors. Blue stickers render
// on 27 rather than pure blue for readability on dark terminals.
var stickerStyles = map[nxcube.Color]lipgloss.Style{
	nxcube.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	nxcube.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	nxcube.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	nxcube.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
	nxcube.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	nxcube.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
}

func renderSticker(c nxcube.Color) string {
	style, ok := stickerStyles[c]
	if !ok {
		return "? "
	}
	return style.Render(string(c.Letter())) + " "
}

func renderFaceRow(f *nxcube.Face, row int) string {
	var b strings.Builder
	for col := 0; col < f.Size(); col++ {
		b.WriteString(renderSticker(f.Get(row, col)))
	}
	return b.String()
}

// renderCube draws the cube as an unfolded net with colored sticker letters:
//
//	    U
//	L F R B
//	    D
func renderCube(c *nxcube.Cube) string {
	size := c.Size()
	pad := strings.Repeat(" ", 2*size)

	var b strings.Builder
	up := c.Face(nxcube.Up)
	for row := 0; row < size; row++ {
		b.WriteString(pad)
		b.WriteString(renderFaceRow(up, row))
		b.WriteString("\n")
	}

	middle := [4]*nxcube.Face{
		c.Face(nxcube.Left), c.Face(nxcube.Front),
		c.Face(nxcube.Right), c.Face(nxcube.Back),
	}
	for row := 0; row < size; row++ {
		for _, f := range middle {
			b.WriteString(renderFaceRow(f, row))
		}
		b.WriteString("\n")
	}

	down := c.Face(nxcube.Down)
	for row := 0; row < size; row++ {
		b.WriteString(pad)
		b.WriteString(renderFaceRow(down, row))
		b.WriteString("\n")
	}

	return b.String()
}
