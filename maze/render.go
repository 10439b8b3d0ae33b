package maze

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

const (
	wallGlyph  = '#'
	openGlyph  = ' '
	pathGlyph  = '.'
	startGlyph = 'S'
	goalGlyph  = 'G'
)

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.Render(nil)
}

// Render draws the maze one text row per grid row. Cells on path are marked with '.',
// the start with 'S' and the last path cell with 'G'.
func (m *Maze) Render(path []Position) string {
	onPath := mapset.Of(path...)
	var goal *Position
	if len(path) > 0 {
		goal = &path[len(path)-1]
	}

	var output strings.Builder
	output.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := Position{X: x, Y: y}
			switch {
			case p == m.Start:
				output.WriteRune(startGlyph)
			case goal != nil && p == *goal:
				output.WriteRune(goalGlyph)
			case onPath.Has(p):
				output.WriteRune(pathGlyph)
			case m.Walls.IsWall(p):
				output.WriteRune(wallGlyph)
			default:
				output.WriteRune(openGlyph)
			}
		}
		output.WriteByte('\n')
	}

	return output.String()
}
