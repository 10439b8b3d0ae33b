package maze

import (
	"cmp"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Position is a grid coordinate. X grows to the right, Y grows downward.
type Position struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Add returns the position offset by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// InBounds reports whether p lies inside a width x height grid.
func (p Position) InBounds(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Directions lists the 4-connected unit steps in expansion order: +x, -x, +y, -y.
var Directions = []Position{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// WallSet is the set of impassable grid coordinates.
type WallSet struct {
	set mapset.Set[Position]
}

// NewWallSet returns a wall set holding exactly the given positions.
func NewWallSet(walls ...Position) WallSet {
	return WallSet{set: mapset.Of(walls...)}
}

// FullWallSet returns a wall set covering every cell of a width x height grid.
func FullWallSet(width, height int) WallSet {
	ws := WallSet{set: mapset.New[Position]()}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			ws.set.Put(Position{X: x, Y: y})
		}
	}
	return ws
}

// IsWall reports whether p is impassable.
func (w WallSet) IsWall(p Position) bool {
	return w.set.Has(p)
}

// Len returns the number of walls.
func (w WallSet) Len() int {
	return w.set.Size()
}

// carve makes p passable.
func (w WallSet) carve(p Position) {
	w.set.Remove(p)
}

// Positions returns the walls sorted row by row.
func (w WallSet) Positions() []Position {
	out := make([]Position, 0, w.set.Size())
	w.set.Each(func(p Position) {
		out = append(out, p)
	})
	slices.SortFunc(out, func(a, b Position) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}
