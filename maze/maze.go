/*
Package maze generates perfect mazes on a rectangular grid.

A maze starts as a grid where every cell is a wall. Carving walks a coarse
lattice of cells two steps apart, opening the destination cell and the midpoint
between them, so the carved cells always form a spanning tree: exactly one path
joins any two of them.

Carving is a randomized depth-first search driven by an explicit stack. The
only source of randomness is the shuffle of each cell's candidates, so the same
seed always produces the same maze.
*/
package maze

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Maze is a carved grid. Walls holds every cell that is still impassable.
type Maze struct {
	Width  int
	Height int
	Start  Position
	Walls  WallSet
}

// jump is a carving candidate: the cell two steps away and the midpoint joining it to the current cell.
type jump struct {
	mid  Position
	dest Position
}

// frame is one level of the carving stack.
type frame struct {
	candidates []jump
	next       int
}

// New carves a maze of the given size from start using a random source seeded with seed.
func New(width, height int, start Position, seed int64) (*Maze, error) {
	return Generate(width, height, start, rand.New(rand.NewSource(seed)))
}

// Generate carves a maze using rng to order the candidates of every cell.
func Generate(width, height int, start Position, rng *rand.Rand) (*Maze, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	if !start.InBounds(width, height) {
		return nil, ErrStartOutOfBounds
	}

	m := &Maze{
		Width:  width,
		Height: height,
		Start:  start,
		Walls:  FullWallSet(width, height),
	}
	m.carve(rng)
	return m, nil
}

// FromConfig carves the maze described by c.
func FromConfig(c Config) (*Maze, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return New(c.Width, c.Height, c.Start, c.Seed)
}

// carve opens corridors depth-first. A cell's candidates are shuffled when the cell
// is entered and each unvisited one is fully explored before the next is tried.
func (m *Maze) carve(rng *rand.Rand) {
	visited := mapset.New[Position]()
	visited.Put(m.Start)
	m.Walls.carve(m.Start)

	stack := []*frame{m.enter(m.Start, rng)}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.candidates) {
			stack = stack[:len(stack)-1]
			continue
		}

		j := top.candidates[top.next]
		top.next++
		if visited.Has(j.mid) || visited.Has(j.dest) {
			continue
		}

		visited.Put(j.mid)
		visited.Put(j.dest)
		m.Walls.carve(j.mid)
		m.Walls.carve(j.dest)
		stack = append(stack, m.enter(j.dest, rng))
	}
}

// enter builds the stack frame for pos with its candidates in random order.
func (m *Maze) enter(pos Position, rng *rand.Rand) *frame {
	candidates := m.jumps(pos)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return &frame{candidates: candidates}
}

// jumps lists the in-bounds cells two steps away from pos.
func (m *Maze) jumps(pos Position) []jump {
	result := make([]jump, 0, len(Directions))
	for _, d := range Directions {
		dest := Position{X: pos.X + 2*d.X, Y: pos.Y + 2*d.Y}
		if dest.InBounds(m.Width, m.Height) {
			result = append(result, jump{mid: pos.Add(d), dest: dest})
		}
	}
	return result
}

// IsWall reports whether p is impassable. Cells outside the grid are walls.
func (m *Maze) IsWall(p Position) bool {
	return !p.InBounds(m.Width, m.Height) || m.Walls.IsWall(p)
}

// Carved returns the number of passable cells.
func (m *Maze) Carved() int {
	return m.Width*m.Height - m.Walls.Len()
}
