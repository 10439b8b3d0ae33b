package pathfinding

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/zyedidia/generic/mapset"
)

// Obstacles reports which cells cannot be entered.
type Obstacles interface {
	IsWall(p maze.Position) bool
}

// Heuristic estimates the remaining cost from one cell to another.
type Heuristic func(from, to maze.Position) int

// SquaredEuclidean is the squared straight-line distance between two cells.
func SquaredEuclidean(from, to maze.Position) int {
	dx, dy := to.X-from.X, to.Y-from.Y
	return dx*dx + dy*dy
}

// Ordering selects which key pops a node off the open list first.
type Ordering int

const (
	// OrderHeuristic pops the lowest heuristic first and ignores the cost so far.
	OrderHeuristic Ordering = iota
	// OrderCostPlusHeuristic pops the lowest cost so far plus heuristic first.
	OrderCostPlusHeuristic
)

func (o Ordering) key(n node) int {
	if o == OrderCostPlusHeuristic {
		return n.priority()
	}
	return n.heuristic
}

// String names the ordering.
func (o Ordering) String() string {
	switch o {
	case OrderHeuristic:
		return "heuristic"
	case OrderCostPlusHeuristic:
		return "cost+heuristic"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// Result contains the outcome of a search.
// Path runs from the cell after start up to and including goal.
type Result struct {
	Path          []maze.Position
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	Ordering  Ordering
	Heuristic Heuristic
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithOrdering sets the open list ordering.
func WithOrdering(ordering Ordering) Option {
	return func(options *Options) { options.Ordering = ordering }
}

// WithHeuristic replaces the squared Euclidean heuristic.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// FindPath searches a width x height grid for a route from start to goal that avoids walls.
//
// An error is returned only for invalid dimensions or endpoints outside the grid.
// A goal that cannot be reached, including a walled start or goal, yields a Result
// with Found set to false.
func FindPath(
	walls Obstacles,
	start maze.Position,
	goal maze.Position,
	width int,
	height int,
	options ...Option,
) (Result, error) {

	// --- Apply options ---
	searchOptions := Options{
		Ordering:  OrderHeuristic,
		Heuristic: SquaredEuclidean,
	}
	for _, option := range options {
		option(&searchOptions)
	}

	// --- Check preconditions ---
	if err := maze.ValidateDimensions(width, height); err != nil {
		return Result{}, err
	}
	if !start.InBounds(width, height) {
		return Result{}, fmt.Errorf("%w: %v", maze.ErrStartOutOfBounds, start)
	}
	if !goal.InBounds(width, height) {
		return Result{}, fmt.Errorf("%w: %v", maze.ErrGoalOutOfBounds, goal)
	}
	if start == goal {
		return Result{Path: []maze.Position{}, Found: true}, nil
	}
	if walls.IsWall(start) || walls.IsWall(goal) {
		return Result{}, nil
	}

	// --- Initialize state ---
	nodes := &arena{}
	open := newOpenList(nodes, searchOptions.Ordering)
	open.push(nodes.add(node{pos: start, parent: root}))
	closed := mapset.New[maze.Position]()

	// --- Search loop ---
	expandedNodes := 0
	for open.Len() > 0 {
		currentHandle := open.pop()
		current := nodes.get(currentHandle)

		if current.pos == goal {
			return Result{
				Path:          nodes.path(currentHandle),
				ExpandedNodes: expandedNodes,
				Found:         true,
			}, nil
		}

		closed.Put(current.pos)
		expandedNodes++

		neighbors := make([]node, 0, len(maze.Directions))
		for _, d := range maze.Directions {
			next := current.pos.Add(d)
			if !next.InBounds(width, height) {
				continue
			}
			neighbors = append(neighbors, node{
				pos:       next,
				parent:    currentHandle,
				cost:      current.cost + 1,
				heuristic: searchOptions.Heuristic(next, goal),
			})
		}
		slices.SortStableFunc(neighbors, func(a, b node) int {
			return cmp.Compare(a.heuristic, b.heuristic)
		})

		for _, neighbor := range neighbors {
			if closed.Has(neighbor.pos) || walls.IsWall(neighbor.pos) || open.contains(neighbor.pos) {
				continue
			}
			open.push(nodes.add(neighbor))
		}
	}

	return Result{ExpandedNodes: expandedNodes}, nil
}
