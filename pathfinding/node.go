package pathfinding

import "github.com/beka-birhanu/vinom-pathfinder/maze"

// handle indexes a node in the arena.
type handle int

// root is the parent handle of the start node.
const root handle = -1

// node is one step of a candidate path. Nodes are never modified after they are added.
type node struct {
	pos       maze.Position
	parent    handle
	cost      int // steps taken from the start
	heuristic int // estimated remaining cost
	seq       int // insertion order, breaks priority ties
}

func (n node) priority() int { return n.cost + n.heuristic }

// arena owns every node created during one search.
type arena struct {
	nodes []node
}

func (a *arena) add(n node) handle {
	n.seq = len(a.nodes)
	a.nodes = append(a.nodes, n)
	return handle(len(a.nodes) - 1)
}

func (a *arena) get(h handle) node {
	return a.nodes[h]
}

// path walks parents back from h to the root and returns the positions in
// travel order, leaving out the root itself.
func (a *arena) path(h handle) []maze.Position {
	var path []maze.Position
	for cur := a.get(h); cur.parent != root; cur = a.get(cur.parent) {
		path = append(path, cur.pos)
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
