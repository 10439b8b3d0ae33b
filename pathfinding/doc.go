// Package pathfinding searches a carved maze for a route between two cells.
//
// FindPath runs an informed search over the 4-connected grid with unit step cost
// and a squared Euclidean heuristic. By default the open list is ordered by the
// heuristic alone, ties going to the node inserted first, which makes the search
// a greedy best-first walk. WithOrdering(OrderCostPlusHeuristic) switches to the
// textbook cost + heuristic ordering.
//
// Search nodes live in an arena and point to their parent by handle, so the tree
// of explored paths holds no pointers and the path is rebuilt by walking handles.
package pathfinding
