package pathfinding

import (
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// treeDistance is the breadth-first step count from start to goal through open cells, or -1.
func treeDistance(walls Obstacles, width, height int, start, goal maze.Position) int {
	dist := map[maze.Position]int{start: 0}
	queue := []maze.Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, d := range maze.Directions {
			next := cur.Add(d)
			if _, seen := dist[next]; seen || !next.InBounds(width, height) || walls.IsWall(next) {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return -1
}

func assertValidPath(t *testing.T, walls Obstacles, start, goal maze.Position, path []maze.Position) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, goal, path[len(path)-1])

	seen := map[maze.Position]bool{start: true}
	prev := start
	for _, p := range path {
		dx, dy := p.X-prev.X, p.Y-prev.Y
		assert.Equal(t, 1, dx*dx+dy*dy, "step %v -> %v is not 4-connected", prev, p)
		assert.False(t, walls.IsWall(p), "path crosses wall at %v", p)
		assert.False(t, seen[p], "path revisits %v", p)
		seen[p] = true
		prev = p
	}
}

func TestFindPathInGeneratedMazes(t *testing.T) {
	t.Run("5x5 path length equals tree distance", func(t *testing.T) {
		m, err := maze.New(5, 5, maze.Position{}, 7)
		require.NoError(t, err)

		start, goal := maze.Position{}, maze.Position{X: 4, Y: 4}
		result, err := FindPath(m.Walls, start, goal, 5, 5)
		require.NoError(t, err)
		require.True(t, result.Found)
		assertValidPath(t, m.Walls, start, goal, result.Path)
		assert.Equal(t, treeDistance(m.Walls, 5, 5, start, goal), len(result.Path))
	})

	t.Run("reachable goals are always found", func(t *testing.T) {
		cfg := maze.DefaultConfig()
		for seed := int64(0); seed < 25; seed++ {
			m, err := maze.New(cfg.Width, cfg.Height, cfg.Start, seed)
			require.NoError(t, err)

			for _, ordering := range []Ordering{OrderHeuristic, OrderCostPlusHeuristic} {
				result, err := FindPath(m.Walls, cfg.Start, cfg.Goal, cfg.Width, cfg.Height, WithOrdering(ordering))
				require.NoError(t, err)
				require.True(t, result.Found, "seed %d ordering %s", seed, ordering)
				assertValidPath(t, m.Walls, cfg.Start, cfg.Goal, result.Path)
				assert.Equal(t, treeDistance(m.Walls, cfg.Width, cfg.Height, cfg.Start, cfg.Goal), len(result.Path))
			}
		}
	})

	t.Run("same input gives the same path", func(t *testing.T) {
		m, err := maze.New(31, 31, maze.Position{}, 42)
		require.NoError(t, err)

		goal := maze.Position{X: 30, Y: 30}
		a, err := FindPath(m.Walls, maze.Position{}, goal, 31, 31)
		require.NoError(t, err)
		b, err := FindPath(m.Walls, maze.Position{}, goal, 31, 31)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestFindPathOrdering(t *testing.T) {
	var open maze.WallSet
	start, goal := maze.Position{}, maze.Position{X: 2, Y: 2}
	want := []maze.Position{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}

	t.Run("heuristic ordering breaks ties by insertion order", func(t *testing.T) {
		result, err := FindPath(open, start, goal, 3, 3)
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, want, result.Path)
		assert.Equal(t, 4, result.ExpandedNodes)
	})

	t.Run("cost plus heuristic expands more on ties", func(t *testing.T) {
		result, err := FindPath(open, start, goal, 3, 3, WithOrdering(OrderCostPlusHeuristic))
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, want, result.Path)
		assert.Equal(t, 5, result.ExpandedNodes)
	})

	t.Run("greedy walk on an open grid is manhattan long", func(t *testing.T) {
		result, err := FindPath(open, start, maze.Position{X: 9, Y: 6}, 10, 10)
		require.NoError(t, err)
		assert.Len(t, result.Path, 15)
	})

	t.Run("zero heuristic finds a shortest path", func(t *testing.T) {
		zero := func(_, _ maze.Position) int { return 0 }
		walls := maze.NewWallSet(maze.Position{X: 1, Y: 0}, maze.Position{X: 1, Y: 1}, maze.Position{X: 1, Y: 2}, maze.Position{X: 1, Y: 3})
		result, err := FindPath(walls, start, maze.Position{X: 2, Y: 0}, 5, 5, WithHeuristic(zero))
		require.NoError(t, err)
		require.True(t, result.Found)
		assertValidPath(t, walls, start, maze.Position{X: 2, Y: 0}, result.Path)
		assert.Len(t, result.Path, 10)
	})

	t.Run("ordering names", func(t *testing.T) {
		assert.Equal(t, "heuristic", OrderHeuristic.String())
		assert.Equal(t, "cost+heuristic", OrderCostPlusHeuristic.String())
		assert.Equal(t, "Ordering(7)", Ordering(7).String())
	})
}

func TestFindPathNotFound(t *testing.T) {
	t.Run("start equals goal", func(t *testing.T) {
		result, err := FindPath(maze.WallSet{}, maze.Position{X: 1, Y: 1}, maze.Position{X: 1, Y: 1}, 3, 3)
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Empty(t, result.Path)
		assert.Zero(t, result.ExpandedNodes)
	})

	t.Run("walled goal", func(t *testing.T) {
		walls := maze.NewWallSet(maze.Position{X: 2, Y: 2})
		result, err := FindPath(walls, maze.Position{}, maze.Position{X: 2, Y: 2}, 3, 3)
		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Nil(t, result.Path)
	})

	t.Run("walled start", func(t *testing.T) {
		walls := maze.NewWallSet(maze.Position{})
		result, err := FindPath(walls, maze.Position{}, maze.Position{X: 2, Y: 2}, 3, 3)
		require.NoError(t, err)
		assert.False(t, result.Found)
	})

	t.Run("goal in another region", func(t *testing.T) {
		var column []maze.Position
		for y := 0; y < 5; y++ {
			column = append(column, maze.Position{X: 2, Y: y})
		}
		walls := maze.NewWallSet(column...)
		result, err := FindPath(walls, maze.Position{}, maze.Position{X: 4, Y: 4}, 5, 5)
		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Equal(t, 10, result.ExpandedNodes)
	})

	t.Run("goal of the wrong parity in a generated maze", func(t *testing.T) {
		m, err := maze.New(6, 6, maze.Position{}, 1)
		require.NoError(t, err)
		result, err := FindPath(m.Walls, maze.Position{}, maze.Position{X: 5, Y: 5}, 6, 6)
		require.NoError(t, err)
		assert.False(t, result.Found)
	})
}

func TestFindPathRejectsBadInput(t *testing.T) {
	t.Run("goal outside the grid", func(t *testing.T) {
		_, err := FindPath(maze.WallSet{}, maze.Position{}, maze.Position{X: 3, Y: 0}, 3, 3)
		assert.ErrorIs(t, err, maze.ErrGoalOutOfBounds)
		assert.ErrorIs(t, err, maze.ErrInvalidConfig)
	})

	t.Run("start outside the grid", func(t *testing.T) {
		_, err := FindPath(maze.WallSet{}, maze.Position{X: -1}, maze.Position{}, 3, 3)
		assert.ErrorIs(t, err, maze.ErrStartOutOfBounds)
	})

	t.Run("bad dimensions", func(t *testing.T) {
		_, err := FindPath(maze.WallSet{}, maze.Position{}, maze.Position{}, 0, 3)
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	})
}

func TestHeuristic(t *testing.T) {
	assert.Equal(t, 0, SquaredEuclidean(maze.Position{X: 3, Y: 4}, maze.Position{X: 3, Y: 4}))
	assert.Equal(t, 25, SquaredEuclidean(maze.Position{}, maze.Position{X: 3, Y: 4}))
	assert.Equal(t, 25, SquaredEuclidean(maze.Position{X: 3, Y: 4}, maze.Position{}))
}
