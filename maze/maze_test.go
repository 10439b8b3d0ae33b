package maze

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carvedGraph counts carved cells, 4-adjacent carved pairs and the cells reachable from start.
func carvedGraph(m *Maze) (cells, edges, reachable int) {
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			p := Position{X: x, Y: y}
			if m.IsWall(p) {
				continue
			}
			cells++
			if !m.IsWall(p.Add(Position{X: 1})) {
				edges++
			}
			if !m.IsWall(p.Add(Position{Y: 1})) {
				edges++
			}
		}
	}

	seen := map[Position]bool{m.Start: true}
	queue := []Position{m.Start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		reachable++
		for _, d := range Directions {
			next := cur.Add(d)
			if !seen[next] && !m.IsWall(next) {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return cells, edges, reachable
}

func TestGenerate(t *testing.T) {
	t.Run("5x5 carves a spanning tree over the 3x3 lattice", func(t *testing.T) {
		m, err := New(5, 5, Position{}, 7)
		require.NoError(t, err)

		cells, edges, reachable := carvedGraph(m)
		assert.Equal(t, 17, cells)
		assert.Equal(t, cells-1, edges)
		assert.Equal(t, cells, reachable)
		assert.Equal(t, 25-17, m.Walls.Len())
		assert.Equal(t, 17, m.Carved())

		for _, p := range []Position{{1, 1}, {1, 3}, {3, 1}, {3, 3}} {
			assert.True(t, m.IsWall(p), "odd-odd cell %v must stay a wall", p)
		}
	})

	t.Run("perfect maze for many seeds and shapes", func(t *testing.T) {
		shapes := []struct {
			w, h  int
			start Position
		}{
			{w: 3, h: 3, start: Position{}},
			{w: 11, h: 7, start: Position{}},
			{w: 21, h: 21, start: Position{X: 10, Y: 10}},
			{w: 9, h: 9, start: Position{X: 1, Y: 1}},
			{w: 6, h: 8, start: Position{}},
		}
		for _, s := range shapes {
			for seed := int64(0); seed < 20; seed++ {
				m, err := New(s.w, s.h, s.start, seed)
				require.NoError(t, err)

				cells, edges, reachable := carvedGraph(m)
				assert.Equal(t, cells-1, edges, "cycle in %dx%d seed %d", s.w, s.h, seed)
				assert.Equal(t, cells, reachable, "isolated region in %dx%d seed %d", s.w, s.h, seed)
				assert.False(t, m.IsWall(s.start))
			}
		}
	})

	t.Run("same seed gives the same maze", func(t *testing.T) {
		a, err := New(51, 51, Position{}, 1234)
		require.NoError(t, err)
		b, err := New(51, 51, Position{}, 1234)
		require.NoError(t, err)
		assert.Equal(t, a.Walls.Positions(), b.Walls.Positions())
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("different seeds give different mazes", func(t *testing.T) {
		a, err := New(51, 51, Position{}, 1)
		require.NoError(t, err)
		b, err := New(51, 51, Position{}, 2)
		require.NoError(t, err)
		assert.NotEqual(t, a.Walls.Positions(), b.Walls.Positions())
	})

	t.Run("even dimensions leave the far strip walled", func(t *testing.T) {
		m, err := New(6, 6, Position{}, 3)
		require.NoError(t, err)
		for i := 0; i < 6; i++ {
			assert.True(t, m.IsWall(Position{X: 5, Y: i}))
			assert.True(t, m.IsWall(Position{X: i, Y: 5}))
		}
	})

	t.Run("large grid does not exhaust the stack", func(t *testing.T) {
		m, err := New(301, 301, Position{}, 99)
		require.NoError(t, err)
		assert.Equal(t, 2*151*151-1, m.Carved())
	})
}

func TestGenerateRejectsBadInput(t *testing.T) {
	t.Run("too small", func(t *testing.T) {
		_, err := New(2, 5, Position{}, 0)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := New(maxDimension+1, 5, Position{}, 0)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("start outside the grid", func(t *testing.T) {
		_, err := New(5, 5, Position{X: 5, Y: 0}, 0)
		assert.ErrorIs(t, err, ErrStartOutOfBounds)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})
}

func TestConfig(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		c := DefaultConfig()
		assert.NoError(t, c.Validate())
		assert.Equal(t, Position{X: 50, Y: 50}, c.Goal)
	})

	t.Run("goal outside the grid", func(t *testing.T) {
		c := DefaultConfig()
		c.Goal = Position{X: 51, Y: 0}
		assert.ErrorIs(t, c.Validate(), ErrGoalOutOfBounds)
	})

	t.Run("negative start", func(t *testing.T) {
		c := DefaultConfig()
		c.Start = Position{X: -1, Y: 0}
		assert.ErrorIs(t, c.Validate(), ErrStartOutOfBounds)
	})

	t.Run("from config uses the seed", func(t *testing.T) {
		c := Config{Width: 9, Height: 9, Goal: Position{X: 8, Y: 8}, Seed: 5}
		a, err := FromConfig(c)
		require.NoError(t, err)
		b, err := New(9, 9, Position{}, 5)
		require.NoError(t, err)
		assert.Equal(t, a.Walls.Positions(), b.Walls.Positions())
	})
}

func TestRender(t *testing.T) {
	m, err := New(3, 3, Position{}, 11)
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSuffix(m.Render([]Position{{X: 1, Y: 0}, {X: 2, Y: 0}}), "\n"), "\n")
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Len(t, row, 3)
	}
	assert.Equal(t, byte(startGlyph), rows[0][0])
	assert.Equal(t, byte(goalGlyph), rows[0][2])
	assert.Equal(t, byte(wallGlyph), rows[1][1])

	plain := m.String()
	assert.Equal(t, 2, strings.Count(plain, string(wallGlyph)))
}

func TestWallSet(t *testing.T) {
	ws := NewWallSet(Position{X: 2, Y: 1}, Position{X: 0, Y: 1}, Position{X: 5, Y: 0})
	assert.Equal(t, 3, ws.Len())
	assert.True(t, ws.IsWall(Position{X: 0, Y: 1}))
	assert.False(t, ws.IsWall(Position{X: 1, Y: 1}))
	assert.Equal(t, []Position{{X: 5, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}}, ws.Positions())

	var empty WallSet
	assert.False(t, empty.IsWall(Position{}))
	assert.Empty(t, empty.Positions())
}
