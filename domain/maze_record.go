// Package dmn holds the records the maze service stores and serves.
package dmn

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/google/uuid"
)

var (
	ErrMazeNotFound = errors.New("maze not found")
)

// MazeRecord is a generated maze together with the path found through it.
type MazeRecord struct {
	ID            uuid.UUID       `bson:"_id"`
	Config        maze.Config     `bson:"config"`
	Walls         []maze.Position `bson:"walls"`
	Path          []maze.Position `bson:"path"`
	Found         bool            `bson:"found"`
	ExpandedNodes int             `bson:"expandedNodes"`
	Ordering      string          `bson:"ordering"`
	CreatedAt     time.Time       `bson:"createdAt"`
}

// MazeRecordConfig holds the parameters for building a MazeRecord.
type MazeRecordConfig struct {
	ID        uuid.UUID
	Config    maze.Config
	Maze      *maze.Maze
	Result    pathfinding.Result
	Ordering  pathfinding.Ordering
	CreatedAt time.Time
}

// NewMazeRecord flattens a carved maze and its search result into a record.
func NewMazeRecord(c MazeRecordConfig) *MazeRecord {
	path := c.Result.Path
	if path == nil {
		path = []maze.Position{}
	}
	return &MazeRecord{
		ID:            c.ID,
		Config:        c.Config,
		Walls:         c.Maze.Walls.Positions(),
		Path:          path,
		Found:         c.Result.Found,
		ExpandedNodes: c.Result.ExpandedNodes,
		Ordering:      c.Ordering.String(),
		CreatedAt:     c.CreatedAt,
	}
}

// Maze rebuilds the carved maze from the stored walls.
func (r *MazeRecord) Maze() *maze.Maze {
	return &maze.Maze{
		Width:  r.Config.Width,
		Height: r.Config.Height,
		Start:  r.Config.Start,
		Walls:  maze.NewWallSet(r.Walls...),
	}
}

// PathLength is the number of steps from start to goal, or -1 when no path was found.
func (r *MazeRecord) PathLength() int {
	if !r.Found {
		return -1
	}
	return len(r.Path)
}
