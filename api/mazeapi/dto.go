// Package mazeapi exposes maze generation and path search over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
)

// CreateMazeRequest asks for a new maze. Omitted fields take the configured board defaults.
type CreateMazeRequest struct {
	Width  *int           `json:"width"`
	Height *int           `json:"height"`
	Start  *maze.Position `json:"start"`
	Goal   *maze.Position `json:"goal"`
	Seed   *int64         `json:"seed"`
}

// SolveRequest asks for a path through a caller supplied grid.
type SolveRequest struct {
	Width  int             `json:"width" binding:"required"`
	Height int             `json:"height" binding:"required"`
	Walls  []maze.Position `json:"walls"`
	Start  maze.Position   `json:"start"`
	Goal   maze.Position   `json:"goal"`
}

// MazeResponse describes a generated maze and the path found through it.
type MazeResponse struct {
	ID            string          `json:"id"`
	Config        maze.Config     `json:"config"`
	Walls         []maze.Position `json:"walls"`
	Path          []maze.Position `json:"path"`
	Found         bool            `json:"found"`
	PathLength    int             `json:"path_length"`
	ExpandedNodes int             `json:"expanded_nodes"`
	Ordering      string          `json:"ordering"`
	CreatedAt     time.Time       `json:"created_at"`
	Render        string          `json:"render,omitempty"`
	Token         string          `json:"token,omitempty"`
}

// PathResponse is the outcome of a stateless search.
type PathResponse struct {
	Path          []maze.Position `json:"path"`
	Found         bool            `json:"found"`
	ExpandedNodes int             `json:"expanded_nodes"`
}

func newMazeResponse(r *dmn.MazeRecord, render bool) *MazeResponse {
	response := &MazeResponse{
		ID:            r.ID.String(),
		Config:        r.Config,
		Walls:         r.Walls,
		Path:          r.Path,
		Found:         r.Found,
		PathLength:    r.PathLength(),
		ExpandedNodes: r.ExpandedNodes,
		Ordering:      r.Ordering,
		CreatedAt:     r.CreatedAt,
	}
	if render {
		response.Render = r.Maze().Render(r.Path)
	}
	return response
}

func newPathResponse(r pathfinding.Result) *PathResponse {
	path := r.Path
	if path == nil {
		path = []maze.Position{}
	}
	return &PathResponse{
		Path:          path,
		Found:         r.Found,
		ExpandedNodes: r.ExpandedNodes,
	}
}
