package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/google/uuid"
)

// MazeService generates, solves and serves mazes.
type MazeService interface {
	// Create carves and solves a maze, stores it and returns it with its signed token.
	// A nil seed lets the service choose one.
	Create(ctx context.Context, cfg maze.Config, seed *int64) (*dmn.MazeRecord, string, error)

	// ByID returns a stored maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Delete removes a stored maze. The claims must come from that maze's token.
	Delete(ctx context.Context, id uuid.UUID, claims map[string]interface{}) error

	// Hardest returns up to limit stored mazes with the longest paths.
	Hardest(ctx context.Context, limit int64) ([]*dmn.MazeRecord, error)

	// Shared carves the maze described by a token again without reading storage.
	Shared(ctx context.Context, token string) (*dmn.MazeRecord, error)

	// Solve searches a caller supplied grid.
	Solve(width, height int, walls []maze.Position, start, goal maze.Position) (pathfinding.Result, error)
}
