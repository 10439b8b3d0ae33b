package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const (
	defaultTokenTTL = 24 * time.Hour
	maxHardest      = 50

	claimMazeID = "maze_id"
	claimWidth  = "width"
	claimHeight = "height"
	claimStartX = "start_x"
	claimStartY = "start_y"
	claimGoalX  = "goal_x"
	claimGoalY  = "goal_y"
	claimSeed   = "seed"
)

var (
	ErrInvalidToken = errors.New("invalid maze token")
	ErrForbidden    = errors.New("token does not grant access to this maze")
)

var _ i.MazeService = &MazeService{}

// MazeService carves mazes, searches them and keeps the results.
type MazeService struct {
	repo        i.MazeRepo
	leaderboard i.Leaderboard
	tokenizer   i.Tokenizer
	logger      i.Logger
	ordering    pathfinding.Ordering
	defaultSeed *int64
	tokenTTL    time.Duration
	now         func() time.Time
}

// Config holds the dependencies and settings of a MazeService.
type Config struct {
	Repo        i.MazeRepo
	Leaderboard i.Leaderboard
	Tokenizer   i.Tokenizer
	Logger      i.Logger
	Ordering    pathfinding.Ordering // Open list ordering used by every search
	DefaultSeed *int64               // Seed used when a request has none; nil means clock based
	TokenTTL    time.Duration        // Lifetime of issued maze tokens
	Now         func() time.Time     // Clock; defaults to time.Now
}

// NewMazeService creates a MazeService.
func NewMazeService(c *Config) (*MazeService, error) {
	if c.Repo == nil || c.Leaderboard == nil || c.Tokenizer == nil || c.Logger == nil {
		return nil, errors.New("maze service requires a repo, a leaderboard, a tokenizer and a logger")
	}

	ms := &MazeService{
		repo:        c.Repo,
		leaderboard: c.Leaderboard,
		tokenizer:   c.Tokenizer,
		logger:      c.Logger,
		ordering:    c.Ordering,
		defaultSeed: c.DefaultSeed,
		tokenTTL:    c.TokenTTL,
		now:         c.Now,
	}
	if ms.tokenTTL <= 0 {
		ms.tokenTTL = defaultTokenTTL
	}
	if ms.now == nil {
		ms.now = time.Now
	}
	return ms, nil
}

// Create carves and solves a maze, stores it, ranks it and signs a token for it.
func (s *MazeService) Create(ctx context.Context, cfg maze.Config, seed *int64) (*dmn.MazeRecord, string, error) {
	cfg.Seed = s.pickSeed(seed)
	record, err := s.build(uuid.New(), cfg)
	if err != nil {
		return nil, "", err
	}

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("saving maze %s: %s", record.ID, err))
		return nil, "", err
	}

	if record.Found {
		if err := s.leaderboard.Record(ctx, record.ID.String(), float64(record.PathLength())); err != nil {
			s.logger.Warning(fmt.Sprintf("ranking maze %s: %s", record.ID, err))
		}
	} else {
		s.logger.Warning(fmt.Sprintf("maze %s: goal %v unreachable from %v", record.ID, cfg.Goal, cfg.Start))
	}

	token, err := s.tokenizer.Generate(tokenClaims(record.ID, cfg), s.tokenTTL)
	if err != nil {
		s.logger.Error(fmt.Sprintf("signing token for maze %s: %s", record.ID, err))
		return nil, "", err
	}

	s.logger.Info(fmt.Sprintf("created maze %s: %dx%d seed=%d path=%d", record.ID, cfg.Width, cfg.Height, cfg.Seed, record.PathLength()))
	return record, token, nil
}

// ByID returns a stored maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.repo.ByID(ctx, id)
}

// Delete removes a stored maze and its leaderboard entry.
func (s *MazeService) Delete(ctx context.Context, id uuid.UUID, claims map[string]interface{}) error {
	owned, ok := claims[claimMazeID].(string)
	if !ok || owned != id.String() {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.leaderboard.Remove(ctx, id.String()); err != nil {
		s.logger.Warning(fmt.Sprintf("removing maze %s from leaderboard: %s", id, err))
	}

	s.logger.Info(fmt.Sprintf("deleted maze %s", id))
	return nil
}

// Hardest returns the stored mazes with the longest paths, longest first.
// Ranked mazes that are no longer stored are skipped.
func (s *MazeService) Hardest(ctx context.Context, limit int64) ([]*dmn.MazeRecord, error) {
	if limit <= 0 || limit > maxHardest {
		limit = maxHardest
	}

	members, err := s.leaderboard.Top(ctx, limit)
	if err != nil {
		s.logger.Error(fmt.Sprintf("reading leaderboard: %s", err))
		return nil, err
	}

	records := make([]*dmn.MazeRecord, 0, len(members))
	for _, member := range members {
		id, err := uuid.Parse(member)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Non-UUID value on leaderboard: %s", member))
			continue
		}

		record, err := s.repo.ByID(ctx, id)
		if errors.Is(err, dmn.ErrMazeNotFound) {
			s.logger.Warning(fmt.Sprintf("ranked maze %s is not stored", id))
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Shared carves the maze described by a token again. Generation is deterministic
// for a seed, so the result matches the maze the token was issued for.
func (s *MazeService) Shared(ctx context.Context, token string) (*dmn.MazeRecord, error) {
	claims, err := s.tokenizer.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	id, cfg, err := parseClaims(claims)
	if err != nil {
		return nil, err
	}
	return s.build(id, cfg)
}

// Solve searches a caller supplied grid.
func (s *MazeService) Solve(width, height int, walls []maze.Position, start, goal maze.Position) (pathfinding.Result, error) {
	return pathfinding.FindPath(maze.NewWallSet(walls...), start, goal, width, height, pathfinding.WithOrdering(s.ordering))
}

// build carves cfg and searches it from start to goal.
func (s *MazeService) build(id uuid.UUID, cfg maze.Config) (*dmn.MazeRecord, error) {
	m, err := maze.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	result, err := pathfinding.FindPath(m.Walls, cfg.Start, cfg.Goal, cfg.Width, cfg.Height, pathfinding.WithOrdering(s.ordering))
	if err != nil {
		return nil, err
	}

	return dmn.NewMazeRecord(dmn.MazeRecordConfig{
		ID:        id,
		Config:    cfg,
		Maze:      m,
		Result:    result,
		Ordering:  s.ordering,
		CreatedAt: s.now().UTC(),
	}), nil
}

func (s *MazeService) pickSeed(seed *int64) int64 {
	switch {
	case seed != nil:
		return *seed
	case s.defaultSeed != nil:
		return *s.defaultSeed
	default:
		return s.now().UnixNano()
	}
}

// tokenClaims encodes a maze into token claims. The seed is a string because
// numeric claims decode as float64.
func tokenClaims(id uuid.UUID, cfg maze.Config) map[string]interface{} {
	return map[string]interface{}{
		claimMazeID: id.String(),
		claimWidth:  cfg.Width,
		claimHeight: cfg.Height,
		claimStartX: cfg.Start.X,
		claimStartY: cfg.Start.Y,
		claimGoalX:  cfg.Goal.X,
		claimGoalY:  cfg.Goal.Y,
		claimSeed:   strconv.FormatInt(cfg.Seed, 10),
	}
}

func parseClaims(claims map[string]interface{}) (uuid.UUID, maze.Config, error) {
	rawID, _ := claims[claimMazeID].(string)
	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, maze.Config{}, fmt.Errorf("%w: bad %s", ErrInvalidToken, claimMazeID)
	}

	rawSeed, _ := claims[claimSeed].(string)
	seed, err := strconv.ParseInt(rawSeed, 10, 64)
	if err != nil {
		return uuid.Nil, maze.Config{}, fmt.Errorf("%w: bad %s", ErrInvalidToken, claimSeed)
	}

	ints := make(map[string]int, 6)
	for _, key := range []string{claimWidth, claimHeight, claimStartX, claimStartY, claimGoalX, claimGoalY} {
		v, ok := claims[key].(float64)
		if !ok {
			return uuid.Nil, maze.Config{}, fmt.Errorf("%w: bad %s", ErrInvalidToken, key)
		}
		ints[key] = int(v)
	}

	return id, maze.Config{
		Width:  ints[claimWidth],
		Height: ints[claimHeight],
		Start:  maze.Position{X: ints[claimStartX], Y: ints[claimStartY]},
		Goal:   maze.Position{X: ints[claimGoalX], Y: ints[claimGoalY]},
		Seed:   seed,
	}, nil
}
