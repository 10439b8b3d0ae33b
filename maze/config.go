package maze

import (
	"errors"
	"fmt"
)

const (
	minDimension = 3
	maxDimension = 501

	defaultBoardSize = 51
)

// Configuration errors. Every one of them wraps ErrInvalidConfig.
var (
	ErrInvalidConfig     = errors.New("invalid maze configuration")
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be between %d and %d", ErrInvalidConfig, minDimension, maxDimension)
	ErrStartOutOfBounds  = fmt.Errorf("%w: start is out of the grid", ErrInvalidConfig)
	ErrGoalOutOfBounds   = fmt.Errorf("%w: goal is out of the grid", ErrInvalidConfig)
)

// Config fixes the board and the search endpoints for one run.
type Config struct {
	Width  int      `json:"width" bson:"width"`
	Height int      `json:"height" bson:"height"`
	Start  Position `json:"start" bson:"start"`
	Goal   Position `json:"goal" bson:"goal"`
	Seed   int64    `json:"seed" bson:"seed"`
}

// DefaultConfig returns the 51x51 board searched from the top-left to the bottom-right corner.
func DefaultConfig() Config {
	return Config{
		Width:  defaultBoardSize,
		Height: defaultBoardSize,
		Start:  Position{X: 0, Y: 0},
		Goal:   Position{X: defaultBoardSize - 1, Y: defaultBoardSize - 1},
	}
}

// Validate checks the dimensions and that start and goal lie on the board.
func (c Config) Validate() error {
	if err := ValidateDimensions(c.Width, c.Height); err != nil {
		return err
	}
	if !c.Start.InBounds(c.Width, c.Height) {
		return fmt.Errorf("%w: %v on %dx%d", ErrStartOutOfBounds, c.Start, c.Width, c.Height)
	}
	if !c.Goal.InBounds(c.Width, c.Height) {
		return fmt.Errorf("%w: %v on %dx%d", ErrGoalOutOfBounds, c.Goal, c.Width, c.Height)
	}
	return nil
}

// ValidateDimensions rejects boards too small to carve or too large to serve.
func ValidateDimensions(width, height int) error {
	if min(width, height) < minDimension || max(width, height) > maxDimension {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}
