package game

import (
	"errors"
	"fmt"
	"math"

	"sweepsnake/internal/geom"
)

// Board defaults (in cells; one cell is one world unit).
const (
	DefaultWidth       = 20
	DefaultHeight      = 20
	DefaultSpeed       = 4.0 // cells per second
	DefaultSnakeLength = 5
)

// Food never moves; random placement is not implemented.
var FoodPosition = geom.New(0.5, 0.5)

var (
	ErrInvalidBoard  = errors.New("game: width and height must be positive")
	ErrInvalidLength = errors.New("game: snake length must be positive")
	ErrZeroDirection = errors.New("game: direction must be non-zero")
	ErrInvalidSpeed  = errors.New("game: speed must be finite")
)

// Config holds the construction parameters of a Game.
type Config struct {
	Width, Height int32
	Speed         float64 // distance per second; negative runs against the sweep
	SnakeLength   int32
	Direction     geom.Vector

	// HeightAsSweepBound makes the boundary rule use Height as the
	// horizontal extent. Older builds did this; keep it off unless
	// replaying their output.
	HeightAsSweepBound bool
}

func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Speed:       DefaultSpeed,
		SnakeLength: DefaultSnakeLength,
		Direction:   geom.New(1, 0),
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidBoard, c.Width, c.Height)
	}
	if c.SnakeLength <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, c.SnakeLength)
	}
	if !c.Direction.IsFinite() || c.Direction.Length() == 0 {
		return fmt.Errorf("%w: got (%g, %g)", ErrZeroDirection, c.Direction.X, c.Direction.Y)
	}
	if math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidSpeed, c.Speed)
	}
	return nil
}
