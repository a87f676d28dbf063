package game

import (
	"math"

	"sweepsnake/internal/geom"
)

// Game is the movement state of one snake on a rectangular field.
//
// Game is not safe for concurrent use. Process is the only mutator and the
// host is expected to call it once per frame from a single goroutine.
type Game struct {
	width, height int32
	speed         float64
	direction     geom.Vector
	food          geom.Vector
	score         int32

	// snake runs from tail-tip (index 0) to head (last).
	snake    []geom.Vector
	polarity Polarity

	sweepBound float64
	events     *EventBus
}

// State is a read-only copy of everything a host renders.
type State struct {
	Width, Height int32
	Speed         float64
	Direction     geom.Vector
	Food          geom.Vector
	Score         int32
	Snake         []geom.Vector
	Polarity      Polarity
}

// New builds a Game with the head centred on the nearest grid cell and the
// tail-tip SnakeLength direction-lengths behind it.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	head := geom.New(
		math.Round(float64(cfg.Width)/2)-0.5,
		math.Round(float64(cfg.Height)/2)-0.5,
	)
	tailTip := head.Subtract(cfg.Direction.ScaleBy(float64(cfg.SnakeLength)))

	bound := float64(cfg.Width)
	if cfg.HeightAsSweepBound {
		bound = float64(cfg.Height)
	}

	return &Game{
		width:      cfg.Width,
		height:     cfg.Height,
		speed:      cfg.Speed,
		direction:  cfg.Direction,
		food:       FoodPosition,
		snake:      []geom.Vector{tailTip, head},
		polarity:   SweepAlong,
		sweepBound: bound,
	}, nil
}

// SetEventBus attaches a bus that receives EventBounce. nil detaches.
func (g *Game) SetEventBus(eb *EventBus) { g.events = eb }

// Process advances the snake by speed*timespan. A non-positive or
// non-finite timespan leaves the game untouched.
func (g *Game) Process(timespan float64) {
	if !(timespan > 0) || math.IsInf(timespan, 0) {
		return
	}
	distance := g.speed * timespan
	if distance == 0 {
		return
	}
	g.advance(distance)
}

// Snake returns a copy of the body, tail-tip first.
func (g *Game) Snake() []geom.Vector {
	out := make([]geom.Vector, len(g.snake))
	copy(out, g.snake)
	return out
}

func (g *Game) Head() geom.Vector { return g.snake[len(g.snake)-1] }
func (g *Game) Tail() geom.Vector { return g.snake[0] }

func (g *Game) Width() int32           { return g.width }
func (g *Game) Height() int32          { return g.height }
func (g *Game) Speed() float64         { return g.speed }
func (g *Game) Direction() geom.Vector { return g.direction }
func (g *Game) Food() geom.Vector      { return g.food }
func (g *Game) Score() int32           { return g.score }
func (g *Game) Polarity() Polarity     { return g.polarity }

// Revert mirrors the flag hosts of older builds read: true while sweeping
// along the direction vector.
func (g *Game) Revert() bool { return g.polarity == SweepAlong }

// SweepBound is the right-hand x boundary used by the boundary rule.
func (g *Game) SweepBound() float64 { return g.sweepBound }

// PathLength is the summed length of the body.
func (g *Game) PathLength() float64 { return geom.PathLength(g.snake) }

// Covers reports whether p lies on any body segment.
func (g *Game) Covers(p geom.Vector) bool {
	if len(g.snake) == 1 {
		return g.snake[0].ApproxEqual(p)
	}
	for i := 1; i < len(g.snake); i++ {
		if geom.NewSegment(g.snake[i-1], g.snake[i]).Contains(p) {
			return true
		}
	}
	return false
}

func (g *Game) Snapshot() State {
	return State{
		Width:     g.width,
		Height:    g.height,
		Speed:     g.speed,
		Direction: g.direction,
		Food:      g.food,
		Score:     g.score,
		Snake:     g.Snake(),
		Polarity:  g.polarity,
	}
}
