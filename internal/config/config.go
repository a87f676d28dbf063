// Package config resolves game and host settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"sweepsnake/internal/game"
	"sweepsnake/internal/geom"
)

// Environment variables read by Load.
const (
	EnvWidth       = "SNAKE_WIDTH"
	EnvHeight      = "SNAKE_HEIGHT"
	EnvSpeed       = "SNAKE_SPEED"
	EnvLength      = "SNAKE_LENGTH"
	EnvDirX        = "SNAKE_DIR_X"
	EnvDirY        = "SNAKE_DIR_Y"
	EnvHeightBound = "SNAKE_HEIGHT_BOUND"
	EnvSeed        = "SNAKE_SEED"
	EnvMute        = "SNAKE_MUTE"
)

// Settings is everything a host needs to start.
type Settings struct {
	Game game.Config
	Seed uint64 // camera shake seed
	Mute bool
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables already set, then builds Settings from defaults
// and SNAKE_* variables. An empty envFile skips the file step.
func Load(envFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds Settings using lookup for variable access.
func FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	s := Settings{
		Game: game.DefaultConfig(),
		Seed: uint64(time.Now().UnixNano()),
	}
	dir := s.Game.Direction

	var err error
	if s.Game.Width, err = int32Var(lookup, EnvWidth, s.Game.Width); err != nil {
		return Settings{}, err
	}
	if s.Game.Height, err = int32Var(lookup, EnvHeight, s.Game.Height); err != nil {
		return Settings{}, err
	}
	if s.Game.SnakeLength, err = int32Var(lookup, EnvLength, s.Game.SnakeLength); err != nil {
		return Settings{}, err
	}
	if s.Game.Speed, err = floatVar(lookup, EnvSpeed, s.Game.Speed); err != nil {
		return Settings{}, err
	}
	if dir.X, err = floatVar(lookup, EnvDirX, dir.X); err != nil {
		return Settings{}, err
	}
	if dir.Y, err = floatVar(lookup, EnvDirY, dir.Y); err != nil {
		return Settings{}, err
	}
	s.Game.Direction = geom.New(dir.X, dir.Y)
	if s.Game.HeightAsSweepBound, err = boolVar(lookup, EnvHeightBound, false); err != nil {
		return Settings{}, err
	}
	if s.Mute, err = boolVar(lookup, EnvMute, false); err != nil {
		return Settings{}, err
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		s.Seed = seed
	}

	if err := s.Game.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func int32Var(lookup func(string) (string, bool), name string, def int32) (int32, error) {
	v, ok := lookup(name)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return int32(n), nil
}

func floatVar(lookup func(string) (string, bool), name string, def float64) (float64, error) {
	v, ok := lookup(name)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

func boolVar(lookup func(string) (string, bool), name string, def bool) (bool, error) {
	v, ok := lookup(name)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
