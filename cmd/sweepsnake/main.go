// Command sweepsnake runs the sweeping snake in a desktop window or,
// with -term, in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"sweepsnake/internal/audio"
	"sweepsnake/internal/config"
	"sweepsnake/internal/desktop"
	"sweepsnake/internal/logging"
	"sweepsnake/internal/terminal"
)

func init() {
	// GLFW must run on the main OS thread.
	runtime.LockOSThread()
}

var (
	termFlag  = flag.Bool("term", false, "run in the terminal instead of a window")
	envFlag   = flag.String("env", ".env", "optional dotenv file with SNAKE_* settings")
	debugFlag = flag.Bool("debug", false, "write a debug log to ./logs")
	muteFlag  = flag.Bool("mute", false, "disable sound")
	width     = flag.Int("width", 0, "board width in cells (overrides SNAKE_WIDTH)")
	height    = flag.Int("height", 0, "board height in cells (overrides SNAKE_HEIGHT)")
	speed     = flag.Float64("speed", 0, "cells per second (overrides SNAKE_SPEED)")
)

func main() {
	flag.Parse()

	logger, logFile, err := logging.Setup(*debugFlag, *termFlag, "logs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	settings, err := config.Load(*envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			settings.Game.Width = int32(*width)
		case "height":
			settings.Game.Height = int32(*height)
		case "speed":
			settings.Game.Speed = *speed
		case "mute":
			settings.Mute = *muteFlag
		}
	})
	if err := settings.Game.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("board %dx%d speed %.2f length %d direction (%g, %g)",
		settings.Game.Width, settings.Game.Height, settings.Game.Speed,
		settings.Game.SnakeLength, settings.Game.Direction.X, settings.Game.Direction.Y)

	var snd *audio.System
	if !settings.Mute {
		if snd, err = audio.Init(); err != nil {
			logger.Printf("audio init failed (continuing without sound): %v", err)
			snd = nil
		}
	}

	run := desktop.Run
	if *termFlag {
		run = terminal.Run
	}
	if err := run(settings, snd, logger); err != nil {
		logger.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "sweepsnake: %v\n", err)
		os.Exit(1)
	}
}
