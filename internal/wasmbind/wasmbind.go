//go:build js && wasm

// Package wasmbind exposes the game to JavaScript as a SweepGame class.
//
//	const g = new SweepGame(width, height, speed, snakeLength, dirX, dirY)
//	g.process(dt)
//	g.getSnake() // [{x, y}, ...], tail-tip first
//	g.width, g.height, g.speed, g.direction, g.food, g.score, g.revert
//	g.free()
package wasmbind

import (
	"fmt"
	"syscall/js"

	"sweepsnake/internal/game"
	"sweepsnake/internal/geom"
)

// Register installs the SweepGame constructor on the JS global object.
func Register() {
	js.Global().Set("SweepGame", js.FuncOf(construct))
}

func vectorValue(v geom.Vector) map[string]any {
	return map[string]any{"x": v.X, "y": v.Y}
}

func construct(_ js.Value, args []js.Value) any {
	if len(args) < 6 {
		return errorValue(fmt.Errorf("SweepGame: want 6 arguments, got %d", len(args)))
	}
	cfg := game.Config{
		Width:       int32(args[0].Int()),
		Height:      int32(args[1].Int()),
		Speed:       args[2].Float(),
		SnakeLength: int32(args[3].Int()),
		Direction:   geom.New(args[4].Float(), args[5].Float()),
	}
	if len(args) > 6 {
		cfg.HeightAsSweepBound = args[6].Truthy()
	}
	g, err := game.New(cfg)
	if err != nil {
		return errorValue(err)
	}
	return bind(g)
}

func errorValue(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

func bind(g *game.Game) js.Value {
	obj := js.Global().Get("Object").New()
	var funcs []js.Func
	method := func(name string, fn func(args []js.Value) any) {
		f := js.FuncOf(func(_ js.Value, args []js.Value) any { return fn(args) })
		funcs = append(funcs, f)
		obj.Set(name, f)
	}
	refresh := func() {
		obj.Set("width", g.Width())
		obj.Set("height", g.Height())
		obj.Set("speed", g.Speed())
		obj.Set("direction", vectorValue(g.Direction()))
		obj.Set("food", vectorValue(g.Food()))
		obj.Set("score", g.Score())
		obj.Set("revert", g.Revert())
	}

	method("process", func(args []js.Value) any {
		if len(args) > 0 {
			g.Process(args[0].Float())
			refresh()
		}
		return nil
	})
	method("getSnake", func([]js.Value) any {
		body := g.Snake()
		out := make([]any, len(body))
		for i, p := range body {
			out[i] = vectorValue(p)
		}
		return out
	})
	method("getWidth", func([]js.Value) any {
		return g.SweepBound()
	})
	method("free", func([]js.Value) any {
		for _, f := range funcs {
			f.Release()
		}
		return nil
	})

	refresh()
	return obj
}
