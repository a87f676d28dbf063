package desktop

import "github.com/go-gl/glfw/v3.3/glfw"

// Input tracks key edges between frames.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}
