// Package desktop hosts a game session in a GLFW window rendered with
// OpenGL 4.1.
package desktop

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"sweepsnake/internal/audio"
	"sweepsnake/internal/config"
	"sweepsnake/internal/game"
)

// Shake applied to the camera on every bounce, in cells and seconds.
const (
	bounceShake    = 0.25
	bounceShakeDur = 0.18
)

// Run opens the window and drives the session until the window closes
// or Escape is pressed. It must be called from the main goroutine.
func Run(settings config.Settings, snd *audio.System, logger *log.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Printf("opengl %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	bg := game.Palette.Background
	r, g, b := bg.Floats()
	gl.ClearColor(r, g, b, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	bus := game.NewEventBus()
	session, err := game.NewGameSession(settings.Game, bus)
	if err != nil {
		return err
	}
	snd.Subscribe(bus)

	var cam game.Camera
	bus.Subscribe(game.EventBounce, func(e game.Event) {
		cam.AddShake(bounceShake, bounceShakeDur)
		logger.Printf("bounce at (%.2f, %.2f) -> %s", e.X, e.Y, game.Polarity(e.Data))
	})

	input := NewInput()
	lastTitle := ""
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeySpace) {
			session.TogglePause()
		}
		if input.JustPressed(window, glfw.KeyR) {
			if err := session.Restart(); err != nil {
				return err
			}
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		session.Update(dt)

		st := session.Game.Snapshot()
		cam.Fit(float64(st.Width), float64(st.Height), fbW, fbH)
		cam.UpdateShake(dt, settings.Seed^uint64(now*1000))

		rend.DrawFrame(st, cam, fbW, fbH)
		if t := title(session); t != lastTitle {
			window.SetTitle(t)
			lastTitle = t
		}
		window.SwapBuffers()
	}
	return nil
}

func title(s *game.GameSession) string {
	switch s.State {
	case game.StateReady:
		return WindowTitle + " - press Space"
	case game.StatePaused:
		return WindowTitle + " - paused"
	}
	return fmt.Sprintf("%s - score %d - %s", WindowTitle, s.Game.Score(), s.Game.Polarity())
}
