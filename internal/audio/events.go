package audio

import "sweepsnake/internal/game"

// Subscribe plays the matching effect for session and bounce events.
func (s *System) Subscribe(bus *game.EventBus) {
	if s == nil || bus == nil {
		return
	}
	bus.Subscribe(game.EventBounce, func(game.Event) { s.Play(SoundBounce) })
	bus.Subscribe(game.EventStarted, func(game.Event) { s.Play(SoundStart) })
	bus.Subscribe(game.EventResumed, func(game.Event) { s.Play(SoundStart) })
	bus.Subscribe(game.EventPaused, func(game.Event) { s.Play(SoundPause) })
	bus.Subscribe(game.EventRestarted, func(game.Event) { s.Play(SoundRestart) })
}
