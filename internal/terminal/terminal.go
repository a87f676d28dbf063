// Package terminal hosts a game session in a terminal through tcell.
package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"sweepsnake/internal/audio"
	"sweepsnake/internal/config"
	"sweepsnake/internal/game"
)

const (
	frameInterval = 33 * time.Millisecond
	bounceFlash   = 4 // frames the border stays lit after a bounce
)

func style(c game.RGB) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.NewRGBColor(int32(game.Palette.Background.R), int32(game.Palette.Background.G), int32(game.Palette.Background.B)))
}

// Host draws one session onto a tcell screen. Each board cell takes two
// terminal columns so cells come out roughly square.
type Host struct {
	screen  tcell.Screen
	session *game.GameSession
	flash   int
}

func NewHost(screen tcell.Screen, session *game.GameSession) *Host {
	h := &Host{screen: screen, session: session}
	if session.Events != nil {
		session.Events.Subscribe(game.EventBounce, func(game.Event) { h.flash = bounceFlash })
	}
	return h
}

// cellOrigin maps board cell (x, y) to its left terminal column and row.
func cellOrigin(x, y int) (int, int) {
	return 1 + 2*x, 1 + y
}

func (h *Host) fillCell(c game.Cell, r rune, st tcell.Style) {
	col, row := cellOrigin(c.X, c.Y)
	h.screen.SetContent(col, row, r, nil, st)
	h.screen.SetContent(col+1, row, r, nil, st)
}

// Draw renders the current frame and shows it.
func (h *Host) Draw() {
	g := h.session.Game
	st := g.Snapshot()
	w, ht := int(st.Width), int(st.Height)

	h.screen.Clear()

	borderStyle := style(game.Palette.Border)
	if h.flash > 0 {
		borderStyle = style(game.Palette.Head)
		h.flash--
	}
	right, bottom := 2*w+1, ht+1
	for x := 0; x <= right; x++ {
		h.screen.SetContent(x, 0, '─', nil, borderStyle)
		h.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := 0; y <= bottom; y++ {
		h.screen.SetContent(0, y, '│', nil, borderStyle)
		h.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	h.screen.SetContent(0, 0, '┌', nil, borderStyle)
	h.screen.SetContent(right, 0, '┐', nil, borderStyle)
	h.screen.SetContent(0, bottom, '└', nil, borderStyle)
	h.screen.SetContent(right, bottom, '┘', nil, borderStyle)

	cells := game.BodyCells(st.Snake, w, ht)
	for i, c := range cells {
		t := 1.0
		if len(cells) > 1 {
			t = float64(i) / float64(len(cells)-1)
		}
		h.fillCell(c, '█', style(game.Palette.Tail.Lerp(game.Palette.Body, t)))
	}

	if len(st.Snake) > 0 {
		head := game.CellOf(st.Snake[len(st.Snake)-1])
		if head.X >= 0 && head.Y >= 0 && head.X < w && head.Y < ht {
			glyph := '▶'
			if st.Polarity == game.SweepAgainst {
				glyph = '◀'
			}
			h.fillCell(head, glyph, style(game.Palette.Head))
		}
	}

	food := game.CellOf(st.Food)
	if !g.Covers(st.Food) {
		h.fillCell(food, '●', style(game.Palette.Food))
	}

	h.drawText(0, bottom+1, h.status(), style(game.Palette.Text))
	h.screen.Show()
}

func (h *Host) status() string {
	s := h.session
	switch s.State {
	case game.StateReady:
		return "space: start  r: restart  esc: quit"
	case game.StatePaused:
		return "paused - space to resume"
	}
	return fmt.Sprintf("score %d  sweep %s  t=%.1fs", s.Game.Score(), s.Game.Polarity(), s.Elapsed)
}

func (h *Host) drawText(x, y int, text string, st tcell.Style) {
	for i, r := range []rune(text) {
		h.screen.SetContent(x+i, y, r, nil, st)
	}
}

// HandleEvent applies one terminal event. It reports false when the host
// should stop.
func (h *Host) HandleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false, nil
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false, nil
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			h.session.TogglePause()
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			if err := h.session.Restart(); err != nil {
				return false, err
			}
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true, nil
}

// Run drives a session in the controlling terminal until the user quits.
func Run(settings config.Settings, snd *audio.System, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	defer screen.Fini()

	bus := game.NewEventBus()
	session, err := game.NewGameSession(settings.Game, bus)
	if err != nil {
		return err
	}
	snd.Subscribe(bus)
	bus.Subscribe(game.EventBounce, func(e game.Event) {
		logger.Printf("bounce at (%.2f, %.2f) -> %s", e.X, e.Y, game.Polarity(e.Data))
	})

	host := NewHost(screen, session)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()
	host.Draw()
	for {
		select {
		case ev := <-events:
			ok, err := host.HandleEvent(ev)
			if err != nil || !ok {
				return err
			}
		case now := <-ticker.C:
			session.Update(now.Sub(last).Seconds())
			last = now
			host.Draw()
		}
	}
}
