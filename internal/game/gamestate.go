package game

type GameState int

const (
	StateReady   GameState = iota // waiting for the first start key
	StatePlaying                  // ticks advance the snake
	StatePaused                   // frozen, still rendered
)

func (s GameState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}

// MaxFrameDelta caps a single frame so a stalled host does not teleport
// the snake across the board.
const MaxFrameDelta = 0.1

// GameSession owns the current Game and the host-facing state machine
// around it.
type GameSession struct {
	State   GameState
	Game    *Game
	Config  Config
	Events  *EventBus
	Elapsed float64 // seconds spent playing since the last restart
	Ticks   int
}

func NewGameSession(cfg Config, events *EventBus) (*GameSession, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	g.SetEventBus(events)
	return &GameSession{
		State:  StateReady,
		Game:   g,
		Config: cfg,
		Events: events,
	}, nil
}

// Start leaves the ready screen. It is a no-op in any other state.
func (s *GameSession) Start() {
	if s.State != StateReady {
		return
	}
	s.State = StatePlaying
	s.Events.Emit(Event{Type: EventStarted})
}

// TogglePause flips between playing and paused; from ready it starts.
func (s *GameSession) TogglePause() {
	switch s.State {
	case StateReady:
		s.Start()
	case StatePlaying:
		s.State = StatePaused
		s.Events.Emit(Event{Type: EventPaused})
	case StatePaused:
		s.State = StatePlaying
		s.Events.Emit(Event{Type: EventResumed})
	}
}

// Restart rebuilds the game from the session config and resumes play.
func (s *GameSession) Restart() error {
	g, err := New(s.Config)
	if err != nil {
		return err
	}
	g.SetEventBus(s.Events)
	s.Game = g
	s.State = StatePlaying
	s.Elapsed = 0
	s.Ticks = 0
	s.Events.Emit(Event{Type: EventRestarted})
	return nil
}

// Update advances the game by one host frame of dt seconds.
func (s *GameSession) Update(dt float64) {
	if s.State != StatePlaying {
		return
	}
	dt = clampF(dt, 0, MaxFrameDelta)
	s.Game.Process(dt)
	s.Elapsed += dt
	s.Ticks++
}
