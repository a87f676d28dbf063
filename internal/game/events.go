package game

type EventType int

const (
	EventBounce    EventType = iota // sweep polarity flipped at a boundary
	EventStarted                    // session left the ready screen
	EventPaused                     // session paused
	EventResumed                    // session resumed
	EventRestarted                  // session rebuilt its game
)

type Event struct {
	Type EventType
	X, Y float64
	Data int // Generic payload (new polarity for EventBounce).
}

type EventHandler func(Event)

// EventBus dispatches events synchronously on the emitting goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
