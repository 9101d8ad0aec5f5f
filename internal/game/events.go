package game

type EventType int

const (
	EventTokensMatched EventType = iota // Data = run length
	EventTokenInserted
	EventShotFired
	EventChainReachedEnd
	EventChainCleared
)

type Event struct {
	Type  EventType
	X, Y  float64
	Data  int // generic payload (run length for matches)
	Color TokenColor
	Combo int // combo depth for insertion-triggered matches
}

type EventHandler func(Event)

// EventBus decouples the simulation tick from audio, particles and scoring:
// the frame loop translates chain signals into events and the presentation
// systems subscribe.
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
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
