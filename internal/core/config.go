package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	Seed        int64         // RNG seed for deterministic gameplay
	UpdateDelay time.Duration // Interval between ticks
}

// TPS returns the tick rate implied by UpdateDelay, at least 1.
func (c RuntimeConfig) TPS() int {
	if c.UpdateDelay <= 0 {
		return 1
	}
	tps := int(time.Second / c.UpdateDelay)
	if tps < 1 {
		return 1
	}
	return tps
}

// GameState represents the current state of a game.
// The game never ends, so there is no game-over flag.
type GameState struct {
	Score int // Current score
	Tick  uint64
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventSpawn EventKind = iota // a fruit entered at the top
	EventCatch                  // the basket caught a fruit
	EventCull                   // a fruit fell past the bottom bound
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventCatch:
		return "catch"
	case EventCull:
		return "cull"
	default:
		return "unknown"
	}
}

// Event describes one occurrence during a tick, for logs and tests.
type Event struct {
	Kind    EventKind
	Subject string // fruit kind name
	Pos     Vec
	Points  int // score awarded, catches only
}

// KeyVals returns the event as alternating key/value pairs for structured loggers.
func (e Event) KeyVals() []any {
	return []any{"fruit", e.Subject, "x", e.Pos.X, "y", e.Pos.Y, "points", e.Points}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
	Err    error // display bookkeeping failure; nil in normal operation
}
