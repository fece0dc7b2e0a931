package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate their own key events into actions; the game only sees these.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // move the basket left
	ActionRight        // move the basket right
	ActionQuit         // frontend-level quit (Ctrl+C in the terminal)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the buffered input for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Command records a movement command so that the last one pressed before
// the tick wins: an opposing movement already buffered is dropped.
func (f *InputFrame) Command(a Action) {
	switch a {
	case ActionLeft:
		delete(f.Actions, ActionRight)
	case ActionRight:
		delete(f.Actions, ActionLeft)
	}
	f.Set(a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
