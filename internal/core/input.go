package core

import "time"

// Action represents a semantic action, abstracted from physical key presses
// and pointer events.
type Action int

const (
	ActionNone    Action = iota
	ActionPrimary        // Space, Up, click - jump while alive, restart after game over
	ActionRestart        // R key - reset the run immediately, in any state
	ActionTheme          // T key - toggle light/dark theme
	ActionUp             // Menu navigation
	ActionDown           // Menu navigation
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionRestart:
		return "Restart"
	case ActionTheme:
		return "Theme"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two frames together
// with the timestamp of the frame that will consume them.
type InputFrame struct {
	// Actions holds triggered actions in arrival order. Repeats are kept so
	// two presses in one frame are both delivered.
	Actions []Action

	// Now is the host timestamp of the frame.
	Now time.Time
}

// NewInputFrame creates an empty input frame for the given timestamp.
func NewInputFrame(now time.Time) InputFrame {
	return InputFrame{Now: now}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
