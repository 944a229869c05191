package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow, W
	ActionDown              // Down arrow, S
	ActionLeft              // Left arrow, A
	ActionRight             // Right arrow, D
	ActionReset             // R - rebuild at level 1
	ActionPause             // P - pause/unpause
	ActionScoreboard        // Tab - show run history
	ActionScreenshot        // Ctrl+S - dump the frame to a file
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionReset:
		return "Reset"
	case ActionPause:
		return "Pause"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement actions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// Directions holds the four directional latches polled once per tick.
// A latch stays true for as long as the key is held.
type Directions struct {
	Up, Down, Left, Right bool
}

// Any reports whether at least one direction is held.
func (d Directions) Any() bool {
	return d.Up || d.Down || d.Left || d.Right
}

// Delta returns the unit displacement implied by the held directions.
// Opposite directions cancel out.
func (d Directions) Delta() Vec {
	var v Vec
	if d.Up {
		v.Y--
	}
	if d.Down {
		v.Y++
	}
	if d.Left {
		v.X--
	}
	if d.Right {
		v.X++
	}
	return v
}

// InputFrame collects edge-triggered actions for a single tick.
type InputFrame struct {
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
