package core

import "maps"

// Action is a frontend-independent intent. Keys, buttons and window events
// all map onto these.
type Action int

const (
	ActionNone    Action = iota
	ActionShoot          // Space, Up, W: fire a shot ahead of the character
	ActionConfirm        // Enter on the title screen
	ActionBack           // B: leave a finished or paused episode
	ActionRestart        // R: new episode, any time
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P, Esc: toggle pause while playing
)

// String returns the action name used in logs.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionShoot:
		return "Shoot"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Click is a pointer press in screen cell coordinates.
type Click struct {
	X, Y int
}

// InputFrame collects everything the player did between two ticks.
type InputFrame struct {
	// Actions holds each action triggered at least once this frame.
	Actions map[Action]bool

	// Clicks holds pointer presses in the order they arrived.
	Clicks []Click
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

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddClick records a pointer press at cell (x, y).
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Clear empties the frame for reuse, keeping its allocations.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Clicks = f.Clicks[:0]
}

// Clone returns a deep copy that later Clear calls do not affect.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	maps.Copy(clone.Actions, f.Actions)
	if len(f.Clicks) > 0 {
		clone.Clicks = append([]Click(nil), f.Clicks...)
	}
	return clone
}
