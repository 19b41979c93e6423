package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move paddle left
	ActionRight          // Right arrow, D - move paddle right
	ActionRestart        // R - restart after the game ended
	ActionConfig         // C - open settings after the game ended
	ActionUp             // Up arrow - previous form field
	ActionDown           // Down arrow, Tab - next form field
	ActionConfirm        // Enter - confirm form
	ActionBack           // Esc - leave the current screen
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionRestart:
		return "Restart"
	case ActionConfig:
		return "Config"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// DefaultHoldTicks is how long a single key press keeps a direction held.
// Terminal auto-repeat fires roughly every 30-50ms, so at 60 ticks per
// second a held key is re-pressed well before the hold runs out.
const DefaultHoldTicks = 8

// KeyHold turns discrete key presses into held directional flags.
// Terminals deliver key presses but no key releases, so a press counts as
// "down" for a few ticks and releases on its own unless repeated.
type KeyHold struct {
	holdTicks int
	left      int // Ticks remaining for the left flag
	right     int // Ticks remaining for the right flag
}

// NewKeyHold creates a tracker that holds each press for holdTicks ticks.
func NewKeyHold(holdTicks int) *KeyHold {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyHold{holdTicks: holdTicks}
}

// Press records a key-down for a directional action. Pressing one
// direction releases the other.
func (k *KeyHold) Press(a Action) {
	switch a {
	case ActionLeft:
		k.left = k.holdTicks
		k.right = 0
	case ActionRight:
		k.right = k.holdTicks
		k.left = 0
	}
}

// ReleaseAll drops every held direction.
func (k *KeyHold) ReleaseAll() {
	k.left, k.right = 0, 0
}

// Held reports whether a direction is currently down.
func (k *KeyHold) Held(a Action) bool {
	switch a {
	case ActionLeft:
		return k.left > 0
	case ActionRight:
		return k.right > 0
	}
	return false
}

// Apply sets the held directions on the frame and ages the holds by one tick.
func (k *KeyHold) Apply(f *InputFrame) {
	if k.left > 0 {
		f.Set(ActionLeft)
		k.left--
	}
	if k.right > 0 {
		f.Set(ActionRight)
		k.right--
	}
}
