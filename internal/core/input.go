package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, k - move button focus up
	ActionDown           // S, Down arrow, j - move button focus down
	ActionConfirm        // Enter, Space - activate focused button
	ActionBack           // B - go back one screen
	ActionRestart        // R - restart the session after it ended
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P, Escape - pause/unpause game
	ActionSlot1          // 1 - whack slot 1
	ActionSlot2          // 2 - whack slot 2
	ActionSlot3          // 3 - whack slot 3
	ActionSlot4          // 4 - whack slot 4
	ActionSlot5          // 5 - whack slot 5
)

// SlotActions lists the per-slot whack actions in slot order.
var SlotActions = []Action{ActionSlot1, ActionSlot2, ActionSlot3, ActionSlot4, ActionSlot5}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
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
	case ActionSlot1, ActionSlot2, ActionSlot3, ActionSlot4, ActionSlot5:
		return "Slot"
	default:
		return "Unknown"
	}
}

// Pointer is the pointer position and the primary button edge for one frame.
type Pointer struct {
	X, Y    int
	Pressed bool // Primary button went down during this frame
}

// Inside reports whether the pointer was pressed inside r.
func (p Pointer) Inside(r Rect) bool {
	return p.Pressed && r.Contains(p.X, p.Y)
}

// InputFrame represents the player's input during one frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds the latest pointer position and press edge.
	Pointer Pointer
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

// Press records a primary button press at (x, y).
func (f *InputFrame) Press(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Pressed: true}
}

// Move updates the pointer position without a press.
func (f *InputFrame) Move(x, y int) {
	f.Pointer.X = x
	f.Pointer.Y = y
}

// Clear resets all actions and the press edge for the next frame.
// The pointer position is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Pressed = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
