package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
)

// String returns the mode name as shown in the title bar
func (m Mode) String() string {
	if m == ModeInsert {
		return "INSERT"
	}
	return "NORMAL"
}

// Focus represents which pane receives navigation keys
type Focus int

const (
	FocusSearch Focus = iota
	FocusHistory
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input
// handling decisions
type Context interface {
	Focus() Focus
	BufferEmpty() bool
	SuggestionsVisible() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
