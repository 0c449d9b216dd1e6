package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"searchpro/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeQuery       // search bar text input
	ModeMusic       // music description input
	ModePicker      // image file picker
	ModeHelper      // assistant tips sheet
)

func (m Mode) String() string {
	switch m {
	case ModeQuery:
		return "query"
	case ModeMusic:
		return "music"
	case ModePicker:
		return "picker"
	case ModeHelper:
		return "helper"
	default:
		return "normal"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	SearchType() domain.SearchMode
	Query() string
	MusicQuery() string
	HasResults() bool
	IsListening() bool
	HasTag() bool
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
