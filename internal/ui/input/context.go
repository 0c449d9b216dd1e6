package input

import (
	"searchpro/internal/domain"
	"searchpro/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
	Tags  []string // example tags shown for the current search type
}

// SearchType returns the active search mode
func (c *ModelContext) SearchType() domain.SearchMode {
	return c.State.SearchType
}

// Query returns the text shown in the search bar
func (c *ModelContext) Query() string {
	if c.State.SearchType == domain.ModeMusic {
		return c.State.MusicQuery
	}
	return c.State.Query
}

// MusicQuery returns the last music description
func (c *ModelContext) MusicQuery() string {
	return c.State.MusicQuery
}

func (c *ModelContext) HasResults() bool {
	return len(c.State.Results) > 0
}

func (c *ModelContext) IsListening() bool {
	return c.State.IsListening
}

// HasTag returns true if an example tag is highlighted
func (c *ModelContext) HasTag() bool {
	return c.State.TagIndex >= 0 && c.State.TagIndex < len(c.Tags)
}

// CurrentTag returns the highlighted example tag, if any
func (c *ModelContext) CurrentTag() (string, bool) {
	if !c.HasTag() {
		return "", false
	}
	return c.Tags[c.State.TagIndex], true
}
