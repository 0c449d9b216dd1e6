package state

import (
	"searchpro/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Navigation
	ActiveSection domain.Section
	HelperOpen    bool // assistant tips sheet

	// Search bar
	SearchType  domain.SearchMode
	Query       string // text shown in the search bar
	MusicQuery  string // text of the music description input
	IsListening bool

	// Search lifecycle. IsSearching implies HasSearched.
	IsSearching bool
	HasSearched bool
	Results     []domain.SearchResult

	// RequestSeq identifies the latest outbound request. Completions carrying
	// an older value are discarded.
	RequestSeq uint64
	// VoiceSession identifies the active recognition session, 0 when idle
	VoiceSession uint64
	voiceCounter uint64

	// UI state
	SelectedResult int
	FilePickerOpen bool
	TagIndex       int // highlighted example tag, -1 when none
}

// NewAppState creates a new application state
func NewAppState(section domain.Section, mode domain.SearchMode) *AppState {
	if section == "" {
		section = domain.SectionHome
	}
	if mode == "" {
		mode = domain.ModeWeb
	}
	return &AppState{
		ActiveSection: section,
		SearchType:    mode,
		Results:       []domain.SearchResult{},
		TagIndex:      -1,
	}
}

// BeginSearch records a new outbound request and returns its sequence number
func (s *AppState) BeginSearch(text string) uint64 {
	s.Query = text
	s.IsSearching = true
	s.HasSearched = true
	s.Results = []domain.SearchResult{}
	s.SelectedResult = 0
	s.RequestSeq++
	return s.RequestSeq
}

// IsLatest reports whether seq belongs to the most recent request
func (s *AppState) IsLatest(seq uint64) bool {
	return seq == s.RequestSeq
}

// CompleteSearch stores the results of the latest request
func (s *AppState) CompleteSearch(results []domain.SearchResult) {
	if results == nil {
		results = []domain.SearchResult{}
	}
	s.Results = results
	s.IsSearching = false
	s.SelectedResult = 0
}

// FailSearch clears results after a failed request
func (s *AppState) FailSearch() {
	s.Results = []domain.SearchResult{}
	s.IsSearching = false
	s.SelectedResult = 0
}

// ResetSearch returns query, results and hasSearched to their defaults.
// The sequence is advanced so a response still in flight is ignored.
func (s *AppState) ResetSearch() {
	s.Query = ""
	s.Results = []domain.SearchResult{}
	s.HasSearched = false
	s.IsSearching = false
	s.SelectedResult = 0
	s.RequestSeq++
}

// BeginListening opens a new voice session and returns its token
func (s *AppState) BeginListening() uint64 {
	s.voiceCounter++
	s.VoiceSession = s.voiceCounter
	s.IsListening = true
	return s.VoiceSession
}

// EndListening closes the voice session
func (s *AppState) EndListening() {
	s.IsListening = false
	s.VoiceSession = 0
}

// MoveSelection moves the highlighted result by delta, clamped to the list
func (s *AppState) MoveSelection(delta int) {
	if len(s.Results) == 0 {
		s.SelectedResult = 0
		return
	}
	next := s.SelectedResult + delta
	if next < 0 {
		next = 0
	}
	if next >= len(s.Results) {
		next = len(s.Results) - 1
	}
	s.SelectedResult = next
}

// SelectedResultItem returns the highlighted result
func (s *AppState) SelectedResultItem() (domain.SearchResult, bool) {
	if s.IsSearching || s.SelectedResult < 0 || s.SelectedResult >= len(s.Results) {
		return domain.SearchResult{}, false
	}
	return s.Results[s.SelectedResult], true
}

// ShowResults reports whether the results panel has content to show
func (s *AppState) ShowResults() bool {
	return s.HasSearched && !s.IsSearching && len(s.Results) > 0
}
