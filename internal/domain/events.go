package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested      EventType = "SearchRequested"
	EventSearchCompleted      EventType = "SearchCompleted"
	EventSearchFailed         EventType = "SearchFailed"
	EventSearchDiscarded      EventType = "SearchDiscarded"
	EventSearchCleared        EventType = "SearchCleared"
	EventModeSwitched         EventType = "ModeSwitched"
	EventVoiceCaptureStarted  EventType = "VoiceCaptureStarted"
	EventVoiceCaptureFinished EventType = "VoiceCaptureFinished"
	EventImageSelected        EventType = "ImageSelected"
	EventSectionChanged       EventType = "SectionChanged"
)

// AllEventTypes lists every event type the controller publishes
var AllEventTypes = []EventType{
	EventSearchRequested, EventSearchCompleted, EventSearchFailed, EventSearchDiscarded,
	EventSearchCleared, EventModeSwitched, EventVoiceCaptureStarted, EventVoiceCaptureFinished,
	EventImageSelected, EventSectionChanged,
}

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent is emitted when a query is sent to the endpoint
type SearchRequestedEvent struct {
	Seq   uint64
	Query SearchQuery
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchCompletedEvent is emitted when the latest request succeeded
type SearchCompletedEvent struct {
	Seq   uint64
	Query SearchQuery
	Count int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the latest request failed
type SearchFailedEvent struct {
	Seq   uint64
	Query SearchQuery
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchDiscardedEvent is emitted when a completion arrives for a superseded request
type SearchDiscardedEvent struct {
	Seq    uint64
	Latest uint64
}

func (e SearchDiscardedEvent) Type() EventType { return EventSearchDiscarded }

// SearchClearedEvent is emitted on clear
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// ModeSwitchedEvent is emitted when the search type changes
type ModeSwitchedEvent struct {
	From SearchMode
	To   SearchMode
}

func (e ModeSwitchedEvent) Type() EventType { return EventModeSwitched }

// VoiceCaptureStartedEvent is emitted when a recognition session opens
type VoiceCaptureStartedEvent struct {
	Session uint64
	Locale  string
}

func (e VoiceCaptureStartedEvent) Type() EventType { return EventVoiceCaptureStarted }

// VoiceCaptureFinishedEvent is emitted when a recognition session completes
type VoiceCaptureFinishedEvent struct {
	Session    uint64
	Transcript string
	Err        error
}

func (e VoiceCaptureFinishedEvent) Type() EventType { return EventVoiceCaptureFinished }

// ImageSelectedEvent is emitted when the user picks an image
type ImageSelectedEvent struct {
	Path string
}

func (e ImageSelectedEvent) Type() EventType { return EventImageSelected }

// SectionChangedEvent is emitted on sidebar navigation
type SectionChangedEvent struct {
	Section Section
}

func (e SectionChangedEvent) Type() EventType { return EventSectionChanged }
