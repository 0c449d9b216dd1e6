package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyQuery is returned when a query is blank after trimming
var ErrEmptyQuery = errors.New("query is empty")

// SearchMode selects which outbound request variant and UI affordance is active
type SearchMode string

const (
	ModeWeb   SearchMode = "web"
	ModeVoice SearchMode = "voice"
	ModeImage SearchMode = "image"
	ModeMusic SearchMode = "music"
)

// AllModes lists the modes in the order they appear in the search bar
var AllModes = []SearchMode{ModeWeb, ModeVoice, ModeImage, ModeMusic}

// ParseSearchMode converts user input into a SearchMode.
// "text" is accepted as an alias of web.
func ParseSearchMode(s string) (SearchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "web", "text", "":
		return ModeWeb, nil
	case "voice":
		return ModeVoice, nil
	case "image":
		return ModeImage, nil
	case "music":
		return ModeMusic, nil
	}
	return "", fmt.Errorf("unknown search mode %q", s)
}

// Label returns the caption shown on the mode tab
func (m SearchMode) Label() string {
	switch m {
	case ModeVoice:
		return "Голос"
	case ModeImage:
		return "Фото"
	case ModeMusic:
		return "Музыка"
	default:
		return "Текст"
	}
}

// SearchQuery is a submitted query. It is not modified after being sent.
type SearchQuery struct {
	Text string
	Mode SearchMode
}

// NewSearchQuery trims text and rejects blank queries
func NewSearchQuery(text string, mode SearchMode) (SearchQuery, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return SearchQuery{}, ErrEmptyQuery
	}
	if mode == "" {
		mode = ModeWeb
	}
	return SearchQuery{Text: text, Mode: mode}, nil
}

// SearchResult is one entry of the endpoint response
type SearchResult struct {
	Title     string `json:"title"`
	Snippet   string `json:"snippet"`
	URL       string `json:"url"`
	Source    string `json:"source"`
	Type      string `json:"type,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Section is a sidebar destination
type Section string

const (
	SectionHome          Section = "home"
	SectionBookmarks     Section = "bookmarks"
	SectionHistory       Section = "history"
	SectionFavorites     Section = "favorites"
	SectionExtensions    Section = "extensions"
	SectionNotifications Section = "notifications"
	SectionSettings      Section = "settings"
)

// ParseSection validates a section name
func ParseSection(s string) (Section, error) {
	switch sec := Section(strings.ToLower(strings.TrimSpace(s))); sec {
	case SectionHome, SectionBookmarks, SectionHistory, SectionFavorites,
		SectionExtensions, SectionNotifications, SectionSettings:
		return sec, nil
	case "":
		return SectionHome, nil
	}
	return "", fmt.Errorf("unknown section %q", s)
}

// Severity of a notification
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a transient toast
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}
