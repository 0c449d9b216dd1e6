package views

import (
	"github.com/charmbracelet/lipgloss"

	"searchpro/internal/domain"
)

const sidebarWidth = 26

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Dim         lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style

	Sidebar       lipgloss.Style
	SidebarItem   lipgloss.Style
	SidebarActive lipgloss.Style
	Badge         lipgloss.Style
	HelperButton  lipgloss.Style

	SearchBar       lipgloss.Style
	SearchBarActive lipgloss.Style
	Tab             lipgloss.Style
	TabActive       lipgloss.Style
	Listening       lipgloss.Style

	Heading     lipgloss.Style
	Card        lipgloss.Style
	Tag         lipgloss.Style
	TagSelected lipgloss.Style
	Button      lipgloss.Style

	ResultTitle lipgloss.Style
	ResultURL   lipgloss.Style
	Source      lipgloss.Style

	Sheet         lipgloss.Style
	TipCard       lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusLoading lipgloss.Style
	Toast         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(0, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),

		Sidebar: lipgloss.NewStyle().
			Width(sidebarWidth).
			Padding(1, 1).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("238")),
		SidebarItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SidebarActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
		Badge:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		HelperButton: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("99")).
			Padding(0, 1),

		SearchBar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchBarActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("99")).Padding(0, 1),
		Listening: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("203")).Bold(true).Padding(0, 1),

		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		Tag:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1),
		TagSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("99")).Padding(0, 1),
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 2),

		ResultTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		ResultURL:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Source:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),

		Sheet: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2).
			Width(44),
		TipCard:       lipgloss.NewStyle().Background(lipgloss.Color("236")).Padding(0, 1).Width(38),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(36),
	}
}

// SeverityColor returns the accent color of a notification
func SeverityColor(sev domain.Severity) string {
	switch sev {
	case domain.SeveritySuccess:
		return "78" // green
	case domain.SeverityError:
		return "203" // red
	default:
		return "51" // cyan
	}
}
