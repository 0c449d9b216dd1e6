package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"searchpro/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Section    domain.Section
	SearchType domain.SearchMode
	Query      string
	MusicQuery string
	InputMode  string // empty in normal mode
	InputView  string // rendered text input while a text mode is active

	IsListening    bool
	IsSearching    bool
	HasSearched    bool
	ShowResults    bool // latest search finished with at least one result
	Results        []domain.SearchResult
	SelectedResult int
	TagIndex       int
	Tags           []string

	HelperOpen bool
	PickerOpen bool
	PickerDir  string
	PickerView string

	Spinner  string
	Toasts   []domain.Notification
	HelpLine string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	termHeight := state.Height
	if termHeight <= 0 {
		termHeight = 24
	}

	sidebar := r.renderSidebar(state, termHeight)
	mainWidth := termWidth - lipgloss.Width(sidebar)
	if mainWidth < 20 {
		mainWidth = 20
	}
	innerWidth := mainWidth - r.styles.Main.GetHorizontalFrameSize()

	content := &strings.Builder{}
	content.WriteString(r.renderSearchBar(state, innerWidth))
	content.WriteString("\n\n")

	header := content.String()
	bodyHeight := termHeight - strings.Count(header, "\n") - 2
	content.WriteString(r.renderBody(state, innerWidth, bodyHeight))

	// Push the help line to the bottom
	if state.HelpLine != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		paddingNeeded := termHeight - currentLines - 1
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpLine))
	}

	main := r.styles.Main.
		Width(mainWidth).
		MaxHeight(termHeight).
		Render(content.String())

	finalContent := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)

	if state.HelperOpen {
		finalContent = r.popupRender.RenderSheetOverlay(finalContent, r.renderHelperSheet(), termHeight, termWidth)
	}

	if len(state.Toasts) > 0 {
		finalContent = r.popupRender.RenderCornerOverlay(finalContent, r.renderToasts(state.Toasts), termHeight, termWidth)
	}

	return finalContent
}

func (r *Renderer) renderBody(state ViewState, width, height int) string {
	if state.PickerOpen {
		return r.renderPicker(state)
	}

	switch state.Section {
	case domain.SectionBookmarks:
		return r.renderBookmarks()
	case domain.SectionHistory:
		return r.renderHistory()
	case domain.SectionFavorites:
		return r.renderFavorites()
	case domain.SectionSettings:
		return r.renderSettings()
	case domain.SectionExtensions, domain.SectionNotifications:
		return r.renderEmptySection(state.Section)
	}

	if state.HasSearched {
		return r.renderResults(state, width, height)
	}
	return r.renderHome(state, width)
}

// renderSearchBar renders the header search field and the mode indicators
func (r *Renderer) renderSearchBar(state ViewState, width int) string {
	tabs := r.renderModeTabs(state)
	fieldWidth := width - lipgloss.Width(tabs) - 1
	if fieldWidth < 10 {
		fieldWidth = 10
	}

	style := r.styles.SearchBar
	var text string
	if state.InputMode == "query" {
		style = r.styles.SearchBarActive
		text = state.InputView
	} else if state.Query != "" {
		text = cleanText(state.Query)
	} else {
		text = r.styles.Dim.Render("Поиск в интернете...")
	}

	field := style.Width(fieldWidth - style.GetHorizontalBorderSize()).Render("⌕ " + text)
	return lipgloss.JoinHorizontal(lipgloss.Center, field, " ", tabs)
}

func (r *Renderer) renderModeTabs(state ViewState) string {
	tabs := make([]string, 0, len(domain.AllModes))
	for i, mode := range domain.AllModes {
		label := fmt.Sprintf("%d %s", i+1, mode.Label())
		switch {
		case mode == domain.ModeVoice && state.IsListening:
			tabs = append(tabs, r.styles.Listening.Render("● "+mode.Label()))
		case mode == state.SearchType:
			tabs = append(tabs, r.styles.TabActive.Render(label))
		default:
			tabs = append(tabs, r.styles.Tab.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}
