package views

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"searchpro/internal/domain"
	"searchpro/internal/ui/content"
)

// linesPerResult is title, url, snippet and a gap
const linesPerResult = 4

// cleanText makes text from outside the app safe to draw: escape sequences
// are dropped and control characters, newlines included, become spaces.
func cleanText(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, ansi.Strip(s))
}

func (r *Renderer) renderResults(state ViewState, width, height int) string {
	var b strings.Builder
	b.WriteString(r.styles.Heading.Render(fmt.Sprintf("Результаты: %s", cleanText(state.Query))))
	b.WriteString("\n")

	if state.IsSearching {
		b.WriteString(r.styles.StatusLoading.Render(state.Spinner + " " + content.Searching))
		return b.String()
	}
	if !state.ShowResults {
		b.WriteString(r.styles.Dim.Render(content.NothingFound))
		return b.String()
	}

	// heading plus a spare line, and room for both scroll markers when the
	// list does not fit
	avail := height - 2
	visible := avail / linesPerResult
	if len(state.Results) > visible {
		visible = (avail - 2) / linesPerResult
	}
	if visible < 1 {
		visible = 1
	}
	offset := 0
	if state.SelectedResult >= visible {
		offset = state.SelectedResult - visible + 1
	}
	end := offset + visible
	if end > len(state.Results) {
		end = len(state.Results)
	}

	if offset > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
		b.WriteString("\n")
	}
	for i := offset; i < end; i++ {
		b.WriteString(r.renderResult(state.Results[i], i == state.SelectedResult, width))
		b.WriteString("\n")
	}
	if below := len(state.Results) - end; below > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return b.String()
}

func (r *Renderer) renderResult(result domain.SearchResult, selected bool, width int) string {
	marker := "  "
	title := r.styles.ResultTitle
	if selected {
		marker = r.styles.Highlight.Render("› ")
		title = title.Inherit(r.styles.SelectionBg)
	}

	textWidth := width - 2
	head := title.Render(ansi.Truncate(cleanText(result.Title), textWidth, "…"))
	if result.Source != "" {
		head += " " + r.styles.Source.Render(cleanText(result.Source))
	}

	lines := []string{
		marker + head,
		"  " + r.styles.ResultURL.Render(ansi.Truncate(cleanText(result.URL), textWidth, "…")),
		"  " + ansi.Truncate(cleanText(result.Snippet), textWidth, "…"),
	}
	return strings.Join(lines, "\n")
}

// ResultsText renders results as plain text for the pager
func ResultsText(query string, results []domain.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Результаты: %s\n\n", cleanText(query))
	for i, result := range results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, cleanText(result.Title))
		fmt.Fprintf(&b, "   %s\n", cleanText(result.URL))
		if result.Snippet != "" {
			fmt.Fprintf(&b, "   %s\n", cleanText(result.Snippet))
		}
		if result.Source != "" {
			fmt.Fprintf(&b, "   [%s]\n", cleanText(result.Source))
		}
		if result.Thumbnail != "" {
			fmt.Fprintf(&b, "   %s\n", cleanText(result.Thumbnail))
		}
		b.WriteString("\n")
	}
	return b.String()
}
