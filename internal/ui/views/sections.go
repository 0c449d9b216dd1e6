package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"searchpro/internal/domain"
	"searchpro/internal/ui/content"
)

// renderHome renders the welcome block and the card of the active search mode
func (r *Renderer) renderHome(state ViewState, width int) string {
	var b strings.Builder

	welcome := lipgloss.JoinVertical(lipgloss.Center,
		r.styles.Title.Render(content.WelcomeTitle),
		r.styles.Subtitle.Render(content.WelcomeText),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, welcome))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.renderModeTabs(state)))
	b.WriteString("\n\n")
	b.WriteString(r.renderModePanel(state, width))
	return b.String()
}

func (r *Renderer) renderModePanel(state ViewState, width int) string {
	panel := content.PanelFor(state.SearchType, state.IsListening)

	var lines []string
	lines = append(lines, r.styles.Heading.Render(panel.Title))
	if panel.Text != "" {
		lines = append(lines, panel.Text, "")
	}

	switch state.SearchType {
	case domain.ModeVoice:
		button := r.styles.Button
		if state.IsListening {
			button = r.styles.Listening.Padding(0, 2)
		}
		lines = append(lines, button.Render(panel.Action+" (v)"))
	case domain.ModeImage:
		lines = append(lines, r.styles.Button.Render(panel.Action+" (o)"))
	case domain.ModeMusic:
		style := r.styles.SearchBar
		text := cleanText(state.MusicQuery)
		if state.InputMode == "music" {
			style = r.styles.SearchBarActive
			text = state.InputView
		} else if text == "" {
			text = r.styles.Dim.Render("Например: энергичная рок-музыка 90-х")
		}
		fieldWidth := width - 4
		if fieldWidth > 60 {
			fieldWidth = 60
		}
		lines = append(lines, style.Width(fieldWidth).Render("♪ "+text), "")
	}

	if panel.TagTitle != "" && len(state.Tags) > 0 {
		lines = append(lines, r.styles.Subtitle.Render(panel.TagTitle+" (t, enter)"), r.renderTags(state))
	}

	cardWidth := width - r.styles.Card.GetHorizontalFrameSize()
	return r.styles.Card.Width(cardWidth).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderTags(state ViewState) string {
	tags := make([]string, 0, len(state.Tags))
	for i, tag := range state.Tags {
		if i == state.TagIndex {
			tags = append(tags, r.styles.TagSelected.Render(tag))
		} else {
			tags = append(tags, r.styles.Tag.Render(tag))
		}
	}
	return strings.Join(tags, " ")
}

func (r *Renderer) renderBookmarks() string {
	var b strings.Builder
	b.WriteString(r.styles.Heading.Render(content.SectionTitle(domain.SectionBookmarks)))
	b.WriteString("\n")
	for _, entry := range content.Bookmarks() {
		b.WriteString("◍ " + entry.Title + "  " + r.styles.Subtitle.Render(entry.Detail) + "  " + r.styles.Highlight.Render("★"))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderHistory() string {
	var b strings.Builder
	b.WriteString(r.styles.Heading.Render(content.SectionTitle(domain.SectionHistory)))
	b.WriteString("\n")
	b.WriteString(r.styles.Subtitle.Render(content.HistoryDay))
	b.WriteString("\n")
	for _, entry := range content.History() {
		b.WriteString("◷ " + entry.Title + "  " + r.styles.Subtitle.Render(entry.Detail))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderFavorites() string {
	cards := make([]string, 0, 4)
	for _, entry := range content.Favorites() {
		cards = append(cards, r.styles.Card.Width(12).Align(lipgloss.Center).Render(r.styles.Highlight.Render("★")+"\n"+entry.Title))
	}
	return r.styles.Heading.Render(content.SectionTitle(domain.SectionFavorites)) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (r *Renderer) renderSettings() string {
	rows := []string{r.styles.Heading.Render(content.SettingsGroup)}
	for _, entry := range content.Settings() {
		rows = append(rows, entry.Title+strings.Repeat(" ", max(2, 20-lipgloss.Width(entry.Title)))+r.styles.Tag.Render(entry.Detail))
	}
	return r.styles.Heading.Render(content.SectionTitle(domain.SectionSettings)) + "\n" +
		r.styles.Card.Render(strings.Join(rows, "\n"))
}

func (r *Renderer) renderEmptySection(section domain.Section) string {
	return r.styles.Heading.Render(content.SectionTitle(section)) + "\n" +
		r.styles.Dim.Render("Здесь пока пусто")
}

func (r *Renderer) renderPicker(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Heading.Render("Выберите изображение"))
	b.WriteString("\n")
	b.WriteString(r.styles.Subtitle.Render(state.PickerDir))
	b.WriteString("\n\n")
	b.WriteString(state.PickerView)
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("enter выбрать • h назад • esc отмена"))
	return b.String()
}

func (r *Renderer) renderHelperSheet() string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("✦ " + content.HelperName))
	b.WriteString("\n\n")
	b.WriteString(content.HelperIntro)
	b.WriteString("\n")
	for _, tip := range content.Tips {
		b.WriteString("\n")
		b.WriteString(r.styles.TipCard.Render(lipgloss.NewStyle().Bold(true).Render(tip.Title) + "\n" + r.styles.Subtitle.Render(tip.Text)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("esc закрыть"))
	return b.String()
}

func (r *Renderer) renderToasts(toasts []domain.Notification) string {
	rendered := make([]string, 0, len(toasts))
	for _, n := range toasts {
		color := lipgloss.Color(SeverityColor(n.Severity))
		body := lipgloss.NewStyle().Bold(true).Foreground(color).Render(cleanText(n.Title))
		if n.Description != "" {
			body += "\n" + cleanText(n.Description)
		}
		rendered = append(rendered, r.styles.Toast.BorderForeground(color).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}
