package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"searchpro/internal/ui/content"
)

func (r *Renderer) renderSidebar(state ViewState, height int) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(content.AppName))
	b.WriteString("\n")
	b.WriteString(r.styles.Subtitle.Render(content.AppTagline))
	b.WriteString("\n\n")

	inner := sidebarWidth - r.styles.Sidebar.GetHorizontalPadding()
	for _, item := range content.SidebarItems {
		badge := ""
		if item.Count > 0 {
			badge = fmt.Sprintf("%d", item.Count)
		}
		label := fmt.Sprintf("%s %s", item.Key, item.Label)
		gap := inner - lipgloss.Width(label) - lipgloss.Width(badge)
		if gap < 1 {
			gap = 1
		}

		if item.Section == state.Section {
			b.WriteString(r.styles.SidebarActive.Render(label + strings.Repeat(" ", gap) + badge))
		} else {
			b.WriteString(r.styles.SidebarItem.Render(label) + strings.Repeat(" ", gap) + r.styles.Badge.Render(badge))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.styles.HelperButton.Render("✦ " + content.HelperName + " (a)"))

	return r.styles.Sidebar.
		Height(height).
		MaxHeight(height).
		Render(b.String())
}
