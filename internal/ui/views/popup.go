package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderSheetOverlay places the sheet against the right edge of a greyed out base
func (pr *PopupRenderer) RenderSheetOverlay(mainContent, sheetContent string, height, width int) string {
	sheet := pr.styles.Sheet.Height(max(height-2, 1)).Render(sheetContent)
	x := width - lipgloss.Width(sheet)
	if x < 0 {
		x = 0
	}
	return placeOverlay(x, 0, sheet, desaturate(mainContent), width)
}

// RenderCornerOverlay places content in the bottom right corner of base
// without dimming it
func (pr *PopupRenderer) RenderCornerOverlay(mainContent, content string, height, width int) string {
	x := width - lipgloss.Width(content) - 1
	y := height - lipgloss.Height(content) - 1
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return placeOverlay(x, y, content, mainContent, width)
}

// placeOverlay writes fg over bg starting at column x, row y. Cells of bg
// left and right of fg are kept.
func placeOverlay(x, y int, fg, bg string, width int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	fgWidth := lipgloss.Width(fg)

	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}

	for i, fgLine := range fgLines {
		row := y + i
		line := bgLines[row]

		left := ansi.Truncate(line, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ""
		if ansi.StringWidth(line) > x+fgWidth {
			right = ansi.TruncateLeft(line, x+fgWidth, "")
		}
		if w := ansi.StringWidth(fgLine); w < fgWidth {
			fgLine += strings.Repeat(" ", fgWidth-w)
		}
		line = left + fgLine + right
		if width > 0 {
			line = ansi.Truncate(line, width, "")
		}
		bgLines[row] = line
	}
	return strings.Join(bgLines, "\n")
}

// desaturate strips styles and recolors text dim gray
func desaturate(s string) string {
	lines := strings.Split(s, "\n")
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = gray.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}
