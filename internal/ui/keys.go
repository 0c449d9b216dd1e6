package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap documents the normal mode bindings. Dispatch itself lives in the
// input modes; these bindings feed the help line and the help pager.
type KeyMap struct {
	Search   key.Binding
	Modes    key.Binding
	Voice    key.Binding
	Image    key.Binding
	Music    key.Binding
	Tags     key.Binding
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Copy     key.Binding
	Pager    key.Binding
	Clear    key.Binding
	Sections key.Binding
	Helper   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("/", "i", "ctrl+k"),
			key.WithHelp("/", "поиск"),
		),
		Modes: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "tab"),
			key.WithHelp("1-4/tab", "режим"),
		),
		Voice: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "голос"),
		),
		Image: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "фото"),
		),
		Music: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "музыка"),
		),
		Tags: key.NewBinding(
			key.WithKeys("t", "enter"),
			key.WithHelp("t/enter", "примеры запросов"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "вверх"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "вниз"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "G"),
			key.WithHelp("gg/G", "первый/последний"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "копировать ссылку"),
		),
		Pager: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "результаты в пейджере"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x/esc", "сбросить"),
		),
		Sections: key.NewBinding(
			key.WithKeys("h", "b", "y", "f", "e", "n", "s", "ctrl+b"),
			key.WithHelp("h b y f e n s", "разделы"),
		),
		Helper: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "помощник"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "справка"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "выход"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Modes, k.Voice, k.Image, k.Helper, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Modes, k.Voice, k.Image, k.Music, k.Tags},
		{k.Up, k.Down, k.Top, k.Copy, k.Pager, k.Clear},
		{k.Sections, k.Helper, k.Help, k.Quit},
	}
}

var helpSections = []string{"Поиск", "Результаты", "Прочее"}

// HelpText renders the full key map for the help pager
func (k KeyMap) HelpText() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(16)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("SearchPro: справка"))
	help.WriteString("\n")

	for i, group := range k.FullHelp() {
		help.WriteString(sectionStyle.Render(helpSections[i]))
		help.WriteString("\n")
		for _, b := range group {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  В поле ввода: enter отправить, esc отмена"))
	help.WriteString("\n")
	return help.String()
}
