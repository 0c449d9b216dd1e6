// Package content holds the static text and placeholder data shown on the
// landing page. Nothing here is persisted.
package content

import (
	"fmt"

	"searchpro/internal/domain"
)

const (
	AppName    = "SearchPro"
	AppTagline = "Браузер будущего"
	HelperName = "ИИ Помощник"

	WelcomeTitle = "Добро пожаловать в SearchPro"
	WelcomeText  = "Мощный браузер с ИИ-поиском, голосовым управлением и поиском музыки"

	HelperIntro = "Я помогу тебе освоить все возможности браузера! Вот несколько полезных советов:"

	NothingFound = "Ничего не найдено"
	Searching    = "Поиск..."
)

// SidebarItem is one navigation entry. Count is shown as a badge when positive.
type SidebarItem struct {
	Section domain.Section
	Label   string
	Key     string
	Count   int
}

var SidebarItems = []SidebarItem{
	{Section: domain.SectionHome, Label: "Главная", Key: "h"},
	{Section: domain.SectionBookmarks, Label: "Закладки", Key: "b", Count: 12},
	{Section: domain.SectionHistory, Label: "История", Key: "y", Count: 234},
	{Section: domain.SectionFavorites, Label: "Избранное", Key: "f", Count: 8},
	{Section: domain.SectionExtensions, Label: "Расширения", Key: "e", Count: 5},
	{Section: domain.SectionNotifications, Label: "Уведомления", Key: "n", Count: 3},
	{Section: domain.SectionSettings, Label: "Настройки", Key: "s"},
}

// SectionTitle returns the sidebar label of a section
func SectionTitle(section domain.Section) string {
	for _, item := range SidebarItems {
		if item.Section == section {
			return item.Label
		}
	}
	return string(section)
}

type Tip struct {
	Title string
	Text  string
}

var Tips = []Tip{
	{Title: "Как искать голосом?", Text: "Нажми на иконку микрофона и произнеси свой запрос"},
	{Title: "Поиск по фото", Text: "Загрузи изображение, чтобы найти похожие картинки или информацию"},
	{Title: "Найди музыку", Text: "Опиши песню словами: настроение, жанр или часть текста"},
	{Title: "Горячие клавиши", Text: "Ctrl+K для быстрого поиска, Ctrl+B для закладок"},
}

var (
	PopularTags = []string{"Новости", "Погода", "Курс валют", "Спорт", "Технологии"}
	MusicTags   = []string{"Грустная музыка", "Танцевальные хиты", "Джаз", "Рок 80-х", "Поп"}
)

// TagsFor returns the example queries offered for a search mode
func TagsFor(mode domain.SearchMode) []string {
	switch mode {
	case domain.ModeWeb:
		return PopularTags
	case domain.ModeMusic:
		return MusicTags
	}
	return nil
}

// ModePanel is the home page card for one search mode
type ModePanel struct {
	Title    string
	Text     string
	Action   string // button caption, empty when the mode has none
	TagTitle string
}

// PanelFor returns the home page card for mode. listening switches the voice
// button caption.
func PanelFor(mode domain.SearchMode, listening bool) ModePanel {
	switch mode {
	case domain.ModeVoice:
		action := "Начать запись"
		if listening {
			action = "Остановить запись"
		}
		return ModePanel{
			Title:  "Голосовой поиск",
			Text:   "Нажми на кнопку микрофона и произнеси свой запрос",
			Action: action,
		}
	case domain.ModeImage:
		return ModePanel{
			Title:  "Поиск по фото",
			Text:   "Загрузи изображение, чтобы найти похожие картинки или информацию",
			Action: "Загрузить фото",
		}
	case domain.ModeMusic:
		return ModePanel{
			Title:    "Поиск музыки",
			Text:     "Найди песню по описанию или настроению",
			TagTitle: "Примеры запросов:",
		}
	default:
		return ModePanel{
			Title:    "Текстовый поиск",
			TagTitle: "Популярные запросы:",
		}
	}
}

// Entry is a placeholder row of a static section
type Entry struct {
	Title  string
	Detail string
}

func Bookmarks() []Entry {
	entries := make([]Entry, 0, 3)
	for i := 1; i <= 3; i++ {
		entries = append(entries, Entry{
			Title:  fmt.Sprintf("Сохраненная страница %d", i),
			Detail: fmt.Sprintf("example%d.com", i),
		})
	}
	return entries
}

const HistoryDay = "Сегодня"

func History() []Entry {
	entries := make([]Entry, 0, 3)
	for i := 1; i <= 3; i++ {
		entries = append(entries, Entry{
			Title:  fmt.Sprintf("Посещенная страница %d", i),
			Detail: fmt.Sprintf("14:3%d", i),
		})
	}
	return entries
}

func Favorites() []Entry {
	entries := make([]Entry, 0, 4)
	for i := 1; i <= 4; i++ {
		entries = append(entries, Entry{Title: fmt.Sprintf("Сайт %d", i)})
	}
	return entries
}

const SettingsGroup = "Общие настройки"

func Settings() []Entry {
	return []Entry{
		{Title: "Темная тема", Detail: "Вкл"},
		{Title: "Уведомления", Detail: "Вкл"},
	}
}
