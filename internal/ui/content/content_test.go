package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"searchpro/internal/domain"
)

func TestSidebarCoversEverySection(t *testing.T) {
	sections := []domain.Section{
		domain.SectionHome, domain.SectionBookmarks, domain.SectionHistory, domain.SectionFavorites,
		domain.SectionExtensions, domain.SectionNotifications, domain.SectionSettings,
	}
	assert.Len(t, SidebarItems, len(sections))
	for i, section := range sections {
		assert.Equal(t, section, SidebarItems[i].Section)
	}
	assert.Equal(t, "История", SectionTitle(domain.SectionHistory))
}

func TestTagsFor(t *testing.T) {
	assert.Equal(t, "Новости", TagsFor(domain.ModeWeb)[0])
	assert.Equal(t, "Джаз", TagsFor(domain.ModeMusic)[2])
	assert.Empty(t, TagsFor(domain.ModeVoice))
	assert.Empty(t, TagsFor(domain.ModeImage))
}

func TestVoicePanelFollowsListening(t *testing.T) {
	assert.Equal(t, "Начать запись", PanelFor(domain.ModeVoice, false).Action)
	assert.Equal(t, "Остановить запись", PanelFor(domain.ModeVoice, true).Action)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, Entry{Title: "Сохраненная страница 2", Detail: "example2.com"}, Bookmarks()[1])
	assert.Equal(t, "14:33", History()[2].Detail)
	assert.Len(t, Favorites(), 4)
	assert.Len(t, Settings(), 2)
}
