package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchpro/internal/domain"
	"searchpro/internal/ui/input/types"
	"searchpro/internal/ui/state"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newContext() *ModelContext {
	return &ModelContext{
		State: state.NewAppState(domain.SectionHome, domain.ModeWeb),
		Tags:  []string{"Новости", "Погода"},
	}
}

func TestSlashEntersQueryModeWithCurrentQuery(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.State.Query = "погода"

	actions, cmd := h.HandleKey(runes("/"), ctx)
	assert.Empty(t, actions)
	assert.NotNil(t, cmd)
	assert.Equal(t, types.ModeQuery, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "погода", h.TextInput().Value())
}

func TestTypingEmitsUpdateTextAction(t *testing.T) {
	h := New()
	ctx := newContext()
	h.HandleKey(runes("i"), ctx)

	actions, _ := h.HandleKey(runes("a"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "a", Mode: types.ModeQuery}, actions[0])

	actions, _ = h.HandleKey(runes("b"), ctx)
	assert.Equal(t, types.UpdateTextAction{Text: "ab", Mode: types.ModeQuery}, actions[0])
}

func TestEnterSubmitsAndReturnsToNormal(t *testing.T) {
	h := New()
	ctx := newContext()
	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("x"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.SubmitTextAction{Text: "x", Mode: types.ModeQuery}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestEscCancelsTextInput(t *testing.T) {
	h := New()
	ctx := newContext()
	h.HandleKey(runes("/"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.CancelTextAction{}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestMusicKeyEntersMusicMode(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.State.MusicQuery = "джаз"

	actions, _ := h.HandleKey(runes("m"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.SelectModeAction{Mode: domain.ModeMusic}, actions[0])
	assert.Equal(t, types.ModeMusic, h.CurrentMode())
	assert.Equal(t, "джаз", h.TextInput().Value())

	actions, _ = h.HandleKey(runes("!"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "джаз!", Mode: types.ModeMusic}, actions[0])
}

func TestNormalModeKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want types.Action
	}{
		{"voice", runes("v"), types.ToggleVoiceAction{}},
		{"image", runes("o"), types.PickImageAction{}},
		{"helper", runes("a"), types.ToggleHelperAction{}},
		{"mode 3", runes("3"), types.SelectModeAction{Mode: domain.ModeImage}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, types.SelectModeAction{Mode: domain.ModeVoice}},
		{"history", runes("y"), types.SetSectionAction{Section: domain.SectionHistory}},
		{"bookmarks", tea.KeyMsg{Type: tea.KeyCtrlB}, types.SetSectionAction{Section: domain.SectionBookmarks}},
		{"clear", tea.KeyMsg{Type: tea.KeyEsc}, types.ClearSearchAction{}},
		{"down", runes("j"), types.NavigateAction{Direction: "down"}},
		{"last", runes("G"), types.NavigateAction{Direction: "end"}},
		{"quit", runes("q"), types.QuitAction{Force: false}},
		{"help", runes("?"), types.ShowHelpAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			actions, _ := h.HandleKey(tt.key, newContext())
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, actions[0])
			assert.Equal(t, types.ModeNormal, h.CurrentMode())
		})
	}
}

func TestDoubleGJumpsHome(t *testing.T) {
	h := New()
	ctx := newContext()

	actions, _ := h.HandleKey(runes("g"), ctx)
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runes("g"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.NavigateAction{Direction: "home"}, actions[0])
}

func TestResultKeysNeedResults(t *testing.T) {
	h := New()
	ctx := newContext()

	actions, _ := h.HandleKey(runes("c"), ctx)
	assert.Empty(t, actions)

	ctx.State.Results = []domain.SearchResult{{Title: "a", URL: "https://a"}}
	actions, _ = h.HandleKey(runes("c"), ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.CopyURLAction{}, actions[0])

	actions, _ = h.HandleKey(runes("p"), ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.OpenResultsPagerAction{}, actions[0])
}

func TestEnterSubmitsHighlightedTag(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.State.TagIndex = 1

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.SubmitTagAction{}, actions[0])

	tag, ok := ctx.CurrentTag()
	assert.True(t, ok)
	assert.Equal(t, "Погода", tag)
}

func TestPickerModeLeavesKeysToPicker(t *testing.T) {
	h := New()
	ctx := newContext()
	h.ChangeMode(types.ModePicker, "", ctx)

	actions, cmd := h.HandleKey(runes("j"), ctx)
	assert.Nil(t, actions)
	assert.Nil(t, cmd)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.CancelPickAction{}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestHelperModeIsModal(t *testing.T) {
	h := New()
	ctx := newContext()
	h.ChangeMode(types.ModeHelper, "", ctx)

	actions, _ := h.HandleKey(runes("v"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeHelper, h.CurrentMode())

	actions, _ = h.HandleKey(runes("a"), ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.ToggleHelperAction{}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestContextQueryFollowsSearchType(t *testing.T) {
	ctx := newContext()
	ctx.State.Query = "web"
	ctx.State.MusicQuery = "rock"
	assert.Equal(t, "web", ctx.Query())

	ctx.State.SearchType = domain.ModeMusic
	assert.Equal(t, "rock", ctx.Query())
}
