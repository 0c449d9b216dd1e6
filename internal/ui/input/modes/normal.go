package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"searchpro/internal/domain"
	"searchpro/internal/ui/input/types"
)

// sectionKeys maps single keys to sidebar sections
var sectionKeys = map[string]domain.Section{
	"h": domain.SectionHome,
	"b": domain.SectionBookmarks,
	"y": domain.SectionHistory,
	"f": domain.SectionFavorites,
	"e": domain.SectionExtensions,
	"n": domain.SectionNotifications,
	"s": domain.SectionSettings,
}

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyTab:
		return []types.Action{types.SelectModeAction{Mode: nextMode(ctx.SearchType())}}, true

	case tea.KeyEnter:
		if ctx.HasTag() {
			return []types.Action{types.SubmitTagAction{}}, true
		}
		return []types.Action{editAction(ctx)}, true

	case tea.KeyEsc:
		return []types.Action{types.ClearSearchAction{}}, true
	}

	key := msg.String()
	if section, ok := sectionKeys[key]; ok {
		m.lastKeyWasG = false
		return []types.Action{types.SetSectionAction{Section: section}}, true
	}

	switch key {
	case "/", "i", "ctrl+k":
		return []types.Action{editAction(ctx)}, true

	case "ctrl+b":
		return []types.Action{types.SetSectionAction{Section: domain.SectionBookmarks}}, true

	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		return []types.Action{types.SelectModeAction{Mode: domain.AllModes[idx]}}, true

	case "v":
		return []types.Action{types.ToggleVoiceAction{}}, true

	case "o":
		return []types.Action{types.PickImageAction{}}, true

	case "m":
		if ctx.SearchType() == domain.ModeMusic {
			return []types.Action{editAction(ctx)}, true
		}
		return []types.Action{
			types.SelectModeAction{Mode: domain.ModeMusic},
			types.ChangeModeAction{Mode: types.ModeMusic, Data: ctx.MusicQuery()},
		}, true

	case "a":
		return []types.Action{types.ToggleHelperAction{}}, true

	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "c":
		if ctx.HasResults() {
			return []types.Action{types.CopyURLAction{}}, true
		}
		return nil, true

	case "p":
		if ctx.HasResults() {
			return []types.Action{types.OpenResultsPagerAction{}}, true
		}
		return nil, true

	case "t":
		return []types.Action{types.NextTagAction{}}, true

	case "x":
		return []types.Action{types.ClearSearchAction{}}, true

	case "?":
		return []types.Action{types.ShowHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - first result
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}

// nextMode returns the mode after current in search bar order
func nextMode(current domain.SearchMode) domain.SearchMode {
	for i, mode := range domain.AllModes {
		if mode == current {
			return domain.AllModes[(i+1)%len(domain.AllModes)]
		}
	}
	return domain.ModeWeb
}

// editAction opens the text input that belongs to the current search type
func editAction(ctx types.Context) types.Action {
	if ctx.SearchType() == domain.ModeMusic {
		return types.ChangeModeAction{Mode: types.ModeMusic, Data: ctx.Query()}
	}
	return types.ChangeModeAction{Mode: types.ModeQuery, Data: ctx.Query()}
}
