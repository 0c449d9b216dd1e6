package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"searchpro/internal/ui/input/types"
)

// PickerMode lets the file picker own the keyboard. Keys it does not consume
// are forwarded to the picker by the model.
type PickerMode struct{}

func NewPickerMode() *PickerMode {
	return &PickerMode{}
}

func (m *PickerMode) Name() string {
	return "picker"
}

func (m *PickerMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PickerMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PickerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q":
		return []types.Action{
			types.CancelPickAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, false
}

// HelperMode is active while the assistant tips sheet is open
type HelperMode struct{}

func NewHelperMode() *HelperMode {
	return &HelperMode{}
}

func (m *HelperMode) Name() string {
	return "helper"
}

func (m *HelperMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HelperMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HelperMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "a", "q", "enter":
		return []types.Action{
			types.ToggleHelperAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	// The sheet is modal
	return nil, true
}
