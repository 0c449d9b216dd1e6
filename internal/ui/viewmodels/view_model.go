package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"searchpro/internal/ui/content"
	"searchpro/internal/ui/input/types"
	"searchpro/internal/ui/state"
	"searchpro/internal/ui/toast"
	"searchpro/internal/ui/views"
)

// Picker is the part of the image picker the view needs
type Picker interface {
	IsOpen() bool
	CurrentDirectory() string
	View() string
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	toasts           *toast.Queue
	picker           Picker
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	spinner          string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, toasts *toast.Queue, picker Picker) *ViewModel {
	return &ViewModel{
		state:            appState,
		toasts:           toasts,
		picker:           picker,
		help:             help.New(),
		inputTransformer: NewInputTransformer(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetKeyMap sets the bindings shown in the help line
func (vm *ViewModel) SetKeyMap(keys help.KeyMap) {
	vm.keys = keys
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode, ti *textinput.Model) {
	vm.inputTransformer.SetMode(mode, ti)
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Section:        vm.state.ActiveSection,
		SearchType:     vm.state.SearchType,
		Query:          vm.state.Query,
		MusicQuery:     vm.state.MusicQuery,
		InputMode:      vm.inputTransformer.GetInputModeString(),
		InputView:      vm.inputTransformer.GetInputText(),
		IsListening:    vm.state.IsListening,
		IsSearching:    vm.state.IsSearching,
		HasSearched:    vm.state.HasSearched,
		ShowResults:    vm.state.ShowResults(),
		Results:        vm.state.Results,
		SelectedResult: vm.state.SelectedResult,
		TagIndex:       vm.state.TagIndex,
		Tags:           content.TagsFor(vm.state.SearchType),
		HelperOpen:     vm.state.HelperOpen,
		Spinner:        vm.spinner,
	}

	if vm.picker != nil && vm.picker.IsOpen() {
		vs.PickerOpen = true
		vs.PickerDir = vm.picker.CurrentDirectory()
		vs.PickerView = vm.picker.View()
	}

	if vm.toasts != nil {
		for _, t := range vm.toasts.Visible() {
			vs.Toasts = append(vs.Toasts, t.Notification)
		}
	}

	if vm.keys != nil {
		vs.HelpLine = vm.help.View(vm.keys)
	}
	return vs
}
