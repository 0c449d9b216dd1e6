package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"searchpro/internal/ui/input/types"
)

// InputTransformer turns the active input mode into view-ready strings
type InputTransformer struct {
	mode      types.Mode
	textInput *textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer() *InputTransformer {
	return &InputTransformer{mode: types.ModeNormal}
}

// SetMode sets the current input mode and the text input it edits, if any
func (it *InputTransformer) SetMode(mode types.Mode, ti *textinput.Model) {
	it.mode = mode
	it.textInput = ti
}

// GetInputText returns the rendered text input while a text mode is active
func (it *InputTransformer) GetInputText() string {
	if it.textInput == nil {
		return ""
	}
	switch it.mode {
	case types.ModeQuery, types.ModeMusic:
		return it.textInput.View()
	default:
		return ""
	}
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	if it.mode == types.ModeNormal {
		return ""
	}
	return it.mode.String()
}
