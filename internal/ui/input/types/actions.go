package types

import "searchpro/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up" or "down"
}

func (a NavigateAction) Type() string { return "navigate" }

type SetSectionAction struct {
	Section domain.Section
}

func (a SetSectionAction) Type() string { return "set_section" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search actions
type SelectModeAction struct {
	Mode domain.SearchMode
}

func (a SelectModeAction) Type() string { return "select_mode" }

type ToggleVoiceAction struct{}

func (a ToggleVoiceAction) Type() string { return "toggle_voice" }

type PickImageAction struct{}

func (a PickImageAction) Type() string { return "pick_image" }

type CancelPickAction struct{}

func (a CancelPickAction) Type() string { return "cancel_pick" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

type NextTagAction struct{}

func (a NextTagAction) Type() string { return "next_tag" }

type SubmitTagAction struct{}

func (a SubmitTagAction) Type() string { return "submit_tag" }

// Result actions
type CopyURLAction struct{}

func (a CopyURLAction) Type() string { return "copy_url" }

type OpenResultsPagerAction struct{}

func (a OpenResultsPagerAction) Type() string { return "open_results_pager" }

// Overlay actions
type ToggleHelperAction struct{}

func (a ToggleHelperAction) Type() string { return "toggle_helper" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
