package controller

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"searchpro/internal/domain"
	"searchpro/internal/eventbus"
	"searchpro/internal/search"
	"searchpro/internal/speech"
	"searchpro/internal/ui/clipboard"
	"searchpro/internal/ui/picker"
	"searchpro/internal/ui/state"
	"searchpro/internal/ui/toast"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State      *state.AppState
	Bus        eventbus.EventBus
	Searcher   search.Searcher
	Recognizer speech.Recognizer
	Picker     picker.ImagePicker
	Notifier   toast.Notifier
	Clipboard  clipboard.Writer
	Locale     string
	Log        *zap.Logger

	cancelVoice context.CancelFunc // stops the running recognizer, if any
}

func (c *CommandContext) publish(e domain.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(e)
	}
}

// stopRecognizer cancels the recognizer of the current voice session
func (c *CommandContext) stopRecognizer() {
	if c.cancelVoice != nil {
		c.cancelVoice()
		c.cancelVoice = nil
	}
}

func (c *CommandContext) notify(sev domain.Severity, title, description string) tea.Cmd {
	if c.Notifier == nil {
		return nil
	}
	return c.Notifier.Notify(domain.Notification{Title: title, Description: description, Severity: sev})
}

// SubmitSearchCommand sends one query to the search endpoint
type SubmitSearchCommand struct {
	ctx  *CommandContext
	text string
	mode domain.SearchMode
}

// NewSubmitSearchCommand creates a new submit search command
func NewSubmitSearchCommand(ctx *CommandContext, text string, mode domain.SearchMode) *SubmitSearchCommand {
	return &SubmitSearchCommand{ctx: ctx, text: text, mode: mode}
}

// Execute marks the search as in flight and returns the request command.
// Blank queries are ignored.
func (c *SubmitSearchCommand) Execute() tea.Cmd {
	q, err := domain.NewSearchQuery(c.text, c.mode)
	if err != nil {
		c.ctx.Log.Debug("ignoring blank query")
		return nil
	}

	seq := c.ctx.State.BeginSearch(q.Text)
	c.ctx.publish(domain.SearchRequestedEvent{Seq: seq, Query: q})
	c.ctx.Log.Info("search submitted", zap.Uint64("seq", seq), zap.String("type", string(q.Mode)))

	searcher := c.ctx.Searcher
	return func() tea.Msg {
		results, err := searcher.Search(context.Background(), q)
		return SearchResultMsg{Seq: seq, Query: q, Results: results, Err: err}
	}
}

// StartVoiceCommand opens one recognition session
type StartVoiceCommand struct {
	ctx *CommandContext
}

// NewStartVoiceCommand creates a new start voice command
func NewStartVoiceCommand(ctx *CommandContext) *StartVoiceCommand {
	return &StartVoiceCommand{ctx: ctx}
}

// Execute starts listening, or reports that recognition is unavailable
func (c *StartVoiceCommand) Execute() tea.Cmd {
	rec := c.ctx.Recognizer
	if rec == nil || !rec.Available() {
		c.ctx.Log.Warn("voice capture requested without a recognizer")
		return c.ctx.notify(domain.SeverityError, "Голосовой поиск недоступен", describeError(speech.ErrUnavailable))
	}

	// a new session supersedes the previous one
	c.ctx.stopRecognizer()
	recCtx, cancel := context.WithCancel(context.Background())
	c.ctx.cancelVoice = cancel

	session := c.ctx.State.BeginListening()
	locale := c.ctx.Locale
	c.ctx.publish(domain.VoiceCaptureStartedEvent{Session: session, Locale: locale})

	return func() tea.Msg {
		defer cancel()
		text, err := rec.Recognize(recCtx, locale)
		return VoiceResultMsg{Session: session, Transcript: text, Err: err}
	}
}

// PickImageCommand opens the image picker
type PickImageCommand struct {
	ctx *CommandContext
}

// NewPickImageCommand creates a new pick image command
func NewPickImageCommand(ctx *CommandContext) *PickImageCommand {
	return &PickImageCommand{ctx: ctx}
}

// Execute opens the picker
func (c *PickImageCommand) Execute() tea.Cmd {
	if c.ctx.Picker == nil {
		return c.ctx.notify(domain.SeverityError, "Загрузка фото недоступна", "Выбор файлов не поддерживается")
	}
	c.ctx.State.FilePickerOpen = true
	return c.ctx.Picker.Open()
}

// SwitchModeCommand changes the search type
type SwitchModeCommand struct {
	ctx  *CommandContext
	mode domain.SearchMode
}

// NewSwitchModeCommand creates a new switch mode command
func NewSwitchModeCommand(ctx *CommandContext, mode domain.SearchMode) *SwitchModeCommand {
	return &SwitchModeCommand{ctx: ctx, mode: mode}
}

// Execute sets the search type and triggers the mode's capability
func (c *SwitchModeCommand) Execute() tea.Cmd {
	from := c.ctx.State.SearchType
	c.ctx.State.SearchType = c.mode
	if from != c.mode {
		c.ctx.publish(domain.ModeSwitchedEvent{From: from, To: c.mode})
	}

	switch c.mode {
	case domain.ModeVoice:
		return NewStartVoiceCommand(c.ctx).Execute()
	case domain.ModeImage:
		return NewPickImageCommand(c.ctx).Execute()
	}
	return nil
}

// ClearSearchCommand resets the search state
type ClearSearchCommand struct {
	ctx *CommandContext
}

// NewClearSearchCommand creates a new clear search command
func NewClearSearchCommand(ctx *CommandContext) *ClearSearchCommand {
	return &ClearSearchCommand{ctx: ctx}
}

// Execute clears query, results and hasSearched
func (c *ClearSearchCommand) Execute() tea.Cmd {
	c.ctx.State.ResetSearch()
	c.ctx.publish(domain.SearchClearedEvent{})
	return nil
}

// CopyURLCommand copies the highlighted result's URL
type CopyURLCommand struct {
	ctx *CommandContext
}

// NewCopyURLCommand creates a new copy URL command
func NewCopyURLCommand(ctx *CommandContext) *CopyURLCommand {
	return &CopyURLCommand{ctx: ctx}
}

// Execute writes the URL to the clipboard and reports the outcome
func (c *CopyURLCommand) Execute() tea.Cmd {
	item, ok := c.ctx.State.SelectedResultItem()
	if !ok || item.URL == "" {
		return nil
	}
	if c.ctx.Clipboard == nil {
		return c.ctx.notify(domain.SeverityError, "Не удалось скопировать", describeError(clipboard.ErrUnsupported))
	}
	if err := c.ctx.Clipboard.WriteAll(item.URL); err != nil {
		c.ctx.Log.Warn("clipboard write failed", zap.Error(err))
		return c.ctx.notify(domain.SeverityError, "Не удалось скопировать", describeError(err))
	}
	return c.ctx.notify(domain.SeveritySuccess, "Ссылка скопирована", item.URL)
}
