package controller

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"searchpro/internal/domain"
	"searchpro/internal/search"
	"searchpro/internal/speech"
	"searchpro/internal/ui/clipboard"
	"searchpro/internal/ui/picker"
)

// ImageQueryPrefix starts the query sent for a picked image. Only the file
// name is transmitted.
const ImageQueryPrefix = "Поиск по изображению: "

// SearchResultMsg carries the completion of one outbound request
type SearchResultMsg struct {
	Seq     uint64
	Query   domain.SearchQuery
	Results []domain.SearchResult
	Err     error
}

// VoiceResultMsg carries the outcome of one recognition session
type VoiceResultMsg struct {
	Session    uint64
	Transcript string
	Err        error
}

// Controller is the only writer of search state. Every method runs on the
// Bubble Tea update loop; asynchronous work is returned as a tea.Cmd.
type Controller struct {
	ctx *CommandContext
}

// New creates a controller. A nil logger is replaced by a no-op one.
func New(ctx CommandContext) *Controller {
	if ctx.Log == nil {
		ctx.Log = zap.NewNop()
	}
	ctx.Log = ctx.Log.Named("controller")
	return &Controller{ctx: &ctx}
}

// SubmitSearch sends query with the given mode. Blank queries are a no-op.
func (c *Controller) SubmitSearch(query string, mode domain.SearchMode) tea.Cmd {
	return NewSubmitSearchCommand(c.ctx, query, mode).Execute()
}

// HandleSearchResult applies a completion unless a newer request superseded it
func (c *Controller) HandleSearchResult(msg SearchResultMsg) tea.Cmd {
	st := c.ctx.State
	if !st.IsLatest(msg.Seq) {
		c.ctx.Log.Debug("discarding stale search result",
			zap.Uint64("seq", msg.Seq), zap.Uint64("latest", st.RequestSeq))
		c.ctx.publish(domain.SearchDiscardedEvent{Seq: msg.Seq, Latest: st.RequestSeq})
		return nil
	}

	if msg.Err != nil {
		st.FailSearch()
		c.ctx.Log.Warn("search failed", zap.Uint64("seq", msg.Seq), zap.Error(msg.Err))
		c.ctx.publish(domain.SearchFailedEvent{Seq: msg.Seq, Query: msg.Query, Err: msg.Err})
		return c.ctx.notify(domain.SeverityError, "Ошибка поиска", describeError(msg.Err))
	}

	st.CompleteSearch(msg.Results)
	count := len(st.Results)
	c.ctx.publish(domain.SearchCompletedEvent{Seq: msg.Seq, Query: msg.Query, Count: count})
	return c.ctx.notify(domain.SeveritySuccess, "Поиск завершён", fmt.Sprintf("Найдено результатов: %d", count))
}

// StartVoiceCapture opens a recognition session
func (c *Controller) StartVoiceCapture() tea.Cmd {
	return NewStartVoiceCommand(c.ctx).Execute()
}

// StopVoiceCapture stops listening and the recognizer behind it. A
// transcript still arriving for the stopped session is ignored.
func (c *Controller) StopVoiceCapture() {
	c.ctx.stopRecognizer()
	if !c.ctx.State.IsListening {
		return
	}
	session := c.ctx.State.VoiceSession
	c.ctx.State.EndListening()
	c.ctx.publish(domain.VoiceCaptureFinishedEvent{Session: session, Err: context.Canceled})
}

// ToggleVoiceCapture starts listening, or stops when already listening
func (c *Controller) ToggleVoiceCapture() tea.Cmd {
	if c.ctx.State.IsListening {
		c.StopVoiceCapture()
		return nil
	}
	if c.ctx.State.SearchType != domain.ModeVoice {
		return c.SwitchMode(domain.ModeVoice)
	}
	return c.StartVoiceCapture()
}

// HandleVoiceResult applies the outcome of a recognition session. A
// non-blank transcript becomes the query and is searched in voice mode.
func (c *Controller) HandleVoiceResult(msg VoiceResultMsg) tea.Cmd {
	st := c.ctx.State
	if msg.Session == 0 || msg.Session != st.VoiceSession {
		c.ctx.Log.Debug("ignoring transcript from closed session", zap.Uint64("session", msg.Session))
		return nil
	}

	c.ctx.cancelVoice = nil
	st.EndListening()
	c.ctx.publish(domain.VoiceCaptureFinishedEvent{Session: msg.Session, Transcript: msg.Transcript, Err: msg.Err})

	if msg.Err != nil {
		c.ctx.Log.Warn("voice recognition failed", zap.Error(msg.Err))
		return c.ctx.notify(domain.SeverityError, "Ошибка распознавания", describeError(msg.Err))
	}

	transcript := strings.TrimSpace(msg.Transcript)
	if transcript == "" {
		return c.ctx.notify(domain.SeverityError, "Ошибка распознавания", describeError(speech.ErrNoSpeech))
	}
	st.Query = transcript
	return c.SubmitSearch(transcript, domain.ModeVoice)
}

// PickImageAndSearch opens the image picker. The search is issued once a
// file is chosen.
func (c *Controller) PickImageAndSearch() tea.Cmd {
	return NewPickImageCommand(c.ctx).Execute()
}

// HandleImagePicked searches for the chosen file
func (c *Controller) HandleImagePicked(msg picker.ImagePickedMsg) tea.Cmd {
	c.ctx.State.FilePickerOpen = false
	if c.ctx.Picker != nil && !c.ctx.Picker.IsImage(msg.Path) {
		return c.ctx.notify(domain.SeverityError, "Неподдерживаемый файл", filepath.Base(msg.Path))
	}

	name := filepath.Base(msg.Path)
	c.ctx.publish(domain.ImageSelectedEvent{Path: msg.Path})
	c.ctx.Log.Info("image selected", zap.String("name", name))

	return tea.Batch(
		c.ctx.notify(domain.SeverityInfo, "Изображение загружено", name),
		c.SubmitSearch(ImageQueryPrefix+name, domain.ModeImage),
	)
}

// HandleImagePickCanceled closes the picker without searching
func (c *Controller) HandleImagePickCanceled() {
	c.ctx.State.FilePickerOpen = false
}

// SwitchMode sets the search type. Voice starts listening and image opens
// the picker.
func (c *Controller) SwitchMode(mode domain.SearchMode) tea.Cmd {
	return NewSwitchModeCommand(c.ctx, mode).Execute()
}

// ClearSearch resets query, results and hasSearched. It is idempotent.
func (c *Controller) ClearSearch() {
	NewClearSearchCommand(c.ctx).Execute()
}

// SetSection switches the main panel
func (c *Controller) SetSection(section domain.Section) {
	if c.ctx.State.ActiveSection == section {
		return
	}
	c.ctx.State.ActiveSection = section
	c.ctx.publish(domain.SectionChangedEvent{Section: section})
}

// ToggleHelper opens or closes the assistant tips sheet
func (c *Controller) ToggleHelper() {
	c.ctx.State.HelperOpen = !c.ctx.State.HelperOpen
}

// SubmitTag searches for an example tag
func (c *Controller) SubmitTag(tag string, mode domain.SearchMode) tea.Cmd {
	if mode == domain.ModeMusic {
		c.ctx.State.MusicQuery = tag
	}
	return c.SubmitSearch(tag, mode)
}

// SelectNext highlights the next result
func (c *Controller) SelectNext() {
	c.ctx.State.MoveSelection(1)
}

// SelectPrev highlights the previous result
func (c *Controller) SelectPrev() {
	c.ctx.State.MoveSelection(-1)
}

// CopySelectedURL copies the highlighted result's URL
func (c *Controller) CopySelectedURL() tea.Cmd {
	return NewCopyURLCommand(c.ctx).Execute()
}

// describeError turns an error into notification text
func describeError(err error) string {
	var statusErr *search.StatusError
	var urlErr *url.Error

	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrEmptyQuery):
		return "Введите запрос"
	case errors.Is(err, search.ErrInvalidResponse):
		return "Сервер поиска вернул некорректный ответ"
	case errors.As(err, &statusErr):
		if statusErr.Body != "" {
			return fmt.Sprintf("Сервер поиска вернул ошибку %d: %s", statusErr.StatusCode, statusErr.Body)
		}
		return fmt.Sprintf("Сервер поиска вернул ошибку %d", statusErr.StatusCode)
	case errors.Is(err, context.DeadlineExceeded):
		return "Превышено время ожидания ответа"
	case errors.As(err, &urlErr):
		if urlErr.Timeout() {
			return "Превышено время ожидания ответа"
		}
		return "Не удалось связаться с сервером поиска"
	case errors.Is(err, speech.ErrUnavailable):
		return "Распознавание речи не поддерживается в этой системе"
	case errors.Is(err, speech.ErrNoSpeech):
		return "Речь не распознана, попробуйте ещё раз"
	case errors.Is(err, clipboard.ErrUnsupported):
		return "Буфер обмена недоступен"
	}
	return err.Error()
}
