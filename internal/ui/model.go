package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"searchpro/internal/config"
	"searchpro/internal/domain"
	"searchpro/internal/eventbus"
	"searchpro/internal/search"
	"searchpro/internal/speech"
	"searchpro/internal/ui/clipboard"
	"searchpro/internal/ui/content"
	"searchpro/internal/ui/controller"
	"searchpro/internal/ui/input"
	inputtypes "searchpro/internal/ui/input/types"
	"searchpro/internal/ui/picker"
	"searchpro/internal/ui/state"
	"searchpro/internal/ui/toast"
	"searchpro/internal/ui/viewmodels"
	"searchpro/internal/ui/views"
)

// Services are the external capabilities the model talks to
type Services struct {
	Searcher   search.Searcher
	Recognizer speech.Recognizer
	Clipboard  clipboard.Writer
	Log        *zap.Logger
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	log    *zap.Logger

	// UI-specific state not in AppState
	width        int
	height       int
	spinner      spinner.Model
	spinning     bool
	keys         KeyMap
	inPagerMode  bool // tracks if we're currently in pager mode
	initialQuery string

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	controller   *controller.Controller
	toasts       *toast.Queue
	picker       *picker.Model
	inputHandler *input.Handler
	pager        *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, svc Services) *Model {
	if svc.Log == nil {
		svc.Log = zap.NewNop()
	}
	appState := state.NewAppState(cfg.StartSection(), cfg.StartMode())

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		log:          svc.Log.Named("ui"),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:         DefaultKeyMap(),
		renderer:     views.NewRenderer(),
		toasts:       toast.NewQueue(cfg.ToastTTL(), cfg.UI.MaxToasts),
		picker:       picker.New(cfg.ImageDir),
		inputHandler: input.New(),
		pager:        NewPager(),
	}

	m.controller = controller.New(controller.CommandContext{
		State:      appState,
		Bus:        bus,
		Searcher:   svc.Searcher,
		Recognizer: svc.Recognizer,
		Picker:     m.picker,
		Notifier:   m.toasts,
		Clipboard:  svc.Clipboard,
		Locale:     cfg.Locale,
		Log:        svc.Log,
	})

	m.viewModel = viewmodels.NewViewModel(appState, m.toasts, m.picker)
	m.viewModel.SetKeyMap(m.keys)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// SetInitialQuery submits query as soon as the program starts
func (m *Model) SetInitialQuery(query string) {
	m.initialQuery = query
}

// State exposes the view state store
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if strings.TrimSpace(m.initialQuery) == "" {
		return nil
	}
	cmd := m.controller.SubmitSearch(m.initialQuery, m.state.SearchType)
	return tea.Batch(cmd, m.startSpinner())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.picker.SetHeight(msg.Height - 12)
		m.inputHandler.SetWidth(msg.Width - 60)
		return m, nil

	case tea.KeyMsg:
		ctx := m.inputContext()

		// Handle input through the mode handler
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{cmd}

		// Keys the picker mode leaves alone drive the file picker
		if actions == nil && cmd == nil && m.inputHandler.CurrentMode() == inputtypes.ModePicker {
			cmds = append(cmds, m.picker.Update(msg))
		}

		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

		m.syncInputMode()
		cmds = append(cmds, m.startSpinner())
		return m, tea.Batch(cmds...)

	default:
		cmds := []tea.Cmd{m.inputHandler.Update(msg)}
		if m.picker.IsOpen() {
			cmds = append(cmds, m.picker.Update(msg))
		}
		cmds = append(cmds, m.handleNonKeyboardMsg(msg))
		m.syncInputMode()
		cmds = append(cmds, m.startSpinner())
		return m, tea.Batch(cmds...)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode(), m.inputHandler.TextInput())
	m.viewModel.SetSpinner(m.spinner.View())

	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State: m.state,
		Tags:  content.TagsFor(m.state.SearchType),
	}
}

// syncInputMode keeps the input mode in line with the overlays the
// controller opened or closed
func (m *Model) syncInputMode() {
	current := m.inputHandler.CurrentMode()
	want := current

	switch {
	case m.state.FilePickerOpen:
		want = inputtypes.ModePicker
	case m.state.HelperOpen:
		want = inputtypes.ModeHelper
	case current == inputtypes.ModePicker || current == inputtypes.ModeHelper:
		want = inputtypes.ModeNormal
	}

	if !m.state.FilePickerOpen && m.picker.IsOpen() {
		m.picker.Close()
	}
	if want != current {
		m.inputHandler.ChangeMode(want, "", m.inputContext())
	}
}

// startSpinner starts the spinner tick loop while something is in flight
func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || (!m.state.IsSearching && !m.state.IsListening) {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debug("processAction", zap.String("action", action.Type()))

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.controller.SelectPrev()
		case "down":
			m.controller.SelectNext()
		case "home":
			m.state.MoveSelection(-len(m.state.Results))
		case "end":
			m.state.MoveSelection(len(m.state.Results))
		}

	case inputtypes.SetSectionAction:
		m.controller.SetSection(a.Section)

	case inputtypes.UpdateTextAction:
		if a.Mode == inputtypes.ModeMusic {
			m.state.MusicQuery = a.Text
		} else {
			m.state.Query = a.Text
		}

	case inputtypes.SubmitTextAction:
		mode := m.state.SearchType
		if a.Mode == inputtypes.ModeMusic {
			m.state.MusicQuery = a.Text
			mode = domain.ModeMusic
		}
		if strings.TrimSpace(a.Text) != "" {
			m.controller.SetSection(domain.SectionHome)
		}
		return m.controller.SubmitSearch(a.Text, mode)

	case inputtypes.CancelTextAction:
		// Typed text stays in the bar

	case inputtypes.SelectModeAction:
		m.state.TagIndex = -1
		return m.controller.SwitchMode(a.Mode)

	case inputtypes.ToggleVoiceAction:
		return m.controller.ToggleVoiceCapture()

	case inputtypes.PickImageAction:
		return m.controller.PickImageAndSearch()

	case inputtypes.CancelPickAction:
		m.controller.HandleImagePickCanceled()
		return m.picker.Cancel()

	case inputtypes.ClearSearchAction:
		m.state.TagIndex = -1
		m.controller.ClearSearch()

	case inputtypes.NextTagAction:
		tags := content.TagsFor(m.state.SearchType)
		if len(tags) == 0 {
			return nil
		}
		m.state.TagIndex = (m.state.TagIndex + 1) % len(tags)

	case inputtypes.SubmitTagAction:
		tag, ok := m.inputContext().CurrentTag()
		if !ok {
			return nil
		}
		m.state.TagIndex = -1
		m.controller.SetSection(domain.SectionHome)
		return m.controller.SubmitTag(tag, m.state.SearchType)

	case inputtypes.CopyURLAction:
		return m.controller.CopySelectedURL()

	case inputtypes.OpenResultsPagerAction:
		if len(m.state.Results) == 0 {
			return nil
		}
		return m.fetchPager("results", views.ResultsText(m.state.Query, m.state.Results))

	case inputtypes.ToggleHelperAction:
		m.controller.ToggleHelper()

	case inputtypes.ShowHelpAction:
		return m.fetchPager("help", m.keys.HelpText())

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// fetchPager returns a command that shows text using the ov pager
func (m *Model) fetchPager(what, text string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return pagerMsg{what: what, err: errNoProgram}
		}

		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(text)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{what: what, err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case controller.SearchResultMsg:
		return m.controller.HandleSearchResult(msg)

	case controller.VoiceResultMsg:
		return m.controller.HandleVoiceResult(msg)

	case picker.ImagePickedMsg:
		return m.controller.HandleImagePicked(msg)

	case picker.ImagePickCanceledMsg:
		m.controller.HandleImagePickCanceled()
		return nil

	case toast.ExpireMsg:
		m.toasts.Expire(msg.ID)
		return nil

	case spinner.TickMsg:
		// Stop the tick loop once nothing is in flight or while paged out
		if m.inPagerMode || (!m.state.IsSearching && !m.state.IsListening) {
			m.spinning = false
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case pagerMsg:
		if msg.err == nil {
			return nil
		}
		m.log.Warn("pager failed", zap.String("content", msg.what), zap.Error(msg.err))
		if msg.what == "results" {
			return m.toasts.Notify(domain.Notification{
				Title:       "Не удалось открыть пейджер",
				Description: msg.err.Error(),
				Severity:    domain.SeverityError,
			})
		}
		return nil

	case pauseRenderingMsg:
		// Signal that rendering should be paused for external pager
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return nil
	}

	// Other messages are handled elsewhere
	return nil
}
