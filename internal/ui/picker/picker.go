package picker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ImageExtensions are the file types the picker offers
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".svg"}

// ImagePickedMsg is sent when the user chooses a file
type ImagePickedMsg struct {
	Path string
}

// ImagePickCanceledMsg is sent when the picker is closed without a choice
type ImagePickCanceledMsg struct{}

// ImagePicker lets the user choose an image file from the host
type ImagePicker interface {
	Open() tea.Cmd
	IsImage(path string) bool
}

// Model is a terminal file picker restricted to images
type Model struct {
	fp       filepicker.Model
	startDir string
	open     bool
	height   int
}

// New creates a picker rooted at startDir, or the working directory when empty
func New(startDir string) *Model {
	if startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startDir = wd
		} else {
			startDir = "."
		}
	}
	return &Model{startDir: startDir, height: 10}
}

func (m *Model) reset() {
	fp := filepicker.New()
	fp.CurrentDirectory = m.startDir
	fp.AllowedTypes = ImageExtensions
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = false
	fp.Height = m.height
	// esc closes the picker instead of walking up a directory
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "back"))
	m.fp = fp
}

// Open shows the picker and starts reading the directory
func (m *Model) Open() tea.Cmd {
	m.reset()
	m.open = true
	return m.fp.Init()
}

// Close hides the picker without sending a message
func (m *Model) Close() {
	m.open = false
}

// IsOpen reports whether the picker is visible
func (m *Model) IsOpen() bool {
	return m.open
}

// SetHeight sets how many entries are listed
func (m *Model) SetHeight(h int) {
	if h < 3 {
		h = 3
	}
	m.height = h
	m.fp.Height = h
}

// IsImage reports whether path has one of the image extensions
func (m *Model) IsImage(path string) bool {
	return IsImage(path)
}

// IsImage reports whether path has one of the image extensions
func IsImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Cancel closes the picker and reports the cancellation
func (m *Model) Cancel() tea.Cmd {
	if !m.open {
		return nil
	}
	m.open = false
	return func() tea.Msg { return ImagePickCanceledMsg{} }
}

// Update forwards a message to the file picker while it is open
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}

	var cmd tea.Cmd
	m.fp, cmd = m.fp.Update(msg)

	if ok, path := m.fp.DidSelectFile(msg); ok && IsImage(path) {
		m.open = false
		return func() tea.Msg { return ImagePickedMsg{Path: path} }
	}
	return cmd
}

// CurrentDirectory returns the directory being listed
func (m *Model) CurrentDirectory() string {
	return m.fp.CurrentDirectory
}

// View renders the picker
func (m *Model) View() string {
	if !m.open {
		return ""
	}
	return m.fp.View()
}
