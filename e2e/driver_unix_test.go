//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

const captureSize = 1 << 20

var binPath = "searchpro_e2e"

const (
	KeyEnter  = "\r"
	KeyEsc    = "\x1b"
	KeyCtrlC  = "\x03"
	KeyQuit   = "q"
	KeySearch = "/"
	KeyHelper = "a"
)

// ansiRe strips CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// appSession runs the searchpro binary inside a PTY and records everything
// it draws
type appSession struct {
	t    *testing.T
	home string
	pty  *os.File
	cmd  *exec.Cmd

	mu     sync.Mutex
	out    []byte
	exited chan error
}

func newSession(t *testing.T) *appSession {
	return &appSession{t: t, home: t.TempDir()}
}

func (s *appSession) env() []string {
	return append(os.Environ(),
		"TERM=xterm-256color",
		"LANG=C.UTF-8",
		"HOME="+s.home,
		"XDG_CONFIG_HOME="+filepath.Join(s.home, ".config"),
		"SEARCHPRO_LOG_FILE="+filepath.Join(s.home, "searchpro.log"),
		"SEARCHPRO_IMAGE_DIR="+s.home,
	)
}

// Start launches searchpro with args on a 120x40 terminal
func (s *appSession) Start(args ...string) error {
	s.cmd = exec.Command(binPath, args...)
	s.cmd.Env = s.env()

	f, err := pty.StartWithSize(s.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("failed to start in pty: %w", err)
	}
	s.pty = f
	s.exited = make(chan error, 1)

	go s.capture()
	go func() { s.exited <- s.cmd.Wait() }()
	return nil
}

func (s *appSession) capture() {
	buf := make([]byte, 8192)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.out = append(s.out, buf[:n]...)
			if len(s.out) > captureSize {
				s.out = s.out[len(s.out)-captureSize:]
			}
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Send writes raw keystrokes
func (s *appSession) Send(keys string) error {
	s.t.Helper()
	_, err := s.pty.Write([]byte(keys))
	return err
}

// Search opens the search bar, types query and submits it
func (s *appSession) Search(query string) error {
	s.t.Helper()
	for _, step := range []string{KeySearch, query, KeyEnter} {
		if err := s.Send(step); err != nil {
			return err
		}
		time.Sleep(50 * time.Millisecond)
	}
	return nil
}

// Quit presses q
func (s *appSession) Quit() error {
	s.t.Helper()
	return s.Send(KeyQuit)
}

// Ready waits for the first full frame
func (s *appSession) Ready() bool {
	s.t.Helper()
	return s.See("SearchPro", 5*time.Second)
}

// See waits until text shows up in the plain output
func (s *appSession) See(text string, timeout time.Duration) bool {
	s.t.Helper()
	return s.waitFor(func(out string) bool { return strings.Contains(out, text) }, timeout)
}

// MustSee fails the test with the output tail when text never shows up
func (s *appSession) MustSee(text string, timeout time.Duration) {
	s.t.Helper()
	if !s.See(text, timeout) {
		tail := s.Plain()
		if len(tail) > 4096 {
			tail = tail[len(tail)-4096:]
		}
		s.t.Fatalf("never saw %q\n--- tail ---\n%s", text, tail)
	}
}

func (s *appSession) waitFor(pred func(string) bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if pred(s.Plain()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// Plain returns the captured output with escape sequences removed
func (s *appSession) Plain() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ansiRe.ReplaceAllString(string(s.out), "")
}

// WaitExit waits for the process to exit on its own
func (s *appSession) WaitExit(timeout time.Duration) error {
	s.t.Helper()
	select {
	case err := <-s.exited:
		s.cmd = nil
		return err
	case <-time.After(timeout):
		return fmt.Errorf("process did not exit within %s", timeout)
	}
}

// Close kills the process if it is still running and releases the PTY
func (s *appSession) Close() {
	if s.pty != nil {
		_ = s.pty.Close()
		s.pty = nil
	}
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
		<-s.exited
		s.cmd = nil
	}
}
