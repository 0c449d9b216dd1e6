package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrUnavailable is returned when no recognizer is installed on the host
	ErrUnavailable = errors.New("speech recognition is not available")
	// ErrNoSpeech is returned when a session ends without a transcript
	ErrNoSpeech = errors.New("no speech was recognized")
)

// waitDelay bounds how long output pipes may outlive a killed recognizer
const waitDelay = time.Second

// Recognizer runs one single-utterance recognition session and returns the
// final transcript only.
type Recognizer interface {
	Available() bool
	Recognize(ctx context.Context, locale string) (string, error)
}

// Unavailable is the recognizer used when nothing is configured
type Unavailable struct{}

func (Unavailable) Available() bool { return false }

func (Unavailable) Recognize(context.Context, string) (string, error) {
	return "", ErrUnavailable
}

// CommandRecognizer delegates recognition to an external program that
// records from the microphone and prints what it heard.
type CommandRecognizer struct {
	name     string
	args     []string
	lookPath func(string) (string, error)
	log      *zap.Logger
}

// NewCommandRecognizer parses a command line such as
// "whisper-listen --lang {locale} --once". The {locale} placeholder is
// replaced at recognition time.
func NewCommandRecognizer(commandLine string, log *zap.Logger) *CommandRecognizer {
	if log == nil {
		log = zap.NewNop()
	}
	fields := strings.Fields(commandLine)
	r := &CommandRecognizer{
		lookPath: exec.LookPath,
		log:      log.Named("speech"),
	}
	if len(fields) > 0 {
		r.name = fields[0]
		r.args = fields[1:]
	}
	return r
}

// New returns a CommandRecognizer when a command is configured and
// Unavailable otherwise
func New(commandLine string, log *zap.Logger) Recognizer {
	if strings.TrimSpace(commandLine) == "" {
		return Unavailable{}
	}
	return NewCommandRecognizer(commandLine, log)
}

// Available reports whether the configured program can be found
func (r *CommandRecognizer) Available() bool {
	if r.name == "" {
		return false
	}
	_, err := r.lookPath(r.name)
	return err == nil
}

// Recognize runs the program once and returns the last non-empty line of
// its standard output.
func (r *CommandRecognizer) Recognize(ctx context.Context, locale string) (string, error) {
	if !r.Available() {
		return "", ErrUnavailable
	}

	args := make([]string, len(r.args))
	for i, a := range r.args {
		args[i] = strings.ReplaceAll(a, "{locale}", locale)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	r.log.Debug("starting recognition", zap.String("command", r.name), zap.String("locale", locale))
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("recognizer failed: %w: %s", err, lastLine(msg))
		}
		return "", fmt.Errorf("recognizer failed: %w", err)
	}

	transcript := lastLine(stdout.String())
	if transcript == "" {
		return "", ErrNoSpeech
	}
	r.log.Debug("recognition finished", zap.Int("transcript_len", len(transcript)))
	return transcript, nil
}

// lastLine returns the last non-blank line, trimmed. Recognizers commonly
// print interim hypotheses before the final one.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
