// Package notify renders one-line status notices, the terminal stand-in
// for toast notifications. Logout uses the warning level for the
// partial-success case where the server could not be told.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Level is the severity of a notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
)

// Notifier writes styled notices to a stream.
type Notifier struct {
	out     io.Writer
	noColor bool
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithWriter redirects notices, used by tests.
func WithWriter(w io.Writer) Option {
	return func(n *Notifier) { n.out = w }
}

// WithNoColor strips styling.
func WithNoColor(noColor bool) Option {
	return func(n *Notifier) { n.noColor = noColor }
}

// New creates a Notifier writing to stderr so notices never mix into
// formatted command output on stdout.
func New(opts ...Option) *Notifier {
	n := &Notifier{out: os.Stderr}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify writes a notice at the given level.
func (n *Notifier) Notify(level Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	var line string
	switch level {
	case LevelSuccess:
		line = n.render(successStyle, "✓") + " " + msg
	case LevelWarning:
		line = n.render(warningStyle, "!") + " " + msg
	case LevelError:
		line = n.render(errorStyle, "✗") + " " + msg
	default:
		line = n.render(infoStyle, "•") + " " + msg
	}
	fmt.Fprintln(n.out, line)
}

func (n *Notifier) render(style lipgloss.Style, glyph string) string {
	if n.noColor {
		return glyph
	}
	return style.Render(glyph)
}

// Success reports a completed action.
func (n *Notifier) Success(format string, args ...any) { n.Notify(LevelSuccess, format, args...) }

// Warning reports a degraded but non-fatal outcome.
func (n *Notifier) Warning(format string, args ...any) { n.Notify(LevelWarning, format, args...) }

// Error reports a failure.
func (n *Notifier) Error(format string, args ...any) { n.Notify(LevelError, format, args...) }

// Info reports neutral progress.
func (n *Notifier) Info(format string, args ...any) { n.Notify(LevelInfo, format, args...) }
