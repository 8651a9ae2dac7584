package report

import (
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// MaxWidth caps separator lines.
const MaxWidth = 80

// Terminal reports on the output terminal.
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal implements Terminal with golang.org/x/term.
type DefaultTerminal struct{}

// IsTerminal checks if fd is attached to a real terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// GetSize returns the terminal dimensions of fd
func (t *DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// TerminalWidth returns the separator width for f: the terminal width capped
// at MaxWidth, or MaxWidth when f is not a terminal.
func TerminalWidth(f *os.File, terminal Terminal) int {
	if terminal == nil {
		terminal = &DefaultTerminal{}
	}
	if f == nil || !terminal.IsTerminal(int(f.Fd())) {
		return MaxWidth
	}
	width, _, err := terminal.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || width > MaxWidth {
		return MaxWidth
	}
	return width
}

// NewLogger returns the diagnostics logger: debug level when verbose, warn otherwise.
func NewLogger(w *os.File, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	noColor := w == nil || !term.IsTerminal(int(w.Fd()))
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
