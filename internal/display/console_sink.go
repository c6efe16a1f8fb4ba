package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// ColorMode decides when a ConsoleSink emits escape sequences.
type ColorMode string

const (
	// ColorAuto colors output only on terminals without NO_COLOR set.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever never colors output.
	ColorNever ColorMode = "never"
)

// ParseColorMode normalizes a color mode string.
// An empty string means ColorAuto.
func ParseColorMode(mode string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(mode))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (valid: auto, always, never)", mode)
	}
}

// ConsoleSink writes report lines to an io.Writer.
// It is safe for concurrent use; each line is written atomically.
type ConsoleSink struct {
	writer      io.Writer
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleSink creates a ConsoleSink writing to w.
// A nil writer discards all output.
func NewConsoleSink(w io.Writer, mode ColorMode) *ConsoleSink {
	if w == nil {
		w = io.Discard
	}

	var useColor bool
	switch mode {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	default:
		useColor = isTerminal(w)
	}

	return &ConsoleSink{
		writer:      w,
		colorOutput: useColor,
	}
}

// isTerminal reports whether w is a terminal that should receive color.
// NO_COLOR disables color regardless of the terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled reports whether lines are written with escape sequences.
func (s *ConsoleSink) ColorEnabled() bool {
	return s.colorOutput
}

// WriteLine writes text followed by a newline, wrapped in c when color is enabled.
func (s *ConsoleSink) WriteLine(text string, c Color) error {
	if s.colorOutput {
		text = Colorize(text, c)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, err := io.WriteString(s.writer, text+"\n"); err != nil {
		return fmt.Errorf("failed to write report line: %w", err)
	}
	return nil
}
