package report

import (
	"errors"

	"github.com/harrison/teaspoon-report/internal/display"
)

type recordedLine struct {
	Text  string
	Color display.Color
}

// recordingSink captures every written line. When failAt is positive, the
// failAt-th write (1-based) returns errSinkBroken.
type recordingSink struct {
	lines  []recordedLine
	writes int
	failAt int
}

var errSinkBroken = errors.New("sink broken")

func (s *recordingSink) WriteLine(text string, c display.Color) error {
	s.writes++
	if s.failAt > 0 && s.writes >= s.failAt {
		return errSinkBroken
	}
	s.lines = append(s.lines, recordedLine{Text: text, Color: c})
	return nil
}

func (s *recordingSink) texts() []string {
	out := make([]string, len(s.lines))
	for i, l := range s.lines {
		out[i] = l.Text
	}
	return out
}

func (s *recordingSink) nonBlank() []recordedLine {
	var out []recordedLine
	for _, l := range s.lines {
		if l.Text != "" {
			out = append(out, l)
		}
	}
	return out
}

func (s *recordingSink) find(text string) (recordedLine, bool) {
	for _, l := range s.lines {
		if l.Text == text {
			return l, true
		}
	}
	return recordedLine{}, false
}

type prefixShortener struct{ prefix string }

func (p prefixShortener) Shorten(path string) string {
	if len(path) >= len(p.prefix) && path[:len(p.prefix)] == p.prefix {
		return path[len(p.prefix):]
	}
	return path
}
