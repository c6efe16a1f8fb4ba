package display

import (
	"fmt"

	"github.com/fatih/color"
)

// Color is the presentation attribute of a report line.
type Color int

const (
	// None leaves the line uncolored.
	None Color = iota
	// Red marks errors and failures.
	Red
	// Green marks a fully passing run.
	Green
	// Yellow marks pending examples and application trace frames.
	Yellow
	// Cyan marks secondary information.
	Cyan
)

// String returns the lowercase name of the color.
func (c Color) String() string {
	switch c {
	case None:
		return "none"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Cyan:
		return "cyan"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// attribute maps the color to its foreground attribute.
// The boolean is false for None and out-of-range values.
func (c Color) attribute() (color.Attribute, bool) {
	switch c {
	case Red:
		return color.FgRed, true
	case Green:
		return color.FgGreen, true
	case Yellow:
		return color.FgYellow, true
	case Cyan:
		return color.FgCyan, true
	default:
		return 0, false
	}
}

// Colorize wraps text in the escape sequences for c.
// None, unknown colors and empty text are returned unchanged.
func Colorize(text string, c Color) string {
	attr, ok := c.attribute()
	if !ok || text == "" {
		return text
	}
	painter := color.New(attr)
	// Sinks decide whether color is wanted; the global TTY check must not veto it.
	painter.EnableColor()
	return painter.Sprint(text)
}
