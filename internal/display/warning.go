package display

import "fmt"

// LineWriter is the sink surface Warning writes through.
type LineWriter interface {
	WriteLine(text string, c Color) error
}

// Warning represents a user-facing warning about the result being reported.
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // Related records or files (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning in yellow. The first sink error aborts output.
func (w Warning) Display(out LineWriter) error {
	lines := []string{"Warning: " + w.Title}

	if w.Message != "" {
		lines = append(lines, "    "+w.Message)
	}
	for i, item := range w.Items {
		lines = append(lines, fmt.Sprintf("      %d. %s", i+1, item))
	}
	if w.Suggestion != "" {
		lines = append(lines, "    Suggestion: "+w.Suggestion)
	}

	for _, line := range lines {
		if err := out.WriteLine(line, Yellow); err != nil {
			return err
		}
	}
	return nil
}
