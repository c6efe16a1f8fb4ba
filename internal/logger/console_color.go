package logger

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harrison/teaspoon-report/internal/models"
)

// colorScheme defines consistent colors for summary counts.
// Green: passing examples
// Red: failures and fatal errors
// Yellow: pending examples
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
	}
}

// formatCounts renders "<n> examples, <n> failures, <n> pending" plus an
// error count when the run reported fatal errors.
func formatCounts(result *models.RunResult) string {
	s := fmt.Sprintf("%d examples, %d failures, %d pending", result.RunCount, len(result.Failures), len(result.Pendings))
	if len(result.Errors) > 0 {
		s += fmt.Sprintf(", %d errors", len(result.Errors))
	}
	return s
}

// formatColorizedCounts is formatCounts with each count colored by outcome.
// Zero counts stay uncolored so a clean run reads green only.
func formatColorizedCounts(result *models.RunResult, scheme *colorScheme) string {
	examples := fmt.Sprintf("%d examples", result.RunCount)
	if result.Passed() {
		examples = scheme.success.Sprint(examples)
	}

	failures := fmt.Sprintf("%d failures", len(result.Failures))
	if len(result.Failures) > 0 {
		failures = scheme.fail.Sprint(failures)
	}

	pending := fmt.Sprintf("%d pending", len(result.Pendings))
	if len(result.Pendings) > 0 {
		pending = scheme.warn.Sprint(pending)
	}

	s := fmt.Sprintf("%s, %s, %s", examples, failures, pending)
	if len(result.Errors) > 0 {
		s += ", " + scheme.fail.Sprintf("%d errors", len(result.Errors))
	}
	return s
}
