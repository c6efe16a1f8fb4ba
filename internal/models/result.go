package models

import (
	"strings"
	"time"
)

// RunResult is the immutable snapshot of one suite execution.
// It is produced once at end-of-run and only read by the renderer.
type RunResult struct {
	Suite    string          // Suite identifier, used to build re-run commands
	Elapsed  time.Duration   // Wall time of the run
	RunCount int             // Total number of examples executed
	Failures []FailureRecord // Failed examples in run order
	Pendings []PendingRecord // Pending examples in run order

	Errors            []ErrorReport // Fatal or setup errors raised outside any example
	Coverage          string        // Coverage summary text, empty when coverage was not collected
	ThresholdFailures []string      // Notices for configured thresholds that were not met
}

// FailureRecord describes a single failed example.
type FailureRecord struct {
	Description string `yaml:"description" json:"description"` // Full example description
	Message     string `yaml:"message" json:"message"`         // Assertion or error message
	Trace       string `yaml:"trace" json:"trace"`             // Raw stack trace, one frame per line
	Link        string `yaml:"link" json:"link"`               // Filter string that re-runs exactly this example
}

// TraceLines splits the raw trace into its frames.
// Trailing empty lines are dropped, so a trace ending in a newline (a YAML
// "|" block) yields no blank frame. An empty trace yields no lines.
func (f FailureRecord) TraceLines() []string {
	trace := strings.TrimRight(f.Trace, "\n")
	if trace == "" {
		return nil
	}
	return strings.Split(trace, "\n")
}

// PendingRecord describes an example marked as not yet implemented.
type PendingRecord struct {
	Description string `yaml:"description" json:"description"`
}

// HasFailures reports whether any example failed.
func (r *RunResult) HasFailures() bool {
	return len(r.Failures) > 0
}

// HasPendings reports whether any example is pending.
func (r *RunResult) HasPendings() bool {
	return len(r.Pendings) > 0
}

// Passed reports whether the run had no failures, no fatal errors
// and met every configured threshold.
func (r *RunResult) Passed() bool {
	return !r.HasFailures() && len(r.Errors) == 0 && len(r.ThresholdFailures) == 0
}
