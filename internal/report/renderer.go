// Package report renders the outcome of a test run as color-coded text.
//
// A Renderer writes through a LineWriter: pending examples, failures with
// cleaned-up traces, the elapsed time and stats line, and one copy-pasteable
// re-run command per failed example. Colors are expressed with display.Color
// and turned into escape sequences (or dropped) by the sink.
package report

import (
	"fmt"

	"github.com/harrison/teaspoon-report/internal/display"
	"github.com/harrison/teaspoon-report/internal/models"
)

const (
	// DefaultRunnerCommand is the command used to build re-run lines.
	DefaultRunnerCommand = "teaspoon"
	// DefaultSuite is used when a result carries no suite name.
	DefaultSuite = "default"
)

// LineWriter accepts report lines. WriteLine("", display.None) writes a blank line.
type LineWriter interface {
	WriteLine(text string, c display.Color) error
}

// Shortener converts a trace file path to a display-friendly form.
type Shortener interface {
	Shorten(path string) string
}

type identityShortener struct{}

func (identityShortener) Shorten(path string) string { return path }

// Options configures a Renderer. Zero values select the defaults.
type Options struct {
	// RunnerCommand prefixes every re-run line. Defaults to "teaspoon".
	RunnerCommand string
	// FrameworkMarkers identify trace lines from the test framework itself.
	// Nil selects DefaultFrameworkMarkers; an empty slice matches nothing.
	FrameworkMarkers []string
	// Shortener rewrites file paths of structured trace frames.
	Shortener Shortener
}

// Renderer writes reports to a single sink. It is not safe for concurrent
// use; one Renderer owns its sink for the duration of a call.
type Renderer struct {
	sink      LineWriter
	runner    string
	markers   []string
	shortener Shortener
}

// NewRenderer creates a Renderer writing to sink.
func NewRenderer(sink LineWriter, opts Options) *Renderer {
	r := &Renderer{
		sink:      sink,
		runner:    opts.RunnerCommand,
		markers:   opts.FrameworkMarkers,
		shortener: opts.Shortener,
	}
	if r.runner == "" {
		r.runner = DefaultRunnerCommand
	}
	if r.markers == nil {
		r.markers = DefaultFrameworkMarkers()
	}
	if r.shortener == nil {
		r.shortener = identityShortener{}
	}
	return r
}

func (r *Renderer) line(text string, c display.Color) error {
	return r.sink.WriteLine(text, c)
}

func (r *Renderer) blank() error {
	return r.sink.WriteLine("", display.None)
}

// RenderError writes a fatal or setup error: the message in red, one cyan
// line per trace frame, then a blank line.
func (r *Renderer) RenderError(report models.ErrorReport) error {
	if err := report.Validate(); err != nil {
		return fmt.Errorf("cannot render error: %w", err)
	}

	if err := r.line(report.Message, display.Red); err != nil {
		return err
	}
	for _, frame := range report.Trace {
		if err := r.line(r.formatFrame(frame), display.Cyan); err != nil {
			return err
		}
	}
	return r.blank()
}

// RenderException is an alias for RenderError.
func (r *Renderer) RenderException(report models.ErrorReport) error {
	return r.RenderError(report)
}

func (r *Renderer) formatFrame(frame models.TraceFrame) string {
	text := fmt.Sprintf("  # %s:%d", r.shortener.Shorten(frame.File), frame.Line)
	if frame.Function != "" {
		text += " -- " + frame.Function
	}
	return text
}

// RenderResult writes the full summary of a run. The result is validated
// before anything is written; a sink error aborts the remaining output.
func (r *Renderer) RenderResult(result *models.RunResult) error {
	if err := result.Validate(); err != nil {
		return fmt.Errorf("cannot render result: %w", err)
	}

	if result.HasPendings() {
		if err := r.renderPendings(result.Pendings); err != nil {
			return err
		}
	}
	if result.HasFailures() {
		if err := r.renderFailures(result.Failures); err != nil {
			return err
		}
	}
	if err := r.renderStats(result); err != nil {
		return err
	}
	if result.HasFailures() {
		return r.renderFailedExamples(result)
	}
	return nil
}

// RenderCoverageNotice writes a blank line followed by the uncolored message.
func (r *Renderer) RenderCoverageNotice(message string) error {
	if err := r.blank(); err != nil {
		return err
	}
	return r.line(message, display.None)
}

// RenderThresholdFailure writes the message in red between blank lines.
func (r *Renderer) RenderThresholdFailure(message string) error {
	if err := r.blank(); err != nil {
		return err
	}
	if err := r.line(message, display.Red); err != nil {
		return err
	}
	return r.blank()
}

func (r *Renderer) renderPendings(pendings []models.PendingRecord) error {
	if err := r.line("Pending:", display.None); err != nil {
		return err
	}
	for _, p := range pendings {
		if err := r.line("  "+p.Description, display.Yellow); err != nil {
			return err
		}
		if err := r.line("    # Not yet implemented", display.Cyan); err != nil {
			return err
		}
		if err := r.blank(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderFailures(failures []models.FailureRecord) error {
	if err := r.line("Failures:", display.None); err != nil {
		return err
	}
	if err := r.blank(); err != nil {
		return err
	}

	for i, f := range failures {
		if err := r.line(fmt.Sprintf("  %d) %s", i+1, f.Description), display.None); err != nil {
			return err
		}
		if err := r.line("     Failure/Error: "+f.Message, display.Red); err != nil {
			return err
		}
		for _, raw := range f.TraceLines() {
			c := display.Yellow
			if IsFrameworkFrame(raw, r.markers) {
				c = display.None
			}
			if err := r.line("       in "+CleanTraceLine(raw), c); err != nil {
				return err
			}
		}
		if err := r.blank(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderStats(result *models.RunResult) error {
	if err := r.line("Finished in "+FormatElapsed(result.Elapsed)+" seconds", display.None); err != nil {
		return err
	}
	stats := StatsLine(result.RunCount, len(result.Failures), len(result.Pendings))
	return r.line(stats, StatsColor(len(result.Failures), len(result.Pendings)))
}

func (r *Renderer) renderFailedExamples(result *models.RunResult) error {
	if err := r.blank(); err != nil {
		return err
	}
	if err := r.line("Failed examples:", display.None); err != nil {
		return err
	}
	if err := r.blank(); err != nil {
		return err
	}

	suite := result.Suite
	if suite == "" {
		suite = DefaultSuite
	}
	for _, f := range result.Failures {
		if err := r.line(RerunCommand(r.runner, suite, f.Link), display.Red); err != nil {
			return err
		}
	}
	return nil
}

// RerunCommand builds the command line that re-executes one failed example.
func RerunCommand(runner, suite, link string) string {
	return fmt.Sprintf(`%s -s %s --filter="%s"`, runner, suite, link)
}
