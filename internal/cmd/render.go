package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/harrison/teaspoon-report/internal/config"
	"github.com/harrison/teaspoon-report/internal/display"
	"github.com/harrison/teaspoon-report/internal/fileutil"
	"github.com/harrison/teaspoon-report/internal/logger"
	"github.com/harrison/teaspoon-report/internal/models"
	"github.com/harrison/teaspoon-report/internal/parser"
	"github.com/harrison/teaspoon-report/internal/report"
	"github.com/spf13/cobra"
)

// NewRenderCommand creates and returns the render subcommand
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <result-file>",
		Short: "Render a test run result as a console report",
		Long: `Render a YAML or JSON result snapshot in the classic teaspoon layout:
  - Pending examples
  - Failures with cleaned-up stack traces
  - Elapsed time and the examples/failures/pending stats line
  - A re-run command for every failed example

Fatal errors, the coverage notice and coverage threshold failures are
rendered when the snapshot carries them.

Exit code: 0 if the run passed, 1 on failures, errors or threshold failures`,
		Args:         cobra.ExactArgs(1),
		RunE:         runRender,
		SilenceUsage: true,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .teaspoon/report.yaml)")
	cmd.Flags().String("suite", "", "Suite name used in re-run commands (default: the snapshot's)")
	cmd.Flags().String("runner", "", "Command prefix for re-run lines (default: teaspoon)")
	cmd.Flags().StringArray("marker", nil, "Framework marker for trace lines; repeat for several (default: mocha, chai)")
	cmd.Flags().String("color", "", "When to color output: auto, always, never")
	cmd.Flags().StringP("output", "o", "", "Append the report to this file instead of stdout")
	cmd.Flags().Bool("truncate", false, "Truncate the --output file instead of appending")
	cmd.Flags().String("root", "", "Project root that trace paths are made relative to")
	cmd.Flags().Duration("lock-timeout", 0, "Maximum wait for another writer to release the --output file")
	cmd.Flags().String("log-level", "", "Diagnostic log level: trace, debug, info, warn, error")
	cmd.Flags().String("log-dir", "", "Directory for per-run diagnostic log files")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		return err
	}

	diag, closeLogs := newDiagnostics(cfg, cmd.ErrOrStderr())
	defer closeLogs()

	return renderResultWithOutput(cmd.Context(), cfg, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr(), diag)
}

// loadCommandConfig loads the config file and applies the flags the user set
func loadCommandConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var overrides config.FlagOverrides
	flags := cmd.Flags()
	stringFlags := map[string]**string{
		"suite":     &overrides.Suite,
		"runner":    &overrides.RunnerCommand,
		"color":     &overrides.Color,
		"output":    &overrides.Output,
		"root":      &overrides.Root,
		"log-level": &overrides.LogLevel,
		"log-dir":   &overrides.LogDir,
	}
	for name, target := range stringFlags {
		if flags.Changed(name) {
			value, _ := flags.GetString(name)
			*target = &value
		}
	}
	if flags.Changed("marker") {
		markers, _ := flags.GetStringArray("marker")
		overrides.FrameworkMarkers = &markers
	}
	if flags.Changed("truncate") {
		truncate, _ := flags.GetBool("truncate")
		overrides.TruncateOutput = &truncate
	}
	if flags.Changed("lock-timeout") {
		timeout, _ := flags.GetDuration("lock-timeout")
		overrides.LockTimeout = &timeout
	}
	cfg.MergeWithFlags(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newDiagnostics builds the stderr logger plus a file logger when a log
// directory is configured. A log directory that cannot be created only warns.
func newDiagnostics(cfg *config.Config, errOut io.Writer) (diagnosticLogger, func()) {
	console := logger.NewConsoleLogger(errOut, cfg.LogLevel)
	if cfg.LogDir == "" {
		return console, func() {}
	}

	fileLogger, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		console.LogWarn(fmt.Sprintf("file logging disabled: %v", err))
		return console, func() {}
	}
	console.LogDebug(fmt.Sprintf("report %s logging to %s", fileLogger.ReportID(), fileLogger.Path()))

	return &multiLogger{loggers: []diagnosticLogger{console, fileLogger}}, func() {
		fileLogger.Close()
	}
}

// renderResultWithOutput renders the snapshot at path to out, or to the
// configured output file, and reports ErrRunFailed for a failed run
func renderResultWithOutput(ctx context.Context, cfg *config.Config, path string, out, errOut io.Writer, diag diagnosticLogger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	diag.LogDebug(fmt.Sprintf("loading result snapshot %s", path))
	result, err := parser.ParseFile(path)
	if err != nil {
		diag.LogError(err.Error())
		return fmt.Errorf("failed to load result file: %w", err)
	}
	if cfg.Suite != "" {
		result.Suite = cfg.Suite
	}

	for _, warning := range snapshotWarnings(path, result) {
		diag.LogWarn(warning.Title)
		warning.Display(display.NewConsoleSink(errOut, cfg.ColorMode()))
	}

	sink, closeSink, err := openReportSink(ctx, cfg, out, diag)
	if err != nil {
		diag.LogError(err.Error())
		return err
	}
	if cfg.Output != "" {
		diag.LogInfo(fmt.Sprintf("writing report to %s", cfg.Output))
	}

	renderer := report.NewRenderer(sink, report.Options{
		RunnerCommand:    cfg.RunnerCommand,
		FrameworkMarkers: cfg.FrameworkMarkers,
		Shortener:        fileutil.NewShortener(cfg.Root),
	})

	renderErr := renderAll(renderer, result, diag)
	if closeErr := closeSink(); closeErr != nil {
		renderErr = errors.Join(renderErr, fmt.Errorf("failed to close report: %w", closeErr))
	}
	if renderErr != nil {
		diag.LogError(renderErr.Error())
		return renderErr
	}

	diag.LogRenderSummary(result, time.Since(start))

	if !result.Passed() {
		return ErrRunFailed
	}
	return nil
}

// openReportSink returns the console sink, or a locked file sink when an
// output file is configured, together with its close function
func openReportSink(ctx context.Context, cfg *config.Config, out io.Writer, diag diagnosticLogger) (report.LineWriter, func() error, error) {
	if cfg.Output == "" {
		console := display.NewConsoleSink(out, cfg.ColorMode())
		diag.LogDebug(fmt.Sprintf("writing report to stdout (color mode %s, color enabled: %t)", cfg.ColorMode(), console.ColorEnabled()))
		return console, func() error { return nil }, nil
	}

	if cfg.LockTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.LockTimeout)
		defer cancel()
	}

	sink, err := display.OpenFileSink(ctx, cfg.Output, cfg.TruncateOutput)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open report file %s: %w", cfg.Output, err)
	}
	return sink, sink.Close, nil
}

// renderAll writes fatal errors first, then the run summary, the coverage
// notice and any threshold failures. A malformed result writes nothing.
func renderAll(renderer *report.Renderer, result *models.RunResult, diag diagnosticLogger) error {
	if err := result.Validate(); err != nil {
		return fmt.Errorf("cannot render result: %w", err)
	}

	diag.LogTrace(fmt.Sprintf("rendering %d error report(s)", len(result.Errors)))
	for i, errReport := range result.Errors {
		if err := renderer.RenderError(errReport); err != nil {
			return fmt.Errorf("failed to render error report #%d: %w", i+1, err)
		}
	}

	diag.LogTrace(fmt.Sprintf("rendering result: %d failure(s), %d pending", len(result.Failures), len(result.Pendings)))
	if err := renderer.RenderResult(result); err != nil {
		return err
	}

	if result.Coverage != "" {
		diag.LogTrace("rendering coverage notice")
		if err := renderer.RenderCoverageNotice(result.Coverage); err != nil {
			return fmt.Errorf("failed to render coverage notice: %w", err)
		}
	}

	diag.LogTrace(fmt.Sprintf("rendering %d threshold failure(s)", len(result.ThresholdFailures)))
	for _, message := range result.ThresholdFailures {
		if err := renderer.RenderThresholdFailure(message); err != nil {
			return fmt.Errorf("failed to render threshold failure: %w", err)
		}
	}

	return nil
}

// snapshotWarnings flags snapshots that render but look inconsistent
func snapshotWarnings(path string, result *models.RunResult) []display.Warning {
	var warnings []display.Warning

	listed := len(result.Failures) + len(result.Pendings)
	if result.RunCount < listed {
		warnings = append(warnings, display.Warning{
			Title:      fmt.Sprintf("%s reports %d examples but lists %d failures and pending examples", path, result.RunCount, listed),
			Message:    "The stats line uses the reported example count",
			Suggestion: "Make sure the runner writes the snapshot after the whole suite has finished",
		})
	}

	var unlinked []string
	for _, f := range result.Failures {
		if strings.TrimSpace(f.Link) == "" {
			unlinked = append(unlinked, f.Description)
		}
	}
	if len(unlinked) > 0 {
		warnings = append(warnings, display.Warning{
			Title:      fmt.Sprintf("%s has failures without a link", path),
			Message:    "Their re-run commands have an empty --filter and re-run the whole suite",
			Items:      unlinked,
			Suggestion: "Record a filter link for every failed example",
		})
	}

	if result.RunCount == 0 && len(result.Errors) == 0 {
		warnings = append(warnings, display.Warning{
			Title:      fmt.Sprintf("No examples ran in %s", path),
			Suggestion: "Check the suite's spec file pattern and any --filter passed to the runner",
		})
	}

	return warnings
}
