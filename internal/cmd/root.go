package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ErrRunFailed is returned when the rendered run had failures, fatal errors or
// threshold failures. The report already explains why, so main exits 1 without
// printing it again.
var ErrRunFailed = errors.New("test run failed")

// NewRootCommand creates and returns the root cobra command for teaspoon-report
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teaspoon-report",
		Short: "Console reporter for teaspoon test runs",
		Long: `teaspoon-report renders the outcome of a teaspoon suite run as
color-coded text: pending examples, failures with cleaned-up stack traces,
the example/failure/pending counts, and a re-run command for every failure.

Results are read from a YAML or JSON snapshot written by the test runner.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints errors, and prints nothing for ErrRunFailed
		SilenceErrors: true,
	}

	cmd.AddCommand(NewRenderCommand())
	cmd.AddCommand(NewValidateCommand())

	return cmd
}
