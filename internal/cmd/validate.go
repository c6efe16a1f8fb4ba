package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/teaspoon-report/internal/display"
	"github.com/harrison/teaspoon-report/internal/parser"
	"github.com/harrison/teaspoon-report/internal/report"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <result-file>...",
		Short: "Validate one or more result snapshots without rendering them",
		Long: `Load result snapshots and check them for:
  - Negative example counts or elapsed time
  - Failures and pending examples without a description
  - Fatal error reports without a message
  - Trace frames without a file or with a negative line

Every problem is listed, not just the first one per file.

Exit code: 0 if valid, 1 if errors found`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateResultFilesWithOutput(args, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}

// validateResultFilesWithOutput validates snapshots with custom output writer (for testing)
func validateResultFilesWithOutput(paths []string, output io.Writer) error {
	fmt.Fprintf(output, "Validating result files:\n")

	invalid := 0
	for _, path := range paths {
		result, err := parser.ParseFile(path)
		if err != nil {
			fmt.Fprintf(output, "✗ Failed to parse %s\n", path)
			fmt.Fprintf(output, "  Error: %v\n", err)
			invalid++
			continue
		}

		if problems := result.ValidateAll(); len(problems) > 0 {
			fmt.Fprintf(output, "✗ %s\n", path)
			for _, problem := range problems {
				fmt.Fprintf(output, "  ✗ %v\n", problem)
			}
			invalid++
			continue
		}

		fmt.Fprintf(output, "✓ %s: %s\n", path, report.StatsLine(result.RunCount, len(result.Failures), len(result.Pendings)))
		for _, warning := range snapshotWarnings(path, result) {
			warning.Display(display.NewConsoleSink(output, display.ColorNever))
		}
	}

	if invalid > 0 {
		fmt.Fprintf(output, "\nFound %d invalid result file(s)!\n", invalid)
		return fmt.Errorf("%d of %d result file(s) invalid", invalid, len(paths))
	}

	fmt.Fprintf(output, "\n✓ All result files are valid!\n")
	return nil
}
