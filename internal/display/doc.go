// Package display turns report lines into terminal or file output.
//
// Report code describes presentation with the closed Color enumeration and
// never sees escape sequences. The sinks in this package own the mapping from
// Color to ANSI attributes (via fatih/color) and decide whether color is
// emitted at all.
//
// # Sinks
//
// ConsoleSink writes to any io.Writer and serializes writes with a mutex:
//
//	sink := display.NewConsoleSink(os.Stdout, display.ColorAuto)
//	sink.WriteLine("3 examples, 0 failures", display.Green)
//	sink.WriteLine("", display.None) // blank line
//
// ColorAuto enables color only when the writer is a terminal and NO_COLOR is
// unset. ColorAlways and ColorNever force the decision.
//
// FileSink appends plain lines to a file while holding an exclusive
// cross-process lock, so concurrent runners that share a report file never
// interleave their reports:
//
//	sink, err := display.OpenFileSink(ctx, "tmp/report.txt", false)
//	if err != nil {
//	    return err
//	}
//	defer sink.Close()
//
// # Warnings
//
// Warning renders a titled notice through any sink in yellow.
package display
