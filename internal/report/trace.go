package report

import (
	"regexp"
	"strings"
)

// traceNoise lists the fragments stripped from raw trace lines, in order.
// Later patterns assume the earlier noise is already gone.
var traceNoise = []*regexp.Regexp{
	regexp.MustCompile(`http://(\d+\.){3}\d+:\d+`), // dev-server origin; the path keeps its leading slash
	regexp.MustCompile(`\.self`),                   // wrapper function artifact
	regexp.MustCompile(`-[0-9a-f]+`),               // cache-busting digest
	regexp.MustCompile(`\?body=1\?body=\d+`),       // duplicated asset pipeline query
	regexp.MustCompile(`:\d+$`),                    // trailing line/column suffix
}

// CleanTraceLine rewrites one raw trace line into a readable form.
// Each noise pattern is removed at most once.
func CleanTraceLine(line string) string {
	for _, re := range traceNoise {
		line = removeFirst(re, line)
	}
	return line
}

func removeFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}

// DefaultFrameworkMarkers returns the markers of the JavaScript test
// frameworks whose frames are shown uncolored.
func DefaultFrameworkMarkers() []string {
	return []string{"mocha", "chai"}
}

// IsFrameworkFrame reports whether a raw trace line belongs to the test
// framework rather than application code.
func IsFrameworkFrame(line string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.Contains(line, m) {
			return true
		}
	}
	return false
}
