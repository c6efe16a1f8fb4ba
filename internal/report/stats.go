package report

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/harrison/teaspoon-report/internal/display"
)

// Pluralize returns "<count> <noun>", adding an "s" unless count is 1.
func Pluralize(noun string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}

// StatsLine formats the aggregate counts, e.g. "3 examples, 1 failure, 2 pending".
// The pending part is only present when pendings > 0.
func StatsLine(examples, failures, pendings int) string {
	stats := Pluralize("example", examples) + ", " + Pluralize("failure", failures)
	if pendings > 0 {
		stats += fmt.Sprintf(", %d pending", pendings)
	}
	return stats
}

// StatsColor picks the stats line color: red with failures, yellow with
// pendings only, green otherwise.
func StatsColor(failures, pendings int) display.Color {
	switch {
	case failures > 0:
		return display.Red
	case pendings > 0:
		return display.Yellow
	default:
		return display.Green
	}
}

// FormatElapsed renders d in seconds, rounded to five decimal places and
// without trailing zeros ("1.23", "0.5", "12").
func FormatElapsed(d time.Duration) string {
	seconds := math.Round(d.Seconds()*1e5) / 1e5
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
