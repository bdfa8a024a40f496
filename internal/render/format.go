package render

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatSeconds renders a duration in seconds as a compound string like
// "1h 1m 1s". Only non-zero components are emitted, in descending unit
// order; fractional seconds are truncated. NaN, negative, or all-zero
// inputs collapse to "0s" so the output is never empty.
func FormatSeconds(sec float64) string {
	if math.IsNaN(sec) || sec <= 0 {
		return "0s"
	}

	total := int(sec)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}

// FormatClock renders a record timestamp as a 24-hour wall-clock time.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// FormatDay renders a dayKey's date for display headers, e.g.
// "Mon, Jun 30 2025". Falls back to the raw key if it doesn't parse.
func FormatDay(dayKey string) string {
	t, err := time.Parse("2006-01-02", dayKey)
	if err != nil {
		return dayKey
	}
	return t.Format("Mon, Jan 02 2006")
}
