package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeDays = regexp.MustCompile(`^(\d+)\s+days?\s+ago$`)

// ParseDayFilter parses the --since/--until flag values. It accepts a few
// natural-language forms plus common date layouts and returns midnight of
// the resolved day in loc.
func ParseDayFilter(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date input")
	}

	now := time.Now().In(loc)
	midnight := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}

	switch input {
	case "today":
		return midnight(now), nil
	case "yesterday":
		return midnight(now.AddDate(0, 0, -1)), nil
	}

	if m := relativeDays.FindStringSubmatch(input); m != nil {
		n, _ := strconv.Atoi(m[1])
		return midnight(now.AddDate(0, 0, -n)), nil
	}

	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"Jan 2, 2006",
		"2 Jan 2006",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, input, loc); err == nil {
			return midnight(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
}
