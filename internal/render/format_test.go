package render

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "zero", input: 0, expected: "0s"},
		{name: "negative", input: -5, expected: "0s"},
		{name: "nan", input: math.NaN(), expected: "0s"},
		{name: "sub-second truncates to zero", input: 0.9, expected: "0s"},
		{name: "seconds only", input: 42, expected: "42s"},
		{name: "minutes and seconds truncated", input: 951.523, expected: "15m 51s"},
		{name: "exact minute omits seconds", input: 60, expected: "1m"},
		{name: "exact hour omits rest", input: 3600, expected: "1h"},
		{name: "all components", input: 3661, expected: "1h 1m 1s"},
		{name: "hours and seconds skip minutes", input: 7205, expected: "2h 5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSeconds(tt.input))
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(time.Date(2025, 6, 30, 9, 5, 0, 0, time.UTC)))
	assert.Equal(t, "16:45", FormatClock(time.Date(2025, 7, 1, 16, 45, 0, 0, time.UTC)))
}

func TestFormatDay(t *testing.T) {
	assert.Equal(t, "Mon, Jun 30 2025", FormatDay("2025-06-30"))
	assert.Equal(t, "not-a-day", FormatDay("not-a-day"))
}
