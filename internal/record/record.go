package record

import "time"

// Raw is a session entry exactly as it appears in the data file. Nothing is
// trusted: timestamps are strings, duration may be negative or absent.
type Raw struct {
	Name     string  `yaml:"name" json:"name"`
	Type     string  `yaml:"type" json:"type"`
	Tag      string  `yaml:"tag" json:"tag"`
	Start    string  `yaml:"start" json:"start"`
	End      string  `yaml:"end" json:"end"`
	Duration float64 `yaml:"duration" json:"duration"`
}

// Canonical is a normalized session record. Start and End are parsed in the
// configured location; DayKey is the local calendar date of Start.
type Canonical struct {
	Name    string
	Type    string
	Tag     string
	Start   time.Time
	End     time.Time
	Seconds float64
	DayKey  string
}

// DayKeyLayout is the bucketing key format: zero-padded local calendar date.
const DayKeyLayout = "2006-01-02"
