package record

import (
	"fmt"
	"sort"
	"time"
)

// Timestamp layouts accepted from the data file. The capture tool writes
// local ISO timestamps with millisecond precision and no zone suffix; manual
// entries may carry the space-separated minute/second forms.
var startLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339Nano,
	time.RFC3339,
}

// Skip describes a record dropped during normalization.
type Skip struct {
	Index int
	Name  string
	Err   error
}

// Normalize converts raw entries into canonical records sorted ascending by
// start instant. Records whose start or end timestamp cannot be parsed are
// excluded and reported in the returned skip list; the batch itself never
// fails. Duration is carried over verbatim, not recomputed from end-start,
// since the source may record planned rather than actual time. The input
// slice is not mutated.
func Normalize(raws []Raw, loc *time.Location) ([]Canonical, []Skip) {
	if loc == nil {
		loc = time.Local
	}

	records := make([]Canonical, 0, len(raws))
	var skipped []Skip

	for i, raw := range raws {
		start, err := parseInstant(raw.Start, loc)
		if err != nil {
			skipped = append(skipped, Skip{Index: i, Name: raw.Name, Err: fmt.Errorf("%w: start %q: %v", ErrMalformedRecord, raw.Start, err)})
			continue
		}
		end, err := parseInstant(raw.End, loc)
		if err != nil {
			skipped = append(skipped, Skip{Index: i, Name: raw.Name, Err: fmt.Errorf("%w: end %q: %v", ErrMalformedRecord, raw.End, err)})
			continue
		}

		records = append(records, Canonical{
			Name:    raw.Name,
			Type:    raw.Type,
			Tag:     raw.Tag,
			Start:   start,
			End:     end,
			Seconds: raw.Duration,
			DayKey:  start.Format(DayKeyLayout),
		})
	}

	// Stable so that records sharing a start instant keep their file order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Start.Before(records[j].Start)
	})

	return records, skipped
}

func parseInstant(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format")
}
