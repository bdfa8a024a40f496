// Package layout places a day's records on its 24-hour timeline as
// fractional offsets and widths.
package layout

import (
	"math"
	"time"

	"github.com/pveldandi/recap/internal/aggregate"
	"github.com/pveldandi/recap/internal/record"
)

// daySpanSeconds is the fixed span of one timeline bar.
const daySpanSeconds = 86400

// PositionedItem is one record's fractional horizontal position within its
// day. OffsetFraction is 0 at local midnight; WidthFraction is duration
// relative to 24 hours. WidthFraction is not clamped: a session running past
// midnight extends past 1.0, which the renderer draws as an overflow.
type PositionedItem struct {
	Record         record.Canonical
	OffsetFraction float64
	WidthFraction  float64
}

// PlaceDay computes positioned items for every record in the group, in the
// group's order. The day boundary is local midnight of the group's dayKey.
// A record whose start parses to before that boundary (a timezone or
// day-boundary artifact) is dropped rather than clamped.
func PlaceDay(g aggregate.DayGroup, loc *time.Location) []PositionedItem {
	if loc == nil {
		loc = time.Local
	}

	boundary, err := time.ParseInLocation(record.DayKeyLayout, g.DayKey, loc)
	if err != nil {
		return nil
	}

	items := make([]PositionedItem, 0, len(g.Records))
	for _, r := range g.Records {
		offset := r.Start.Sub(boundary).Seconds() / daySpanSeconds
		if offset < 0 {
			continue
		}
		secs := r.Seconds
		if secs < 0 || math.IsNaN(secs) {
			secs = 0
		}
		items = append(items, PositionedItem{
			Record:         r,
			OffsetFraction: offset,
			WidthFraction:  secs / daySpanSeconds,
		})
	}
	return items
}
