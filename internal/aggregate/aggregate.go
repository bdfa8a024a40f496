// Package aggregate derives the grouped views consumed by the renderers:
// per-day groups for the timeline, per-type totals for the distribution
// chart, per-day totals for the daily series, and the type/tag tree for the
// detail listing. Everything is recomputed from scratch on each load.
package aggregate

import (
	"sort"

	"github.com/pveldandi/recap/internal/record"
)

// DayGroup holds one calendar day's records in ascending start order.
type DayGroup struct {
	DayKey  string
	Records []record.Canonical
}

// TypeTotal is the summed duration for one session type.
type TypeTotal struct {
	Type    string
	Seconds float64
}

// DailyTotal is the summed duration for one calendar day.
type DailyTotal struct {
	DayKey  string
	Seconds float64
}

// Hours reports the total in hours, the unit the daily chart plots.
func (d DailyTotal) Hours() float64 { return d.Seconds / 3600 }

// TagGroup holds one tag's records within a type, in ascending start order.
type TagGroup struct {
	Tag     string
	Records []record.Canonical
}

// TypeGroup is one type's tag groups, tags sorted ascending.
type TypeGroup struct {
	Type string
	Tags []TagGroup
}

// Aggregate bundles every derived structure for one dataset.
type Aggregate struct {
	Days        []DayGroup
	TypeTotals  []TypeTotal
	DailyTotals []DailyTotal
	Types       []TypeGroup
}

// TotalSeconds sums every record's duration across the dataset.
func (a Aggregate) TotalSeconds() float64 {
	var total float64
	for _, t := range a.TypeTotals {
		total += t.Seconds
	}
	return total
}

// Build groups the sorted canonical records by day, by type, and by
// (type, tag), and sums durations per type and per day. Group keys are exact
// string matches; an empty type or tag is its own group, never substituted
// with a default label here. Output ordering is deterministic: days and
// daily totals ascend by dayKey, types and tags ascend lexicographically,
// and records inside every group keep their ascending start order.
func Build(records []record.Canonical) Aggregate {
	dayIdx := make(map[string]int)
	typeSeconds := make(map[string]float64)
	daySeconds := make(map[string]float64)
	typeTags := make(map[string]map[string][]record.Canonical)

	var days []DayGroup
	for _, r := range records {
		i, ok := dayIdx[r.DayKey]
		if !ok {
			i = len(days)
			dayIdx[r.DayKey] = i
			days = append(days, DayGroup{DayKey: r.DayKey})
		}
		days[i].Records = append(days[i].Records, r)

		typeSeconds[r.Type] += r.Seconds
		daySeconds[r.DayKey] += r.Seconds

		tags, ok := typeTags[r.Type]
		if !ok {
			tags = make(map[string][]record.Canonical)
			typeTags[r.Type] = tags
		}
		tags[r.Tag] = append(tags[r.Tag], r)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].DayKey < days[j].DayKey })

	typeTotals := make([]TypeTotal, 0, len(typeSeconds))
	for typ, secs := range typeSeconds {
		typeTotals = append(typeTotals, TypeTotal{Type: typ, Seconds: secs})
	}
	sort.Slice(typeTotals, func(i, j int) bool { return typeTotals[i].Type < typeTotals[j].Type })

	dailyTotals := make([]DailyTotal, 0, len(daySeconds))
	for key, secs := range daySeconds {
		dailyTotals = append(dailyTotals, DailyTotal{DayKey: key, Seconds: secs})
	}
	sort.Slice(dailyTotals, func(i, j int) bool { return dailyTotals[i].DayKey < dailyTotals[j].DayKey })

	types := make([]TypeGroup, 0, len(typeTags))
	for typ, tags := range typeTags {
		group := TypeGroup{Type: typ, Tags: make([]TagGroup, 0, len(tags))}
		for tag, recs := range tags {
			group.Tags = append(group.Tags, TagGroup{Tag: tag, Records: recs})
		}
		sort.Slice(group.Tags, func(i, j int) bool { return group.Tags[i].Tag < group.Tags[j].Tag })
		types = append(types, group)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Type < types[j].Type })

	return Aggregate{
		Days:        days,
		TypeTotals:  typeTotals,
		DailyTotals: dailyTotals,
		Types:       types,
	}
}
