package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pveldandi/recap/internal/record"
)

func sampleRecords(t *testing.T) []record.Canonical {
	t.Helper()
	raws := []record.Raw{
		{Name: "Cell structure review", Type: "Biology", Tag: "chapter-3", Start: "2025-06-30T09:15:00.000", End: "2025-06-30T09:30:51.523", Duration: 951.523},
		{Name: "Calculus problem set", Type: "Math", Tag: "integrals", Start: "2025-06-30T14:00:00.000", End: "2025-06-30T14:20:00.500", Duration: 1200.5},
		{Name: "Linear algebra drills", Type: "Math", Tag: "matrices", Start: "2025-07-01T10:30:00.000", End: "2025-07-01T11:00:00.000", Duration: 1800.0},
		{Name: "Pacific theater notes", Type: "History", Tag: "ww2", Start: "2025-07-01T16:45:00.000", End: "2025-07-01T17:25:00.000", Duration: 2400.0},
		{Name: "Ottoman empire reading", Type: "History", Tag: "ottoman", Start: "2025-07-02T08:20:00.000", End: "2025-07-02T08:45:00.000", Duration: 1500.0},
	}
	records, skipped := record.Normalize(raws, time.UTC)
	require.Empty(t, skipped)
	return records
}

func TestBuildDayGroups(t *testing.T) {
	agg := Build(sampleRecords(t))

	require.Len(t, agg.Days, 3)
	assert.Equal(t, "2025-06-30", agg.Days[0].DayKey)
	assert.Equal(t, "2025-07-01", agg.Days[1].DayKey)
	assert.Equal(t, "2025-07-02", agg.Days[2].DayKey)

	assert.Len(t, agg.Days[0].Records, 2)
	assert.Len(t, agg.Days[1].Records, 2)
	assert.Len(t, agg.Days[2].Records, 1)

	// records inside a day keep ascending start order
	assert.Equal(t, "Cell structure review", agg.Days[0].Records[0].Name)
	assert.Equal(t, "Calculus problem set", agg.Days[0].Records[1].Name)
}

func TestBuildTypeTotals(t *testing.T) {
	agg := Build(sampleRecords(t))

	require.Len(t, agg.TypeTotals, 3)
	// lexicographic type order
	assert.Equal(t, "Biology", agg.TypeTotals[0].Type)
	assert.Equal(t, "History", agg.TypeTotals[1].Type)
	assert.Equal(t, "Math", agg.TypeTotals[2].Type)

	assert.InDelta(t, 951.523, agg.TypeTotals[0].Seconds, 1e-9)
	assert.InDelta(t, 3900.0, agg.TypeTotals[1].Seconds, 1e-9)
	assert.InDelta(t, 3000.5, agg.TypeTotals[2].Seconds, 1e-9)
}

func TestBuildDailyTotals(t *testing.T) {
	agg := Build(sampleRecords(t))

	require.Len(t, agg.DailyTotals, 3)
	assert.Equal(t, "2025-06-30", agg.DailyTotals[0].DayKey)
	assert.InDelta(t, 2152.023, agg.DailyTotals[0].Seconds, 1e-9)
	assert.InDelta(t, 4200.0, agg.DailyTotals[1].Seconds, 1e-9)
	assert.InDelta(t, 1500.0, agg.DailyTotals[2].Seconds, 1e-9)

	assert.InDelta(t, 2152.023/3600, agg.DailyTotals[0].Hours(), 1e-9)
}

func TestBuildTypeTotalsMatchPerRecordSums(t *testing.T) {
	records := sampleRecords(t)
	agg := Build(records)

	for _, tt := range agg.TypeTotals {
		var want float64
		for _, r := range records {
			if r.Type == tt.Type {
				want += r.Seconds
			}
		}
		assert.InDelta(t, want, tt.Seconds, 1e-9, "type %q", tt.Type)
	}
}

func TestBuildTypeTagGroups(t *testing.T) {
	agg := Build(sampleRecords(t))

	require.Len(t, agg.Types, 3)
	history := agg.Types[1]
	assert.Equal(t, "History", history.Type)
	require.Len(t, history.Tags, 2)
	// tags sorted lexicographically within a type
	assert.Equal(t, "ottoman", history.Tags[0].Tag)
	assert.Equal(t, "ww2", history.Tags[1].Tag)
	require.Len(t, history.Tags[0].Records, 1)
	assert.Equal(t, "Ottoman empire reading", history.Tags[0].Records[0].Name)
}

func TestBuildEmptyKeysAreTheirOwnGroups(t *testing.T) {
	raws := []record.Raw{
		{Name: "untyped", Type: "", Tag: "", Start: "2025-06-30T09:00:00.000", End: "2025-06-30T09:10:00.000", Duration: 600},
		{Name: "typed", Type: "Math", Tag: "algebra", Start: "2025-06-30T10:00:00.000", End: "2025-06-30T10:10:00.000", Duration: 600},
	}
	records, _ := record.Normalize(raws, time.UTC)
	agg := Build(records)

	require.Len(t, agg.Types, 2)
	assert.Equal(t, "", agg.Types[0].Type)
	require.Len(t, agg.Types[0].Tags, 1)
	assert.Equal(t, "", agg.Types[0].Tags[0].Tag)
	assert.Equal(t, "Math", agg.Types[1].Type)
}

func TestBuildIdempotent(t *testing.T) {
	records := sampleRecords(t)
	first := Build(records)
	second := Build(records)
	assert.Equal(t, first, second)
}

func TestBuildEmptyInput(t *testing.T) {
	agg := Build(nil)
	assert.Empty(t, agg.Days)
	assert.Empty(t, agg.TypeTotals)
	assert.Empty(t, agg.DailyTotals)
	assert.Empty(t, agg.Types)
	assert.Zero(t, agg.TotalSeconds())
}
