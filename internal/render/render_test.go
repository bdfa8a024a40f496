package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pveldandi/recap/internal/aggregate"
	"github.com/pveldandi/recap/internal/dataset"
	"github.com/pveldandi/recap/internal/layout"
	"github.com/pveldandi/recap/internal/record"
)

func testRenderer(format OutputFormat) *Renderer {
	return NewRenderer(&Config{
		Format:   format,
		Width:    100,
		Color:    false,
		Palette:  DefaultPalette(),
		Location: time.UTC,
	})
}

func sampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Load("", time.UTC, dataset.Filter{})
	require.NoError(t, err)
	return ds
}

func TestRenderTimeline(t *testing.T) {
	out := testRenderer(FormatDefault).RenderTimeline(sampleDataset(t))

	assert.Contains(t, out, "Mon, Jun 30 2025")
	assert.Contains(t, out, "Tue, Jul 01 2025")
	assert.Contains(t, out, "Wed, Jul 02 2025")
	assert.Contains(t, out, "2 sessions, 35m 52s")
	assert.Contains(t, out, "[1] 09:15 Cell structure review 15m 51s")
	assert.Contains(t, out, "0h")
	assert.Contains(t, out, "12h")
}

func TestRenderDayBarOverflow(t *testing.T) {
	r := testRenderer(FormatDefault)
	items := []layout.PositionedItem{
		{
			Record:         record.Canonical{Name: "late", Type: "Math"},
			OffsetFraction: 23.0 / 24,
			WidthFraction:  2.0 / 24,
		},
	}
	bar := r.renderDayBar(items, 48)
	assert.True(t, strings.HasSuffix(bar, "»"))
}

func TestRenderCharts(t *testing.T) {
	out := testRenderer(FormatDefault).RenderCharts(sampleDataset(t))

	assert.Contains(t, out, "Time by type")
	assert.Contains(t, out, "Biology")
	assert.Contains(t, out, "(12.1%)")
	assert.Contains(t, out, "(49.7%)")
	assert.Contains(t, out, "(38.2%)")

	assert.Contains(t, out, "Daily totals")
	assert.Contains(t, out, "2025-06-30")
	assert.Contains(t, out, "0.60h")
	assert.Contains(t, out, "1.17h")
}

func TestRenderDetailDefault(t *testing.T) {
	out, err := testRenderer(FormatDefault).RenderDetail(sampleDataset(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Biology")
	assert.Contains(t, out, "#chapter-3")
	assert.Contains(t, out, "15m 51s")
	assert.Contains(t, out, "09:15–09:30")

	// type groups in lexicographic order
	bio := strings.Index(out, "Biology")
	hist := strings.Index(out, "History")
	math := strings.Index(out, "Math")
	assert.Less(t, bio, hist)
	assert.Less(t, hist, math)
}

func TestRenderDetailJSON(t *testing.T) {
	out, err := testRenderer(FormatJSON).RenderDetail(sampleDataset(t))
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 5)
	assert.Equal(t, "Biology", rows[0]["type"])
	assert.Equal(t, "15m 51s", rows[0]["duration"])
}

func TestRenderDetailCSV(t *testing.T) {
	out, err := testRenderer(FormatCSV).RenderDetail(sampleDataset(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "name,type,tag,day,start,end,seconds,duration", lines[0])
	assert.Contains(t, out, "951.523")
}

func TestRenderDetailEmptyGroupsLabelled(t *testing.T) {
	records, _ := record.Normalize([]record.Raw{
		{Name: "untyped", Start: "2025-06-30T09:00:00.000", End: "2025-06-30T09:10:00.000", Duration: 600},
	}, time.UTC)
	require.Len(t, records, 1)

	ds := &dataset.Dataset{Source: "test", Location: time.UTC, Records: records, Agg: aggregate.Build(records)}

	out, err := testRenderer(FormatDefault).RenderDetail(ds)
	require.NoError(t, err)
	assert.Contains(t, out, "(untyped)")
	assert.Contains(t, out, "(untagged)")
}
